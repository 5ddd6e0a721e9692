// Package constants holds configuration values shared across layers.
package constants

// Pub/Sub providers accepted by the pubsub.provider setting.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvLocal      = "local"
	EnvProduction = "production"
)

// Keys attached to reminder push payloads.
const (
	PushDataNotificationID = "notification_id"
	PushDataHabitID        = "habit_id"
	PushDataType           = "type"
	PushTypeHabitReminder  = "habit_reminder"
)
