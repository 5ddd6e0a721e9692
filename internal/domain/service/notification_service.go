package service

import (
	"context"
	"errors"
)

// ErrInvalidPushToken is returned by a NotificationService when the device token
// is malformed or no longer registered with the push provider.
var ErrInvalidPushToken = errors.New("invalid or unregistered token")

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendSingleNotification sends a push notification to a single device token
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
