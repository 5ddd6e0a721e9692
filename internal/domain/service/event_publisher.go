package service

import (
	"context"
	"time"
)

// DispatchReportEvent summarises a completed reminder dispatch pass.
type DispatchReportEvent struct {
	RequestID string                 `json:"request_id,omitempty"` // For distributed tracing
	RunAt     time.Time              `json:"run_at"`
	TimeOfDay string                 `json:"time_of_day"`
	Matched   int                    `json:"matched"`
	Sent      int                    `json:"sent"`
	Skipped   int                    `json:"skipped"`
	Failed    int                    `json:"failed"`
	Outcomes  []DispatchOutcomeEvent `json:"outcomes"`
}

// DispatchOutcomeEvent is the wire form of a single dispatch outcome.
type DispatchOutcomeEvent struct {
	NotificationID string `json:"notification_id"`
	UserID         string `json:"user_id"`
	HabitID        string `json:"habit_id"`
	Status         string `json:"status"`
	Reason         string `json:"reason,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDispatchReport publishes the result of a dispatch pass
	PublishDispatchReport(ctx context.Context, event *DispatchReportEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
