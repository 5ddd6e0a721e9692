package entity

import (
	"time"

	"github.com/google/uuid"
)

// DispatchStatus is the outcome of one reminder in a dispatch pass.
type DispatchStatus string

const (
	DispatchStatusSent           DispatchStatus = "sent"
	DispatchStatusSkippedNoToken DispatchStatus = "skipped_no_token"
	DispatchStatusFailed         DispatchStatus = "failed"
)

// DispatchOutcome records what happened to a single matched notification.
type DispatchOutcome struct {
	NotificationID uuid.UUID      `json:"notification_id"`
	UserID         uuid.UUID      `json:"user_id"`
	HabitID        uuid.UUID      `json:"habit_id"`
	Status         DispatchStatus `json:"status"`
	Reason         string         `json:"reason,omitempty"`
}

// DispatchReport lists one outcome per notification matched in a pass.
type DispatchReport struct {
	RunAt     time.Time          `json:"run_at"`
	TimeOfDay TimeOfDay          `json:"time_of_day"`
	Outcomes  []*DispatchOutcome `json:"outcomes"`
}

// Count returns the number of outcomes with the given status.
func (r *DispatchReport) Count(status DispatchStatus) int {
	if r == nil {
		return 0
	}

	n := 0
	for _, outcome := range r.Outcomes {
		if outcome.Status == status {
			n++
		}
	}

	return n
}

// Sent is the number of successfully pushed reminders.
func (r *DispatchReport) Sent() int { return r.Count(DispatchStatusSent) }

// Skipped is the number of reminders whose user had no device token.
func (r *DispatchReport) Skipped() int { return r.Count(DispatchStatusSkippedNoToken) }

// Failed is the number of reminders that could not be delivered.
func (r *DispatchReport) Failed() int { return r.Count(DispatchStatusFailed) }
