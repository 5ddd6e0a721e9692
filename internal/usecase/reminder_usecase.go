package usecase

import (
	"context"
	"time"

	"habitrack/internal/domain/entity"
)

// ReminderUsecase runs reminder dispatch passes.
type ReminderUsecase interface {
	// DispatchDue sends every enabled reminder whose time of day equals now truncated
	// to the minute. Per-reminder failures are recorded in the report; only a storage
	// failure while loading the due reminders returns an error.
	DispatchDue(ctx context.Context, now time.Time) (*entity.DispatchReport, error)
}
