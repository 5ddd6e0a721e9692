package repository

import (
	"context"
	"errors"

	"habitrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines persistence for reminder configurations.
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)
	FindByHabit(ctx context.Context, habitID uuid.UUID) ([]*entity.Notification, error)
	Update(ctx context.Context, notification *entity.Notification) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByHabit(ctx context.Context, habitID uuid.UUID) error

	// FindEnabledByTimeOfDay returns the enabled notifications due at t, in no particular order.
	FindEnabledByTimeOfDay(ctx context.Context, t entity.TimeOfDay) ([]*entity.Notification, error)
}
