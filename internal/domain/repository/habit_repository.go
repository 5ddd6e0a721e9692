package repository

import (
	"context"
	"errors"

	"habitrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrHabitNotFound is returned when a habit is not found.
var ErrHabitNotFound = errors.New("habit not found")

// HabitRepository defines persistence for habits.
type HabitRepository interface {
	Create(ctx context.Context, habit *entity.Habit) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)

	// FindByUser lists a user's habits, oldest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Habit, error)

	Update(ctx context.Context, habit *entity.Habit) error
	Delete(ctx context.Context, id uuid.UUID) error
}
