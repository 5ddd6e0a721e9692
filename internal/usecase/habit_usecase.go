package usecase

import (
	"context"

	"habitrack/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateHabitInput defines the data required to create a habit.
type CreateHabitInput struct {
	Name        string
	Description string
}

// UpdateHabitInput holds the optional fields of a habit update.
type UpdateHabitInput struct {
	Name        *string
	Description *string
}

// HabitUsecase manages habits. Every operation is scoped to the calling user.
type HabitUsecase interface {
	CreateHabit(ctx context.Context, userID uuid.UUID, input *CreateHabitInput) (*entity.Habit, error)
	ListHabits(ctx context.Context, userID uuid.UUID) ([]*entity.Habit, error)
	GetHabit(ctx context.Context, userID, habitID uuid.UUID) (*entity.Habit, error)
	UpdateHabit(ctx context.Context, userID, habitID uuid.UUID, input *UpdateHabitInput) (*entity.Habit, error)

	// DeleteHabit removes the habit together with its records, goals and notifications.
	DeleteHabit(ctx context.Context, userID, habitID uuid.UUID) error
}
