package repository

import (
	"context"
	"errors"

	"habitrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrGoalNotFound is returned when a goal is not found.
var ErrGoalNotFound = errors.New("goal not found")

// GoalRepository defines persistence for goals.
type GoalRepository interface {
	Create(ctx context.Context, goal *entity.Goal) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindByHabit lists a habit's goals, oldest first.
	FindByHabit(ctx context.Context, habitID uuid.UUID) ([]*entity.Goal, error)

	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByHabit(ctx context.Context, habitID uuid.UUID) error
}
