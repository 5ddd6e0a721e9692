package usecase

import (
	"context"

	"habitrack/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateGoalInput defines a target number of completed days within an inclusive window.
type CreateGoalInput struct {
	TargetCount int
	StartDate   entity.Date
	EndDate     entity.Date
}

// GoalUsecase manages goals. Read and create operations return the goal with its
// progress evaluated against the stored records at call time.
type GoalUsecase interface {
	CreateGoal(ctx context.Context, userID, habitID uuid.UUID, input *CreateGoalInput) (*entity.GoalWithProgress, error)
	ListGoals(ctx context.Context, userID, habitID uuid.UUID) ([]*entity.GoalWithProgress, error)
	GetGoal(ctx context.Context, userID, habitID, goalID uuid.UUID) (*entity.GoalWithProgress, error)
	DeleteGoal(ctx context.Context, userID, habitID, goalID uuid.UUID) error
}
