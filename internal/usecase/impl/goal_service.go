package impl

import (
	"context"
	"log/slog"

	deliverycontext "habitrack/internal/delivery/context"
	"habitrack/internal/domain/entity"
	domainerrors "habitrack/internal/domain/errors"
	"habitrack/internal/domain/repository"
	"habitrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type goalService struct {
	habitRepo  repository.HabitRepository
	goalRepo   repository.GoalRepository
	recordRepo repository.HabitRecordRepository
	logger     *slog.Logger
}

// GoalServiceParams holds dependencies for GoalService, injected by Fx.
type GoalServiceParams struct {
	fx.In

	HabitRepo  repository.HabitRepository
	GoalRepo   repository.GoalRepository
	RecordRepo repository.HabitRecordRepository
	Logger     *slog.Logger
}

// NewGoalService creates a new goal service instance.
func NewGoalService(params GoalServiceParams) usecase.GoalUsecase {
	return &goalService{
		habitRepo:  params.HabitRepo,
		goalRepo:   params.GoalRepo,
		recordRepo: params.RecordRepo,
		logger:     params.Logger,
	}
}

func (s *goalService) CreateGoal(ctx context.Context, userID, habitID uuid.UUID, input *usecase.CreateGoalInput) (*entity.GoalWithProgress, error) {
	if input.TargetCount <= 0 {
		return nil, errors.WithStack(domainerrors.ErrInvalidGoalTarget)
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() || input.EndDate.Before(input.StartDate) {
		return nil, errors.WithStack(domainerrors.ErrInvalidGoalWindow)
	}
	if _, err := loadOwnedHabit(ctx, s.habitRepo, userID, habitID); err != nil {
		return nil, err
	}

	goal := &entity.Goal{
		HabitID:     habitID,
		TargetCount: input.TargetCount,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
	}
	if err := s.goalRepo.Create(ctx, goal); err != nil {
		if errors.Is(err, repository.ErrHabitNotFound) {
			return nil, errors.Wrap(domainerrors.ErrHabitNotFound, "create goal")
		}

		return nil, errors.Wrap(err, "failed to create goal")
	}
	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Goal created",
		slog.Any("habitID", habitID),
		slog.Any("goalID", goal.ID),
		slog.Int("targetCount", goal.TargetCount),
	)

	return s.evaluate(ctx, goal)
}

func (s *goalService) ListGoals(ctx context.Context, userID, habitID uuid.UUID) ([]*entity.GoalWithProgress, error) {
	if _, err := loadOwnedHabit(ctx, s.habitRepo, userID, habitID); err != nil {
		return nil, err
	}

	goals, err := s.goalRepo.FindByHabit(ctx, habitID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list goals")
	}

	evaluated := make([]*entity.GoalWithProgress, 0, len(goals))
	for _, goal := range goals {
		withProgress, err := s.evaluate(ctx, goal)
		if err != nil {
			return nil, err
		}
		evaluated = append(evaluated, withProgress)
	}

	return evaluated, nil
}

func (s *goalService) GetGoal(ctx context.Context, userID, habitID, goalID uuid.UUID) (*entity.GoalWithProgress, error) {
	goal, err := s.loadGoal(ctx, userID, habitID, goalID)
	if err != nil {
		return nil, err
	}

	return s.evaluate(ctx, goal)
}

func (s *goalService) DeleteGoal(ctx context.Context, userID, habitID, goalID uuid.UUID) error {
	if _, err := s.loadGoal(ctx, userID, habitID, goalID); err != nil {
		return err
	}

	if err := s.goalRepo.Delete(ctx, goalID); err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			return errors.Wrap(domainerrors.ErrGoalNotFound, goalID.String())
		}

		return errors.Wrap(err, "failed to delete goal")
	}

	return nil
}

func (s *goalService) loadGoal(ctx context.Context, userID, habitID, goalID uuid.UUID) (*entity.Goal, error) {
	if _, err := loadOwnedHabit(ctx, s.habitRepo, userID, habitID); err != nil {
		return nil, err
	}

	goal, err := s.goalRepo.FindByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			return nil, errors.Wrap(domainerrors.ErrGoalNotFound, goalID.String())
		}

		return nil, errors.Wrap(err, "failed to find goal")
	}
	if goal.HabitID != habitID {
		return nil, errors.Wrap(domainerrors.ErrGoalNotFound, goalID.String())
	}

	return goal, nil
}

// evaluate loads the records inside the goal window and merges the computed progress.
func (s *goalService) evaluate(ctx context.Context, goal *entity.Goal) (*entity.GoalWithProgress, error) {
	records, err := s.recordRepo.FindByHabitAndDateRange(ctx, goal.HabitID, goal.StartDate, goal.EndDate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load records for goal")
	}

	return goal.WithProgress(records), nil
}
