package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "habitrack/internal/delivery/context"
	"habitrack/internal/domain/entity"
	domainerrors "habitrack/internal/domain/errors"
	"habitrack/internal/domain/repository"
	"habitrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxHabitNameLength = 100

type habitService struct {
	txManager repository.TransactionManager
	habitRepo repository.HabitRepository
	logger    *slog.Logger
}

// HabitServiceParams holds dependencies for HabitService, injected by Fx.
type HabitServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	HabitRepo repository.HabitRepository
	Logger    *slog.Logger
}

// NewHabitService creates a new habit service instance.
func NewHabitService(params HabitServiceParams) usecase.HabitUsecase {
	return &habitService{
		txManager: params.TxManager,
		habitRepo: params.HabitRepo,
		logger:    params.Logger,
	}
}

func (s *habitService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *habitService) CreateHabit(ctx context.Context, userID uuid.UUID, input *usecase.CreateHabitInput) (*entity.Habit, error) {
	name, err := normalizeHabitName(input.Name)
	if err != nil {
		return nil, err
	}

	habit := &entity.Habit{
		UserID:      userID,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
	}
	if err := s.habitRepo.Create(ctx, habit); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "create habit")
		}

		return nil, errors.Wrap(err, "failed to create habit")
	}
	s.log(ctx).Info("Habit created", slog.Any("userID", userID), slog.Any("habitID", habit.ID))

	return habit, nil
}

func (s *habitService) ListHabits(ctx context.Context, userID uuid.UUID) ([]*entity.Habit, error) {
	habits, err := s.habitRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list habits")
	}

	return habits, nil
}

func (s *habitService) GetHabit(ctx context.Context, userID, habitID uuid.UUID) (*entity.Habit, error) {
	return loadOwnedHabit(ctx, s.habitRepo, userID, habitID)
}

func (s *habitService) UpdateHabit(ctx context.Context, userID, habitID uuid.UUID, input *usecase.UpdateHabitInput) (*entity.Habit, error) {
	habit, err := loadOwnedHabit(ctx, s.habitRepo, userID, habitID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name, err := normalizeHabitName(*input.Name)
		if err != nil {
			return nil, err
		}
		habit.Name = name
	}
	if input.Description != nil {
		habit.Description = strings.TrimSpace(*input.Description)
	}

	if err := s.habitRepo.Update(ctx, habit); err != nil {
		if errors.Is(err, repository.ErrHabitNotFound) {
			return nil, errors.Wrap(domainerrors.ErrHabitNotFound, "update habit")
		}

		return nil, errors.Wrap(err, "failed to update habit")
	}

	return habit, nil
}

// DeleteHabit removes the habit and everything hanging off it in one transaction.
func (s *habitService) DeleteHabit(ctx context.Context, userID, habitID uuid.UUID) error {
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		habitRepo := repoFactory.HabitRepo()

		if _, err := loadOwnedHabit(ctx, habitRepo, userID, habitID); err != nil {
			return err
		}
		if err := repoFactory.NotificationRepo().DeleteByHabit(ctx, habitID); err != nil {
			return errors.Wrap(err, "failed to delete notifications")
		}
		if err := repoFactory.GoalRepo().DeleteByHabit(ctx, habitID); err != nil {
			return errors.Wrap(err, "failed to delete goals")
		}
		if err := repoFactory.HabitRecordRepo().DeleteByHabit(ctx, habitID); err != nil {
			return errors.Wrap(err, "failed to delete records")
		}
		if err := habitRepo.Delete(ctx, habitID); err != nil {
			return errors.Wrap(err, "failed to delete habit")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute delete habit transaction")
	}
	s.log(ctx).Info("Habit deleted", slog.Any("userID", userID), slog.Any("habitID", habitID))

	return nil
}

// loadOwnedHabit fetches a habit and checks it belongs to userID.
func loadOwnedHabit(ctx context.Context, habitRepo repository.HabitRepository, userID, habitID uuid.UUID) (*entity.Habit, error) {
	habit, err := habitRepo.FindByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, repository.ErrHabitNotFound) {
			return nil, errors.Wrap(domainerrors.ErrHabitNotFound, habitID.String())
		}

		return nil, errors.Wrap(err, "failed to find habit")
	}
	if !habit.IsOwnedBy(userID) {
		return nil, errors.Wrap(domainerrors.ErrHabitOwnershipViolation, habitID.String())
	}

	return habit, nil
}

func normalizeHabitName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > maxHabitNameLength {
		return "", domainerrors.ErrValidationFailed.WithDetails("name must be 1 to 100 characters")
	}

	return name, nil
}
