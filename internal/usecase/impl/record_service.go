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

type recordService struct {
	habitRepo  repository.HabitRepository
	recordRepo repository.HabitRecordRepository
	logger     *slog.Logger
}

// RecordServiceParams holds dependencies for RecordService, injected by Fx.
type RecordServiceParams struct {
	fx.In

	HabitRepo  repository.HabitRepository
	RecordRepo repository.HabitRecordRepository
	Logger     *slog.Logger
}

// NewRecordService creates a new habit record service instance.
func NewRecordService(params RecordServiceParams) usecase.RecordUsecase {
	return &recordService{
		habitRepo:  params.HabitRepo,
		recordRepo: params.RecordRepo,
		logger:     params.Logger,
	}
}

func (s *recordService) CreateRecord(ctx context.Context, userID, habitID uuid.UUID, input *usecase.CreateRecordInput) (*entity.HabitRecord, error) {
	if input.Date.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("date is required")
	}
	if _, err := loadOwnedHabit(ctx, s.habitRepo, userID, habitID); err != nil {
		return nil, err
	}

	record := &entity.HabitRecord{
		HabitID: habitID,
		Date:    input.Date,
		Status:  input.Status,
	}
	if err := s.recordRepo.Create(ctx, record); err != nil {
		return nil, mapRecordError(err, "create record")
	}
	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Habit record created",
		slog.Any("habitID", habitID),
		slog.String("date", record.Date.String()),
		slog.Bool("status", record.Status),
	)

	return record, nil
}

func (s *recordService) ListRecords(ctx context.Context, userID, habitID uuid.UUID, start, end entity.Date) ([]*entity.HabitRecord, error) {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return nil, errors.WithStack(domainerrors.ErrInvalidDateRange)
	}
	if _, err := loadOwnedHabit(ctx, s.habitRepo, userID, habitID); err != nil {
		return nil, err
	}

	records, err := s.recordRepo.FindByHabitAndDateRange(ctx, habitID, start, end)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list records")
	}

	return records, nil
}

func (s *recordService) UpdateRecord(ctx context.Context, userID, habitID, recordID uuid.UUID, input *usecase.UpdateRecordInput) (*entity.HabitRecord, error) {
	record, err := s.loadRecord(ctx, userID, habitID, recordID)
	if err != nil {
		return nil, err
	}

	if input.Date != nil {
		if input.Date.IsZero() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("date must not be empty")
		}
		record.Date = *input.Date
	}
	if input.Status != nil {
		record.Status = *input.Status
	}

	if err := s.recordRepo.Update(ctx, record); err != nil {
		return nil, mapRecordError(err, "update record")
	}

	return record, nil
}

func (s *recordService) DeleteRecord(ctx context.Context, userID, habitID, recordID uuid.UUID) error {
	if _, err := s.loadRecord(ctx, userID, habitID, recordID); err != nil {
		return err
	}

	if err := s.recordRepo.Delete(ctx, recordID); err != nil {
		return mapRecordError(err, "delete record")
	}

	return nil
}

// loadRecord resolves a record through its owned habit. A record of another habit is reported as missing.
func (s *recordService) loadRecord(ctx context.Context, userID, habitID, recordID uuid.UUID) (*entity.HabitRecord, error) {
	if _, err := loadOwnedHabit(ctx, s.habitRepo, userID, habitID); err != nil {
		return nil, err
	}

	record, err := s.recordRepo.FindByID(ctx, recordID)
	if err != nil {
		return nil, mapRecordError(err, "find record")
	}
	if record.HabitID != habitID {
		return nil, errors.Wrap(domainerrors.ErrHabitRecordNotFound, recordID.String())
	}

	return record, nil
}

func mapRecordError(err error, op string) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateHabitRecord):
		return errors.Wrap(domainerrors.ErrHabitRecordAlreadyExists, op)
	case errors.Is(err, repository.ErrHabitRecordNotFound):
		return errors.Wrap(domainerrors.ErrHabitRecordNotFound, op)
	case errors.Is(err, repository.ErrHabitNotFound):
		return errors.Wrap(domainerrors.ErrHabitNotFound, op)
	default:
		return errors.Wrapf(err, "failed to %s", op)
	}
}
