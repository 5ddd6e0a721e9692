package postgres

import (
	"context"

	"habitrack/internal/domain/entity"
	domainerrors "habitrack/internal/domain/errors"
	"habitrack/internal/domain/repository"
	"habitrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type habitRecordRepository struct {
	db *gorm.DB
}

// NewHabitRecordRepository is the constructor for habitRecordRepository.
func NewHabitRecordRepository(db *gorm.DB) repository.HabitRecordRepository {
	return &habitRecordRepository{db: db}
}

// Create inserts a record. The (habit_id, date) unique index rejects a second row for the same day.
func (repo *habitRecordRepository) Create(ctx context.Context, record *entity.HabitRecord) error {
	recordM := fromHabitRecordDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateHabitRecord
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrHabitNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create habit record")
	}

	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt
	record.UpdatedAt = recordM.UpdatedAt

	return nil
}

func (repo *habitRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.HabitRecord, error) {
	var recordM model.HabitRecordModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHabitRecordNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find habit record")
	}

	return toHabitRecordDomain(&recordM), nil
}

// FindByHabitAndDateRange returns the records with start <= date <= end, oldest first.
func (repo *habitRecordRepository) FindByHabitAndDateRange(ctx context.Context, habitID uuid.UUID, start, end entity.Date) ([]*entity.HabitRecord, error) {
	var recordMs []*model.HabitRecordModel
	err := repo.db.WithContext(ctx).
		Where("habit_id = ? AND date >= ? AND date <= ?", habitID, start.Time(), end.Time()).
		Order("date ASC").
		Find(&recordMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list habit records")
	}

	records := make([]*entity.HabitRecord, len(recordMs))
	for i, recordM := range recordMs {
		records[i] = toHabitRecordDomain(recordM)
	}

	return records, nil
}

// Update changes the date and status of a record. Moving onto a day that already has a record is a duplicate.
func (repo *habitRecordRepository) Update(ctx context.Context, record *entity.HabitRecord) error {
	result := repo.db.WithContext(ctx).
		Model(&model.HabitRecordModel{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{
			"date":   record.Date.Time(),
			"status": record.Status,
		})
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateHabitRecord
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update habit record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrHabitRecordNotFound
	}

	return nil
}

func (repo *habitRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.HabitRecordModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete habit record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrHabitRecordNotFound
	}

	return nil
}

func (repo *habitRecordRepository) DeleteByHabit(ctx context.Context, habitID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("habit_id = ?", habitID).Delete(&model.HabitRecordModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete habit records")
	}

	return nil
}

// --- Mapper Functions ---

func toHabitRecordDomain(data *model.HabitRecordModel) *entity.HabitRecord {
	if data == nil {
		return nil
	}

	return &entity.HabitRecord{
		ID:        data.ID,
		HabitID:   data.HabitID,
		Date:      entity.DateOf(data.Date),
		Status:    data.Status,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromHabitRecordDomain(data *entity.HabitRecord) *model.HabitRecordModel {
	if data == nil {
		return nil
	}

	return &model.HabitRecordModel{
		ID:      data.ID,
		HabitID: data.HabitID,
		Date:    data.Date.Time(),
		Status:  data.Status,
	}
}
