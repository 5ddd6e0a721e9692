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

type habitRepository struct {
	db *gorm.DB
}

// NewHabitRepository is the constructor for habitRepository.
func NewHabitRepository(db *gorm.DB) repository.HabitRepository {
	return &habitRepository{db: db}
}

func (repo *habitRepository) Create(ctx context.Context, habit *entity.Habit) error {
	habitM := fromHabitDomain(habit)

	if err := repo.db.WithContext(ctx).Create(habitM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create habit")
	}

	habit.ID = habitM.ID
	habit.CreatedAt = habitM.CreatedAt
	habit.UpdatedAt = habitM.UpdatedAt

	return nil
}

func (repo *habitRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	var habitM model.HabitModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&habitM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHabitNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find habit")
	}

	return toHabitDomain(&habitM), nil
}

func (repo *habitRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Habit, error) {
	var habitMs []*model.HabitModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&habitMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list habits")
	}

	habits := make([]*entity.Habit, len(habitMs))
	for i, habitM := range habitMs {
		habits[i] = toHabitDomain(habitM)
	}

	return habits, nil
}

func (repo *habitRepository) Update(ctx context.Context, habit *entity.Habit) error {
	result := repo.db.WithContext(ctx).
		Model(&model.HabitModel{}).
		Where("id = ?", habit.ID).
		Updates(map[string]any{
			"name":        habit.Name,
			"description": habit.Description,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update habit")
	}
	if result.RowsAffected == 0 {
		return repository.ErrHabitNotFound
	}

	return nil
}

func (repo *habitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.HabitModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete habit")
	}
	if result.RowsAffected == 0 {
		return repository.ErrHabitNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toHabitDomain(data *model.HabitModel) *entity.Habit {
	if data == nil {
		return nil
	}

	return &entity.Habit{
		ID:          data.ID,
		UserID:      data.UserID,
		Name:        data.Name,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromHabitDomain(data *entity.Habit) *model.HabitModel {
	if data == nil {
		return nil
	}

	return &model.HabitModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Name:        data.Name,
		Description: data.Description,
	}
}
