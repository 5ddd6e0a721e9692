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

type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository is the constructor for goalRepository.
func NewGoalRepository(db *gorm.DB) repository.GoalRepository {
	return &goalRepository{db: db}
}

func (repo *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	goalM := fromGoalDomain(goal)

	if err := repo.db.WithContext(ctx).Create(goalM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidGoalTarget
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrHabitNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create goal")
	}

	goal.ID = goalM.ID
	goal.CreatedAt = goalM.CreatedAt

	return nil
}

func (repo *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var goalM model.GoalModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&goalM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGoalNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find goal")
	}

	return toGoalDomain(&goalM), nil
}

func (repo *goalRepository) FindByHabit(ctx context.Context, habitID uuid.UUID) ([]*entity.Goal, error) {
	var goalMs []*model.GoalModel
	err := repo.db.WithContext(ctx).
		Where("habit_id = ?", habitID).
		Order("created_at ASC").
		Find(&goalMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list goals")
	}

	goals := make([]*entity.Goal, len(goalMs))
	for i, goalM := range goalMs {
		goals[i] = toGoalDomain(goalM)
	}

	return goals, nil
}

func (repo *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.GoalModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete goal")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGoalNotFound
	}

	return nil
}

func (repo *goalRepository) DeleteByHabit(ctx context.Context, habitID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("habit_id = ?", habitID).Delete(&model.GoalModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete goals")
	}

	return nil
}

// --- Mapper Functions ---

func toGoalDomain(data *model.GoalModel) *entity.Goal {
	if data == nil {
		return nil
	}

	return &entity.Goal{
		ID:          data.ID,
		HabitID:     data.HabitID,
		TargetCount: data.TargetCount,
		StartDate:   entity.DateOf(data.StartDate),
		EndDate:     entity.DateOf(data.EndDate),
		CreatedAt:   data.CreatedAt,
	}
}

func fromGoalDomain(data *entity.Goal) *model.GoalModel {
	if data == nil {
		return nil
	}

	return &model.GoalModel{
		ID:          data.ID,
		HabitID:     data.HabitID,
		TargetCount: data.TargetCount,
		StartDate:   data.StartDate.Time(),
		EndDate:     data.EndDate.Time(),
	}
}
