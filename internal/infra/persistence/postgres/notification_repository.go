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

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	// Select("*") keeps a false Enabled in the INSERT.
	if err := repo.db.WithContext(ctx).Select("*").Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrHabitNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt
	notification.UpdatedAt = notificationM.UpdatedAt

	return nil
}

func (repo *notificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find notification")
	}

	return toNotificationDomain(&notificationM)
}

func (repo *notificationRepository) FindByHabit(ctx context.Context, habitID uuid.UUID) ([]*entity.Notification, error) {
	var notificationMs []*model.NotificationModel
	err := repo.db.WithContext(ctx).
		Where("habit_id = ?", habitID).
		Order("remind_at ASC").
		Find(&notificationMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list notifications")
	}

	return toNotificationDomains(notificationMs)
}

func (repo *notificationRepository) Update(ctx context.Context, notification *entity.Notification) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", notification.ID).
		Updates(map[string]any{
			"remind_at": notification.Time.String(),
			"enabled":   notification.Enabled,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update notification")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

func (repo *notificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.NotificationModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete notification")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

func (repo *notificationRepository) DeleteByHabit(ctx context.Context, habitID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("habit_id = ?", habitID).Delete(&model.NotificationModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete notifications")
	}

	return nil
}

// FindEnabledByTimeOfDay returns the enabled notifications due at t. Order is unspecified.
func (repo *notificationRepository) FindEnabledByTimeOfDay(ctx context.Context, t entity.TimeOfDay) ([]*entity.Notification, error) {
	var notificationMs []*model.NotificationModel
	err := repo.db.WithContext(withQueryName(ctx, queryDueReminders)).
		Where("remind_at = ? AND enabled = ?", t.String(), true).
		Find(&notificationMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query due notifications")
	}

	return toNotificationDomains(notificationMs)
}

// --- Mapper Functions ---

func toNotificationDomain(data *model.NotificationModel) (*entity.Notification, error) {
	if data == nil {
		return nil, nil
	}

	remindAt, err := entity.ParseTimeOfDay(data.RemindAt)
	if err != nil {
		return nil, errors.Wrapf(err, "notification %s has malformed remind_at", data.ID)
	}

	return &entity.Notification{
		ID:        data.ID,
		UserID:    data.UserID,
		HabitID:   data.HabitID,
		Time:      remindAt,
		Enabled:   data.Enabled,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}

func toNotificationDomains(data []*model.NotificationModel) ([]*entity.Notification, error) {
	notifications := make([]*entity.Notification, 0, len(data))
	for _, notificationM := range data {
		notification, err := toNotificationDomain(notificationM)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, notification)
	}

	return notifications, nil
}

func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:       data.ID,
		UserID:   data.UserID,
		HabitID:  data.HabitID,
		RemindAt: data.Time.String(),
		Enabled:  data.Enabled,
	}
}
