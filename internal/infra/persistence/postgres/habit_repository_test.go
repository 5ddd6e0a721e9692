package postgres

import (
	"context"
	"testing"
	"time"

	"habitrack/internal/domain/entity"
	"habitrack/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestHabit(t *testing.T, db *gorm.DB) (*entity.User, *entity.Habit) {
	t.Helper()

	user := createTestUser(t, NewUserRepository(db), "habit-owner@example.com")
	habit := &entity.Habit{UserID: user.ID, Name: "Read", Description: "20 pages"}
	require.NoError(t, NewHabitRepository(db).Create(context.Background(), habit))

	return user, habit
}

func TestHabitRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewHabitRepository(db)
	ctx := context.Background()

	user, habit := createTestHabit(t, db)

	second := &entity.Habit{UserID: user.ID, Name: "Run"}
	require.NoError(t, repo.Create(ctx, second))

	habits, err := repo.FindByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, habits, 2)

	habit.Name = "Read more"
	require.NoError(t, repo.Update(ctx, habit))

	found, err := repo.FindByID(ctx, habit.ID)
	require.NoError(t, err)
	assert.Equal(t, "Read more", found.Name)
	assert.Equal(t, "20 pages", found.Description)

	require.NoError(t, repo.Delete(ctx, habit.ID))
	_, err = repo.FindByID(ctx, habit.ID)
	assert.ErrorIs(t, err, repository.ErrHabitNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, habit.ID), repository.ErrHabitNotFound)
	assert.ErrorIs(t, repo.Update(ctx, &entity.Habit{ID: uuid.New(), Name: "x"}), repository.ErrHabitNotFound)
}

func TestHabitRecordRepository_DuplicateDate(t *testing.T) {
	db := newTestDB(t)
	repo := NewHabitRecordRepository(db)
	ctx := context.Background()

	_, habit := createTestHabit(t, db)
	day := entity.NewDate(2024, time.January, 2)

	require.NoError(t, repo.Create(ctx, &entity.HabitRecord{HabitID: habit.ID, Date: day, Status: true}))

	err := repo.Create(ctx, &entity.HabitRecord{HabitID: habit.ID, Date: day, Status: false})
	assert.ErrorIs(t, err, repository.ErrDuplicateHabitRecord)
}

func TestHabitRecordRepository_FindByHabitAndDateRange(t *testing.T) {
	db := newTestDB(t)
	repo := NewHabitRecordRepository(db)
	ctx := context.Background()

	_, habit := createTestHabit(t, db)

	// Inserted out of order to check the ascending sort.
	for _, day := range []int{5, 1, 3, 10} {
		require.NoError(t, repo.Create(ctx, &entity.HabitRecord{
			HabitID: habit.ID,
			Date:    entity.NewDate(2024, time.January, day),
			Status:  true,
		}))
	}

	records, err := repo.FindByHabitAndDateRange(ctx, habit.ID,
		entity.NewDate(2024, time.January, 1), entity.NewDate(2024, time.January, 5))
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, entity.NewDate(2024, time.January, 1), records[0].Date)
	assert.Equal(t, entity.NewDate(2024, time.January, 3), records[1].Date)
	assert.Equal(t, entity.NewDate(2024, time.January, 5), records[2].Date)

	other, err := repo.FindByHabitAndDateRange(ctx, uuid.New(),
		entity.NewDate(2024, time.January, 1), entity.NewDate(2024, time.January, 31))
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestHabitRecordRepository_UpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewHabitRecordRepository(db)
	ctx := context.Background()

	_, habit := createTestHabit(t, db)
	first := &entity.HabitRecord{HabitID: habit.ID, Date: entity.NewDate(2024, time.March, 1), Status: true}
	second := &entity.HabitRecord{HabitID: habit.ID, Date: entity.NewDate(2024, time.March, 2), Status: true}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	first.Status = false
	require.NoError(t, repo.Update(ctx, first))
	found, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, found.Status)

	second.Date = first.Date
	assert.ErrorIs(t, repo.Update(ctx, second), repository.ErrDuplicateHabitRecord)

	require.NoError(t, repo.Delete(ctx, first.ID))
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), repository.ErrHabitRecordNotFound)

	require.NoError(t, repo.DeleteByHabit(ctx, habit.ID))
	_, err = repo.FindByID(ctx, second.ID)
	assert.ErrorIs(t, err, repository.ErrHabitRecordNotFound)
}

func TestGoalRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewGoalRepository(db)
	ctx := context.Background()

	_, habit := createTestHabit(t, db)
	goal := &entity.Goal{
		HabitID:     habit.ID,
		TargetCount: 3,
		StartDate:   entity.NewDate(2024, time.January, 1),
		EndDate:     entity.NewDate(2024, time.January, 7),
	}
	require.NoError(t, repo.Create(ctx, goal))

	found, err := repo.FindByID(ctx, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, goal.StartDate, found.StartDate)
	assert.Equal(t, goal.EndDate, found.EndDate)
	assert.Equal(t, 3, found.TargetCount)

	goals, err := repo.FindByHabit(ctx, habit.ID)
	require.NoError(t, err)
	assert.Len(t, goals, 1)

	require.NoError(t, repo.Delete(ctx, goal.ID))
	_, err = repo.FindByID(ctx, goal.ID)
	assert.ErrorIs(t, err, repository.ErrGoalNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, goal.ID), repository.ErrGoalNotFound)
}

func TestNotificationRepository_FindEnabledByTimeOfDay(t *testing.T) {
	db := newTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	user, habit := createTestHabit(t, db)
	at := func(h, m int) entity.TimeOfDay {
		tod, err := entity.NewTimeOfDay(h, m)
		require.NoError(t, err)

		return tod
	}

	due := &entity.Notification{UserID: user.ID, HabitID: habit.ID, Time: at(8, 0), Enabled: true}
	disabled := &entity.Notification{UserID: user.ID, HabitID: habit.ID, Time: at(8, 0), Enabled: false}
	later := &entity.Notification{UserID: user.ID, HabitID: habit.ID, Time: at(8, 1), Enabled: true}
	for _, n := range []*entity.Notification{due, disabled, later} {
		require.NoError(t, repo.Create(ctx, n))
	}

	stored, err := repo.FindByID(ctx, disabled.ID)
	require.NoError(t, err)
	assert.False(t, stored.Enabled)

	matches, err := repo.FindEnabledByTimeOfDay(ctx, at(8, 0))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, due.ID, matches[0].ID)
	assert.Equal(t, "08:00", matches[0].Time.String())

	later.Enabled = false
	require.NoError(t, repo.Update(ctx, later))
	matches, err = repo.FindEnabledByTimeOfDay(ctx, at(8, 1))
	require.NoError(t, err)
	assert.Empty(t, matches)

	all, err := repo.FindByHabit(ctx, habit.ID)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	require.NoError(t, repo.DeleteByHabit(ctx, habit.ID))
	all, err = repo.FindByHabit(ctx, habit.ID)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	user := createTestUser(t, NewUserRepository(db), "tx@example.com")

	errBoom := assert.AnError
	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.HabitRepo().Create(ctx, &entity.Habit{UserID: user.ID, Name: "Temp"}); err != nil {
			return err
		}

		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	habits, err := NewHabitRepository(db).FindByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, habits)

	err = tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.HabitRepo().Create(ctx, &entity.Habit{UserID: user.ID, Name: "Kept"})
	})
	require.NoError(t, err)

	habits, err = NewHabitRepository(db).FindByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, habits, 1)
}
