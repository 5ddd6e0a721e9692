package impl

import (
	"context"
	"testing"
	"time"

	"habitrack/internal/domain/entity"
	domainerrors "habitrack/internal/domain/errors"
	mockRepo "habitrack/internal/mocks/repository"
	"habitrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type goalServiceFixtures struct {
	service    usecase.GoalUsecase
	habitRepo  *mockRepo.MockHabitRepository
	goalRepo   *mockRepo.MockGoalRepository
	recordRepo *mockRepo.MockHabitRecordRepository
}

func createTestGoalService(t *testing.T) goalServiceFixtures {
	f := goalServiceFixtures{
		habitRepo:  mockRepo.NewMockHabitRepository(t),
		goalRepo:   mockRepo.NewMockGoalRepository(t),
		recordRepo: mockRepo.NewMockHabitRecordRepository(t),
	}
	f.service = NewGoalService(GoalServiceParams{
		HabitRepo:  f.habitRepo,
		GoalRepo:   f.goalRepo,
		RecordRepo: f.recordRepo,
		Logger:     newDiscardLogger(),
	})

	return f
}

func june(day int) entity.Date {
	return entity.NewDate(2025, time.June, day)
}

func TestGoalService_CreateGoal_EvaluatesProgress(t *testing.T) {
	f := createTestGoalService(t)
	ctx := context.Background()
	userID := uuid.New()
	habit := ownedHabit(userID)
	input := &usecase.CreateGoalInput{TargetCount: 3, StartDate: june(1), EndDate: june(7)}

	f.habitRepo.EXPECT().FindByID(ctx, habit.ID).Return(habit, nil)
	f.goalRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Goal")).
		Run(func(_ context.Context, g *entity.Goal) { g.ID = uuid.New() }).
		Return(nil)
	f.recordRepo.EXPECT().
		FindByHabitAndDateRange(ctx, habit.ID, june(1), june(7)).
		Return([]*entity.HabitRecord{
			{Date: june(1), Status: true},
			{Date: june(1), Status: true},
			{Date: june(3), Status: true},
			{Date: june(5), Status: false},
		}, nil)

	goal, err := f.service.CreateGoal(ctx, userID, habit.ID, input)

	require.NoError(t, err)
	assert.Equal(t, 2, goal.CurrentCount)
	assert.False(t, goal.IsAchieved)
	assert.Equal(t, 3, goal.TargetCount)
}

func TestGoalService_CreateGoal_Validation(t *testing.T) {
	f := createTestGoalService(t)
	ctx := context.Background()

	_, err := f.service.CreateGoal(ctx, uuid.New(), uuid.New(), &usecase.CreateGoalInput{TargetCount: 0, StartDate: june(1), EndDate: june(7)})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidGoalTarget)

	_, err = f.service.CreateGoal(ctx, uuid.New(), uuid.New(), &usecase.CreateGoalInput{TargetCount: 1, StartDate: june(7), EndDate: june(1)})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidGoalWindow)
}

func TestGoalService_ListGoals(t *testing.T) {
	f := createTestGoalService(t)
	ctx := context.Background()
	userID := uuid.New()
	habit := ownedHabit(userID)
	weekly := &entity.Goal{ID: uuid.New(), HabitID: habit.ID, TargetCount: 1, StartDate: june(1), EndDate: june(7)}
	single := &entity.Goal{ID: uuid.New(), HabitID: habit.ID, TargetCount: 1, StartDate: june(10), EndDate: june(10)}

	f.habitRepo.EXPECT().FindByID(ctx, habit.ID).Return(habit, nil)
	f.goalRepo.EXPECT().FindByHabit(ctx, habit.ID).Return([]*entity.Goal{weekly, single}, nil)
	f.recordRepo.EXPECT().
		FindByHabitAndDateRange(ctx, habit.ID, june(1), june(7)).
		Return([]*entity.HabitRecord{{Date: june(7), Status: true}}, nil)
	f.recordRepo.EXPECT().
		FindByHabitAndDateRange(ctx, habit.ID, june(10), june(10)).
		Return(nil, nil)

	goals, err := f.service.ListGoals(ctx, userID, habit.ID)

	require.NoError(t, err)
	require.Len(t, goals, 2)
	assert.True(t, goals[0].IsAchieved)
	assert.Equal(t, 0, goals[1].CurrentCount)
	assert.False(t, goals[1].IsAchieved)
}

func TestGoalService_GetGoal_WrongHabit(t *testing.T) {
	f := createTestGoalService(t)
	ctx := context.Background()
	userID := uuid.New()
	habit := ownedHabit(userID)
	goal := &entity.Goal{ID: uuid.New(), HabitID: uuid.New()}

	f.habitRepo.EXPECT().FindByID(ctx, habit.ID).Return(habit, nil)
	f.goalRepo.EXPECT().FindByID(ctx, goal.ID).Return(goal, nil)

	_, err := f.service.GetGoal(ctx, userID, habit.ID, goal.ID)

	assert.ErrorIs(t, err, domainerrors.ErrGoalNotFound)
}

func TestGoalService_DeleteGoal(t *testing.T) {
	f := createTestGoalService(t)
	ctx := context.Background()
	userID := uuid.New()
	habit := ownedHabit(userID)
	goal := &entity.Goal{ID: uuid.New(), HabitID: habit.ID}

	f.habitRepo.EXPECT().FindByID(ctx, habit.ID).Return(habit, nil)
	f.goalRepo.EXPECT().FindByID(ctx, goal.ID).Return(goal, nil)
	f.goalRepo.EXPECT().Delete(ctx, goal.ID).Return(nil)

	require.NoError(t, f.service.DeleteGoal(ctx, userID, habit.ID, goal.ID))
}
