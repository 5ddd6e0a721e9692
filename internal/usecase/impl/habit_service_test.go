package impl

import (
	"context"
	"strings"
	"testing"

	"habitrack/internal/domain/entity"
	domainerrors "habitrack/internal/domain/errors"
	mockRepo "habitrack/internal/mocks/repository"
	"habitrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type habitServiceFixtures struct {
	service   usecase.HabitUsecase
	txManager *mockRepo.MockTransactionManager
	habitRepo *mockRepo.MockHabitRepository
}

func createTestHabitService(t *testing.T) habitServiceFixtures {
	f := habitServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		habitRepo: mockRepo.NewMockHabitRepository(t),
	}
	f.service = NewHabitService(HabitServiceParams{
		TxManager: f.txManager,
		HabitRepo: f.habitRepo,
		Logger:    newDiscardLogger(),
	})

	return f
}

func TestHabitService_CreateHabit(t *testing.T) {
	f := createTestHabitService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.habitRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(h *entity.Habit) bool {
			return h.UserID == userID && h.Name == "Meditate" && h.Description == "10 minutes"
		})).
		Run(func(_ context.Context, h *entity.Habit) { h.ID = uuid.New() }).
		Return(nil)

	habit, err := f.service.CreateHabit(ctx, userID, &usecase.CreateHabitInput{Name: "  Meditate ", Description: "10 minutes "})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, habit.ID)
}

func TestHabitService_CreateHabit_InvalidName(t *testing.T) {
	f := createTestHabitService(t)

	for _, name := range []string{"", "   ", strings.Repeat("x", 101)} {
		_, err := f.service.CreateHabit(context.Background(), uuid.New(), &usecase.CreateHabitInput{Name: name})
		require.Error(t, err)

		appErr, ok := err.(domainerrors.AppError)
		require.True(t, ok)
		assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
	}
}

func TestHabitService_GetHabit_Ownership(t *testing.T) {
	f := createTestHabitService(t)
	ctx := context.Background()
	habit := ownedHabit(uuid.New())

	f.habitRepo.EXPECT().FindByID(ctx, habit.ID).Return(habit, nil)

	_, err := f.service.GetHabit(ctx, uuid.New(), habit.ID)

	assert.ErrorIs(t, err, domainerrors.ErrHabitOwnershipViolation)
}

func TestHabitService_UpdateHabit(t *testing.T) {
	f := createTestHabitService(t)
	ctx := context.Background()
	userID := uuid.New()
	habit := ownedHabit(userID)
	name := "Read fiction"

	f.habitRepo.EXPECT().FindByID(ctx, habit.ID).Return(habit, nil)
	f.habitRepo.EXPECT().Update(ctx, habit).Return(nil)

	updated, err := f.service.UpdateHabit(ctx, userID, habit.ID, &usecase.UpdateHabitInput{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
}

func TestHabitService_DeleteHabit_Cascades(t *testing.T) {
	f := createTestHabitService(t)
	ctx := context.Background()
	userID := uuid.New()
	habit := ownedHabit(userID)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txHabitRepo := mockRepo.NewMockHabitRepository(t)
	txRecordRepo := mockRepo.NewMockHabitRecordRepository(t)
	txGoalRepo := mockRepo.NewMockGoalRepository(t)
	txNotificationRepo := mockRepo.NewMockNotificationRepository(t)

	expectTx(f.txManager, factory)
	factory.EXPECT().HabitRepo().Return(txHabitRepo)
	factory.EXPECT().HabitRecordRepo().Return(txRecordRepo)
	factory.EXPECT().GoalRepo().Return(txGoalRepo)
	factory.EXPECT().NotificationRepo().Return(txNotificationRepo)

	txHabitRepo.EXPECT().FindByID(ctx, habit.ID).Return(habit, nil)
	txNotificationRepo.EXPECT().DeleteByHabit(ctx, habit.ID).Return(nil)
	txGoalRepo.EXPECT().DeleteByHabit(ctx, habit.ID).Return(nil)
	txRecordRepo.EXPECT().DeleteByHabit(ctx, habit.ID).Return(nil)
	txHabitRepo.EXPECT().Delete(ctx, habit.ID).Return(nil)

	require.NoError(t, f.service.DeleteHabit(ctx, userID, habit.ID))
}

func TestHabitService_DeleteHabit_StopsOnFailure(t *testing.T) {
	f := createTestHabitService(t)
	ctx := context.Background()
	userID := uuid.New()
	habit := ownedHabit(userID)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txHabitRepo := mockRepo.NewMockHabitRepository(t)
	txNotificationRepo := mockRepo.NewMockNotificationRepository(t)

	expectTx(f.txManager, factory)
	factory.EXPECT().HabitRepo().Return(txHabitRepo)
	factory.EXPECT().NotificationRepo().Return(txNotificationRepo)
	txHabitRepo.EXPECT().FindByID(ctx, habit.ID).Return(habit, nil)
	txNotificationRepo.EXPECT().DeleteByHabit(ctx, habit.ID).Return(errors.New("disk full"))

	err := f.service.DeleteHabit(ctx, userID, habit.ID)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
