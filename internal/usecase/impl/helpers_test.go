package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"habitrack/config"
	"habitrack/internal/domain/entity"
	"habitrack/internal/domain/repository"
	mockRepo "habitrack/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Reminder: &config.ReminderConfig{
			Location:     "UTC",
			Title:        "Habit reminder",
			BodyTemplate: "Time for %s",
			SendTimeout:  time.Second,
		},
	}
}

// expectTx makes txManager run the callback against factory.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func ownedHabit(userID uuid.UUID) *entity.Habit {
	return &entity.Habit{ID: uuid.New(), UserID: userID, Name: "Read"}
}
