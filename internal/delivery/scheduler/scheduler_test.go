package scheduler

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"habitrack/config"
	deliverycontext "habitrack/internal/delivery/context"
	"habitrack/internal/domain/entity"
	mockusecase "habitrack/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScheduler_NextTick(t *testing.T) {
	now := time.Date(2024, 6, 1, 7, 29, 40, 500, time.UTC)
	s := newScheduler(nil, discardLogger(), func() time.Time { return now })

	tick, wait := s.nextTick()

	assert.Equal(t, time.Date(2024, 6, 1, 7, 30, 0, 0, time.UTC), tick)
	assert.Equal(t, 19*time.Second+999999500*time.Nanosecond, wait)
}

func TestScheduler_RunOnce(t *testing.T) {
	tick := time.Date(2024, 6, 1, 7, 30, 0, 0, time.UTC)

	t.Run("passes the tick and a request-scoped context", func(t *testing.T) {
		reminderUC := mockusecase.NewMockReminderUsecase(t)
		reminderUC.EXPECT().DispatchDue(mock.Anything, tick).
			RunAndReturn(func(ctx context.Context, _ time.Time) (*entity.DispatchReport, error) {
				assert.NotEmpty(t, deliverycontext.GetRequestIDFromContext(ctx))
				pass, ok := deliverycontext.GetDispatchPass(ctx)
				assert.True(t, ok)
				assert.Equal(t, deliverycontext.TriggerScheduler, pass.Trigger)
				assert.Equal(t, tick, pass.Tick)
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline)

				return &entity.DispatchReport{RunAt: tick}, nil
			})

		s := newScheduler(reminderUC, discardLogger(), time.Now)
		s.RunOnce(context.Background(), tick)
	})

	t.Run("storage failure is logged, not raised", func(t *testing.T) {
		reminderUC := mockusecase.NewMockReminderUsecase(t)
		reminderUC.EXPECT().DispatchDue(mock.Anything, tick).Return(nil, errors.New("connection refused"))

		s := newScheduler(reminderUC, discardLogger(), time.Now)
		assert.NotPanics(t, func() { s.RunOnce(context.Background(), tick) })
	})
}

func TestScheduler_StartStop(t *testing.T) {
	boundary := time.Date(2024, 6, 1, 7, 30, 0, 0, time.UTC)

	// Every reading of the clock lands 5ms before the next minute.
	var calls atomic.Int64
	clock := func() time.Time {
		n := calls.Add(1) - 1

		return boundary.Add(time.Duration(n)*time.Minute - 5*time.Millisecond)
	}

	ticks := make(chan time.Time, 16)
	reminderUC := mockusecase.NewMockReminderUsecase(t)
	reminderUC.EXPECT().DispatchDue(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, tick time.Time) (*entity.DispatchReport, error) {
			ticks <- tick

			return &entity.DispatchReport{RunAt: tick}, nil
		})

	s := newScheduler(reminderUC, discardLogger(), clock)
	require.NoError(t, s.Start(context.Background()))
	require.Error(t, s.Start(context.Background()), "second start must fail")

	first := receiveTick(t, ticks)
	second := receiveTick(t, ticks)

	require.NoError(t, s.Stop(context.Background()))
	require.NoError(t, s.Stop(context.Background()), "stop is idempotent")

	assert.Equal(t, boundary, first)
	assert.True(t, second.After(first))
	assert.Zero(t, second.Second())
	assert.Zero(t, second.Nanosecond())
}

func TestNew_Disabled(t *testing.T) {
	cfg := &config.Config{Reminder: &config.ReminderConfig{SchedulerEnabled: false}}
	lc := fxtest.NewLifecycle(t)
	reminderUC := mockusecase.NewMockReminderUsecase(t)

	s := New(Params{Lc: lc, Config: cfg, ReminderUC: reminderUC, Logger: discardLogger()})
	require.NotNil(t, s)

	lc.RequireStart()
	lc.RequireStop()

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.False(t, s.running)
}

func TestNew_EnabledFollowsLifecycle(t *testing.T) {
	cfg := &config.Config{Reminder: &config.ReminderConfig{SchedulerEnabled: true}}
	lc := fxtest.NewLifecycle(t)
	reminderUC := mockusecase.NewMockReminderUsecase(t)
	reminderUC.EXPECT().DispatchDue(mock.Anything, mock.Anything).Return(&entity.DispatchReport{}, nil).Maybe()

	s := New(Params{Lc: lc, Config: cfg, ReminderUC: reminderUC, Logger: discardLogger()})

	lc.RequireStart()
	s.mu.Lock()
	running := s.running
	s.mu.Unlock()
	assert.True(t, running)

	lc.RequireStop()
	s.mu.Lock()
	running = s.running
	s.mu.Unlock()
	assert.False(t, running)
}

func receiveTick(t *testing.T, ticks <-chan time.Time) time.Time {
	t.Helper()

	select {
	case tick := <-ticks:
		return tick
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not fire")

		return time.Time{}
	}
}
