// Package scheduler runs reminder dispatch passes inside the API process.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"habitrack/config"
	deliverycontext "habitrack/internal/delivery/context"
	"habitrack/internal/domain/lifecycle"
	"habitrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// passTimeout keeps a slow pass from running into the next minute's pass.
const passTimeout = 55 * time.Second

// Scheduler fires one dispatch pass at the start of every minute.
// Passes run one after another on a single goroutine and never overlap.
type Scheduler struct {
	reminderUC usecase.ReminderUsecase
	logger     *slog.Logger
	now        func() time.Time

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// Params holds dependencies for the Scheduler, injected by Fx.
type Params struct {
	fx.In

	Lc         fx.Lifecycle
	Config     *config.Config
	ReminderUC usecase.ReminderUsecase
	Logger     *slog.Logger
}

// New creates the scheduler and, when reminder.schedulerEnabled is set, ties
// its start and stop to the application lifecycle.
func New(params Params) *Scheduler {
	s := newScheduler(params.ReminderUC, params.Logger, time.Now)

	if params.Config.Reminder == nil || !params.Config.Reminder.SchedulerEnabled {
		params.Logger.Info("Reminder scheduler disabled")

		return s
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			// The start context expires with the start timeout, so the loop gets its own.
			return s.Start(context.Background())
		},
		OnStop: s.Stop,
	})

	return s
}

func newScheduler(reminderUC usecase.ReminderUsecase, logger *slog.Logger, now func() time.Time) *Scheduler {
	return &Scheduler{
		reminderUC: reminderUC,
		logger:     logger,
		now:        now,
	}
}

// Start launches the loop. It fails if the scheduler is already running.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return errors.New("reminder scheduler already running")
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	s.running = true

	go s.loop(ctx, s.done)

	s.logger.Info("Reminder scheduler started")

	return nil
}

// Stop cancels the loop and waits for an in-flight pass to return.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel, done, running := s.cancel, s.done, s.running
	s.running = false
	s.mu.Unlock()

	if !running {
		return nil
	}

	cancel()

	stopCtx, stopCancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer stopCancel()

	select {
	case <-done:
		s.logger.Info("Reminder scheduler stopped")

		return nil
	case <-stopCtx.Done():
		return errors.Wrap(stopCtx.Err(), "wait for reminder scheduler to stop")
	}
}

func (s *Scheduler) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	for {
		tick, wait := s.nextTick()
		timer := time.NewTimer(wait)

		select {
		case <-ctx.Done():
			timer.Stop()

			return
		case <-timer.C:
			s.RunOnce(ctx, tick)

			if late := s.now().Sub(tick); late >= time.Minute {
				s.logger.Warn("Reminder dispatch pass overran its minute",
					slog.Time("tick", tick),
					slog.Duration("elapsed", late),
				)
			}
		}
	}
}

// nextTick returns the next minute boundary and how long until it.
func (s *Scheduler) nextTick() (time.Time, time.Duration) {
	now := s.now()
	next := now.Truncate(time.Minute).Add(time.Minute)

	return next, next.Sub(now)
}

// RunOnce executes a single dispatch pass for the minute at tick.
// Failures are logged; the next minute is the retry.
func (s *Scheduler) RunOnce(ctx context.Context, tick time.Time) {
	ctx, logger := deliverycontext.WithDispatchPass(ctx, s.logger, deliverycontext.DispatchPass{
		RequestID: uuid.NewString(),
		Tick:      tick,
		Trigger:   deliverycontext.TriggerScheduler,
	})

	passCtx, cancel := context.WithTimeout(ctx, passTimeout)
	defer cancel()

	report, err := s.reminderUC.DispatchDue(passCtx, tick)
	if err != nil {
		logger.Error("Reminder dispatch pass failed",
			slog.Time("tick", tick),
			slog.Any("error", err),
		)

		return
	}

	logger.Debug("Reminder dispatch pass finished",
		slog.Time("tick", tick),
		slog.Int("matched", len(report.Outcomes)),
		slog.Int("sent", report.Sent()),
		slog.Int("skipped", report.Skipped()),
		slog.Int("failed", report.Failed()),
	)
}
