package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"habitrack/config"
	deliverycontext "habitrack/internal/delivery/context"
	"habitrack/internal/domain/constants"
	"habitrack/internal/domain/entity"
	"habitrack/internal/domain/repository"
	"habitrack/internal/domain/service"
	"habitrack/internal/errors"
	"habitrack/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// reminderService runs dispatch passes. It only reads storage.
type reminderService struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	habitRepo        repository.HabitRepository
	pusher           service.NotificationService
	publisher        service.EventPublisher
	location         *time.Location
	title            string
	bodyTemplate     string
	sendTimeout      time.Duration
	logger           *slog.Logger
}

// ReminderServiceParams holds dependencies for ReminderService, injected by Fx.
type ReminderServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	UserRepo         repository.UserRepository
	HabitRepo        repository.HabitRepository
	Pusher           service.NotificationService
	Publisher        service.EventPublisher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewReminderService creates the reminder dispatcher.
func NewReminderService(params ReminderServiceParams) (usecase.ReminderUsecase, error) {
	reminderCfg := params.Config.Reminder
	if reminderCfg == nil {
		return nil, errors.New("reminder config is required")
	}

	location, err := reminderCfg.ReminderLocation()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if err := reminderCfg.ValidateBodyTemplate(); err != nil {
		return nil, errors.WithStack(err)
	}

	return &reminderService{
		notificationRepo: params.NotificationRepo,
		userRepo:         params.UserRepo,
		habitRepo:        params.HabitRepo,
		pusher:           params.Pusher,
		publisher:        params.Publisher,
		location:         location,
		title:            reminderCfg.Title,
		bodyTemplate:     reminderCfg.BodyTemplate,
		sendTimeout:      reminderCfg.SendTimeout,
		logger:           params.Logger,
	}, nil
}

// dispatchPass caches lookups shared by reminders of one pass.
type dispatchPass struct {
	users  map[uuid.UUID]*entity.User
	habits map[uuid.UUID]*entity.Habit
}

// DispatchDue sends the reminders due at now's wall-clock minute.
func (s *reminderService) DispatchDue(ctx context.Context, now time.Time) (*entity.DispatchReport, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	now = now.In(s.location)
	timeOfDay := entity.TimeOfDayOf(now)

	notifications, err := s.notificationRepo.FindEnabledByTimeOfDay(ctx, timeOfDay)
	if err != nil {
		logger.Error("Failed to load due reminders", slog.String("timeOfDay", timeOfDay.String()), slog.Any("error", err))

		return nil, errors.Retryable(err, "failed to load due reminders")
	}

	report := &entity.DispatchReport{
		RunAt:     now,
		TimeOfDay: timeOfDay,
		Outcomes:  make([]*entity.DispatchOutcome, 0, len(notifications)),
	}
	pass := &dispatchPass{
		users:  make(map[uuid.UUID]*entity.User),
		habits: make(map[uuid.UUID]*entity.Habit),
	}
	for _, notification := range notifications {
		report.Outcomes = append(report.Outcomes, s.dispatchOne(ctx, logger, pass, notification))
	}

	logger.Info("Reminder dispatch pass completed",
		slog.String("timeOfDay", timeOfDay.String()),
		slog.Int("matched", len(report.Outcomes)),
		slog.Int("sent", report.Sent()),
		slog.Int("skipped", report.Skipped()),
		slog.Int("failed", report.Failed()),
	)

	s.publishReport(ctx, logger, report)

	return report, nil
}

// dispatchOne never returns an error; every problem becomes a failed outcome.
func (s *reminderService) dispatchOne(ctx context.Context, logger *slog.Logger, pass *dispatchPass, notification *entity.Notification) *entity.DispatchOutcome {
	outcome := &entity.DispatchOutcome{
		NotificationID: notification.ID,
		UserID:         notification.UserID,
		HabitID:        notification.HabitID,
	}
	fail := func(reason string, err error) *entity.DispatchOutcome {
		outcome.Status = entity.DispatchStatusFailed
		outcome.Reason = reason
		logger.Warn("Reminder not delivered",
			slog.Any("notificationID", notification.ID),
			slog.Any("userID", notification.UserID),
			slog.String("reason", reason),
			slog.Any("error", err),
		)

		return outcome
	}

	user, err := s.lookupUser(ctx, pass, notification.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return fail("user not found", err)
		}

		return fail("user lookup failed: "+err.Error(), err)
	}

	token, ok := user.PushToken()
	if !ok {
		outcome.Status = entity.DispatchStatusSkippedNoToken
		logger.Debug("Reminder skipped, user has no push token",
			slog.Any("notificationID", notification.ID),
			slog.Any("userID", user.ID),
		)

		return outcome
	}

	habit, err := s.lookupHabit(ctx, pass, notification.HabitID)
	if err != nil {
		if errors.Is(err, repository.ErrHabitNotFound) {
			return fail("habit not found", err)
		}

		return fail("habit lookup failed: "+err.Error(), err)
	}

	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()

	data := map[string]string{
		constants.PushDataType:           constants.PushTypeHabitReminder,
		constants.PushDataNotificationID: notification.ID.String(),
		constants.PushDataHabitID:        habit.ID.String(),
	}
	if err := s.pusher.SendSingleNotification(sendCtx, token, s.title, s.renderBody(habit), data); err != nil {
		if errors.Is(err, service.ErrInvalidPushToken) {
			return fail(service.ErrInvalidPushToken.Error(), err)
		}

		return fail(err.Error(), err)
	}

	outcome.Status = entity.DispatchStatusSent

	return outcome
}

func (s *reminderService) lookupUser(ctx context.Context, pass *dispatchPass, userID uuid.UUID) (*entity.User, error) {
	if user, ok := pass.users[userID]; ok {
		return user, nil
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	pass.users[userID] = user

	return user, nil
}

func (s *reminderService) lookupHabit(ctx context.Context, pass *dispatchPass, habitID uuid.UUID) (*entity.Habit, error) {
	if habit, ok := pass.habits[habitID]; ok {
		return habit, nil
	}

	habit, err := s.habitRepo.FindByID(ctx, habitID)
	if err != nil {
		return nil, err
	}
	pass.habits[habitID] = habit

	return habit, nil
}

func (s *reminderService) renderBody(habit *entity.Habit) string {
	return fmt.Sprintf(s.bodyTemplate, habit.Name)
}

// publishReport emits the pass summary. Failures are logged only.
func (s *reminderService) publishReport(ctx context.Context, logger *slog.Logger, report *entity.DispatchReport) {
	if s.publisher == nil {
		return
	}

	if err := s.publisher.PublishDispatchReport(ctx, toDispatchReportEvent(ctx, report)); err != nil {
		logger.Error("Failed to publish dispatch report", slog.Any("error", err))
	}
}

func toDispatchReportEvent(ctx context.Context, report *entity.DispatchReport) *service.DispatchReportEvent {
	outcomes := make([]service.DispatchOutcomeEvent, 0, len(report.Outcomes))
	for _, outcome := range report.Outcomes {
		outcomes = append(outcomes, service.DispatchOutcomeEvent{
			NotificationID: outcome.NotificationID.String(),
			UserID:         outcome.UserID.String(),
			HabitID:        outcome.HabitID.String(),
			Status:         string(outcome.Status),
			Reason:         outcome.Reason,
		})
	}

	return &service.DispatchReportEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		RunAt:     report.RunAt,
		TimeOfDay: report.TimeOfDay.String(),
		Matched:   len(report.Outcomes),
		Sent:      report.Sent(),
		Skipped:   report.Skipped(),
		Failed:    report.Failed(),
		Outcomes:  outcomes,
	}
}
