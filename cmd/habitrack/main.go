package main

import (
	"context"
	"log/slog"
	"os"

	"habitrack/config"
	"habitrack/internal/delivery"
	"habitrack/internal/delivery/api"
	"habitrack/internal/delivery/api/middleware"
	"habitrack/internal/delivery/api/router/handler"
	"habitrack/internal/delivery/scheduler"
	"habitrack/internal/infra/auth"
	logs "habitrack/internal/infra/log"
	"habitrack/internal/infra/notification"
	"habitrack/internal/infra/persistence/postgres"
	"habitrack/internal/infra/pubsub"
	"habitrack/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
			registerScheduler,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewHabitRepository,
			postgres.NewHabitRecordRepository,
			postgres.NewGoalRepository,
			postgres.NewNotificationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			notification.NewFirebaseService,
			notification.NewLogVerificationSender,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProfileService,
			impl.NewHabitService,
			impl.NewRecordService,
			impl.NewGoalService,
			impl.NewNotificationService,
			impl.NewReminderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewHabitHandler,
			handler.NewRecordHandler,
			handler.NewGoalHandler,
			handler.NewNotificationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			scheduler.New,
		),
	)
}

// registerScheduler makes fx build the scheduler so its lifecycle hooks are registered.
func registerScheduler(*scheduler.Scheduler) {}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
