// Package notification delivers reminder pushes through Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"
	"strings"

	"habitrack/config"
	"habitrack/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// messagingClient is the subset of *messaging.Client used for delivery.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messagingClient
	logger *slog.Logger
}

// NewFirebaseService creates a Firebase notification service from the firebase config section.
// Without credentials it falls back to a service that logs pushes instead of sending them.
func NewFirebaseService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil || strings.TrimSpace(cfg.Firebase.CredentialsPath) == "" {
		logger.Warn("Firebase not configured, reminders will be logged instead of pushed")

		return &logOnlyService{logger: logger}, nil
	}

	var firebaseCfg *firebase.Config
	if cfg.Firebase.ProjectID != "" {
		firebaseCfg = &firebase.Config{ProjectID: cfg.Firebase.ProjectID}
	}

	app, err := firebase.NewApp(ctx, firebaseCfg, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFirebaseService(client, logger), nil
}

func newFirebaseService(client messagingClient, logger *slog.Logger) *firebaseService {
	return &firebaseService{
		client: client,
		logger: logger,
	}
}

// SendSingleNotification sends a push notification to a single device token
func (s *firebaseService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		if messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err) {
			return errors.Wrap(service.ErrInvalidPushToken, err.Error())
		}

		return errors.Wrap(err, "failed to send notification")
	}

	s.logger.Debug("FCM message sent", slog.String("message_id", messageID))

	return nil
}

// logOnlyService stands in for FCM in local development.
type logOnlyService struct {
	logger *slog.Logger
}

func (s *logOnlyService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	s.logger.InfoContext(ctx, "Push notification (not sent, Firebase disabled)",
		slog.String("token_prefix", token[:min(10, len(token))]),
		slog.String("title", title),
		slog.String("body", body),
		slog.Any("data", data),
	)

	return nil
}
