package notification

import (
	"context"
	"log/slog"

	"habitrack/config"
	deliverycontext "habitrack/internal/delivery/context"
	"habitrack/internal/domain/service"
)

// logVerificationSender records issued verification codes in the log. No mail
// transport is configured, so in debug mode the code itself is logged for
// local sign-up; otherwise only the address is.
type logVerificationSender struct {
	logger    *slog.Logger
	logsCodes bool
}

// NewLogVerificationSender creates a VerificationSender that writes to the log.
func NewLogVerificationSender(cfg *config.Config, logger *slog.Logger) service.VerificationSender {
	return &logVerificationSender{
		logger:    logger,
		logsCodes: cfg.Env.Debug,
	}
}

func (s *logVerificationSender) SendVerificationCode(ctx context.Context, email, code string) error {
	attrs := []slog.Attr{slog.String("email", email)}
	if s.logsCodes {
		attrs = append(attrs, slog.String("code", code))
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).LogAttrs(ctx, slog.LevelInfo, "Verification code issued", attrs...)

	return nil
}
