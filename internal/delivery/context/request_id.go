// Package context carries request-scoped values between delivery and the
// layers below it: the request id, a tagged logger, the authenticated user and,
// for reminder work, the dispatch pass being executed.
package context

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyUserID is the echo.Context key of the authenticated user.
	KeyUserID ContextKey = "userID"

	keyDispatchPass ContextKey = "dispatch_pass"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"

	maxRequestIDLength = 128
)

// Dispatch pass triggers.
const (
	TriggerScheduler = "scheduler"
	TriggerWorker    = "worker"
)

// DispatchPass identifies one reminder dispatch pass.
type DispatchPass struct {
	RequestID string
	Tick      time.Time
	Trigger   string
}

func (p DispatchPass) attrs() []any {
	return []any{
		slog.String("request_id", p.RequestID),
		slog.String("trigger", p.Trigger),
		slog.String("tick", p.Tick.Format("15:04")),
	}
}

// GetRequestID returns the request id stored on c, or a fresh one.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// SanitizeRequestID returns id when it is safe to echo back and log, or a new uuid.
func SanitizeRequestID(id string) string {
	if id == "" || len(id) > maxRequestIDLength {
		return uuid.NewString()
	}
	for _, r := range id {
		if r < 0x21 || r > 0x7e {
			return uuid.NewString()
		}
	}

	return id
}

// GetRequestIDFromContext returns the request id of ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// WithRequest stores requestID on ctx together with base tagged by it.
func WithRequest(ctx context.Context, base *slog.Logger, requestID string) (context.Context, *slog.Logger) {
	logger := base.With(slog.String("request_id", requestID))
	ctx = WithRequestID(ctx, requestID)

	return WithLogger(ctx, logger), logger
}

// WithDispatchPass scopes ctx to a reminder dispatch pass. The returned logger
// carries the pass id, trigger and tick.
func WithDispatchPass(ctx context.Context, base *slog.Logger, pass DispatchPass) (context.Context, *slog.Logger) {
	logger := base.With(pass.attrs()...)
	ctx = WithRequestID(ctx, pass.RequestID)
	ctx = context.WithValue(ctx, keyDispatchPass, pass)

	return WithLogger(ctx, logger), logger
}

// GetDispatchPass returns the dispatch pass ctx belongs to, if any.
func GetDispatchPass(ctx context.Context) (DispatchPass, bool) {
	pass, ok := ctx.Value(keyDispatchPass).(DispatchPass)

	return pass, ok
}

// SetUserID records the authenticated user on c and tags the request logger with it.
func SetUserID(c echo.Context, userID uuid.UUID) {
	c.Set(string(KeyUserID), userID)

	ctx := c.Request().Context()
	if logger := GetLogger(ctx); logger != nil {
		c.SetRequest(c.Request().WithContext(WithLogger(ctx, logger.With(slog.String("user_id", userID.String())))))
	}
}

// GetUserID returns the authenticated user of c.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(string(KeyUserID)).(uuid.UUID)

	return userID, ok
}

// GetLogger returns the request-scoped logger of ctx, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault is GetLogger with a fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
