package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"habitrack/config"
	deliverycontext "habitrack/internal/delivery/context"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	defaultSlowQueryThreshold         = 200 * time.Millisecond
	defaultDispatchSlowQueryThreshold = time.Second

	// queryDueReminders labels the lookup run once per dispatch pass.
	queryDueReminders = "due_reminders"
)

type queryNameKey struct{}

// withQueryName labels the statements run with ctx in query logs.
func withQueryName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, queryNameKey{}, name)
}

func queryName(ctx context.Context) string {
	name, _ := ctx.Value(queryNameKey{}).(string)

	return name
}

// gormSlogLogger sends GORM output to the request-scoped slog logger when the
// statement runs under one, so query logs carry request and dispatch pass ids.
type gormSlogLogger struct {
	logger         *slog.Logger
	level          logger.LogLevel
	slowThreshold  time.Duration
	slowByQuery    map[string]time.Duration
	ignoreNotFound bool
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	l := &gormSlogLogger{
		logger:         baseLogger,
		level:          logger.Warn,
		slowThreshold:  defaultSlowQueryThreshold,
		slowByQuery:    map[string]time.Duration{queryDueReminders: defaultDispatchSlowQueryThreshold},
		ignoreNotFound: true,
	}
	if cfg == nil {
		return l
	}

	if cfg.Env.Debug {
		l.level = logger.Info
	}
	if db := cfg.Database; db != nil {
		if db.SlowQueryThreshold > 0 {
			l.slowThreshold = db.SlowQueryThreshold
		}
		if db.DispatchSlowQueryThreshold > 0 {
			l.slowByQuery[queryDueReminders] = db.DispatchSlowQueryThreshold
		}
	}

	return l
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) logf(ctx context.Context, minLevel logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < minLevel || l.logger == nil {
		return
	}

	l.loggerFor(ctx).LogAttrs(ctx, level, "GORM "+level.String(),
		slog.String("message", fmt.Sprintf(msg, args...)),
	)
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	name := queryName(ctx)
	threshold := l.thresholdFor(name)

	var (
		level slog.Level
		msg   string
		extra []slog.Attr
	)
	switch {
	case err != nil && l.level >= logger.Error && !(l.ignoreNotFound && errors.Is(err, gorm.ErrRecordNotFound)):
		level, msg = slog.LevelError, "GORM query failed"
		extra = append(extra, slog.String("error", err.Error()))
	case threshold > 0 && elapsed > threshold && l.level >= logger.Warn:
		level, msg = slog.LevelWarn, "GORM slow query"
		extra = append(extra, slog.Duration("slowThreshold", threshold))
	case l.level >= logger.Info:
		level, msg = slog.LevelInfo, "GORM query"
	default:
		return
	}

	sql, rows := sqlAndRowsFn()
	attrs := make([]slog.Attr, 0, 5+len(extra))
	if name != "" {
		attrs = append(attrs, slog.String("query", name))
	}
	attrs = append(attrs,
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	)
	attrs = append(attrs, extra...)

	l.loggerFor(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *gormSlogLogger) thresholdFor(name string) time.Duration {
	if threshold, ok := l.slowByQuery[name]; ok {
		return threshold
	}

	return l.slowThreshold
}

func (l *gormSlogLogger) loggerFor(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}
