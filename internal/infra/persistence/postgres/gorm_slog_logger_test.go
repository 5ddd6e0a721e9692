package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"habitrack/config"
	deliverycontext "habitrack/internal/delivery/context"
	"habitrack/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGormSlogLogger_TagsDueReminderQuery(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))
	cfg := &config.Config{Database: &config.DatabaseConfig{
		SlowQueryThreshold:         time.Hour,
		DispatchSlowQueryThreshold: time.Nanosecond,
	}}

	db := newTestDB(t).Session(&gorm.Session{Logger: newGormSlogLogger(base, cfg)})

	ctx, _ := deliverycontext.WithDispatchPass(context.Background(), base, deliverycontext.DispatchPass{
		RequestID: "pass-7",
		Tick:      time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
		Trigger:   deliverycontext.TriggerScheduler,
	})
	at, err := entity.ParseTimeOfDay("08:00")
	require.NoError(t, err)

	_, err = NewNotificationRepository(db).FindEnabledByTimeOfDay(ctx, at)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"GORM slow query"`)
	assert.Contains(t, out, `"query":"due_reminders"`)
	assert.Contains(t, out, `"request_id":"pass-7"`)
	assert.Contains(t, out, `"trigger":"scheduler"`)
}

func TestGormSlogLogger_UnlabelledQueriesUseDefaultThreshold(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))
	cfg := &config.Config{Database: &config.DatabaseConfig{
		SlowQueryThreshold:         time.Hour,
		DispatchSlowQueryThreshold: time.Nanosecond,
	}}

	db := newTestDB(t).Session(&gorm.Session{Logger: newGormSlogLogger(base, cfg)})

	_, err := NewUserRepository(db).FindByEmail(context.Background(), "nobody@example.com")
	require.Error(t, err)

	// Not found is expected and the lookup is far below an hour.
	assert.Empty(t, buf.String())
}

func TestLogPoolStats(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	logPoolStats(context.Background(), logger, prev, sql.DBStats{WaitCount: 10, WaitDuration: time.Second})
	assert.Empty(t, buf.String())

	logPoolStats(context.Background(), logger, prev, sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 200*time.Millisecond})
	assert.Contains(t, buf.String(), `"msg":"Postgres pool wait observed"`)
	assert.Contains(t, buf.String(), `"waitCount":2`)
}

func TestMigrate_IsIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, migrate(context.Background(), db))
}
