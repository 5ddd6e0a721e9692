package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"reminder": map[string]any{
			"schedulerEnabled": true,
			"bodyTemplate":     "",
		},
		"worker": map[string]any{
			"verifyPushAuth": false,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "REMINDER_SCHEDULERENABLED", want: "reminder.schedulerEnabled"},
		{envKey: "REMINDER_BODYTEMPLATE", want: "reminder.bodyTemplate"},
		{envKey: "WORKER_VERIFYPUSHAUTH", want: "worker.verifyPushAuth"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	cfg.HTTP.Port = 8080

	applyDefaults(cfg)

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, defaultAccessTTL, cfg.Auth.AccessTTL)
	assert.Equal(t, defaultRefreshTTL, cfg.Auth.RefreshTTL)
	assert.Equal(t, defaultVerificationTTL, cfg.Auth.VerificationCodeTTL)

	require.NotNil(t, cfg.Database)
	assert.False(t, cfg.Database.AutoMigrate)

	require.NotNil(t, cfg.Reminder)
	assert.Equal(t, defaultReminderTitle, cfg.Reminder.Title)
	assert.Equal(t, defaultReminderBody, cfg.Reminder.BodyTemplate)
	assert.Equal(t, defaultSendTimeout, cfg.Reminder.SendTimeout)

	require.NotNil(t, cfg.Worker)
	assert.Equal(t, 8081, cfg.Worker.Port)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Reminder: &ReminderConfig{Title: "Hey", BodyTemplate: "%s now", SendTimeout: time.Second},
		Worker:   &WorkerConfig{Port: 9000},
	}

	applyDefaults(cfg)

	assert.Equal(t, "Hey", cfg.Reminder.Title)
	assert.Equal(t, "%s now", cfg.Reminder.BodyTemplate)
	assert.Equal(t, time.Second, cfg.Reminder.SendTimeout)
	assert.Equal(t, 9000, cfg.Worker.Port)
}

func TestReminderLocation(t *testing.T) {
	loc, err := (&ReminderConfig{}).ReminderLocation()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = (&ReminderConfig{Location: "UTC"}).ReminderLocation()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = (&ReminderConfig{Location: "Mars/Olympus"}).ReminderLocation()
	assert.Error(t, err)
}

func TestValidateBodyTemplate(t *testing.T) {
	valid := []string{
		defaultReminderBody,
		"%s",
		"100%% of days: %s",
	}
	for _, tmpl := range valid {
		assert.NoError(t, (&ReminderConfig{BodyTemplate: tmpl}).ValidateBodyTemplate(), tmpl)
	}

	invalid := []string{
		"Time to practice",
		"%s and %s",
		"%d days of %s",
		"50% done: %s",
	}
	for _, tmpl := range invalid {
		assert.Error(t, (&ReminderConfig{BodyTemplate: tmpl}).ValidateBodyTemplate(), tmpl)
	}
}

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(`
reminder:
  schedulerEnabled: true
  bodyTemplate: "Do %s"
database:
  slowQueryThreshold: 300ms
`), 0o600))
	t.Chdir(dir)
	t.Setenv("REMINDER_SCHEDULERENABLED", "false")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	require.NotNil(t, cfg.Reminder)
	assert.False(t, cfg.Reminder.SchedulerEnabled)
	assert.Equal(t, "Do %s", cfg.Reminder.BodyTemplate)
	require.NotNil(t, cfg.Database)
	assert.Equal(t, 300*time.Millisecond, cfg.Database.SlowQueryThreshold)

	_, err = LoadWithEnv[Config]("missing")
	assert.Error(t, err)
}
