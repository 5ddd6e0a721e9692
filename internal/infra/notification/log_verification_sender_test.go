package notification

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"habitrack/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogVerificationSender(t *testing.T) {
	tests := []struct {
		name     string
		debug    bool
		wantCode bool
	}{
		{name: "debug logs the code", debug: true, wantCode: true},
		{name: "production hides the code", debug: false, wantCode: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			sender := NewLogVerificationSender(cfg, logger)
			require.NoError(t, sender.SendVerificationCode(context.Background(), "alice@example.com", "042917"))

			assert.Contains(t, buf.String(), `"email":"alice@example.com"`)
			if tt.wantCode {
				assert.Contains(t, buf.String(), `"code":"042917"`)
			} else {
				assert.NotContains(t, buf.String(), "042917")
			}
		})
	}
}
