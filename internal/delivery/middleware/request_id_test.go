package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"habitrack/config"
	deliverycontext "habitrack/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T, buf *bytes.Buffer) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/habits/:id", func(c echo.Context) error {
		assert.Equal(t, deliverycontext.GetRequestID(c), deliverycontext.GetRequestIDFromContext(c.Request().Context()))

		return c.NoContent(http.StatusNotFound)
	})

	return e
}

func TestRequestIDMiddleware_ReusesCallerID(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(t, &buf)

	req := httptest.NewRequest(http.MethodGet, "/habits/42", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "trace-abc")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "trace-abc", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, buf.String(), `"request_id":"trace-abc"`)
	assert.Contains(t, buf.String(), `"route":"/habits/:id"`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}

func TestRequestIDMiddleware_ReplacesMalformedID(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(t, &buf)

	req := httptest.NewRequest(http.MethodGet, "/habits/42", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "bad id\twith tabs")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	_, err := uuid.Parse(rec.Header().Get(deliverycontext.HeaderXRequestID))
	require.NoError(t, err)
}

func TestLoggerMiddleware_SkipsHealth(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(t, &buf)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, buf.String())
}
