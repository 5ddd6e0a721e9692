package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"habitrack/config"
	"habitrack/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishDispatchReport(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := &service.DispatchReportEvent{
		RequestID: "req-1",
		RunAt:     time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC),
		TimeOfDay: "08:00",
		Matched:   3,
		Sent:      1,
		Skipped:   1,
		Failed:    1,
	}

	require.NoError(t, publisher.PublishDispatchReport(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "08:00", received.Message.Attributes["time_of_day"])
	assert.Equal(t, "1", received.Message.Attributes["failed"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.DispatchReportEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 3, decoded.Matched)
	assert.True(t, event.RunAt.Equal(decoded.RunAt))
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	err := publisher.PublishDispatchReport(context.Background(), &service.DispatchReportEvent{TimeOfDay: "08:00"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestNewEventPublisher_ProviderSelection(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	noop, err := NewEventPublisher(PublisherParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: discardLogger(),
	})
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, noop)
	assert.NoError(t, noop.PublishDispatchReport(context.Background(), &service.DispatchReportEvent{}))

	_, err = NewEventPublisher(PublisherParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "local"}},
		Logger: discardLogger(),
	})
	assert.Error(t, err)

	_, err = NewEventPublisher(PublisherParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}},
		Logger: discardLogger(),
	})
	assert.Error(t, err)

	local, err := NewEventPublisher(PublisherParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:1"}},
		Logger: discardLogger(),
	})
	require.NoError(t, err)
	assert.IsType(t, &busyPassPublisher{}, local)

	verbose, err := NewEventPublisher(PublisherParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:1", PublishEmptyPasses: true}},
		Logger: discardLogger(),
	})
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, verbose)
}

func TestNewEventPublisher_SkipsEmptyPasses(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	lc := fxtest.NewLifecycle(t)
	publisher, err := NewEventPublisher(PublisherParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "local", LocalEndpoint: server.URL}},
		Logger: discardLogger(),
	})
	require.NoError(t, err)

	require.NoError(t, publisher.PublishDispatchReport(context.Background(), &service.DispatchReportEvent{TimeOfDay: "03:17"}))
	assert.Equal(t, 0, calls)

	require.NoError(t, publisher.PublishDispatchReport(context.Background(), &service.DispatchReportEvent{TimeOfDay: "08:00", Matched: 2, Sent: 2}))
	assert.Equal(t, 1, calls)

	lc.RequireStart()
	lc.RequireStop()
}
