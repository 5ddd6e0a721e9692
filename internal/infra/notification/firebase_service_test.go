package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"habitrack/config"
	"habitrack/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessagingClient struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeMessagingClient) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.sent = append(f.sent, message)
	if f.err != nil {
		return "", f.err
	}

	return "projects/test/messages/1", nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFirebaseService_SendSingleNotification(t *testing.T) {
	client := &fakeMessagingClient{}
	svc := newFirebaseService(client, discardLogger())

	err := svc.SendSingleNotification(context.Background(), "token-1", "Title", "Body", map[string]string{"habit_id": "h"})
	require.NoError(t, err)

	require.Len(t, client.sent, 1)
	assert.Equal(t, "token-1", client.sent[0].Token)
	assert.Equal(t, "Title", client.sent[0].Notification.Title)
	assert.Equal(t, "Body", client.sent[0].Notification.Body)
	assert.Equal(t, "h", client.sent[0].Data["habit_id"])
}

func TestFirebaseService_SendFailure(t *testing.T) {
	client := &fakeMessagingClient{err: errors.New("unavailable")}
	svc := newFirebaseService(client, discardLogger())

	err := svc.SendSingleNotification(context.Background(), "token-1", "Title", "Body", nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrInvalidPushToken)
	assert.Contains(t, err.Error(), "failed to send notification")
}

func TestNewFirebaseService_WithoutCredentialsLogsOnly(t *testing.T) {
	svc, err := NewFirebaseService(context.Background(), &config.Config{}, discardLogger())
	require.NoError(t, err)

	assert.IsType(t, &logOnlyService{}, svc)
	assert.NoError(t, svc.SendSingleNotification(context.Background(), "tok", "t", "b", nil))
}
