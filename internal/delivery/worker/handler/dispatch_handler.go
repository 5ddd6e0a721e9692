package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"habitrack/config"
	deliverycontext "habitrack/internal/delivery/context"
	"habitrack/internal/errors"
	"habitrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage is the message part of a Pub/Sub push envelope
type PubSubMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// DispatchRequest is the body accepted by the trigger endpoint. Both a direct
// call ({"scheduled_time": ...}) and a Pub/Sub push envelope are understood;
// an empty body dispatches for the current minute.
type DispatchRequest struct {
	ScheduledTime *time.Time `json:"scheduled_time,omitempty"`

	// Pub/Sub push envelope
	Message      *PubSubMessage `json:"message,omitempty"`
	Subscription string         `json:"subscription,omitempty"`
}

// dispatchPayload is the data carried inside a Pub/Sub message.
type dispatchPayload struct {
	ScheduledTime *time.Time `json:"scheduled_time,omitempty"`
	RequestID     string     `json:"request_id,omitempty"`
}

// tokenValidator checks a Google-signed OIDC token for an audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// DispatchHandler lets an external scheduler (Cloud Scheduler, a Pub/Sub push
// subscription) trigger a reminder dispatch pass.
type DispatchHandler struct {
	verifyPushAuth bool
	audience       string
	validateToken  tokenValidator
	now            func() time.Time
	logger         *slog.Logger
	reminderUC     usecase.ReminderUsecase
}

// DispatchHandlerParams holds dependencies for the DispatchHandler
type DispatchHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	ReminderUC usecase.ReminderUsecase
}

// NewDispatchHandler creates a new dispatch trigger handler
func NewDispatchHandler(params DispatchHandlerParams) *DispatchHandler {
	h := &DispatchHandler{
		validateToken: idtoken.Validate,
		now:           time.Now,
		logger:        params.Logger,
		reminderUC:    params.ReminderUC,
	}

	if params.Config.Worker != nil {
		h.verifyPushAuth = params.Config.Worker.VerifyPushAuth
		h.audience = params.Config.Worker.Audience
	}

	return h
}

// HandleDispatch runs one dispatch pass.
// It answers 503 when due reminders could not be loaded so the caller retries
// within the minute, 500 for other failures and 200 with the report otherwise.
func (h *DispatchHandler) HandleDispatch(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid trigger token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var req DispatchRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("[Worker] Failed to parse dispatch request", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	scheduledTime, requestID, err := h.resolveRequest(ctx, &req)
	if err != nil {
		h.logger.Error("[Worker] Invalid dispatch request", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	ctx, reqLogger := deliverycontext.WithDispatchPass(ctx, h.logger, deliverycontext.DispatchPass{
		RequestID: requestID,
		Tick:      scheduledTime,
		Trigger:   deliverycontext.TriggerWorker,
	})

	report, err := h.reminderUC.DispatchDue(ctx, scheduledTime)
	if err != nil {
		reqLogger.Error("[Worker] Dispatch pass failed",
			slog.Time("scheduled_time", scheduledTime),
			slog.Bool("retryable", errors.IsRetryable(err)),
			slog.Any("error", err),
		)

		if errors.IsRetryable(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusInternalServerError)
	}

	reqLogger.Info("[Worker] Dispatch pass completed",
		slog.Time("scheduled_time", scheduledTime),
		slog.Int("matched", len(report.Outcomes)),
		slog.Int("sent", report.Sent()),
		slog.Int("skipped", report.Skipped()),
		slog.Int("failed", report.Failed()),
	)

	return c.JSON(http.StatusOK, report)
}

// resolveRequest picks the dispatch time and request id.
// Priority for the time: explicit field > message data > publish time > now.
// Priority for the request id: message attributes > message data > existing context > new.
func (h *DispatchHandler) resolveRequest(ctx context.Context, req *DispatchRequest) (time.Time, string, error) {
	scheduledTime := h.now()
	requestID := deliverycontext.GetRequestIDFromContext(ctx)

	if msg := req.Message; msg != nil {
		payload, err := decodePayload(msg.Data)
		if err != nil {
			return time.Time{}, "", err
		}

		switch {
		case payload.ScheduledTime != nil:
			scheduledTime = *payload.ScheduledTime
		case msg.PublishTime != "":
			publishTime, err := time.Parse(time.RFC3339Nano, msg.PublishTime)
			if err != nil {
				return time.Time{}, "", errors.Wrap(err, "parse publishTime")
			}
			scheduledTime = publishTime
		}

		if id := msg.Attributes["request_id"]; id != "" {
			requestID = id
		} else if payload.RequestID != "" {
			requestID = payload.RequestID
		}
	}

	if req.ScheduledTime != nil {
		scheduledTime = *req.ScheduledTime
	}

	if requestID == "" {
		requestID = uuid.New().String()
	}

	return scheduledTime, requestID, nil
}

// decodePayload decodes the base64 message data. Empty or non-JSON data is
// treated as a bare trigger.
func decodePayload(data string) (*dispatchPayload, error) {
	payload := &dispatchPayload{}
	if data == "" {
		return payload, nil
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	if !json.Valid(raw) {
		return payload, nil
	}

	if err := json.Unmarshal(raw, payload); err != nil {
		return nil, errors.Wrap(err, "parse message data")
	}

	return payload, nil
}

// verifyToken verifies the OIDC token sent by Cloud Scheduler or a Pub/Sub push subscription
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *DispatchHandler) verifyToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	audience := h.audience
	if audience == "" {
		// Default to the URL of this endpoint
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
