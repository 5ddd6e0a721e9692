package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "habitrack/internal/delivery/api/middleware"
	"habitrack/internal/delivery/api/router"
	"habitrack/internal/delivery/api/router/handler"
	"habitrack/internal/delivery/api/validator"
	"habitrack/internal/delivery/middleware"
	"habitrack/internal/domain/service"
	mockservice "habitrack/internal/mocks/service"
	mockusecase "habitrack/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	accessToken  = "access-token"
	refreshToken = "refresh-token"
)

// testServer wires the real router, validator and error handling to mocked use cases.
type testServer struct {
	echo           *echo.Echo
	userID         uuid.UUID
	userUC         *mockusecase.MockUserUsecase
	profileUC      *mockusecase.MockProfileUsecase
	habitUC        *mockusecase.MockHabitUsecase
	recordUC       *mockusecase.MockRecordUsecase
	goalUC         *mockusecase.MockGoalUsecase
	notificationUC *mockusecase.MockNotificationUsecase
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := &testServer{
		userID:         uuid.New(),
		userUC:         mockusecase.NewMockUserUsecase(t),
		profileUC:      mockusecase.NewMockProfileUsecase(t),
		habitUC:        mockusecase.NewMockHabitUsecase(t),
		recordUC:       mockusecase.NewMockRecordUsecase(t),
		goalUC:         mockusecase.NewMockGoalUsecase(t),
		notificationUC: mockusecase.NewMockNotificationUsecase(t),
	}

	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken(accessToken).
		Return(&service.Claims{UserID: s.userID, Type: service.TokenTypeAccess}, nil).Maybe()
	tokenSvc.EXPECT().ValidateToken(refreshToken).
		Return(&service.Claims{UserID: s.userID, Type: service.TokenTypeRefresh}, nil).Maybe()
	tokenSvc.EXPECT().ValidateToken(mock.Anything).
		Return(nil, errors.New("token is malformed")).Maybe()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)

	router.NewRouter(router.RouterParams{
		UserHandler: handler.NewUserHandler(handler.UserHandlerParams{
			UserUC: s.userUC, ProfileUC: s.profileUC, Logger: logger,
		}),
		HabitHandler:        handler.NewHabitHandler(handler.HabitHandlerParams{HabitUC: s.habitUC, Logger: logger}),
		RecordHandler:       handler.NewRecordHandler(handler.RecordHandlerParams{RecordUC: s.recordUC, Logger: logger}),
		GoalHandler:         handler.NewGoalHandler(handler.GoalHandlerParams{GoalUC: s.goalUC, Logger: logger}),
		NotificationHandler: handler.NewNotificationHandler(handler.NotificationHandlerParams{NotificationUC: s.notificationUC, Logger: logger}),
		AuthMiddleware:      apimiddleware.NewAuthMiddleware(tokenSvc),
	}).RegisterRoutes(e)

	s.echo = e

	return s
}

// do sends a request. token may be empty for anonymous calls.
func (s *testServer) do(t *testing.T, method, path, token, body string) (*httptest.ResponseRecorder, *envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}

	return rec, &env
}

func decodeData[T any](t *testing.T, env *envelope) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))

	return out
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodGet, "/health", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, env.Meta.RequestID)
	require.Equal(t, "ok", decodeData[map[string]string](t, env)["status"])
}
