package handler

import (
	"log/slog"
	"net/http"

	"habitrack/internal/delivery/api/middleware"
	"habitrack/internal/delivery/api/response"
	"habitrack/internal/domain/entity"
	"habitrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves the reminder configuration of habits.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// CreateNotificationRequest represents the request body for creating a reminder.
// Enabled defaults to true when omitted.
type CreateNotificationRequest struct {
	Time    string `json:"time" validate:"required,hhmm"`
	Enabled *bool  `json:"enabled,omitempty"`
}

// UpdateNotificationRequest represents the request body for changing a reminder
type UpdateNotificationRequest struct {
	Time    *string `json:"time,omitempty" validate:"omitempty,hhmm"`
	Enabled *bool   `json:"enabled,omitempty"`
}

// CreateNotification adds a daily reminder to a habit
func (h *NotificationHandler) CreateNotification(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	habitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid habit ID")
	}

	var req CreateNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	timeOfDay, err := entity.ParseTimeOfDay(req.Time)
	if err != nil {
		return response.BadRequest(c, "INVALID_TIME_OF_DAY", "Time must be in HH:MM format")
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	notification, err := h.notificationUC.CreateNotification(c.Request().Context(), userID, habitID, &usecase.CreateNotificationInput{
		Time:    timeOfDay,
		Enabled: enabled,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, notification)
}

// ListNotifications returns the reminders of a habit
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	habitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid habit ID")
	}

	notifications, err := h.notificationUC.ListNotifications(c.Request().Context(), userID, habitID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications)
}

// UpdateNotification changes the time and/or enabled flag of a reminder
func (h *NotificationHandler) UpdateNotification(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	var req UpdateNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	input := &usecase.UpdateNotificationInput{Enabled: req.Enabled}
	if req.Time != nil {
		timeOfDay, err := entity.ParseTimeOfDay(*req.Time)
		if err != nil {
			return response.BadRequest(c, "INVALID_TIME_OF_DAY", "Time must be in HH:MM format")
		}
		input.Time = &timeOfDay
	}

	notification, err := h.notificationUC.UpdateNotification(c.Request().Context(), userID, notificationID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notification)
}

// DeleteNotification removes a reminder
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	if err := h.notificationUC.DeleteNotification(c.Request().Context(), userID, notificationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: "Notification deleted successfully"})
}
