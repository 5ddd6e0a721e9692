package handler

import (
	"log/slog"
	"net/http"

	"habitrack/internal/delivery/api/middleware"
	"habitrack/internal/delivery/api/response"
	"habitrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HabitHandlerParams holds dependencies for HabitHandler, injected by Fx.
type HabitHandlerParams struct {
	fx.In

	HabitUC usecase.HabitUsecase
	Logger  *slog.Logger
}

// HabitHandler serves the habit CRUD endpoints.
type HabitHandler struct {
	habitUC usecase.HabitUsecase
	logger  *slog.Logger
}

// NewHabitHandler is the constructor for HabitHandler
func NewHabitHandler(params HabitHandlerParams) *HabitHandler {
	return &HabitHandler{
		habitUC: params.HabitUC,
		logger:  params.Logger,
	}
}

// CreateHabitRequest represents the request body for creating a habit
type CreateHabitRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

// UpdateHabitRequest represents the request body for updating a habit
type UpdateHabitRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
}

// CreateHabit handles creating a habit for the caller
func (h *HabitHandler) CreateHabit(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateHabitRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid habit input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	habit, err := h.habitUC.CreateHabit(c.Request().Context(), userID, &usecase.CreateHabitInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, habit)
}

// ListHabits returns the caller's habits
func (h *HabitHandler) ListHabits(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	habits, err := h.habitUC.ListHabits(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, habits)
}

// GetHabit returns one of the caller's habits
func (h *HabitHandler) GetHabit(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	habitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid habit ID")
	}

	habit, err := h.habitUC.GetHabit(c.Request().Context(), userID, habitID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, habit)
}

// UpdateHabit changes the name and/or description of a habit
func (h *HabitHandler) UpdateHabit(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	habitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid habit ID")
	}

	var req UpdateHabitRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid habit input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	habit, err := h.habitUC.UpdateHabit(c.Request().Context(), userID, habitID, &usecase.UpdateHabitInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, habit)
}

// DeleteHabit removes a habit with its records, goals and reminders
func (h *HabitHandler) DeleteHabit(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	habitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid habit ID")
	}

	if err := h.habitUC.DeleteHabit(c.Request().Context(), userID, habitID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: "Habit deleted successfully"})
}
