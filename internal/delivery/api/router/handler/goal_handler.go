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

// GoalHandlerParams holds dependencies for GoalHandler, injected by Fx.
type GoalHandlerParams struct {
	fx.In

	GoalUC usecase.GoalUsecase
	Logger *slog.Logger
}

// GoalHandler serves habit goals. Every goal in a response carries
// current_count and is_achieved evaluated at request time.
type GoalHandler struct {
	goalUC usecase.GoalUsecase
	logger *slog.Logger
}

// NewGoalHandler is the constructor for GoalHandler
func NewGoalHandler(params GoalHandlerParams) *GoalHandler {
	return &GoalHandler{
		goalUC: params.GoalUC,
		logger: params.Logger,
	}
}

// CreateGoalRequest represents the request body for creating a goal
type CreateGoalRequest struct {
	TargetCount int    `json:"target_count" validate:"required,gt=0"`
	StartDate   string `json:"start_date" validate:"required,isodate"`
	EndDate     string `json:"end_date" validate:"required,isodate"`
}

// CreateGoal sets a new goal for a habit
func (h *GoalHandler) CreateGoal(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	habitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid habit ID")
	}

	var req CreateGoalRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid goal input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	startDate, err := entity.ParseDate(req.StartDate)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "start_date must be in YYYY-MM-DD format")
	}
	endDate, err := entity.ParseDate(req.EndDate)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "end_date must be in YYYY-MM-DD format")
	}

	goal, err := h.goalUC.CreateGoal(c.Request().Context(), userID, habitID, &usecase.CreateGoalInput{
		TargetCount: req.TargetCount,
		StartDate:   startDate,
		EndDate:     endDate,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, goal)
}

// ListGoals returns every goal of a habit with its progress
func (h *GoalHandler) ListGoals(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	habitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid habit ID")
	}

	goals, err := h.goalUC.ListGoals(c.Request().Context(), userID, habitID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, goals)
}

// GetGoal returns a single goal with its progress
func (h *GoalHandler) GetGoal(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	habitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid habit ID")
	}

	goalID, err := uuid.Parse(c.Param("goalId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid goal ID")
	}

	goal, err := h.goalUC.GetGoal(c.Request().Context(), userID, habitID, goalID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, goal)
}

// DeleteGoal removes a goal
func (h *GoalHandler) DeleteGoal(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	habitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid habit ID")
	}

	goalID, err := uuid.Parse(c.Param("goalId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid goal ID")
	}

	if err := h.goalUC.DeleteGoal(c.Request().Context(), userID, habitID, goalID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: "Goal deleted successfully"})
}
