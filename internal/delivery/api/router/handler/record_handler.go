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

// RecordHandlerParams holds dependencies for RecordHandler, injected by Fx.
type RecordHandlerParams struct {
	fx.In

	RecordUC usecase.RecordUsecase
	Logger   *slog.Logger
}

// RecordHandler serves the daily completion records of a habit.
type RecordHandler struct {
	recordUC usecase.RecordUsecase
	logger   *slog.Logger
}

// NewRecordHandler is the constructor for RecordHandler
func NewRecordHandler(params RecordHandlerParams) *RecordHandler {
	return &RecordHandler{
		recordUC: params.RecordUC,
		logger:   params.Logger,
	}
}

// CreateRecordRequest represents the request body for logging a day
type CreateRecordRequest struct {
	Date   string `json:"date" validate:"required,isodate"`
	Status *bool  `json:"status" validate:"required"`
}

// UpdateRecordRequest represents the request body for changing a record
type UpdateRecordRequest struct {
	Date   *string `json:"date,omitempty" validate:"omitempty,isodate"`
	Status *bool   `json:"status,omitempty"`
}

// ListRecordsQuery holds the inclusive date range of a record listing
type ListRecordsQuery struct {
	Start string `query:"start" validate:"required,isodate"`
	End   string `query:"end" validate:"required,isodate"`
}

// CreateRecord logs the outcome of one day
func (h *RecordHandler) CreateRecord(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	habitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid habit ID")
	}

	var req CreateRecordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid record input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	date, err := entity.ParseDate(req.Date)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Date must be in YYYY-MM-DD format")
	}

	record, err := h.recordUC.CreateRecord(c.Request().Context(), userID, habitID, &usecase.CreateRecordInput{
		Date:   date,
		Status: *req.Status,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, record)
}

// ListRecords returns the records in [start, end], ascending by date
func (h *RecordHandler) ListRecords(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	habitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid habit ID")
	}

	var query ListRecordsQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid date range")
	}

	if err := c.Validate(&query); err != nil {
		return response.ValidationError(c, err)
	}

	start, err := entity.ParseDate(query.Start)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "start must be in YYYY-MM-DD format")
	}
	end, err := entity.ParseDate(query.End)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "end must be in YYYY-MM-DD format")
	}

	records, err := h.recordUC.ListRecords(c.Request().Context(), userID, habitID, start, end)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records)
}

// UpdateRecord changes the date and/or status of a record
func (h *RecordHandler) UpdateRecord(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	habitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid habit ID")
	}

	recordID, err := uuid.Parse(c.Param("recordId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid record ID")
	}

	var req UpdateRecordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid record input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	input := &usecase.UpdateRecordInput{Status: req.Status}
	if req.Date != nil {
		date, err := entity.ParseDate(*req.Date)
		if err != nil {
			return response.BadRequest(c, "INVALID_DATE", "Date must be in YYYY-MM-DD format")
		}
		input.Date = &date
	}

	record, err := h.recordUC.UpdateRecord(c.Request().Context(), userID, habitID, recordID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record)
}

// DeleteRecord removes a record
func (h *RecordHandler) DeleteRecord(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	habitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid habit ID")
	}

	recordID, err := uuid.Parse(c.Param("recordId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid record ID")
	}

	if err := h.recordUC.DeleteRecord(c.Request().Context(), userID, habitID, recordID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: "Record deleted successfully"})
}
