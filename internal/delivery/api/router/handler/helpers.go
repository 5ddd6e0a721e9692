package handler

import (
	"net/http"

	"habitrack/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// messageResponse is the body of endpoints that have nothing else to return.
type messageResponse struct {
	Message string `json:"message"`
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
