package handler

import (
	"net/http"

	"estate/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.SuccessWithMessage(c, http.StatusOK, "Service is healthy", map[string]string{"status": "ok"})
}
