// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"

	"bistro/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// pathID parses an int64 path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"status": "ok",
	}, "Service is healthy")
}
