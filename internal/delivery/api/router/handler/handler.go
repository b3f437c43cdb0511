// Package handler contains the echo handlers of the local storefront API.
package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the API is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// paramID parses a positive numeric path parameter.
func paramID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// queryInt parses an optional integer query parameter, returning 0 when absent.
func queryInt(c echo.Context, name string) (int, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, false
	}

	return v, true
}
