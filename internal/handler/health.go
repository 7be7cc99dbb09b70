// File: internal/handler/health.go
package handler

import (
	"net/http"

	"todo-api/internal/api"
	"todo-api/internal/database"

	"github.com/labstack/echo/v4"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// HealthHandler reports service health without requiring authentication.
// A failing database ping degrades the status instead of erroring.
// @Summary     Health check
// @Description Reports overall status, database reachability and version
// @Tags        health
// @Produce     json
// @Success     200 {object} api.HealthResponse
// @Failure     503 {object} api.HealthResponse
// @Router      /health [get]
func HealthHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, api.HealthResponse{
				Status:   "degraded",
				Database: "down",
				Version:  Version,
			})
		}
		return c.JSON(http.StatusOK, api.HealthResponse{
			Status:   "ok",
			Database: "up",
			Version:  Version,
		})
	}
}
