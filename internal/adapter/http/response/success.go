package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`

	// LatestRunID is the ID of the latest completed simulation, if any
	LatestRunID string `json:"latest_run_id,omitempty"`
}

// Health writes a health check response.
func Health(c echo.Context, latestRunID string) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status:      "ok",
		LatestRunID: latestRunID,
	})
}
