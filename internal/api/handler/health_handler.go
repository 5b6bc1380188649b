package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthHandler handles the liveness probe. Reports whether the process is
// alive and whether a Trackship API key is configured; the proxy has no
// backing services that could make it unready.
type HealthHandler struct {
	apiKeyConfigured bool
}

func NewHealthHandler(apiKeyConfigured bool) *HealthHandler {
	return &HealthHandler{apiKeyConfigured: apiKeyConfigured}
}

type healthResponse struct {
	Status           string `json:"status"`
	Timestamp        string `json:"timestamp"`
	Message          string `json:"message"`
	APIKeyConfigured bool   `json:"apiKeyConfigured"`
}

// Liveness handles GET /health.
//
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  healthResponse
// @Router       /health [get]
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Status:           "ok",
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
		Message:          "Proxy server is running",
		APIKeyConfigured: h.apiKeyConfigured,
	})
}
