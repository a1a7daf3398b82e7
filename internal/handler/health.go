package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Narven/wizards-api/internal/middleware"
	"github.com/Narven/wizards-api/internal/server"
	"github.com/Narven/wizards-api/internal/service"
)

// HealthHandler exposes a "system" endpoint that monitors can use to check
// the service is alive. There are no external dependencies to probe, so it
// reports the store instead.
type HealthHandler struct {
	Handler
	wizards *service.WizardService
}

// NewHealthHandler constructs a HealthHandler with access to shared app dependencies.
func NewHealthHandler(s *server.Server, wizards *service.WizardService) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
		wizards: wizards,
	}
}

// CheckHealth returns 200 with status, timestamp, environment and store stats.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks": map[string]interface{}{
			"store": h.wizards.Stats(),
		},
	}

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")

		if app := h.server.LoggerService.GetApplication(); app != nil {
			app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
				"check_type":    "response",
				"operation":     "health_check",
				"error_type":    "json_response_error",
				"error_message": err.Error(),
			})
		}

		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return nil
}
