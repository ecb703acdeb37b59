package router

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/outflo/campaign-manager/internal/handler"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Campaigns *handler.CampaignsHandler
	Messages  *handler.MessageHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, handlers Handlers) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status":    "OK",
			"message":   "Campaign Manager API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	e.GET("/campaigns", handlers.Campaigns.List)
	e.POST("/campaigns", handlers.Campaigns.Create)
	e.GET("/campaigns/:id", handlers.Campaigns.Get)
	e.PUT("/campaigns/:id", handlers.Campaigns.Update)
	e.DELETE("/campaigns/:id", handlers.Campaigns.Delete)

	e.POST("/personalized-message", handlers.Messages.Generate)
}
