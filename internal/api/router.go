package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/workspace/tracking-proxy/docs"
	"github.com/workspace/tracking-proxy/internal/api/handler"
	"github.com/workspace/tracking-proxy/internal/api/middleware"
	"github.com/workspace/tracking-proxy/internal/core/ports"
	"github.com/workspace/tracking-proxy/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// dedup may be nil (webhook dedup disabled).
func NewRouter(cfg *config.Config, resolver ports.TrackingClient, dedup handler.DeliveryDeduper, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.CORS())
	e.Use(echoprometheus.NewMiddleware("tracking"))

	// --- Dependencies ---
	trackingHandler := handler.NewTrackingHandler(resolver)
	webhookHandler := handler.NewWebhookHandler(dedup, log)
	healthHandler := handler.NewHealthHandler(cfg.Trackship.APIKey != "")

	// --- Routes ---
	e.POST("/v1/tracking", trackingHandler.Track)
	e.POST("/v1/tracking/batch", trackingHandler.TrackBatch)
	e.POST("/v1/webhook/trackship", webhookHandler.Receive)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
