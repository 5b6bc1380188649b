// Command server runs the tracking proxy for the Workspace Shipping
// Dashboard: it fronts the Trackship API (keeping the API key server-side),
// receives its webhooks, and serves the dashboard's tracking lookups.
package main

import (
	"context"

	"github.com/workspace/tracking-proxy/internal/api"
	"github.com/workspace/tracking-proxy/internal/api/handler"
	"github.com/workspace/tracking-proxy/internal/core/domain"
	"github.com/workspace/tracking-proxy/internal/core/service"
	"github.com/workspace/tracking-proxy/internal/infrastructure/db/redis"
	"github.com/workspace/tracking-proxy/internal/infrastructure/trackship"
	"github.com/workspace/tracking-proxy/internal/pkg/config"
	"github.com/workspace/tracking-proxy/pkg/logger"
)

// @title        Tracking Proxy API
// @version      1.0
// @description  Carrier-tracking proxy for the Workspace Shipping Dashboard.
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	upstream := trackship.NewClient(trackship.Config{
		BaseURL: cfg.Trackship.BaseURL,
		APIKey:  cfg.Trackship.APIKey,
		AppName: cfg.AppName,
		StoreID: cfg.Trackship.StoreID,
	}, log)

	resolver := service.NewTrackingService(upstream, domain.ParseCarrier(cfg.CarrierFallback), log)

	// Webhook dedup is optional; without Redis the receiver stays a pure
	// logging stub.
	var dedup handler.DeliveryDeduper
	if cfg.Redis.Addr != "" {
		client, err := redis.Connect(context.Background(), redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		dedup = redis.NewDeliveryDedup(client)
	}

	e := api.NewRouter(cfg, resolver, dedup, log)

	log.Info().
		Str("port", cfg.Port).
		Bool("api_key_configured", cfg.Trackship.APIKey != "").
		Msg("tracking proxy starting")

	// Runs until killed; there is deliberately no graceful shutdown.
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
