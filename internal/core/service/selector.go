package service

import (
	"github.com/rs/zerolog"

	"github.com/workspace/tracking-proxy/internal/core/domain"
	"github.com/workspace/tracking-proxy/internal/core/ports"
	"github.com/workspace/tracking-proxy/internal/infrastructure/trackship"
	"github.com/workspace/tracking-proxy/internal/pkg/config"
)

// SelectTrackingClient picks the TrackingClient implementation for the given
// configuration. Policy, first match wins:
//
//  1. USE_PROXY_API      → proxy-backed client.
//  2. USE_REAL_API + key → direct Trackship client.
//  3. otherwise          → deterministic mock.
//
// The selection is an explicit factory call so tests can inject any
// configuration; no process-wide client instance exists.
func SelectTrackingClient(cfg *config.Config, log zerolog.Logger) ports.TrackingClient {
	fallback := domain.ParseCarrier(cfg.CarrierFallback)

	switch {
	case cfg.UseProxyAPI:
		log.Info().Str("base_url", cfg.ProxyBaseURL).Msg("using proxy tracking client")
		return NewProxyClient(cfg.ProxyBaseURL, log)

	case cfg.UseRealAPI && cfg.Trackship.APIKey != "":
		log.Info().Msg("using direct trackship client (CORS-limited outside server contexts)")
		api := trackship.NewClient(trackship.Config{
			BaseURL: cfg.Trackship.BaseURL,
			APIKey:  cfg.Trackship.APIKey,
			AppName: cfg.AppName,
			StoreID: cfg.Trackship.StoreID,
		}, log)
		return NewDirectClient(api, fallback, log)

	default:
		log.Info().Msg("using mock tracking client")
		return NewMockClient(DefaultMockDelay)
	}
}
