package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=3001"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// AppName is sent to Trackship as the registering application.
	AppName string `env:"APP_NAME, default=Workspace Shipping Dashboard"`

	// CarrierFallback decides what unmatched tracking numbers map to:
	// "unknown" or "ups". The two legacy call sites disagreed, so the
	// choice is explicit configuration rather than a hardcoded default.
	CarrierFallback string `env:"CARRIER_FALLBACK, default=unknown"`

	// Client selection flags, checked in this order by the factory.
	UseProxyAPI  bool   `env:"USE_PROXY_API, default=false"`
	UseRealAPI   bool   `env:"USE_REAL_API,  default=false"`
	ProxyBaseURL string `env:"PROXY_BASE_URL, default=http://localhost:3001"`

	Trackship TrackshipConfig
	Redis     RedisConfig
}

type TrackshipConfig struct {
	APIKey  string `env:"TRACKSHIP_API_KEY"`
	StoreID string `env:"TRACKSHIP_STORE_ID, default=test_store_123"`
	BaseURL string `env:"TRACKSHIP_BASE_URL, default=https://api.trackship.com/v1"`
}

// RedisConfig is optional: webhook delivery dedup is enabled only when Addr
// is set.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
