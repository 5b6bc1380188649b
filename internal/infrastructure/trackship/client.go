// Package trackship is the adapter for the Trackship multi-carrier tracking
// API. It owns the wire schema, the HTTP client, and the normalization of
// upstream responses into the internal TrackingStatus shape.
package trackship

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/workspace/tracking-proxy/internal/core/domain"
)

const (
	DefaultBaseURL = "https://api.trackship.com/v1"

	apiKeyHeader = "trackship-api-key"
)

// Config captures the settings needed to talk to Trackship.
type Config struct {
	BaseURL string
	APIKey  string
	AppName string
	StoreID string
}

// Client calls the Trackship REST API. Transport failures are returned as
// errors; semantic errors ("missing_store" and friends) are left in the
// decoded response for the normalizer to interpret.
type Client struct {
	cfg  Config
	http *http.Client
	log  zerolog.Logger
}

// NewClient returns a Client for the given configuration. When cfg.BaseURL is
// empty the production endpoint is used.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &Client{cfg: cfg, http: &http.Client{}, log: log}
}

// CreateShipment registers a shipment with Trackship and returns both the
// decoded response and the raw payload (attached verbatim to the normalized
// status for diagnostics).
func (c *Client) CreateShipment(ctx context.Context, req CreateShipmentRequest) (*CreateShipmentResponse, json.RawMessage, error) {
	if req.AppName == "" {
		req.AppName = c.cfg.AppName
	}
	if req.StoreID == "" {
		req.StoreID = c.cfg.StoreID
	}

	raw, err := c.post(ctx, "/shipment/create/", req)
	if err != nil {
		return nil, nil, err
	}

	var resp CreateShipmentResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, raw, fmt.Errorf("trackship: decode create response: %w", err)
	}
	return &resp, raw, nil
}

// GetShipment retrieves the current tracking state of a registered shipment.
func (c *Client) GetShipment(ctx context.Context, trackingNumber string, provider domain.Carrier) (*GetShipmentResponse, error) {
	raw, err := c.post(ctx, "/shipment/get/", map[string]string{
		"tracking_number":   trackingNumber,
		"tracking_provider": string(provider),
	})
	if err != nil {
		return nil, err
	}

	var resp GetShipmentResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("trackship: decode get response: %w", err)
	}
	return &resp, nil
}

func (c *Client) post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	if c.cfg.APIKey == "" {
		return nil, domain.ErrMissingAPIKey
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("trackship: encode request: %w", err)
	}

	c.log.Debug().Str("path", path).RawJSON("body", payload).Msg("trackship request")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("trackship: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("trackship: %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("trackship: read response: %w", err)
	}

	// Str rather than RawJSON: the upstream body is not guaranteed valid JSON.
	c.log.Debug().Str("path", path).Int("status", resp.StatusCode).Str("body", string(raw)).Msg("trackship response")
	return raw, nil
}
