package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/workspace/tracking-proxy/internal/core/domain"
	"github.com/workspace/tracking-proxy/internal/core/ports"
)

// ProxyClient resolves tracking numbers through the proxy endpoint, the path
// browser callers use to keep the Trackship key server-side and sidestep
// CORS.
type ProxyClient struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

func NewProxyClient(baseURL string, log zerolog.Logger) *ProxyClient {
	return &ProxyClient{baseURL: baseURL, http: &http.Client{}, log: log}
}

type proxyTrackingRequest struct {
	TrackingNumber string `json:"trackingNumber"`
	OrderID        string `json:"orderId,omitempty"`
	PostalCode     string `json:"postalCode,omitempty"`
}

type proxyTrackingResponse struct {
	Success bool                   `json:"success"`
	Data    *domain.TrackingStatus `json:"data"`
	Error   string                 `json:"error"`
}

func (c *ProxyClient) GetTrackingStatus(ctx context.Context, req ports.StatusRequest) (*domain.TrackingStatus, error) {
	payload, err := json.Marshal(proxyTrackingRequest{
		TrackingNumber: req.TrackingNumber,
		OrderID:        req.OrderID,
		PostalCode:     req.PostalCode,
	})
	if err != nil {
		return nil, fmt.Errorf("proxy: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/tracking", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("proxy: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("proxy: %w", err)
	}
	defer resp.Body.Close()

	var envelope proxyTrackingResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("proxy: decode response: %w", err)
	}
	if !envelope.Success || envelope.Data == nil {
		if envelope.Error != "" {
			return nil, fmt.Errorf("proxy: %s", envelope.Error)
		}
		return nil, fmt.Errorf("proxy: status %d: %w", resp.StatusCode, domain.ErrTrackingUnavailable)
	}

	return envelope.Data, nil
}

func (c *ProxyClient) GetBatchTrackingStatus(ctx context.Context, trackingNumbers []string) ([]domain.TrackingStatus, error) {
	return allSettled(ctx, trackingNumbers, func(ctx context.Context, i int, tn string) (*domain.TrackingStatus, error) {
		return c.GetTrackingStatus(ctx, ports.StatusRequest{
			TrackingNumber: tn,
			OrderID:        fmt.Sprintf("batch_%d", i),
		})
	}), nil
}
