package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/workspace/tracking-proxy/internal/api/metrics"
	"github.com/workspace/tracking-proxy/internal/core/domain"
	"github.com/workspace/tracking-proxy/internal/core/ports"
	"github.com/workspace/tracking-proxy/internal/infrastructure/trackship"
)

// ShipmentAPI is the full upstream surface the direct client needs: register
// the shipment, then retrieve its current tracking state.
type ShipmentAPI interface {
	ShipmentCreator
	GetShipment(ctx context.Context, trackingNumber string, provider domain.Carrier) (*trackship.GetShipmentResponse, error)
}

// DirectClient talks to Trackship without going through the proxy endpoint.
// Running it from a browser-facing context is subject to CORS restrictions;
// it exists for server-side callers and parity with the proxy path.
type DirectClient struct {
	api      ShipmentAPI
	fallback domain.Carrier
	log      zerolog.Logger
	now      func() time.Time
}

func NewDirectClient(api ShipmentAPI, fallback domain.Carrier, log zerolog.Logger) *DirectClient {
	return &DirectClient{api: api, fallback: fallback, log: log, now: time.Now}
}

func (c *DirectClient) GetTrackingStatus(ctx context.Context, req ports.StatusRequest) (*domain.TrackingStatus, error) {
	carrier := domain.DetectCarrier(req.TrackingNumber, c.fallback)

	orderID := req.OrderID
	if orderID == "" {
		orderID = fmt.Sprintf("order_%d", c.now().UnixMilli())
	}
	postalCode := req.PostalCode
	if postalCode == "" {
		postalCode = defaultPostalCode
	}

	create, _, err := c.api.CreateShipment(ctx, trackship.CreateShipmentRequest{
		TrackingNumber:     req.TrackingNumber,
		TrackingProvider:   string(carrier),
		OrderID:            orderID,
		PostalCode:         postalCode,
		DestinationCountry: destinationCountry,
	})
	if err != nil {
		return nil, fmt.Errorf("direct: create shipment: %w", err)
	}
	if create.Status != "ok" && create.Status != "success" {
		return nil, fmt.Errorf("direct: create shipment failed: %s", create.StatusMsg)
	}

	// Creation only registers the shipment; the actual state comes from the
	// retrieval endpoint.
	start := c.now()
	detail, err := c.api.GetShipment(ctx, req.TrackingNumber, carrier)
	metrics.UpstreamRequestDuration.WithLabelValues("shipment_get").Observe(time.Since(start).Seconds())
	if err != nil || detail.Data == nil {
		if err != nil {
			c.log.Warn().Err(err).Str("tracking_number", req.TrackingNumber).Msg("status retrieval failed after create")
		}
		return &domain.TrackingStatus{
			TrackingNumber:    req.TrackingNumber,
			Status:            domain.StatusPending,
			LastActivity:      c.now().UTC().Format(time.RFC3339),
			CurrentLocation:   "Unknown",
			StatusDescription: "Tracking data unavailable",
			Carrier:           carrier.Upper(),
		}, nil
	}

	return c.mapDetail(detail.Data, req.TrackingNumber, carrier), nil
}

func (c *DirectClient) GetBatchTrackingStatus(ctx context.Context, trackingNumbers []string) ([]domain.TrackingStatus, error) {
	return allSettled(ctx, trackingNumbers, func(ctx context.Context, i int, tn string) (*domain.TrackingStatus, error) {
		return c.GetTrackingStatus(ctx, ports.StatusRequest{
			TrackingNumber: tn,
			OrderID:        fmt.Sprintf("batch_%d", i),
		})
	}), nil
}

func (c *DirectClient) mapDetail(d *trackship.ShipmentDetail, trackingNumber string, fallback domain.Carrier) *domain.TrackingStatus {
	status := domain.TrackingStatus{
		TrackingNumber:    trackingNumber,
		Status:            domain.ParseDeliveryStatus(d.Status, d.StatusDescription),
		LastActivity:      c.now().UTC().Format(time.RFC3339),
		CurrentLocation:   "Unknown",
		StatusDescription: d.StatusDescription,
		Carrier:           fallback.Upper(),
	}
	if status.StatusDescription == "" {
		status.StatusDescription = "Tracking available"
	}
	if d.Carrier != "" {
		status.Carrier = d.Carrier
	}
	if d.EstimatedDelivery != nil {
		status.EstimatedDelivery = *d.EstimatedDelivery
	}
	// Events arrive oldest first; the last one carries the latest scan.
	if n := len(d.Events); n > 0 {
		last := d.Events[n-1]
		if last.Timestamp != "" {
			status.LastActivity = last.Timestamp
		}
		if last.Location != nil {
			status.CurrentLocation = *last.Location
		}
	}
	return &status
}
