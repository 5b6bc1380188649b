package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/workspace/tracking-proxy/internal/api/metrics"
	"github.com/workspace/tracking-proxy/internal/core/domain"
	"github.com/workspace/tracking-proxy/internal/core/ports"
	"github.com/workspace/tracking-proxy/internal/infrastructure/trackship"
)

const (
	defaultPostalCode  = "00000"
	destinationCountry = "US"
)

// ShipmentCreator abstracts the Trackship create call so tests can stub the
// upstream.
type ShipmentCreator interface {
	CreateShipment(ctx context.Context, req trackship.CreateShipmentRequest) (*trackship.CreateShipmentResponse, json.RawMessage, error)
}

// TrackingService implements the proxy-side tracking use case: detect the
// carrier, register the shipment upstream, normalize whatever comes back.
// Each call is stateless and isolated; one failing tracking number never
// affects other in-flight requests.
type TrackingService struct {
	upstream ShipmentCreator
	fallback domain.Carrier
	log      zerolog.Logger
	now      func() time.Time
}

func NewTrackingService(upstream ShipmentCreator, fallback domain.Carrier, log zerolog.Logger) *TrackingService {
	return &TrackingService{
		upstream: upstream,
		fallback: fallback,
		log:      log,
		now:      time.Now,
	}
}

// GetTrackingStatus resolves a single tracking number through the upstream
// provider.
func (s *TrackingService) GetTrackingStatus(ctx context.Context, req ports.StatusRequest) (*domain.TrackingStatus, error) {
	carrier := domain.DetectCarrier(req.TrackingNumber, s.fallback)

	orderID := req.OrderID
	if orderID == "" {
		orderID = fmt.Sprintf("order_%d", s.now().UnixMilli())
	}
	postalCode := req.PostalCode
	if postalCode == "" {
		postalCode = defaultPostalCode
	}

	start := s.now()
	resp, raw, err := s.upstream.CreateShipment(ctx, trackship.CreateShipmentRequest{
		TrackingNumber:     req.TrackingNumber,
		TrackingProvider:   string(carrier),
		OrderID:            orderID,
		PostalCode:         postalCode,
		DestinationCountry: destinationCountry,
	})
	metrics.UpstreamRequestDuration.WithLabelValues("shipment_create").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.TrackingRequestsTotal.WithLabelValues(string(carrier), "error").Inc()
		s.log.Error().Err(err).Str("tracking_number", req.TrackingNumber).Msg("upstream create failed")
		return nil, fmt.Errorf("get tracking status: %w", err)
	}

	status := trackship.Normalize(resp, raw, req.TrackingNumber, carrier, s.now().UTC())
	outcome := "ok"
	if status.Error != "" {
		outcome = "degraded"
	}
	metrics.TrackingRequestsTotal.WithLabelValues(string(carrier), outcome).Inc()

	s.log.Info().
		Str("tracking_number", req.TrackingNumber).
		Str("carrier", string(carrier)).
		Str("status", string(status.Status)).
		Msg("tracking status resolved")

	return &status, nil
}

// GetBatchTrackingStatus resolves many tracking numbers concurrently, one
// upstream call each, preserving input order. Individual failures become
// placeholder entries; the batch itself never fails.
func (s *TrackingService) GetBatchTrackingStatus(ctx context.Context, trackingNumbers []string) ([]domain.TrackingStatus, error) {
	metrics.BatchSize.Observe(float64(len(trackingNumbers)))
	return allSettled(ctx, trackingNumbers, func(ctx context.Context, i int, tn string) (*domain.TrackingStatus, error) {
		return s.GetTrackingStatus(ctx, ports.StatusRequest{
			TrackingNumber: tn,
			OrderID:        fmt.Sprintf("batch_%d", i),
		})
	}), nil
}
