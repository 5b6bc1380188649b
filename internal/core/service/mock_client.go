package service

import (
	"context"
	"time"

	"github.com/workspace/tracking-proxy/internal/core/domain"
	"github.com/workspace/tracking-proxy/internal/core/ports"
)

// DefaultMockDelay matches the latency the dashboard was tuned against.
const DefaultMockDelay = time.Second

// mockShipments is the fixed lookup table of sample tracking numbers.
var mockShipments = map[string]struct {
	status  domain.DeliveryStatus
	carrier string
}{
	"UPS123456789":           {domain.StatusPending, "UPS"},
	"FEDEX987654321":         {domain.StatusShipped, "FedEx"},
	"USPS555666777":          {domain.StatusDelivered, "USPS"},
	"DHL888999000":           {domain.StatusShipped, "DHL"},
	"1Z999AA1234567890":      {domain.StatusShipped, "UPS"},
	"9400100000000000000000": {domain.StatusDelivered, "USPS"},
}

var mockDescriptions = map[domain.DeliveryStatus]string{
	domain.StatusPending:   "Package information sent to carrier",
	domain.StatusShipped:   "Package in transit",
	domain.StatusDelivered: "Package delivered successfully",
}

// MockClient is a deterministic TrackingClient used when no Trackship
// credentials are configured. Unrecognized numbers resolve to a pending
// status with an Unknown carrier.
type MockClient struct {
	delay time.Duration
	now   func() time.Time
}

// NewMockClient returns a MockClient that waits delay before answering,
// simulating upstream latency.
func NewMockClient(delay time.Duration) *MockClient {
	return &MockClient{delay: delay, now: time.Now}
}

func (m *MockClient) GetTrackingStatus(ctx context.Context, req ports.StatusRequest) (*domain.TrackingStatus, error) {
	if m.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(m.delay):
		}
	}

	info, ok := mockShipments[req.TrackingNumber]
	if !ok {
		info.status = domain.StatusPending
		info.carrier = "Unknown"
	}

	status := domain.TrackingStatus{
		TrackingNumber:    req.TrackingNumber,
		Status:            info.status,
		LastActivity:      m.now().UTC().Format(time.RFC3339),
		StatusDescription: mockDescriptions[info.status],
		Carrier:           info.carrier,
	}
	switch info.status {
	case domain.StatusPending:
		status.EstimatedDelivery = "2024-01-20"
	case domain.StatusShipped:
		status.CurrentLocation = "Distribution Center"
	}

	return &status, nil
}

func (m *MockClient) GetBatchTrackingStatus(ctx context.Context, trackingNumbers []string) ([]domain.TrackingStatus, error) {
	return allSettled(ctx, trackingNumbers, func(ctx context.Context, _ int, tn string) (*domain.TrackingStatus, error) {
		return m.GetTrackingStatus(ctx, ports.StatusRequest{TrackingNumber: tn})
	}), nil
}
