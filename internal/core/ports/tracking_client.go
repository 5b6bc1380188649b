package ports

import (
	"context"

	"github.com/workspace/tracking-proxy/internal/core/domain"
)

// StatusRequest carries the parameters of a single tracking lookup.
// OrderID and PostalCode are optional; implementations substitute defaults.
type StatusRequest struct {
	TrackingNumber string
	OrderID        string
	PostalCode     string
}

// TrackingClient is the interface every tracking backend (mock, proxy,
// direct) exposes. Callers are never aware which implementation is active.
type TrackingClient interface {
	// GetTrackingStatus looks up a single tracking number. A non-nil error
	// means the lookup itself failed; upstream semantic errors are folded
	// into a degraded TrackingStatus instead.
	GetTrackingStatus(ctx context.Context, req StatusRequest) (*domain.TrackingStatus, error)

	// GetBatchTrackingStatus resolves many tracking numbers concurrently.
	// The result preserves input order and always has one entry per input:
	// individual failures become placeholder statuses, never errors.
	GetBatchTrackingStatus(ctx context.Context, trackingNumbers []string) ([]domain.TrackingStatus, error)
}
