package domain

import (
	"encoding/json"
	"errors"
	"strings"
)

// DeliveryStatus represents the coarse delivery state shown to the dashboard.
type DeliveryStatus string

const (
	StatusPending   DeliveryStatus = "pending"
	StatusShipped   DeliveryStatus = "shipped"
	StatusDelivered DeliveryStatus = "delivered"
)

var ErrTrackingUnavailable = errors.New("tracking data unavailable")
var ErrMissingAPIKey = errors.New("trackship api key not configured")

// ParseDeliveryStatus maps an upstream status string (optionally refined by
// its human-readable description) onto the three-value delivery state.
// Exact enum values pass through unchanged; well-known carrier phrasings such
// as "in_transit" or "picked up" count as shipped; everything unrecognized
// degrades to pending.
func ParseDeliveryStatus(status, description string) DeliveryStatus {
	s := strings.ToLower(status)
	d := strings.ToLower(description)

	switch DeliveryStatus(s) {
	case StatusPending, StatusShipped, StatusDelivered:
		return DeliveryStatus(s)
	}

	if strings.Contains(s, "delivered") || strings.Contains(d, "delivered") {
		return StatusDelivered
	}
	if strings.Contains(s, "in_transit") ||
		strings.Contains(s, "picked_up") ||
		strings.Contains(d, "in transit") ||
		strings.Contains(d, "picked up") {
		return StatusShipped
	}
	return StatusPending
}

// TrackingStatus is the per-request value object handed back to the dashboard.
// It is built fresh on every request/response cycle and never persisted.
type TrackingStatus struct {
	TrackingNumber    string          `json:"trackingNumber"`
	Status            DeliveryStatus  `json:"status"`
	LastActivity      string          `json:"lastActivity"`
	EstimatedDelivery string          `json:"estimatedDelivery,omitempty"`
	CurrentLocation   string          `json:"currentLocation,omitempty"`
	StatusDescription string          `json:"statusDescription"`
	Carrier           string          `json:"carrier,omitempty"`
	Error             string          `json:"error,omitempty"`
	// Upstream carries the raw provider payload verbatim for diagnostics.
	Upstream json.RawMessage `json:"trackshipResponse,omitempty"`
}

// Unavailable returns the placeholder status used when a lookup fails or the
// upstream payload cannot be interpreted.
func Unavailable(trackingNumber string) TrackingStatus {
	return TrackingStatus{
		TrackingNumber:    trackingNumber,
		Status:            StatusPending,
		StatusDescription: "Tracking unavailable",
	}
}
