package handler

import "github.com/workspace/tracking-proxy/internal/core/domain"

// Field names are camelCase: this is the wire contract the dashboard speaks.

type trackingRequest struct {
	TrackingNumber string `json:"trackingNumber" validate:"required"`
	OrderID        string `json:"orderId"`
	PostalCode     string `json:"postalCode"`
}

type batchTrackingRequest struct {
	TrackingNumbers []string `json:"trackingNumbers" validate:"required,min=1,dive,required"`
}

// trackingResponse is the success envelope wrapping every tracking payload.
type trackingResponse struct {
	Success bool                  `json:"success"`
	Data    domain.TrackingStatus `json:"data"`
}

type batchTrackingResponse struct {
	Success bool                    `json:"success"`
	Data    []domain.TrackingStatus `json:"data"`
}

// errorResponse is the failure envelope returned on all error paths.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
