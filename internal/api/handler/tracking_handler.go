package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/workspace/tracking-proxy/internal/core/ports"
)

// TrackingHandler handles HTTP requests for tracking lookups. It works
// against the TrackingClient port, so any implementation (upstream-backed
// service, mock, …) can sit behind the endpoint.
type TrackingHandler struct {
	service ports.TrackingClient
}

func NewTrackingHandler(service ports.TrackingClient) *TrackingHandler {
	return &TrackingHandler{service: service}
}

// Track handles POST /v1/tracking.
//
// @Summary      Resolve the tracking status of a shipment
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Param        body  body      trackingRequest  true  "Tracking lookup"
// @Success      200   {object}  trackingResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/tracking [post]
func (h *TrackingHandler) Track(c echo.Context) error {
	var req trackingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}

	status, err := h.service.GetTrackingStatus(c.Request().Context(), ports.StatusRequest{
		TrackingNumber: req.TrackingNumber,
		OrderID:        req.OrderID,
		PostalCode:     req.PostalCode,
	})
	if err != nil {
		// Isolated to this request: other in-flight lookups are unaffected.
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, trackingResponse{Success: true, Data: *status})
}

// TrackBatch handles POST /v1/tracking/batch.
//
// @Summary      Resolve many tracking numbers in one call
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Param        body  body      batchTrackingRequest  true  "Batch lookup"
// @Success      200   {object}  batchTrackingResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/tracking/batch [post]
func (h *TrackingHandler) TrackBatch(c echo.Context) error {
	var req batchTrackingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}

	// Per-item failures are absorbed into placeholders; the batch never fails.
	results, err := h.service.GetBatchTrackingStatus(c.Request().Context(), req.TrackingNumbers)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, batchTrackingResponse{Success: true, Data: results})
}
