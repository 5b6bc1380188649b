package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/workspace/tracking-proxy/internal/api/metrics"
)

// DeliveryDeduper filters repeated webhook deliveries. Optional: a nil
// deduper means every delivery is processed.
type DeliveryDeduper interface {
	Seen(ctx context.Context, trackingNumber, status, orderID string) (bool, error)
	Mark(ctx context.Context, trackingNumber, status, orderID string) error
}

// WebhookHandler receives asynchronous push notifications from Trackship.
// It is intentionally a logging receiver: no order state is mutated and
// nothing is persisted. A real deployment would enqueue the event here.
type WebhookHandler struct {
	dedup DeliveryDeduper
	log   zerolog.Logger
}

func NewWebhookHandler(dedup DeliveryDeduper, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{dedup: dedup, log: log}
}

// Receive handles POST /v1/webhook/trackship.
//
// Any parseable body is acknowledged with 200 so the provider does not
// redeliver; only an unparsable body earns a failure envelope.
//
// @Summary      Receive a Trackship tracking update
// @Tags         webhook
// @Accept       json
// @Produce      json
// @Param        body  body      webhookRequest  true  "Provider push payload"
// @Success      200   {object}  webhookResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/webhook/trackship [post]
func (h *WebhookHandler) Receive(c echo.Context) error {
	var req webhookRequest
	if err := c.Bind(&req); err != nil {
		metrics.WebhookEventsTotal.WithLabelValues("unparsable").Inc()
		h.log.Error().Err(err).Msg("webhook body failed to parse")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "invalid webhook body"})
	}

	ctx := c.Request().Context()
	if h.dedup != nil {
		seen, err := h.dedup.Seen(ctx, req.TrackingNumber, req.TrackingEventStatus, req.OrderID)
		if err != nil {
			h.log.Warn().Err(err).Str("tracking_number", req.TrackingNumber).Msg("dedup check failed, processing anyway")
		} else if seen {
			metrics.WebhookDedupTotal.WithLabelValues("hit").Inc()
			h.log.Debug().Str("tracking_number", req.TrackingNumber).Msg("duplicate webhook delivery skipped")
			return c.JSON(http.StatusOK, webhookResponse{Success: true, Message: "Webhook received successfully"})
		} else {
			metrics.WebhookDedupTotal.WithLabelValues("miss").Inc()
		}
		if err := h.dedup.Mark(ctx, req.TrackingNumber, req.TrackingEventStatus, req.OrderID); err != nil {
			h.log.Warn().Err(err).Str("tracking_number", req.TrackingNumber).Msg("failed to mark webhook delivery")
		}
	}

	metrics.WebhookEventsTotal.WithLabelValues(req.TrackingEventStatus).Inc()
	h.log.Info().
		Str("order_id", req.OrderID).
		Str("tracking_number", req.TrackingNumber).
		Str("provider", req.TrackingProvider).
		Str("status", req.TrackingEventStatus).
		Int("event_count", len(req.Events)).
		Msg("webhook processed")

	return c.JSON(http.StatusOK, webhookResponse{Success: true, Message: "Webhook received successfully"})
}
