// Package metrics defines and registers all custom Prometheus metrics for
// the tracking proxy. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tracking"

// TrackingRequestsTotal counts tracking lookups routed through the proxy.
// Labels:
//   - carrier: the detected carrier tag (e.g. "ups", "unknown")
//   - outcome: "ok", "degraded" (upstream semantic error folded into a
//     placeholder status), or "error" (upstream call failed)
var TrackingRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of tracking lookups, by detected carrier and outcome.",
	},
	[]string{"carrier", "outcome"},
)

// UpstreamRequestDuration measures the latency of calls to the Trackship API.
// Label:
//   - endpoint: "shipment_create" or "shipment_get"
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of outbound Trackship API calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// WebhookEventsTotal counts webhook deliveries from the upstream provider.
// Label:
//   - status: the tracking_event_status reported by the sender, or
//     "unparsable" when the body was rejected
var WebhookEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhook_events_total",
		Help:      "Total number of webhook deliveries received, by reported status.",
	},
	[]string{"status"},
)

// WebhookDedupTotal counts dedup decisions on webhook deliveries.
// Label:
//   - result: "hit" (redelivery, logged and skipped) or "miss"
var WebhookDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhook_dedup_total",
		Help:      "Total number of webhook dedup checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// BatchSize observes the number of tracking numbers per batch request.
var BatchSize = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "batch_size",
		Help:      "Number of tracking numbers per batch lookup.",
		Buckets:   []float64{1, 2, 5, 10, 25, 50, 100},
	},
)
