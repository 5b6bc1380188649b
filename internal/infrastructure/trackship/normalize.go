package trackship

import (
	"encoding/json"
	"time"

	"github.com/workspace/tracking-proxy/internal/core/domain"
)

// Normalize maps a heterogeneous create response onto the fixed
// TrackingStatus shape. Three variants are recognized, checked in order:
//
//  1. error + "missing_store": a degraded-but-successful status telling the
//     dashboard the Trackship store still needs configuring.
//  2. success with a data payload: fields are copied with a declared default
//     substituted for each absent one.
//  3. anything else (unknown tags, missing payload): a generic
//     "data unavailable" status.
//
// The raw upstream payload is attached verbatim in every branch and never
// interpreted further. now supplies the timestamp used when the upstream
// omits last_activity.
func Normalize(resp *CreateShipmentResponse, raw json.RawMessage, trackingNumber string, fallback domain.Carrier, now time.Time) domain.TrackingStatus {
	if resp != nil && resp.Status == responseError && resp.StatusMsg == reasonMissingStore {
		return domain.TrackingStatus{
			TrackingNumber:    trackingNumber,
			Status:            domain.StatusPending,
			LastActivity:      now.Format(time.RFC3339),
			CurrentLocation:   "Store not configured",
			StatusDescription: "Store setup required in Trackship",
			Carrier:           fallback.Upper(),
			Error:             reasonMissingStore,
			Upstream:          raw,
		}
	}

	if resp != nil && resp.Status == responseSuccess && resp.Data != nil {
		d := resp.Data
		ts := domain.TrackingStatus{
			TrackingNumber:    trackingNumber,
			Status:            domain.StatusPending,
			LastActivity:      now.Format(time.RFC3339),
			CurrentLocation:   "Unknown",
			StatusDescription: "Tracking available",
			Carrier:           fallback.Upper(),
			Upstream:          raw,
		}
		if d.StatusDescription != nil {
			ts.StatusDescription = *d.StatusDescription
		}
		if d.Status != nil {
			ts.Status = domain.ParseDeliveryStatus(*d.Status, ts.StatusDescription)
		}
		if d.LastActivity != nil {
			ts.LastActivity = *d.LastActivity
		}
		if d.EstimatedDelivery != nil {
			ts.EstimatedDelivery = *d.EstimatedDelivery
		}
		if d.CurrentLocation != nil {
			ts.CurrentLocation = *d.CurrentLocation
		}
		if d.Carrier != nil {
			ts.Carrier = *d.Carrier
		}
		return ts
	}

	return domain.TrackingStatus{
		TrackingNumber:    trackingNumber,
		Status:            domain.StatusPending,
		LastActivity:      now.Format(time.RFC3339),
		CurrentLocation:   "Unknown",
		StatusDescription: "Tracking data unavailable",
		Carrier:           fallback.Upper(),
		Upstream:          raw,
	}
}
