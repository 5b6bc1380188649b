package handler

// webhookRequest mirrors the push schema Trackship delivers. Unknown extra
// fields are ignored; every listed field is optional on the wire.
type webhookRequest struct {
	UserKey             string         `json:"user_key"`
	OrderID             string         `json:"order_id"`
	TrackingNumber      string         `json:"tracking_number"`
	TrackingProvider    string         `json:"tracking_provider"`
	TrackingEventStatus string         `json:"tracking_event_status"`
	Events              []webhookEvent `json:"events"`
}

type webhookEvent struct {
	Status            string `json:"status"`
	StatusDescription string `json:"status_description"`
	Location          string `json:"location,omitempty"`
	Timestamp         string `json:"timestamp"`
}

type webhookResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
