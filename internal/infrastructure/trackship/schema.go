package trackship

// Wire types for the Trackship REST API. All optional fields are pointers so
// absence is distinguishable from the zero value; the normalizer declares a
// default per field instead of sniffing the payload shape.

// upstream status tags
const (
	responseError   = "error"
	responseSuccess = "success"
	responseOK      = "ok"

	reasonMissingStore = "missing_store"
)

// CreateShipmentRequest is the body of POST /v1/shipment/create/.
type CreateShipmentRequest struct {
	TrackingNumber     string `json:"tracking_number"`
	TrackingProvider   string `json:"tracking_provider"`
	OrderID            string `json:"order_id"`
	PostalCode         string `json:"postal_code"`
	DestinationCountry string `json:"destination_country"`
	AppName            string `json:"app_name"`
	StoreID            string `json:"store_id"`
}

// TrackingData is the optional payload inside a successful create response.
type TrackingData struct {
	Status            *string `json:"status"`
	LastActivity      *string `json:"last_activity"`
	EstimatedDelivery *string `json:"estimated_delivery"`
	CurrentLocation   *string `json:"current_location"`
	StatusDescription *string `json:"status_description"`
	Carrier           *string `json:"carrier"`
}

// CreateShipmentResponse is the tagged union Trackship returns from the
// create endpoint: Status selects the variant, Data is present only on
// success.
type CreateShipmentResponse struct {
	Status          string        `json:"status"`
	StatusMsg       string        `json:"status_msg"`
	TrackersBalance string        `json:"trackers_balance,omitempty"`
	UserPlan        string        `json:"user_plan,omitempty"`
	Data            *TrackingData `json:"data,omitempty"`
}

// ShipmentEvent is a single scan event in a shipment's history.
type ShipmentEvent struct {
	Status            string  `json:"status"`
	StatusDescription string  `json:"status_description"`
	Location          *string `json:"location"`
	Timestamp         string  `json:"timestamp"`
}

// ShipmentDetail is the payload of a status retrieval response.
type ShipmentDetail struct {
	TrackingNumber    string          `json:"tracking_number"`
	Carrier           string          `json:"carrier"`
	Status            string          `json:"status"`
	StatusDescription string          `json:"status_description"`
	EstimatedDelivery *string         `json:"estimated_delivery"`
	Events            []ShipmentEvent `json:"events"`
}

// GetShipmentResponse is returned by the status retrieval endpoint.
type GetShipmentResponse struct {
	Status    string          `json:"status"`
	StatusMsg string          `json:"status_msg"`
	Data      *ShipmentDetail `json:"data,omitempty"`
}
