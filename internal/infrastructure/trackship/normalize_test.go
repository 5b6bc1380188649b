package trackship

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/workspace/tracking-proxy/internal/core/domain"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func strptr(s string) *string { return &s }

func TestNormalize_MissingStore(t *testing.T) {
	raw := json.RawMessage(`{"status":"error","status_msg":"missing_store"}`)
	var resp CreateShipmentResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatal(err)
	}

	got := Normalize(&resp, raw, "1Z999AA1234567890", domain.CarrierUPS, testNow)

	if got.Status != domain.StatusPending {
		t.Errorf("expected pending, got %q", got.Status)
	}
	if got.Error != "missing_store" {
		t.Errorf("expected error tag missing_store, got %q", got.Error)
	}
	if got.CurrentLocation != "Store not configured" {
		t.Errorf("unexpected location %q", got.CurrentLocation)
	}
	if got.StatusDescription != "Store setup required in Trackship" {
		t.Errorf("unexpected description %q", got.StatusDescription)
	}
	if got.Carrier != "UPS" {
		t.Errorf("expected uppercased fallback carrier, got %q", got.Carrier)
	}
	if string(got.Upstream) != string(raw) {
		t.Error("raw payload must be attached verbatim")
	}
}

func TestNormalize_MissingStore_AnyTrackingNumber(t *testing.T) {
	raw := json.RawMessage(`{"status":"error","status_msg":"missing_store"}`)
	var resp CreateShipmentResponse
	_ = json.Unmarshal(raw, &resp)

	for _, tn := range []string{"1Z1", "whatever", ""} {
		got := Normalize(&resp, raw, tn, domain.CarrierUnknown, testNow)
		if got.Error != "missing_store" || got.Status != domain.StatusPending {
			t.Errorf("tracking %q: expected missing_store/pending, got %q/%q", tn, got.Error, got.Status)
		}
	}
}

func TestNormalize_SuccessCopiesFields(t *testing.T) {
	resp := &CreateShipmentResponse{
		Status: "success",
		Data: &TrackingData{
			Status:            strptr("delivered"),
			LastActivity:      strptr("2026-02-28T09:30:00Z"),
			EstimatedDelivery: strptr("2026-03-02"),
			CurrentLocation:   strptr("Front porch"),
			StatusDescription: strptr("Delivered"),
			Carrier:           strptr("USPS"),
		},
	}

	got := Normalize(resp, nil, "9400100000000000000000", domain.CarrierUnknown, testNow)

	if got.Status != domain.StatusDelivered {
		t.Errorf("expected delivered, got %q", got.Status)
	}
	if got.LastActivity != "2026-02-28T09:30:00Z" {
		t.Errorf("unexpected last activity %q", got.LastActivity)
	}
	if got.EstimatedDelivery != "2026-03-02" {
		t.Errorf("unexpected estimated delivery %q", got.EstimatedDelivery)
	}
	if got.CurrentLocation != "Front porch" {
		t.Errorf("unexpected location %q", got.CurrentLocation)
	}
	if got.Carrier != "USPS" {
		t.Errorf("upstream carrier must win over fallback, got %q", got.Carrier)
	}
}

func TestNormalize_SuccessDefaults(t *testing.T) {
	// A success payload with every field absent gets the declared default
	// for each one.
	resp := &CreateShipmentResponse{Status: "success", Data: &TrackingData{}}

	got := Normalize(resp, nil, "0123456789", domain.CarrierUnknown, testNow)

	if got.Status != domain.StatusPending {
		t.Errorf("default status: expected pending, got %q", got.Status)
	}
	if got.LastActivity != testNow.Format(time.RFC3339) {
		t.Errorf("default last activity: expected now, got %q", got.LastActivity)
	}
	if got.EstimatedDelivery != "" {
		t.Errorf("estimated delivery must stay absent, got %q", got.EstimatedDelivery)
	}
	if got.CurrentLocation != "Unknown" {
		t.Errorf("default location: expected Unknown, got %q", got.CurrentLocation)
	}
	if got.StatusDescription != "Tracking available" {
		t.Errorf("default description: expected Tracking available, got %q", got.StatusDescription)
	}
	if got.Carrier != "DHL" {
		t.Errorf("default carrier: expected uppercased detection fallback, got %q", got.Carrier)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	// Feeding an already-normalized status back through the success branch
	// leaves status and description unchanged.
	first := Normalize(&CreateShipmentResponse{
		Status: "success",
		Data: &TrackingData{
			Status:            strptr("shipped"),
			StatusDescription: strptr("Package in transit"),
		},
	}, nil, "1Z1", domain.CarrierUPS, testNow)

	second := Normalize(&CreateShipmentResponse{
		Status: "success",
		Data: &TrackingData{
			Status:            strptr(string(first.Status)),
			StatusDescription: strptr(first.StatusDescription),
		},
	}, nil, "1Z1", domain.CarrierUPS, testNow)

	if second.Status != first.Status {
		t.Errorf("status changed across renormalization: %q vs %q", first.Status, second.Status)
	}
	if second.StatusDescription != first.StatusDescription {
		t.Errorf("description changed across renormalization: %q vs %q", first.StatusDescription, second.StatusDescription)
	}
}

func TestNormalize_UnrecognizedShape(t *testing.T) {
	cases := []*CreateShipmentResponse{
		nil,
		{},                                    // no status tag at all
		{Status: "error", StatusMsg: "quota"}, // error, but not missing_store
		{Status: "success"},                   // success without data payload
		{Status: "weird"},
	}

	for i, resp := range cases {
		got := Normalize(resp, json.RawMessage(`{"x":1}`), "ABC", domain.CarrierUnknown, testNow)
		if got.Status != domain.StatusPending {
			t.Errorf("case %d: expected pending, got %q", i, got.Status)
		}
		if got.StatusDescription != "Tracking data unavailable" {
			t.Errorf("case %d: unexpected description %q", i, got.StatusDescription)
		}
		if got.CurrentLocation != "Unknown" {
			t.Errorf("case %d: unexpected location %q", i, got.CurrentLocation)
		}
		if got.Carrier != "UNKNOWN" {
			t.Errorf("case %d: unexpected carrier %q", i, got.Carrier)
		}
		if string(got.Upstream) != `{"x":1}` {
			t.Errorf("case %d: raw payload not attached", i)
		}
	}
}

func TestNormalize_StatusMappedThroughParser(t *testing.T) {
	resp := &CreateShipmentResponse{
		Status: "success",
		Data:   &TrackingData{Status: strptr("in_transit")},
	}
	got := Normalize(resp, nil, "1Z1", domain.CarrierUPS, testNow)
	if got.Status != domain.StatusShipped {
		t.Errorf("in_transit should normalize to shipped, got %q", got.Status)
	}

	resp.Data.Status = strptr("some_new_carrier_state")
	got = Normalize(resp, nil, "1Z1", domain.CarrierUPS, testNow)
	if got.Status != domain.StatusPending {
		t.Errorf("unrecognized status should fall back to pending, got %q", got.Status)
	}
}
