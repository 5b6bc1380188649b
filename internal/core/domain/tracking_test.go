package domain

import "testing"

func TestParseDeliveryStatus_ExactValues(t *testing.T) {
	for _, s := range []DeliveryStatus{StatusPending, StatusShipped, StatusDelivered} {
		if got := ParseDeliveryStatus(string(s), ""); got != s {
			t.Errorf("ParseDeliveryStatus(%q): expected %q, got %q", s, s, got)
		}
	}
}

func TestParseDeliveryStatus_Heuristics(t *testing.T) {
	cases := []struct {
		status      string
		description string
		want        DeliveryStatus
	}{
		{"DELIVERED_TO_DOOR", "", StatusDelivered},
		{"unknown", "Package delivered at front desk", StatusDelivered},
		{"in_transit", "", StatusShipped},
		{"picked_up", "", StatusShipped},
		{"label_created", "Package in transit to facility", StatusShipped},
		{"out_for_delivery", "Picked up by courier", StatusShipped},
		{"exception", "held at customs", StatusPending},
		{"", "", StatusPending},
	}
	for _, tc := range cases {
		if got := ParseDeliveryStatus(tc.status, tc.description); got != tc.want {
			t.Errorf("ParseDeliveryStatus(%q, %q): expected %q, got %q", tc.status, tc.description, tc.want, got)
		}
	}
}

func TestUnavailable(t *testing.T) {
	got := Unavailable("1Z999")
	if got.TrackingNumber != "1Z999" {
		t.Errorf("expected tracking number to round-trip, got %q", got.TrackingNumber)
	}
	if got.Status != StatusPending {
		t.Errorf("expected pending, got %q", got.Status)
	}
	if got.StatusDescription != "Tracking unavailable" {
		t.Errorf("unexpected description %q", got.StatusDescription)
	}
	if got.LastActivity != "" {
		t.Errorf("placeholder must not fabricate activity, got %q", got.LastActivity)
	}
}
