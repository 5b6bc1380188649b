package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/workspace/tracking-proxy/internal/core/domain"
	"github.com/workspace/tracking-proxy/internal/core/ports"
	"github.com/workspace/tracking-proxy/internal/infrastructure/trackship"
)

// ---------------------------------------------------------------------------
// Upstream stub
// ---------------------------------------------------------------------------

type stubUpstream struct {
	mu       sync.Mutex
	requests []trackship.CreateShipmentRequest

	resp *trackship.CreateShipmentResponse
	raw  json.RawMessage
	err  error

	// failFor makes CreateShipment fail only for these tracking numbers.
	failFor map[string]bool
}

func (s *stubUpstream) CreateShipment(_ context.Context, req trackship.CreateShipmentRequest) (*trackship.CreateShipmentResponse, json.RawMessage, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	if s.failFor[req.TrackingNumber] {
		return nil, nil, errors.New("upstream unreachable")
	}
	if s.err != nil {
		return nil, nil, s.err
	}
	resp := s.resp
	if resp == nil {
		resp = &trackship.CreateShipmentResponse{
			Status: "success",
			Data:   &trackship.TrackingData{},
		}
	}
	return resp, s.raw, nil
}

func fixedNow() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func newTestService(upstream *stubUpstream, fallback domain.Carrier) *TrackingService {
	svc := NewTrackingService(upstream, fallback, zerolog.Nop())
	svc.now = fixedNow
	return svc
}

// ---------------------------------------------------------------------------
// GetTrackingStatus
// ---------------------------------------------------------------------------

func TestTrackingService_BuildsUpstreamRequest(t *testing.T) {
	upstream := &stubUpstream{}
	svc := newTestService(upstream, domain.CarrierUnknown)

	_, err := svc.GetTrackingStatus(context.Background(), ports.StatusRequest{
		TrackingNumber: "1Z999AA1234567890",
		OrderID:        "order_42",
		PostalCode:     "90210",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := upstream.requests[0]
	if req.TrackingProvider != "ups" {
		t.Errorf("expected detected provider ups, got %q", req.TrackingProvider)
	}
	if req.OrderID != "order_42" || req.PostalCode != "90210" {
		t.Errorf("caller-supplied fields must pass through: %+v", req)
	}
	if req.DestinationCountry != "US" {
		t.Errorf("expected destination US, got %q", req.DestinationCountry)
	}
}

func TestTrackingService_DefaultsOrderAndPostal(t *testing.T) {
	upstream := &stubUpstream{}
	svc := newTestService(upstream, domain.CarrierUnknown)

	_, err := svc.GetTrackingStatus(context.Background(), ports.StatusRequest{TrackingNumber: "1Z1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := upstream.requests[0]
	if !strings.HasPrefix(req.OrderID, "order_") {
		t.Errorf("expected generated order id, got %q", req.OrderID)
	}
	if req.PostalCode != "00000" {
		t.Errorf("expected default postal code, got %q", req.PostalCode)
	}
}

func TestTrackingService_NormalizesResponse(t *testing.T) {
	loc := "Distribution Center"
	st := "in_transit"
	upstream := &stubUpstream{
		resp: &trackship.CreateShipmentResponse{
			Status: "success",
			Data:   &trackship.TrackingData{Status: &st, CurrentLocation: &loc},
		},
		raw: json.RawMessage(`{"status":"success"}`),
	}
	svc := newTestService(upstream, domain.CarrierUnknown)

	got, err := svc.GetTrackingStatus(context.Background(), ports.StatusRequest{TrackingNumber: "1Z999AA1234567890"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != domain.StatusShipped {
		t.Errorf("expected shipped, got %q", got.Status)
	}
	if got.CurrentLocation != loc {
		t.Errorf("expected %q, got %q", loc, got.CurrentLocation)
	}
	if string(got.Upstream) != `{"status":"success"}` {
		t.Error("raw upstream payload must be attached")
	}
}

func TestTrackingService_MissingStoreDowngraded(t *testing.T) {
	// Upstream semantic errors are not hard failures: the caller gets a
	// degraded status it can render, not an error.
	upstream := &stubUpstream{
		resp: &trackship.CreateShipmentResponse{Status: "error", StatusMsg: "missing_store"},
	}
	svc := newTestService(upstream, domain.CarrierUPS)

	got, err := svc.GetTrackingStatus(context.Background(), ports.StatusRequest{TrackingNumber: "XYZ"})
	if err != nil {
		t.Fatalf("missing_store must not be an error, got %v", err)
	}
	if got.Error != "missing_store" || got.Status != domain.StatusPending {
		t.Errorf("expected degraded pending status, got %+v", got)
	}
	if got.Carrier != "UPS" {
		t.Errorf("expected configured ups fallback, got %q", got.Carrier)
	}
}

func TestTrackingService_UpstreamFailure(t *testing.T) {
	upstream := &stubUpstream{err: errors.New("connection refused")}
	svc := newTestService(upstream, domain.CarrierUnknown)

	_, err := svc.GetTrackingStatus(context.Background(), ports.StatusRequest{TrackingNumber: "1Z1"})
	if err == nil {
		t.Fatal("expected error when upstream call fails")
	}
}

// ---------------------------------------------------------------------------
// Batch
// ---------------------------------------------------------------------------

func TestTrackingService_Batch_OrderPreservedWithPartialFailure(t *testing.T) {
	upstream := &stubUpstream{failFor: map[string]bool{"B": true}}
	svc := newTestService(upstream, domain.CarrierUnknown)

	results, err := svc.GetBatchTrackingStatus(context.Background(), []string{"A", "B", "C"})
	if err != nil {
		t.Fatalf("batch must never fail: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	if results[1].Status != domain.StatusPending || results[1].StatusDescription != "Tracking unavailable" {
		t.Errorf("result[1] must be the placeholder, got %+v", results[1])
	}
	for _, i := range []int{0, 2} {
		if results[i].StatusDescription == "Tracking unavailable" {
			t.Errorf("result[%d] should be a successful lookup, got placeholder", i)
		}
	}
	if results[0].TrackingNumber != "A" || results[1].TrackingNumber != "B" || results[2].TrackingNumber != "C" {
		t.Errorf("input order not preserved: %q %q %q",
			results[0].TrackingNumber, results[1].TrackingNumber, results[2].TrackingNumber)
	}
}

func TestTrackingService_Batch_UsesIndexedOrderIDs(t *testing.T) {
	upstream := &stubUpstream{}
	svc := newTestService(upstream, domain.CarrierUnknown)

	_, _ = svc.GetBatchTrackingStatus(context.Background(), []string{"A", "B"})

	seen := map[string]bool{}
	upstream.mu.Lock()
	for _, req := range upstream.requests {
		seen[req.OrderID] = true
	}
	upstream.mu.Unlock()

	if !seen["batch_0"] || !seen["batch_1"] {
		t.Errorf("expected batch_0 and batch_1 order ids, got %v", seen)
	}
}

func TestTrackingService_Batch_Empty(t *testing.T) {
	svc := newTestService(&stubUpstream{}, domain.CarrierUnknown)
	results, err := svc.GetBatchTrackingStatus(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("expected empty result set, got %d", len(results))
	}
}
