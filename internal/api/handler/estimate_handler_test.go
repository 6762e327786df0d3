package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestEstimateHandler_Quote(t *testing.T) {
	e := newTestEcho()
	h := NewEstimateHandler(&stubWidgetService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/estimate?pickup=apapa&destination=Ibadan&container=40", nil)
	rec := httptest.NewRecorder()
	if err := h.Quote(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp quoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Estimate == nil {
		t.Fatalf("expected estimate")
	}
	if resp.Estimate.PriceRange != "₦520k–₦590k" || resp.Estimate.DropoffETA != "3–5h" {
		t.Errorf("unexpected estimate: %+v", resp.Estimate)
	}
}

func TestEstimateHandler_Quote_NoMatchSignal(t *testing.T) {
	e := newTestEcho()
	h := NewEstimateHandler(&stubWidgetService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/estimate?pickup=apapa", nil)
	rec := httptest.NewRecorder()
	if err := h.Quote(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if v, ok := resp["estimate"]; !ok || v != nil {
		t.Fatalf("expected estimate: null, got %v", resp["estimate"])
	}
}

func TestEstimateHandler_Quote_InvalidContainer(t *testing.T) {
	e := newTestEcho()
	h := NewEstimateHandler(&stubWidgetService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/estimate?pickup=apapa&destination=Ibadan&container=45", nil)
	expectHTTPError(t, h.Quote(e.NewContext(req, httptest.NewRecorder())), http.StatusUnprocessableEntity)
}

func TestEstimateHandler_Options(t *testing.T) {
	e := newTestEcho()
	h := NewEstimateHandler(&stubWidgetService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/options", nil)
	rec := httptest.NewRecorder()
	if err := h.Options(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp optionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Pickups) != 4 || len(resp.Containers) != 3 || len(resp.Timings) != 4 {
		t.Fatalf("unexpected options: %+v", resp)
	}
}
