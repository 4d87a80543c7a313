package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/model"
)

func TestQuoteOverHTTP(t *testing.T) {
	srv := httptest.NewServer(NewRouter(DefaultVendors()))
	t.Cleanup(srv.Close)

	// Earthly Gourmet (0.98): floor for Oat Barista Blend = 3.43.
	body, _ := json.Marshal(model.QuoteRequest{
		Product:      "Oat Barista Blend",
		Quantity:     12,
		OfferedPrice: 3.45,
	})
	resp, err := http.Post(srv.URL+"/earthly/v1/quotes", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /earthly/v1/quotes error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %v, want %v", resp.StatusCode, http.StatusOK)
	}

	var quote model.QuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if quote.Decision != model.DecisionAccept {
		t.Errorf("decision = %v, want accept", quote.Decision)
	}
	if quote.Price == nil || *quote.Price != 3.45 {
		t.Errorf("price = %v, want 3.45", quote.Price)
	}
	if quote.DeliveryDays == nil || *quote.DeliveryDays != 2 {
		t.Errorf("delivery_days = %v, want 2", quote.DeliveryDays)
	}
}

func TestQuoteOverHTTP_Rejection(t *testing.T) {
	srv := httptest.NewServer(NewRouter(DefaultVendors()))
	t.Cleanup(srv.Close)

	body, _ := json.Marshal(model.QuoteRequest{
		Product:      "Oat Barista Blend",
		Quantity:     12,
		OfferedPrice: 2.00,
	})
	resp, err := http.Post(srv.URL+"/earthly/v1/quotes", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST error: %v", err)
	}
	defer resp.Body.Close()

	var quote model.QuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if quote.Decision != model.DecisionReject {
		t.Errorf("decision = %v, want reject", quote.Decision)
	}
	// Counter = round2(3.50 * 0.98 * 1.05) = 3.60, strictly above the floor.
	if quote.Price == nil || *quote.Price != 3.60 {
		t.Errorf("counter price = %v, want 3.60", quote.Price)
	}
	if quote.DeliveryDays != nil {
		t.Errorf("delivery_days = %v, want nil on rejection", *quote.DeliveryDays)
	}
}

func TestQuoteOverHTTP_BadRequest(t *testing.T) {
	srv := httptest.NewServer(NewRouter(DefaultVendors()))
	t.Cleanup(srv.Close)

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"product":`},
		{name: "missing product", body: `{"quantity":10,"offered_price":3.00}`},
		{name: "zero quantity", body: `{"product":"Oat Barista Blend","quantity":0,"offered_price":3.00}`},
		{name: "negative price", body: `{"product":"Oat Barista Blend","quantity":10,"offered_price":-1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/clark/v1/quotes", "application/json", bytes.NewReader([]byte(tt.body)))
			if err != nil {
				t.Fatalf("POST error: %v", err)
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %v, want %v", resp.StatusCode, http.StatusBadRequest)
			}
		})
	}
}

func TestHealthAndRoster(t *testing.T) {
	srv := httptest.NewServer(NewRouter(DefaultVendors()))
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health error: %v", err)
	}
	defer resp.Body.Close()

	var health struct {
		Status  string `json:"status"`
		Vendors int    `json:"vendors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if health.Status != "ok" {
		t.Errorf("health status = %v, want ok", health.Status)
	}
	if health.Vendors != 11 {
		t.Errorf("health vendors = %v, want 11", health.Vendors)
	}

	resp2, err := http.Get(srv.URL + "/vendors")
	if err != nil {
		t.Fatalf("GET /vendors error: %v", err)
	}
	defer resp2.Body.Close()

	var roster struct {
		Vendors []map[string]any `json:"vendors"`
	}
	if err := json.NewDecoder(resp2.Body).Decode(&roster); err != nil {
		t.Fatalf("decode roster: %v", err)
	}
	if len(roster.Vendors) != 11 {
		t.Errorf("roster size = %v, want 11", len(roster.Vendors))
	}
}
