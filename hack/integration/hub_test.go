package integration

import (
	"context"
	"testing"
)

func getTestClient(t *testing.T) *Client {
	t.Helper()
	c := NewClient(HubURLFromEnv())
	if err := c.HealthCheck(context.Background()); err != nil {
		t.Skipf("vendor hub not available at %s: %v", HubURLFromEnv(), err)
	}
	return c
}

func TestHubHealth(t *testing.T) {
	c := getTestClient(t)
	if err := c.HealthCheck(context.Background()); err != nil {
		t.Fatalf("health check: %v", err)
	}
}

func TestHubRoster(t *testing.T) {
	c := getTestClient(t)

	vendors, err := c.Roster(context.Background())
	if err != nil {
		t.Fatalf("Roster: %v", err)
	}
	if len(vendors) != 11 {
		t.Errorf("roster size = %d, want 11", len(vendors))
	}

	slugs := make(map[string]bool, len(vendors))
	for _, v := range vendors {
		slugs[v.Slug] = true
		if v.Reliability <= 0 || v.Reliability > 1 {
			t.Errorf("vendor %s reliability = %v, want (0, 1]", v.VendorID, v.Reliability)
		}
	}
	for _, want := range []string{"earthly", "clark", "fakemeats"} {
		if !slugs[want] {
			t.Errorf("roster missing slug %q", want)
		}
	}
}

func TestHubQuoteRoundTrip(t *testing.T) {
	c := getTestClient(t)
	ctx := context.Background()

	// Earthly Gourmet (reliability 0.98) floors Oat Barista Blend at
	// 3.50 * 0.98 = 3.43: a 3.45 offer is accepted.
	status, accept, err := c.RequestQuote(ctx, "earthly", QuoteRequest{
		Product: "Oat Barista Blend", Quantity: 12, OfferedPrice: 3.45,
	})
	if err != nil {
		t.Fatalf("RequestQuote: %v", err)
	}
	if status != 200 {
		t.Fatalf("status = %d, want 200", status)
	}
	if accept.Decision != "accept" {
		t.Fatalf("decision = %q, want accept", accept.Decision)
	}
	if accept.Price == nil || *accept.Price != 3.45 {
		t.Errorf("price = %v, want 3.45", accept.Price)
	}
	if accept.DeliveryDays == nil || *accept.DeliveryDays != 2 {
		t.Errorf("delivery_days = %v, want 2", accept.DeliveryDays)
	}

	// A lowball offer draws a counter 5% above the floor.
	status, reject, err := c.RequestQuote(ctx, "earthly", QuoteRequest{
		Product: "Oat Barista Blend", Quantity: 12, OfferedPrice: 2.00,
	})
	if err != nil {
		t.Fatalf("RequestQuote: %v", err)
	}
	if status != 200 {
		t.Fatalf("status = %d, want 200", status)
	}
	if reject.Decision != "reject" {
		t.Fatalf("decision = %q, want reject", reject.Decision)
	}
	if reject.Price == nil || *reject.Price != 3.60 {
		t.Errorf("counter = %v, want 3.60", reject.Price)
	}
}

func TestHubQuoteValidation(t *testing.T) {
	c := getTestClient(t)
	ctx := context.Background()

	bad := []QuoteRequest{
		{Product: "", Quantity: 10, OfferedPrice: 3.00},
		{Product: "Oat Barista Blend", Quantity: 0, OfferedPrice: 3.00},
		{Product: "Oat Barista Blend", Quantity: 10, OfferedPrice: -1},
	}
	for _, q := range bad {
		status, _, err := c.RequestQuote(ctx, "earthly", q)
		if err != nil {
			t.Fatalf("RequestQuote(%+v): %v", q, err)
		}
		if status != 400 {
			t.Errorf("RequestQuote(%+v) status = %d, want 400", q, status)
		}
	}
}

func TestHubUnknownSlug(t *testing.T) {
	c := getTestClient(t)

	status, _, err := c.RequestQuote(context.Background(), "nosuchvendor", QuoteRequest{
		Product: "Oat Barista Blend", Quantity: 10, OfferedPrice: 3.00,
	})
	if err != nil {
		t.Fatalf("RequestQuote: %v", err)
	}
	if status != 404 {
		t.Errorf("status = %d, want 404", status)
	}
}
