// Package integration holds black-box tests that run against a live vendor
// hub (and optionally a Mongo instance). Tests skip themselves when the
// target services are not reachable, so the suite is safe to run anywhere.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// DefaultHubURL is the vendor hub address in the local compose setup.
const DefaultHubURL = "http://localhost:8090"

// Client is the integration test client for the vendor hub.
type Client struct {
	hubURL string
	http   *http.Client
}

func NewClient(hubURL string) *Client {
	return &Client{
		hubURL: strings.TrimRight(hubURL, "/"),
		http:   &http.Client{Timeout: 30 * time.Second},
	}
}

// HubURLFromEnv resolves the hub address from VENDOR_HUB_URL, falling back
// to the local default.
func HubURLFromEnv() string {
	if v := strings.TrimSpace(os.Getenv("VENDOR_HUB_URL")); v != "" {
		return v
	}
	return DefaultHubURL
}

// QuoteRequest mirrors the vendor quote endpoint's request body.
type QuoteRequest struct {
	Product      string  `json:"product"`
	Quantity     int     `json:"quantity"`
	OfferedPrice float64 `json:"offered_price"`
}

// QuoteResponse mirrors the vendor quote endpoint's response body.
type QuoteResponse struct {
	Decision     string   `json:"decision"`
	Price        *float64 `json:"price,omitempty"`
	DeliveryDays *int     `json:"delivery_days,omitempty"`
}

// VendorInfo is one entry of the hub's vendor roster.
type VendorInfo struct {
	Slug        string  `json:"slug"`
	VendorID    string  `json:"vendor_id"`
	Name        string  `json:"name"`
	Reliability float64 `json:"reliability"`
}

// HealthCheck verifies the hub answers on /health.
func (c *Client) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.hubURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed: %d", resp.StatusCode)
	}
	return nil
}

// Roster fetches the hub's vendor listing.
func (c *Client) Roster(ctx context.Context) ([]VendorInfo, error) {
	var result struct {
		Vendors []VendorInfo `json:"vendors"`
	}
	if err := c.getJSON(ctx, c.hubURL+"/vendors", &result); err != nil {
		return nil, err
	}
	return result.Vendors, nil
}

// RequestQuote posts a proposal to one vendor's quote endpoint and returns
// the decision along with the HTTP status.
func (c *Client) RequestQuote(ctx context.Context, slug string, q QuoteRequest) (int, *QuoteResponse, error) {
	body, err := json.Marshal(q)
	if err != nil {
		return 0, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.hubURL+"/"+slug+"/v1/quotes", bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil, nil
	}

	var decision QuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&decision); err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, &decision, nil
}

func (c *Client) getJSON(ctx context.Context, url string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(bodyBytes))
	}
	return json.NewDecoder(resp.Body).Decode(result)
}
