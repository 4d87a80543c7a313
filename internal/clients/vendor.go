package clients

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/httpclient"
	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/model"
)

// VendorClient sends purchase proposals to vendor endpoints. One client is
// shared across vendors; the endpoint comes from the catalog per call.
type VendorClient struct {
	http *httpclient.Client
}

// NewVendorClient creates a client with the given per-call timeout.
func NewVendorClient(timeout time.Duration) *VendorClient {
	return &VendorClient{
		http: httpclient.NewClient("vendor", timeout),
	}
}

// RequestQuote posts a proposal to a vendor's quote endpoint and returns its
// decision. Transport errors and HTTP errors both surface as errors; the
// caller treats them as an unreachable vendor.
func (c *VendorClient) RequestQuote(ctx context.Context, endpoint string, req model.QuoteRequest) (*model.QuoteResponse, error) {
	url := strings.TrimRight(endpoint, "/") + "/v1/quotes"

	var resp model.QuoteResponse
	if err := c.http.PostJSON(ctx, url, req, &resp); err != nil {
		return nil, fmt.Errorf("vendor quote %s: %w", url, err)
	}
	return &resp, nil
}
