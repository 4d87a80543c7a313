package risk

import (
	"context"
	"testing"
	"time"

	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/catalog"
	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/model"
)

func expiry(t time.Time) *time.Time { return &t }

func TestScan_LowStock(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	products := []model.Product{
		{ID: "P-1", Name: "Critical", StockQuantity: 12, SalesVelocityDaily: 15},  // 0.8 days
		{ID: "P-2", Name: "Urgent", StockQuantity: 5, SalesVelocityDaily: 2},      // 2.5 days
		{ID: "P-3", Name: "Healthy", StockQuantity: 45, SalesVelocityDaily: 5},    // 9 days
		{ID: "P-4", Name: "Boundary", StockQuantity: 9, SalesVelocityDaily: 3},    // exactly 3 days
		{ID: "P-5", Name: "No Velocity", StockQuantity: 0, SalesVelocityDaily: 0}, // cannot stock out
	}
	cat := catalog.NewMemoryProvider(products, nil, nil)

	report, err := NewDetector(cat).Scan(context.Background(), now)
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}

	if len(report.LowStock) != 2 {
		t.Fatalf("LowStock count = %v, want 2", len(report.LowStock))
	}

	// Most urgent first.
	if report.LowStock[0].Product.ID != "P-1" {
		t.Errorf("LowStock[0] = %v, want P-1", report.LowStock[0].Product.ID)
	}
	if report.LowStock[1].Product.ID != "P-2" {
		t.Errorf("LowStock[1] = %v, want P-2", report.LowStock[1].Product.ID)
	}

	if got := report.LowStock[0].DaysOfSupply; got != 0.8 {
		t.Errorf("LowStock[0].DaysOfSupply = %v, want 0.8", got)
	}
}

func TestScan_ZeroVelocityExcluded(t *testing.T) {
	products := []model.Product{
		{ID: "P-SLOW", Name: "Dead Stock", StockQuantity: 1, SalesVelocityDaily: 0},
	}
	cat := catalog.NewMemoryProvider(products, nil, nil)

	report, err := NewDetector(cat).Scan(context.Background(), time.Now().UTC())
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if len(report.LowStock) != 0 {
		t.Errorf("LowStock count = %v, want 0 (zero velocity cannot stock out)", len(report.LowStock))
	}
}

func TestScan_ExpiringSoon(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	products := []model.Product{
		{ID: "P-1", Name: "Soon", StockQuantity: 100, SalesVelocityDaily: 1},
		{ID: "P-2", Name: "Fresh", StockQuantity: 100, SalesVelocityDaily: 1},
		{ID: "P-3", Name: "No Expiry", StockQuantity: 100, SalesVelocityDaily: 1},
	}
	offers := []model.VendorOffer{
		// Nearest expiry for P-1 is the minimum across its offers.
		{ProductID: "P-1", VendorID: "V-A", PriceWholesale: 5, BatchExpiry: expiry(now.AddDate(0, 0, 30))},
		{ProductID: "P-1", VendorID: "V-B", PriceWholesale: 6, BatchExpiry: expiry(now.AddDate(0, 0, 3))},
		{ProductID: "P-2", VendorID: "V-A", PriceWholesale: 5, BatchExpiry: expiry(now.AddDate(0, 0, 60))},
		{ProductID: "P-3", VendorID: "V-A", PriceWholesale: 5},
	}
	cat := catalog.NewMemoryProvider(products, nil, offers)

	report, err := NewDetector(cat).Scan(context.Background(), now)
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}

	if len(report.ExpiringSoon) != 1 {
		t.Fatalf("ExpiringSoon count = %v, want 1", len(report.ExpiringSoon))
	}
	if report.ExpiringSoon[0].Product.ID != "P-1" {
		t.Errorf("ExpiringSoon[0] = %v, want P-1", report.ExpiringSoon[0].Product.ID)
	}
	if !report.ExpiringSoon[0].NearestExpiry.Equal(now.AddDate(0, 0, 3)) {
		t.Errorf("NearestExpiry = %v, want %v", report.ExpiringSoon[0].NearestExpiry, now.AddDate(0, 0, 3))
	}
}

func TestScan_SeededCatalog(t *testing.T) {
	now := time.Now().UTC()
	cat := catalog.NewSeededMemoryProvider("http://localhost:8090", now)

	report, err := NewDetector(cat).Scan(context.Background(), now)
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}

	// Oat Barista Blend (0.8 days) must lead the low-stock report.
	if len(report.LowStock) == 0 {
		t.Fatal("LowStock is empty, want at least Oat Barista Blend")
	}
	if report.LowStock[0].Product.ID != "P-OAT1" {
		t.Errorf("LowStock[0] = %v, want P-OAT1", report.LowStock[0].Product.ID)
	}
}
