package risk

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/catalog"
	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/model"
)

const (
	// LowStockDaysThreshold flags products with fewer days of supply left.
	LowStockDaysThreshold = 3.0
	// ExpiryWindow flags products whose nearest offer batch expires this soon.
	ExpiryWindow = 7 * 24 * time.Hour
)

// LowStockItem is one product at risk of stocking out.
type LowStockItem struct {
	Product      model.Product `json:"product"`
	DaysOfSupply float64       `json:"days_of_supply"`
}

// ExpiryItem is one product whose cheapest replenishment stock expires soon.
type ExpiryItem struct {
	Product       model.Product `json:"product"`
	NearestExpiry time.Time     `json:"nearest_expiry"`
}

// Report is the result of one inventory risk scan. The two lists are
// disjoint views: a product can appear in both.
type Report struct {
	LowStock     []LowStockItem `json:"low_stock"`
	ExpiringSoon []ExpiryItem   `json:"expiring_soon"`
	ScannedAt    time.Time      `json:"scanned_at"`
}

// Detector scans the catalog for stock and expiry risk. It is a pure read
// over the catalog provider.
type Detector struct {
	catalog catalog.Provider
}

func NewDetector(cat catalog.Provider) *Detector {
	return &Detector{catalog: cat}
}

// Scan produces the low-stock and expiring-soon reports as of now.
func (d *Detector) Scan(ctx context.Context, now time.Time) (Report, error) {
	products, err := d.catalog.ListProducts(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("list products: %w", err)
	}

	report := Report{ScannedAt: now}

	for _, prod := range products {
		// Zero-velocity products cannot stock out; they are skipped rather
		// than dividing by zero.
		days, ok := prod.DaysOfSupply()
		if ok && days < LowStockDaysThreshold {
			report.LowStock = append(report.LowStock, LowStockItem{Product: prod, DaysOfSupply: days})
		}

		offers, err := d.catalog.ListOffers(ctx, prod.ID)
		if err != nil {
			return Report{}, fmt.Errorf("list offers for %s: %w", prod.ID, err)
		}
		if nearest := nearestExpiry(offers); nearest != nil && nearest.Before(now.Add(ExpiryWindow)) {
			report.ExpiringSoon = append(report.ExpiringSoon, ExpiryItem{Product: prod, NearestExpiry: *nearest})
		}
	}

	// Most urgent first.
	sort.SliceStable(report.LowStock, func(i, j int) bool {
		return report.LowStock[i].DaysOfSupply < report.LowStock[j].DaysOfSupply
	})
	sort.SliceStable(report.ExpiringSoon, func(i, j int) bool {
		return report.ExpiringSoon[i].NearestExpiry.Before(report.ExpiringSoon[j].NearestExpiry)
	})

	return report, nil
}

func nearestExpiry(offers []model.VendorOffer) *time.Time {
	var nearest *time.Time
	for _, o := range offers {
		if o.BatchExpiry == nil {
			continue
		}
		if nearest == nil || o.BatchExpiry.Before(*nearest) {
			e := *o.BatchExpiry
			nearest = &e
		}
	}
	return nearest
}
