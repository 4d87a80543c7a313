package catalog

import (
	"time"

	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/model"
)

// Vendor hub mount slugs, keyed by vendor ID. The hub serves each vendor
// under its own path prefix, so a contact endpoint is hubBaseURL + "/" + slug.
var vendorSlugs = map[string]string{
	"V-01": "earthly",
	"V-02": "feesers",
	"V-03": "clark",
	"V-04": "lcg",
	"V-05": "miyokos",
	"V-06": "rebel",
	"V-07": "treeline",
	"V-08": "vreamery",
	"V-09": "behive",
	"V-10": "allveg",
	"V-11": "fakemeats",
}

// SeedVendors returns the standard supplier directory with contact endpoints
// rooted at the given vendor hub base URL.
func SeedVendors(hubBaseURL string) []model.Vendor {
	base := []model.Vendor{
		{ID: "V-01", Name: "Earthly Gourmet", Type: "Distributor", ReliabilityScore: 0.98},
		{ID: "V-02", Name: "Feesers Food Dst", Type: "Distributor", ReliabilityScore: 0.92},
		{ID: "V-03", Name: "Clark Distributing", Type: "Distributor", ReliabilityScore: 0.88},
		{ID: "V-04", Name: "LCG Foods", Type: "Distributor", ReliabilityScore: 0.95},
		{ID: "V-05", Name: "Miyokos Creamery", Type: "Maker", ReliabilityScore: 0.99},
		{ID: "V-06", Name: "Rebel Cheese", Type: "Maker", ReliabilityScore: 0.96},
		{ID: "V-07", Name: "Treeline Cheese", Type: "Maker", ReliabilityScore: 0.94},
		{ID: "V-08", Name: "The Vreamery", Type: "Aggregator", ReliabilityScore: 0.97},
		{ID: "V-09", Name: "The BE Hive", Type: "Specialist", ReliabilityScore: 0.93},
		{ID: "V-10", Name: "All Vegetarian Inc", Type: "Specialist", ReliabilityScore: 0.85},
		{ID: "V-11", Name: "FakeMeats.com", Type: "Aggregator", ReliabilityScore: 0.99},
	}
	for i := range base {
		base[i].ContactEndpoint = hubBaseURL + "/" + vendorSlugs[base[i].ID]
	}
	return base
}

// SeedProducts returns the store's inventory snapshot. Oat Barista Blend
// sits under one day of supply; everything else clears the low-stock
// threshold.
func SeedProducts() []model.Product {
	return []model.Product{
		{ID: "P-OAT1", Name: "Oat Barista Blend", Category: "Beverage", StockQuantity: 12, SalesVelocityDaily: 15, TargetStockLevel: 100},
		{ID: "P-OAT2", Name: "Almond Milk Unsweet", Category: "Beverage", StockQuantity: 45, SalesVelocityDaily: 5, TargetStockLevel: 50},
		{ID: "P-DAI", Name: "Soy Yogurt (Plain)", Category: "Dairy-Alt", StockQuantity: 30, SalesVelocityDaily: 3, TargetStockLevel: 40},
		{ID: "P-CREAM", Name: "Cultured Cashew Creamer", Category: "Dairy-Alt", StockQuantity: 15, SalesVelocityDaily: 2, TargetStockLevel: 30},
		{ID: "P-BRIE", Name: "Cultured Truffle Brie", Category: "Cheese", StockQuantity: 8, SalesVelocityDaily: 2, TargetStockLevel: 20},
		{ID: "P-CHED", Name: "Aged Pepper Jack Block", Category: "Cheese", StockQuantity: 35, SalesVelocityDaily: 4, TargetStockLevel: 50},
		{ID: "P-SMOK", Name: "Smoked Gouda Style Wheel", Category: "Cheese", StockQuantity: 15, SalesVelocityDaily: 1, TargetStockLevel: 30},
		{ID: "P-KALE", Name: "Local Organic Kale", Category: "Produce", StockQuantity: 5, SalesVelocityDaily: 1, TargetStockLevel: 10},
		{ID: "P-TEM", Name: "Artisanal Tempeh Batch", Category: "Produce", StockQuantity: 10, SalesVelocityDaily: 2, TargetStockLevel: 20},
		{ID: "P-FERM", Name: "Kimchi - Small Batch", Category: "Produce", StockQuantity: 25, SalesVelocityDaily: 3, TargetStockLevel: 30},
		{ID: "P-PEP", Name: "Seitan Pepperoni (Bulk)", Category: "Deli", StockQuantity: 40, SalesVelocityDaily: 8, TargetStockLevel: 100},
		{ID: "P-SAUS", Name: "Beyond Sausage Links", Category: "Deli", StockQuantity: 80, SalesVelocityDaily: 10, TargetStockLevel: 150},
		{ID: "P-BEHI", Name: "Chorizo Seitan", Category: "Deli", StockQuantity: 50, SalesVelocityDaily: 5, TargetStockLevel: 75},
		{ID: "P-FISH", Name: "Vegan Jumbo Shrimp", Category: "Frozen", StockQuantity: 5, SalesVelocityDaily: 1, TargetStockLevel: 20},
		{ID: "P-PIZ", Name: "Frozen Margherita Pizza", Category: "Frozen", StockQuantity: 120, SalesVelocityDaily: 15, TargetStockLevel: 200},
		{ID: "P-MAC", Name: "Frozen Mac & Cheese", Category: "Frozen", StockQuantity: 90, SalesVelocityDaily: 10, TargetStockLevel: 150},
		{ID: "P-FAL", Name: "Falafel Mix Dry", Category: "Pantry", StockQuantity: 30, SalesVelocityDaily: 5, TargetStockLevel: 50},
		{ID: "P-MAY", Name: "Vegan Mayo Large", Category: "Pantry", StockQuantity: 25, SalesVelocityDaily: 2, TargetStockLevel: 50},
		{ID: "P-TUNA", Name: "Plant-Based Tuna Cans", Category: "Pantry", StockQuantity: 150, SalesVelocityDaily: 10, TargetStockLevel: 300},
		{ID: "P-COOK", Name: "Gluten-Free Cookies", Category: "Pantry", StockQuantity: 50, SalesVelocityDaily: 4, TargetStockLevel: 80},
		{ID: "P-SLAW", Name: "Ready-Mix Coleslaw", Category: "Produce", StockQuantity: 25, SalesVelocityDaily: 5, TargetStockLevel: 40},
	}
}

// SeedOffers returns the standing marketplace offers. Expiry dates are
// relative to now: regular stock is 120 days out, clearance stock 5, so the
// pepperoni clearance batch shows up as a near-term waste risk.
func SeedOffers(now time.Time) []model.VendorOffer {
	fresh := now.AddDate(0, 0, 120)
	clearance := now.AddDate(0, 0, 5)

	offer := func(productID, vendorID string, price float64, minQty, days int, expiry time.Time) model.VendorOffer {
		e := expiry
		return model.VendorOffer{
			ProductID:      productID,
			VendorID:       vendorID,
			PriceWholesale: price,
			MinOrderQty:    minQty,
			DeliveryDays:   days,
			BatchExpiry:    &e,
		}
	}

	return []model.VendorOffer{
		// Oat milk: three distributors competing on price vs speed.
		offer("P-OAT1", "V-01", 3.50, 12, 2, fresh),
		offer("P-OAT1", "V-03", 3.25, 50, 5, fresh),
		offer("P-OAT1", "V-04", 3.80, 6, 1, fresh),

		// Artisanal cheese: maker direct vs aggregator markup.
		offer("P-BRIE", "V-06", 9.50, 10, 4, fresh),
		offer("P-BRIE", "V-08", 11.00, 1, 2, fresh),
		offer("P-SMOK", "V-07", 8.90, 15, 3, fresh),

		// Meat alternatives: specialist price vs clearance stock.
		offer("P-PEP", "V-09", 12.00, 5, 3, fresh),
		offer("P-PEP", "V-11", 8.50, 20, 2, clearance),

		// Frozen goods.
		offer("P-FISH", "V-10", 14.00, 10, 7, fresh),
		offer("P-FISH", "V-02", 14.50, 20, 3, fresh),

		// Standard stock.
		offer("P-TUNA", "V-04", 5.50, 50, 2, fresh),
		offer("P-TUNA", "V-03", 5.30, 100, 4, fresh),
		offer("P-COOK", "V-11", 4.10, 20, 1, fresh),
		offer("P-MAC", "V-02", 7.90, 50, 3, fresh),
		offer("P-PIZ", "V-04", 9.20, 10, 1, fresh),
		offer("P-SLAW", "V-08", 3.50, 5, 2, fresh),
	}
}

// NewSeededMemoryProvider builds the default in-memory catalog used when no
// external backend is configured.
func NewSeededMemoryProvider(hubBaseURL string, now time.Time) *MemoryProvider {
	return NewMemoryProvider(SeedProducts(), SeedVendors(hubBaseURL), SeedOffers(now))
}
