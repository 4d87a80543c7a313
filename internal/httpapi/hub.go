package httpapi

import "github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/vendor"

// DefaultVendors returns the standard simulated vendor ecosystem, matching
// the catalog's supplier directory.
func DefaultVendors() []MountedVendor {
	roster := []struct {
		slug        string
		vendorID    string
		name        string
		reliability float64
	}{
		{"earthly", "V-01", "Earthly Gourmet", 0.98},
		{"feesers", "V-02", "Feesers Food Dst", 0.92},
		{"clark", "V-03", "Clark Distributing", 0.88},
		{"lcg", "V-04", "LCG Foods", 0.95},
		{"miyokos", "V-05", "Miyokos Creamery", 0.99},
		{"rebel", "V-06", "Rebel Cheese", 0.96},
		{"treeline", "V-07", "Treeline Cheese", 0.94},
		{"vreamery", "V-08", "The Vreamery", 0.97},
		{"behive", "V-09", "The BE Hive", 0.93},
		{"allveg", "V-10", "All Vegetarian Inc", 0.85},
		{"fakemeats", "V-11", "FakeMeats.com", 0.99},
	}

	out := make([]MountedVendor, 0, len(roster))
	for _, v := range roster {
		out = append(out, MountedVendor{
			Slug:    v.slug,
			Service: vendor.NewService(vendor.NewPolicy(v.vendorID, v.name, v.reliability)),
		})
	}
	return out
}
