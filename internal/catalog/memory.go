package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/model"
)

// MemoryProvider serves the catalog from memory. All data is fixed at
// construction, so reads need no locking.
type MemoryProvider struct {
	products []model.Product
	vendors  map[string]model.Vendor
	offers   map[string][]model.VendorOffer // productID -> offers sorted by price
}

// NewMemoryProvider builds a provider from raw catalog data. Offers are
// sorted ascending by wholesale price up front; the sort is stable so equal
// prices keep their catalog order.
func NewMemoryProvider(products []model.Product, vendors []model.Vendor, offers []model.VendorOffer) *MemoryProvider {
	p := &MemoryProvider{
		products: append([]model.Product(nil), products...),
		vendors:  make(map[string]model.Vendor, len(vendors)),
		offers:   make(map[string][]model.VendorOffer),
	}
	for _, v := range vendors {
		p.vendors[v.ID] = v
	}
	for _, o := range offers {
		p.offers[o.ProductID] = append(p.offers[o.ProductID], o)
	}
	for id := range p.offers {
		list := p.offers[id]
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].PriceWholesale < list[j].PriceWholesale
		})
		p.offers[id] = list
	}
	return p
}

func (p *MemoryProvider) ListProducts(ctx context.Context) ([]model.Product, error) {
	_ = ctx
	out := make([]model.Product, len(p.products))
	copy(out, p.products)
	return out, nil
}

func (p *MemoryProvider) GetProduct(ctx context.Context, productID string) (*model.Product, error) {
	_ = ctx
	for _, prod := range p.products {
		if prod.ID == productID {
			out := prod
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (p *MemoryProvider) FindProductByName(ctx context.Context, nameSubstring string) (*model.Product, error) {
	_ = ctx
	needle := strings.ToLower(strings.TrimSpace(nameSubstring))
	if needle == "" {
		return nil, ErrNotFound
	}
	for _, prod := range p.products {
		if strings.Contains(strings.ToLower(prod.Name), needle) {
			out := prod
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (p *MemoryProvider) ListOffers(ctx context.Context, productID string) ([]model.VendorOffer, error) {
	_ = ctx
	list := p.offers[productID]
	out := make([]model.VendorOffer, len(list))
	copy(out, list)
	return out, nil
}

func (p *MemoryProvider) GetVendor(ctx context.Context, vendorID string) (*model.Vendor, error) {
	_ = ctx
	v, ok := p.vendors[vendorID]
	if !ok {
		return nil, ErrNotFound
	}
	out := v
	return &out, nil
}
