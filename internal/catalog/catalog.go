package catalog

import (
	"context"
	"errors"

	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/model"
)

// ErrNotFound is returned when a product or vendor does not exist.
var ErrNotFound = errors.New("not found")

// Provider is the read-only catalog consumed by the risk detector and the
// negotiation engine. Implementations must be safe for concurrent reads;
// the catalog is created once per run and never mutated afterwards.
type Provider interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, productID string) (*model.Product, error)
	// FindProductByName matches by case-insensitive substring. When several
	// products match, the one whose name matches at the earliest catalog
	// position wins.
	FindProductByName(ctx context.Context, nameSubstring string) (*model.Product, error)
	// ListOffers returns all standing offers for a product sorted ascending
	// by wholesale price; ties keep catalog order.
	ListOffers(ctx context.Context, productID string) ([]model.VendorOffer, error)
	GetVendor(ctx context.Context, vendorID string) (*model.Vendor, error)
}
