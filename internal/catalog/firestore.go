package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/model"
)

// FirestoreProvider serves the catalog from Firestore collections. Firestore
// has no case-insensitive contains query, so name search scans the products
// collection; catalogs are small enough that this is fine.
type FirestoreProvider struct {
	client *firestore.Client
}

func NewFirestoreProvider(projectID string) (*FirestoreProvider, error) {
	client, err := firestore.NewClient(context.Background(), projectID)
	if err != nil {
		return nil, fmt.Errorf("firestore client: %w", err)
	}
	return &FirestoreProvider{client: client}, nil
}

func (p *FirestoreProvider) Close() error {
	return p.client.Close()
}

// Seed writes the catalog data, overwriting existing documents.
func (p *FirestoreProvider) Seed(ctx context.Context, products []model.Product, vendors []model.Vendor, offers []model.VendorOffer) error {
	for _, prod := range products {
		if _, err := p.client.Collection("products").Doc(prod.ID).Set(ctx, prod); err != nil {
			return fmt.Errorf("seed product %s: %w", prod.ID, err)
		}
	}
	for _, v := range vendors {
		if _, err := p.client.Collection("vendors").Doc(v.ID).Set(ctx, v); err != nil {
			return fmt.Errorf("seed vendor %s: %w", v.ID, err)
		}
	}
	for i, o := range offers {
		docID := fmt.Sprintf("%s_%s_%03d", o.ProductID, o.VendorID, i)
		if _, err := p.client.Collection("vendor_offers").Doc(docID).Set(ctx, o); err != nil {
			return fmt.Errorf("seed offer %s: %w", docID, err)
		}
	}
	return nil
}

func (p *FirestoreProvider) ListProducts(ctx context.Context) ([]model.Product, error) {
	iter := p.client.Collection("products").OrderBy("product_id", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var out []model.Product
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate products: %w", err)
		}
		var prod model.Product
		if err := doc.DataTo(&prod); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		out = append(out, prod)
	}
	return out, nil
}

func (p *FirestoreProvider) GetProduct(ctx context.Context, productID string) (*model.Product, error) {
	doc, err := p.client.Collection("products").Doc(productID).Get(ctx)
	if err != nil {
		return nil, ErrNotFound
	}
	var prod model.Product
	if err := doc.DataTo(&prod); err != nil {
		return nil, fmt.Errorf("decode product: %w", err)
	}
	return &prod, nil
}

func (p *FirestoreProvider) FindProductByName(ctx context.Context, nameSubstring string) (*model.Product, error) {
	needle := strings.ToLower(strings.TrimSpace(nameSubstring))
	if needle == "" {
		return nil, ErrNotFound
	}
	products, err := p.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	for _, prod := range products {
		if strings.Contains(strings.ToLower(prod.Name), needle) {
			out := prod
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (p *FirestoreProvider) ListOffers(ctx context.Context, productID string) ([]model.VendorOffer, error) {
	iter := p.client.Collection("vendor_offers").
		Where("product_id", "==", productID).
		Documents(ctx)
	defer iter.Stop()

	var out []model.VendorOffer
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate offers: %w", err)
		}
		var o model.VendorOffer
		if err := doc.DataTo(&o); err != nil {
			return nil, fmt.Errorf("decode offer: %w", err)
		}
		out = append(out, o)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PriceWholesale < out[j].PriceWholesale
	})
	return out, nil
}

func (p *FirestoreProvider) GetVendor(ctx context.Context, vendorID string) (*model.Vendor, error) {
	doc, err := p.client.Collection("vendors").Doc(vendorID).Get(ctx)
	if err != nil {
		return nil, ErrNotFound
	}
	var v model.Vendor
	if err := doc.DataTo(&v); err != nil {
		return nil, fmt.Errorf("decode vendor: %w", err)
	}
	return &v, nil
}
