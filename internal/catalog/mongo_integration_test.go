//go:build integration

package catalog

import (
	"context"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func mongoTestClient(t *testing.T) *mongo.Client {
	t.Helper()
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("set MONGO_URI (e.g. mongodb://localhost:27017) to run integration test")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	})
	return client
}

func TestMongoProviderIntegration(t *testing.T) {
	client := mongoTestClient(t)
	ctx := context.Background()
	now := time.Now().UTC()

	p := NewMongoProvider(client, "procurement_catalog_test")
	if err := p.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes: %v", err)
	}
	if err := p.Seed(ctx, SeedProducts(), SeedVendors("http://hub:8090"), SeedOffers(now)); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	prod, err := p.GetProduct(ctx, "P-OAT1")
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if prod.Name != "Oat Barista Blend" {
		t.Errorf("product name = %q, want Oat Barista Blend", prod.Name)
	}

	offers, err := p.ListOffers(ctx, "P-OAT1")
	if err != nil {
		t.Fatalf("ListOffers: %v", err)
	}
	wantOrder := []string{"V-03", "V-01", "V-04"}
	if len(offers) != len(wantOrder) {
		t.Fatalf("offers = %d, want %d", len(offers), len(wantOrder))
	}
	for i, want := range wantOrder {
		if offers[i].VendorID != want {
			t.Errorf("offers[%d] = %v, want %v", i, offers[i].VendorID, want)
		}
	}

	found, err := p.FindProductByName(ctx, "oat barista")
	if err != nil {
		t.Fatalf("FindProductByName: %v", err)
	}
	if found == nil || found.ID != "P-OAT1" {
		t.Errorf("FindProductByName = %+v, want P-OAT1", found)
	}

	vend, err := p.GetVendor(ctx, "V-03")
	if err != nil {
		t.Fatalf("GetVendor: %v", err)
	}
	if vend.ContactEndpoint != "http://hub:8090/clark" {
		t.Errorf("endpoint = %q, want http://hub:8090/clark", vend.ContactEndpoint)
	}
}
