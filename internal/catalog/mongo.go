package catalog

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/model"
)

// MongoProvider serves the catalog from MongoDB collections. Collections are
// expected to be seeded before a run; the provider never writes to them
// except through Seed.
type MongoProvider struct {
	products *mongo.Collection
	vendors  *mongo.Collection
	offers   *mongo.Collection
}

func NewMongoProvider(client *mongo.Client, dbName string) *MongoProvider {
	db := client.Database(dbName)
	return &MongoProvider{
		products: db.Collection("products"),
		vendors:  db.Collection("vendors"),
		offers:   db.Collection("vendor_offers"),
	}
}

func (p *MongoProvider) EnsureIndexes(ctx context.Context) error {
	if _, err := p.offers.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "product_id", Value: 1}, {Key: "price_wholesale", Value: 1}},
	}); err != nil {
		return err
	}
	_, err := p.products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "product_id", Value: 1}},
	})
	return err
}

// Seed replaces the catalog collections with the given data.
func (p *MongoProvider) Seed(ctx context.Context, products []model.Product, vendors []model.Vendor, offers []model.VendorOffer) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for _, coll := range []*mongo.Collection{p.products, p.vendors, p.offers} {
		if err := coll.Drop(ctx); err != nil {
			return err
		}
	}

	prodDocs := make([]interface{}, len(products))
	for i, prod := range products {
		prodDocs[i] = prod
	}
	if _, err := p.products.InsertMany(ctx, prodDocs); err != nil {
		return err
	}

	vendorDocs := make([]interface{}, len(vendors))
	for i, v := range vendors {
		vendorDocs[i] = v
	}
	if _, err := p.vendors.InsertMany(ctx, vendorDocs); err != nil {
		return err
	}

	offerDocs := make([]interface{}, len(offers))
	for i, o := range offers {
		offerDocs[i] = o
	}
	_, err := p.offers.InsertMany(ctx, offerDocs)
	return err
}

func (p *MongoProvider) ListProducts(ctx context.Context) ([]model.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cur, err := p.products.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "product_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []model.Product
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *MongoProvider) GetProduct(ctx context.Context, productID string) (*model.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res := p.products.FindOne(ctx, bson.M{"product_id": productID})
	if res.Err() == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if res.Err() != nil {
		return nil, res.Err()
	}
	var prod model.Product
	if err := res.Decode(&prod); err != nil {
		return nil, err
	}
	return &prod, nil
}

func (p *MongoProvider) FindProductByName(ctx context.Context, nameSubstring string) (*model.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	needle := strings.TrimSpace(nameSubstring)
	if needle == "" {
		return nil, ErrNotFound
	}
	filter := bson.M{"name": primitive.Regex{Pattern: regexQuote(needle), Options: "i"}}
	opts := options.FindOne().SetSort(bson.D{{Key: "product_id", Value: 1}})
	res := p.products.FindOne(ctx, filter, opts)
	if res.Err() == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if res.Err() != nil {
		return nil, res.Err()
	}
	var prod model.Product
	if err := res.Decode(&prod); err != nil {
		return nil, err
	}
	return &prod, nil
}

func (p *MongoProvider) ListOffers(ctx context.Context, productID string) ([]model.VendorOffer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Secondary sort on _id keeps insertion (catalog) order for equal prices.
	opts := options.Find().SetSort(bson.D{{Key: "price_wholesale", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := p.offers.Find(ctx, bson.M{"product_id": productID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []model.VendorOffer
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *MongoProvider) GetVendor(ctx context.Context, vendorID string) (*model.Vendor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res := p.vendors.FindOne(ctx, bson.M{"vendor_id": vendorID})
	if res.Err() == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if res.Err() != nil {
		return nil, res.Err()
	}
	var v model.Vendor
	if err := res.Decode(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

// regexQuote escapes regex metacharacters so substring search stays literal.
func regexQuote(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(`\.+*?()|[]{}^$`, r) {
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
