package audit

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/model"
)

// MongoStore persists outcomes to a MongoDB collection, one document per
// session.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(client *mongo.Client, dbName, collName string) *MongoStore {
	return &MongoStore{coll: client.Database(dbName).Collection(collName)}
}

// EnsureIndexes creates the unique session index and the product history
// index.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "session_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "product_id", Value: 1}, {Key: "started_at", Value: 1}},
		},
	})
	return err
}

func (s *MongoStore) Save(ctx context.Context, outcome model.NegotiationOutcome) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Upsert on session ID so retried saves stay idempotent.
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"session_id": outcome.SessionID},
		bson.M{"$setOnInsert": outcome},
		options.Update().SetUpsert(true),
	)
	return err
}

func (s *MongoStore) ListByProduct(ctx context.Context, productID string) ([]model.NegotiationOutcome, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cur, err := s.coll.Find(ctx,
		bson.M{"product_id": productID},
		options.Find().SetSort(bson.D{{Key: "started_at", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var outcomes []model.NegotiationOutcome
	if err := cur.All(ctx, &outcomes); err != nil {
		return nil, err
	}
	return outcomes, nil
}
