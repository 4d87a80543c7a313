package strategy

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/model"
)

// MongoStore reads strategy records from a MongoDB collection. Substring
// matching and the tie-break happen client-side so the semantics match the
// memory store exactly.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(client *mongo.Client, dbName, collName string) *MongoStore {
	return &MongoStore{coll: client.Database(dbName).Collection(collName)}
}

// Seed replaces the collection contents with the given records.
func (s *MongoStore) Seed(ctx context.Context, records []model.StrategyRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := s.coll.Drop(ctx); err != nil {
		return err
	}
	docs := make([]interface{}, len(records))
	for i, rec := range records {
		docs[i] = rec
	}
	_, err := s.coll.InsertMany(ctx, docs)
	return err
}

func (s *MongoStore) Lookup(ctx context.Context, nameSubstring string) (*model.StrategyRecord, error) {
	needle := strings.ToLower(strings.TrimSpace(nameSubstring))
	if needle == "" {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cur, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var records []model.StrategyRecord
	if err := cur.All(ctx, &records); err != nil {
		return nil, err
	}

	var matches []model.StrategyRecord
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.ProductName), needle) {
			matches = append(matches, rec)
		}
	}
	if len(matches) == 0 {
		return nil, nil
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if len(matches[i].ProductName) != len(matches[j].ProductName) {
			return len(matches[i].ProductName) > len(matches[j].ProductName)
		}
		return matches[i].ProductName < matches[j].ProductName
	})
	out := matches[0]
	return &out, nil
}
