// procurement runs one full procurement cycle: scan the catalog for
// inventory risk, negotiate replenishment for every low-stock product
// against the vendor hub, and print the run summary as JSON.
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/audit"
	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/catalog"
	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/clients"
	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/config"
	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/events"
	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/negotiation"
	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/orchestrator"
	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/risk"
	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/strategy"
)

func main() {
	cfg := config.LoadProcurement()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var mongoClient *mongo.Client
	if cfg.MongoURI != "" {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		c, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
		cancel()
		if err != nil {
			log.Fatal(err)
		}
		mongoClient = c
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = mongoClient.Disconnect(disconnectCtx)
		}()
	}

	cat := buildCatalog(ctx, cfg, mongoClient)
	strat := buildStrategy(cfg, mongoClient)
	auditStore := buildAudit(ctx, cfg, mongoClient)

	publisher := events.NewPublisher("procurement")
	if cfg.EventWebhookURL != "" {
		for _, t := range []string{events.TypeRiskDetected, events.TypeNegotiationCompleted, events.TypeDealClosed} {
			publisher.RegisterEndpoint(t, cfg.EventWebhookURL)
		}
		log.Printf("event webhook enabled url=%s", cfg.EventWebhookURL)
	}

	engine := negotiation.NewEngine(cat, strat, clients.NewVendorClient(cfg.VendorTimeout))
	orch := orchestrator.New(cat, risk.NewDetector(cat), engine, publisher, auditStore, cfg.MaxConcurrentSessions)

	summary, err := orch.Run(ctx)
	if err != nil {
		log.Fatalf("procurement run failed: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		log.Fatal(err)
	}
}

func buildCatalog(ctx context.Context, cfg config.ProcurementConfig, mongoClient *mongo.Client) catalog.Provider {
	now := time.Now().UTC()

	switch cfg.CatalogBackend {
	case config.BackendMongo:
		if mongoClient == nil {
			log.Fatal("CATALOG_BACKEND=mongo requires MONGO_URI")
		}
		p := catalog.NewMongoProvider(mongoClient, cfg.MongoDatabase)
		if err := p.EnsureIndexes(ctx); err != nil {
			log.Printf("mongo index creation failed: %v", err)
		}
		if err := p.Seed(ctx, catalog.SeedProducts(), catalog.SeedVendors(cfg.VendorHubURL), catalog.SeedOffers(now)); err != nil {
			log.Fatalf("seed mongo catalog: %v", err)
		}
		log.Printf("catalog backend: mongo db=%s", cfg.MongoDatabase)
		return p
	case config.BackendFirestore:
		if cfg.FirestoreProject == "" {
			log.Fatal("CATALOG_BACKEND=firestore requires FIRESTORE_PROJECT")
		}
		p, err := catalog.NewFirestoreProvider(cfg.FirestoreProject)
		if err != nil {
			log.Fatal(err)
		}
		if err := p.Seed(ctx, catalog.SeedProducts(), catalog.SeedVendors(cfg.VendorHubURL), catalog.SeedOffers(now)); err != nil {
			log.Fatalf("seed firestore catalog: %v", err)
		}
		log.Printf("catalog backend: firestore project=%s", cfg.FirestoreProject)
		return p
	default:
		log.Printf("catalog backend: memory")
		return catalog.NewSeededMemoryProvider(cfg.VendorHubURL, now)
	}
}

func buildStrategy(cfg config.ProcurementConfig, mongoClient *mongo.Client) strategy.Store {
	if mongoClient != nil {
		log.Printf("strategy store: mongo collection=%s", cfg.MongoCollStrategies)
		return strategy.NewMongoStore(mongoClient, cfg.MongoDatabase, cfg.MongoCollStrategies)
	}
	return strategy.NewMemoryStore(strategy.SeedRecords())
}

func buildAudit(ctx context.Context, cfg config.ProcurementConfig, mongoClient *mongo.Client) audit.Store {
	if mongoClient == nil {
		return audit.NewMemoryStore()
	}
	s := audit.NewMongoStore(mongoClient, cfg.MongoDatabase, cfg.MongoCollOutcomes)
	if err := s.EnsureIndexes(ctx); err != nil {
		log.Printf("mongo index creation failed: %v", err)
	}
	log.Printf("audit store: mongo collection=%s", cfg.MongoCollOutcomes)
	return s
}
