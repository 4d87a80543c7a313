package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Catalog backend selectors.
const (
	BackendMemory    = "memory"
	BackendMongo     = "mongo"
	BackendFirestore = "firestore"
)

// HubConfig configures the vendor hub server.
type HubConfig struct {
	Port string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

func LoadHub() HubConfig {
	return HubConfig{
		Port:         getenv("PORT", "8090"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// ProcurementConfig configures the procurement run.
type ProcurementConfig struct {
	// Vendor hub (quote endpoints hang off this base URL)
	VendorHubURL  string
	VendorTimeout time.Duration

	// Catalog backend: memory (default), mongo, or firestore
	CatalogBackend string

	// MongoDB (optional persistence)
	MongoURI            string
	MongoDatabase       string
	MongoCollOutcomes   string
	MongoCollStrategies string

	// Firestore (optional catalog backend)
	FirestoreProject string

	// Webhook notified of every procurement event (optional)
	EventWebhookURL string

	// Cap on concurrently negotiating products
	MaxConcurrentSessions int
}

func LoadProcurement() ProcurementConfig {
	return ProcurementConfig{
		VendorHubURL:          strings.TrimRight(getenv("VENDOR_HUB_URL", "http://localhost:8090"), "/"),
		VendorTimeout:         getdur("VENDOR_TIMEOUT", 10*time.Second),
		CatalogBackend:        getenv("CATALOG_BACKEND", BackendMemory),
		MongoURI:              strings.TrimSpace(os.Getenv("MONGO_URI")),
		MongoDatabase:         getenv("MONGO_DB", "procurement"),
		MongoCollOutcomes:     getenv("MONGO_COLLECTION_OUTCOMES", "negotiation_outcomes"),
		MongoCollStrategies:   getenv("MONGO_COLLECTION_STRATEGIES", "strategy_records"),
		FirestoreProject:      strings.TrimSpace(os.Getenv("FIRESTORE_PROJECT")),
		EventWebhookURL:       strings.TrimSpace(os.Getenv("EVENT_WEBHOOK_URL")),
		MaxConcurrentSessions: getint("MAX_CONCURRENT_SESSIONS", 8),
	}
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func getdur(k string, def time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}
