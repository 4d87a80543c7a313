// Package audit persists terminal negotiation outcomes for later review.
// Persistence here is best-effort: a failed save is logged by the caller and
// never fails the procurement run.
package audit

import (
	"context"

	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/model"
)

// Store records negotiation outcomes and answers per-product history
// queries.
type Store interface {
	Save(ctx context.Context, outcome model.NegotiationOutcome) error
	// ListByProduct returns all recorded outcomes for a product, oldest
	// first.
	ListByProduct(ctx context.Context, productID string) ([]model.NegotiationOutcome, error)
}
