package strategy

import (
	"context"

	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/model"
)

// Store holds previously recorded buying targets. The negotiation engine only
// reads from it; seeding happens out of band before a run.
type Store interface {
	// Lookup matches by case-insensitive substring containment of the query
	// inside stored product names. Returns nil when nothing matches. When
	// several records match, the longest stored name wins, then the
	// lexicographically smallest.
	Lookup(ctx context.Context, nameSubstring string) (*model.StrategyRecord, error)
}
