package audit

import (
	"context"
	"sync"

	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/model"
)

// MemoryStore keeps outcomes in memory, in insertion order per product.
type MemoryStore struct {
	mu       sync.RWMutex
	byProd   map[string][]model.NegotiationOutcome
	sessions map[string]bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byProd:   make(map[string][]model.NegotiationOutcome),
		sessions: make(map[string]bool),
	}
}

// Save is idempotent on session ID: re-saving the same session is a no-op.
func (s *MemoryStore) Save(ctx context.Context, outcome model.NegotiationOutcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions[outcome.SessionID] {
		return nil
	}
	s.sessions[outcome.SessionID] = true
	s.byProd[outcome.ProductID] = append(s.byProd[outcome.ProductID], outcome)
	return nil
}

func (s *MemoryStore) ListByProduct(ctx context.Context, productID string) ([]model.NegotiationOutcome, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored := s.byProd[productID]
	out := make([]model.NegotiationOutcome, len(stored))
	copy(out, stored)
	return out, nil
}
