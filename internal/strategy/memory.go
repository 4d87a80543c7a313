package strategy

import (
	"context"
	"sort"
	"strings"

	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/model"
)

// MemoryStore holds strategy records in memory, fixed at construction.
type MemoryStore struct {
	records []model.StrategyRecord
}

// NewMemoryStore builds a store over the given records. Records are ordered
// by descending name length, then name, so Lookup's first match is also the
// deterministic tie-break winner.
func NewMemoryStore(records []model.StrategyRecord) *MemoryStore {
	sorted := append([]model.StrategyRecord(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if len(sorted[i].ProductName) != len(sorted[j].ProductName) {
			return len(sorted[i].ProductName) > len(sorted[j].ProductName)
		}
		return sorted[i].ProductName < sorted[j].ProductName
	})
	return &MemoryStore{records: sorted}
}

// SeedRecords returns the default strategy targets recorded from prior
// negotiation history.
func SeedRecords() []model.StrategyRecord {
	return []model.StrategyRecord{
		{ProductName: "Oat Barista Blend", TargetPrice: 3.40, MaxPrice: 3.60},
	}
}

func (s *MemoryStore) Lookup(ctx context.Context, nameSubstring string) (*model.StrategyRecord, error) {
	_ = ctx
	needle := strings.ToLower(strings.TrimSpace(nameSubstring))
	if needle == "" {
		return nil, nil
	}
	for _, rec := range s.records {
		if strings.Contains(strings.ToLower(rec.ProductName), needle) {
			out := rec
			return &out, nil
		}
	}
	return nil, nil
}
