// Package orchestrator drives one procurement run end to end: scan the
// catalog for risk, then negotiate replenishment for every low-stock product
// concurrently.
package orchestrator

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/audit"
	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/catalog"
	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/events"
	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/model"
	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/negotiation"
	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/risk"
)

// Orchestrator owns the procurement pipeline. Sessions are independent: one
// aborted negotiation never affects the others.
type Orchestrator struct {
	catalog   catalog.Provider
	detector  *risk.Detector
	engine    *negotiation.Engine
	publisher *events.Publisher
	audit     audit.Store

	// maxConcurrent caps in-flight negotiation sessions.
	maxConcurrent int
}

func New(cat catalog.Provider, detector *risk.Detector, engine *negotiation.Engine, publisher *events.Publisher, auditStore audit.Store, maxConcurrent int) *Orchestrator {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &Orchestrator{
		catalog:       cat,
		detector:      detector,
		engine:        engine,
		publisher:     publisher,
		audit:         auditStore,
		maxConcurrent: maxConcurrent,
	}
}

// Summary is the result of one procurement run.
type Summary struct {
	ScannedAt    time.Time `json:"scanned_at"`
	LowStock     int       `json:"low_stock"`
	ExpiringSoon int       `json:"expiring_soon"`

	Deals     int `json:"deals"`
	Exhausted int `json:"exhausted"`
	Aborted   int `json:"aborted"`

	// TotalSpend is the committed spend across all deals; ListSpend is what
	// the same quantities would have cost at the cheapest list prices.
	TotalSpend float64 `json:"total_spend"`
	ListSpend  float64 `json:"list_spend"`

	Outcomes []model.NegotiationOutcome `json:"outcomes"`
}

// Run executes one full procurement cycle and returns its summary. The
// returned error covers the risk scan only; per-product negotiation failures
// are reported inside the summary, never as errors.
func (o *Orchestrator) Run(ctx context.Context) (Summary, error) {
	report, err := o.detector.Scan(ctx, time.Now().UTC())
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		ScannedAt:    report.ScannedAt,
		LowStock:     len(report.LowStock),
		ExpiringSoon: len(report.ExpiringSoon),
	}

	for _, item := range report.LowStock {
		o.publishEvent(ctx, events.TypeRiskDetected, map[string]any{
			"product_id":     item.Product.ID,
			"product_name":   item.Product.Name,
			"days_of_supply": item.DaysOfSupply,
		})
	}

	type job struct {
		product  model.Product
		quantity int
	}
	var jobs []job
	for _, item := range report.LowStock {
		quantity := item.Product.TargetStockLevel - item.Product.StockQuantity
		if quantity <= 0 {
			slog.InfoContext(ctx, "restock_not_needed",
				"product", item.Product.ID,
				"stock", item.Product.StockQuantity,
				"target", item.Product.TargetStockLevel,
			)
			continue
		}
		jobs = append(jobs, job{product: item.Product, quantity: quantity})
	}

	results := make(chan model.NegotiationOutcome, len(jobs))
	sem := make(chan struct{}, o.maxConcurrent)
	var wg sync.WaitGroup
	for _, j := range jobs {
		wg.Add(1)
		go func(j job) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results <- o.engine.Negotiate(ctx, j.product.ID, j.quantity)
		}(j)
	}
	wg.Wait()
	close(results)

	for outcome := range results {
		summary.Outcomes = append(summary.Outcomes, outcome)
	}
	// Deterministic ordering regardless of goroutine completion order.
	sort.Slice(summary.Outcomes, func(i, j int) bool {
		return summary.Outcomes[i].ProductID < summary.Outcomes[j].ProductID
	})

	for _, outcome := range summary.Outcomes {
		o.recordOutcome(ctx, outcome, &summary)
	}
	return summary, nil
}

func (o *Orchestrator) recordOutcome(ctx context.Context, outcome model.NegotiationOutcome, summary *Summary) {
	switch outcome.Status {
	case model.StatusDeal:
		summary.Deals++
		summary.TotalSpend += outcome.FinalPrice * float64(outcome.Quantity)
		if offers, err := o.catalog.ListOffers(ctx, outcome.ProductID); err == nil && len(offers) > 0 {
			summary.ListSpend += offers[0].PriceWholesale * float64(outcome.Quantity)
		}
		o.publishEvent(ctx, events.TypeDealClosed, map[string]any{
			"product_id":    outcome.ProductID,
			"vendor_id":     outcome.VendorID,
			"quantity":      outcome.Quantity,
			"final_price":   outcome.FinalPrice,
			"delivery_days": outcome.DeliveryDays,
		})
	case model.StatusExhausted:
		summary.Exhausted++
	default:
		summary.Aborted++
	}

	o.publishEvent(ctx, events.TypeNegotiationCompleted, map[string]any{
		"product_id":    outcome.ProductID,
		"session_id":    outcome.SessionID,
		"status":        outcome.Status,
		"vendors_tried": outcome.VendorsTried,
	})

	if err := o.audit.Save(ctx, outcome); err != nil {
		slog.WarnContext(ctx, "audit_save_failed",
			"session", outcome.SessionID,
			"product", outcome.ProductID,
			"error", err,
		)
	}
}

func (o *Orchestrator) publishEvent(ctx context.Context, eventType string, data map[string]any) {
	if err := o.publisher.Publish(ctx, eventType, data); err != nil {
		slog.WarnContext(ctx, "event_publish_failed", "event_type", eventType, "error", err)
	}
}
