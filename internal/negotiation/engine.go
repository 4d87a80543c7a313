package negotiation

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/catalog"
	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/model"
	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/strategy"
)

// openingDiscount is the buyer's standard first move: 10% below the current
// vendor's list price.
var openingDiscount = decimal.RequireFromString("0.90")

// QuoteSender sends one purchase proposal to a vendor endpoint. The HTTP
// client implements it in production; tests substitute fakes.
type QuoteSender interface {
	RequestQuote(ctx context.Context, endpoint string, req model.QuoteRequest) (*model.QuoteResponse, error)
}

// Engine runs the buyer side of the negotiation protocol: one product, one
// ordered queue of vendors, strictly sequential proposals. Each Negotiate
// call owns a private session; engines are safe for concurrent use across
// products.
type Engine struct {
	catalog  catalog.Provider
	strategy strategy.Store
	sender   QuoteSender
}

func NewEngine(cat catalog.Provider, strat strategy.Store, sender QuoteSender) *Engine {
	return &Engine{catalog: cat, strategy: strat, sender: sender}
}

// session states.
type state int

const (
	stateInit state = iota
	stateObserving
	stateProposing
	stateAwaitingResponse
	stateEvaluating
	stateAccepted
	stateExhausted
	stateAborted
)

// session is the private state of one negotiation attempt. It lives only for
// the duration of a Negotiate call and is never shared.
type session struct {
	id       string
	product  model.Product
	quantity int
	ceiling  *decimal.Decimal
	queue    []model.VendorOffer
	index    int
	rounds   []model.RoundRecord
	state    state

	// reached counts vendors that answered at all, used to distinguish
	// exhaustion from a dead marketplace.
	reached int
}

// Negotiate runs the full protocol for one product and returns the terminal
// outcome. It never returns a non-terminal session state.
func (e *Engine) Negotiate(ctx context.Context, productID string, quantity int) model.NegotiationOutcome {
	started := time.Now().UTC()
	s := &session{id: uuid.NewString(), quantity: quantity, state: stateInit}

	if quantity <= 0 {
		return e.finish(s, started, model.StatusAborted, model.ReasonInvalidQuantity, nil)
	}

	// Observing: load the market and the strategic ceiling.
	s.state = stateObserving
	product, err := e.catalog.GetProduct(ctx, productID)
	if err != nil {
		return e.finish(s, started, model.StatusAborted, fmt.Sprintf("unknown product %q", productID), nil)
	}
	s.product = *product

	offers, err := e.catalog.ListOffers(ctx, productID)
	if err != nil {
		return e.finish(s, started, model.StatusAborted, fmt.Sprintf("list offers: %v", err), nil)
	}
	if len(offers) == 0 {
		return e.finish(s, started, model.StatusExhausted, "", nil)
	}
	s.queue = offers

	if rec, err := e.strategy.Lookup(ctx, product.Name); err == nil && rec != nil {
		c := decimal.NewFromFloat(rec.MaxPrice)
		s.ceiling = &c
		slog.InfoContext(ctx, "ceiling_loaded",
			"session", s.id,
			"product", product.Name,
			"max_price", rec.MaxPrice,
		)
	}

	for s.index = 0; s.index < len(s.queue); s.index++ {
		offer := s.queue[s.index]

		// Cancellation is honored between vendor rounds.
		select {
		case <-ctx.Done():
			return e.finish(s, started, model.StatusAborted, model.ReasonCancelled, nil)
		default:
		}

		s.state = stateProposing
		opening := e.openingOffer(s, offer)

		resp, err := e.propose(ctx, s, offer, opening)
		s.state = stateEvaluating
		if err != nil {
			// Unreachable vendor: counts as a rejection with no counter.
			s.record(offer.VendorID, opening.InexactFloat64(), model.RoundUnreachable, nil, err.Error())
			continue
		}
		s.reached++

		outcome := e.evaluate(ctx, s, started, offer, opening, resp)
		if outcome != nil {
			return *outcome
		}
	}

	if s.reached == 0 {
		return e.finish(s, started, model.StatusAborted, model.ReasonAllVendorsUnreachable, nil)
	}
	return e.finish(s, started, model.StatusExhausted, "", nil)
}

// openingOffer computes the first proposal to a vendor: 10% below its list
// price, clamped down so it never opens above a known strategic ceiling.
func (e *Engine) openingOffer(s *session, offer model.VendorOffer) decimal.Decimal {
	opening := decimal.NewFromFloat(offer.PriceWholesale).Mul(openingDiscount)
	if s.ceiling != nil && opening.GreaterThan(*s.ceiling) {
		opening = *s.ceiling
	}
	return opening
}

func (e *Engine) propose(ctx context.Context, s *session, offer model.VendorOffer, opening decimal.Decimal) (*model.QuoteResponse, error) {
	endpoint, err := e.endpointFor(ctx, offer.VendorID)
	if err != nil {
		return nil, err
	}

	s.state = stateAwaitingResponse
	return e.sender.RequestQuote(ctx, endpoint, model.QuoteRequest{
		Product:      s.product.Name,
		Quantity:     s.quantity,
		OfferedPrice: opening.InexactFloat64(),
	})
}

// evaluate applies the response rules. A nil return means: advance to the
// next vendor.
func (e *Engine) evaluate(ctx context.Context, s *session, started time.Time, offer model.VendorOffer, opening decimal.Decimal, resp *model.QuoteResponse) *model.NegotiationOutcome {
	proposedF := opening.InexactFloat64()

	switch resp.Decision {
	case model.DecisionAccept:
		// A vendor may only accept the price it was offered.
		if resp.Price != nil && math.Abs(*resp.Price-proposedF) > 1e-6 {
			s.record(offer.VendorID, proposedF, model.RoundAccepted, resp.Price, "accepted a price that was never offered")
			out := e.finish(s, started, model.StatusAborted,
				fmt.Sprintf("protocol violation: vendor %s accepted %.2f, offered %.2f", offer.VendorID, *resp.Price, proposedF), nil)
			return &out
		}
		s.record(offer.VendorID, proposedF, model.RoundAccepted, nil, "")
		deal := dealTerms{
			vendorID:     offer.VendorID,
			price:        proposedF,
			deliveryDays: offer.DeliveryDays,
		}
		if resp.DeliveryDays != nil {
			deal.deliveryDays = *resp.DeliveryDays
		}
		out := e.finish(s, started, model.StatusDeal, "", &deal)
		return &out

	case model.DecisionReject:
		if resp.Price == nil {
			// Flat rejection: nothing to weigh against the next vendor.
			s.record(offer.VendorID, proposedF, model.RoundRejected, nil, "")
			return nil
		}
		counter := *resp.Price
		s.record(offer.VendorID, proposedF, model.RoundCountered, resp.Price, "")

		last := s.index == len(s.queue)-1
		if last {
			if s.ceiling == nil || decimal.NewFromFloat(counter).LessThanOrEqual(*s.ceiling) {
				deal := dealTerms{vendorID: offer.VendorID, price: counter, deliveryDays: offer.DeliveryDays}
				out := e.finish(s, started, model.StatusDeal, "", &deal)
				return &out
			}
			slog.InfoContext(ctx, "counter_over_ceiling",
				"session", s.id,
				"vendor", offer.VendorID,
				"counter", counter,
			)
			return nil
		}

		// Weigh the counter against the next vendor's raw list price. Beating
		// it means no better alternative remains, so take the counter now;
		// no further network call is needed for this comparison.
		next := s.queue[s.index+1]
		if counter < next.PriceWholesale {
			deal := dealTerms{vendorID: offer.VendorID, price: counter, deliveryDays: offer.DeliveryDays}
			out := e.finish(s, started, model.StatusDeal, "", &deal)
			return &out
		}
		return nil

	default:
		// Malformed response: treated as a rejection with no counter.
		s.record(offer.VendorID, proposedF, model.RoundRejected, nil, fmt.Sprintf("malformed response decision %q", resp.Decision))
		return nil
	}
}

type dealTerms struct {
	vendorID     string
	price        float64
	deliveryDays int
}

func (e *Engine) endpointFor(ctx context.Context, vendorID string) (string, error) {
	v, err := e.catalog.GetVendor(ctx, vendorID)
	if err != nil {
		return "", fmt.Errorf("vendor %s: %w", vendorID, err)
	}
	return v.ContactEndpoint, nil
}

func (s *session) record(vendorID string, offeredPrice float64, response string, counter *float64, note string) {
	s.rounds = append(s.rounds, model.RoundRecord{
		RoundID:      uuid.NewString(),
		VendorID:     vendorID,
		OfferedPrice: offeredPrice,
		Response:     response,
		CounterPrice: counter,
		Note:         note,
	})
}

func (e *Engine) finish(s *session, started time.Time, status, reason string, deal *dealTerms) model.NegotiationOutcome {
	switch status {
	case model.StatusDeal:
		s.state = stateAccepted
	case model.StatusExhausted:
		s.state = stateExhausted
	default:
		s.state = stateAborted
	}

	out := model.NegotiationOutcome{
		SessionID:    s.id,
		ProductID:    s.product.ID,
		ProductName:  s.product.Name,
		Quantity:     s.quantity,
		Status:       status,
		VendorsTried: len(s.rounds),
		Reason:       reason,
		Rounds:       s.rounds,
		StartedAt:    started,
		CompletedAt:  time.Now().UTC(),
	}
	if deal != nil {
		out.VendorID = deal.vendorID
		out.FinalPrice = deal.price
		out.DeliveryDays = deal.deliveryDays
	}
	return out
}
