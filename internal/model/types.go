package model

import "time"

// Product is one internal inventory line: what we stock, how fast it sells,
// and where we want the shelf level to be.
type Product struct {
	ID                 string  `json:"product_id" bson:"product_id" firestore:"product_id"`
	Name               string  `json:"name" bson:"name" firestore:"name"`
	Category           string  `json:"category" bson:"category" firestore:"category"`
	StockQuantity      int     `json:"stock_quantity" bson:"stock_quantity" firestore:"stock_quantity"`
	SalesVelocityDaily float64 `json:"sales_velocity_daily" bson:"sales_velocity_daily" firestore:"sales_velocity_daily"`
	TargetStockLevel   int     `json:"target_stock_level" bson:"target_stock_level" firestore:"target_stock_level"`
}

// DaysOfSupply returns stock divided by daily sales velocity. Returns ok=false
// when velocity is zero (the product cannot stock out).
func (p Product) DaysOfSupply() (float64, bool) {
	if p.SalesVelocityDaily <= 0 {
		return 0, false
	}
	return float64(p.StockQuantity) / p.SalesVelocityDaily, true
}

// Vendor is one entry in the external supplier directory.
type Vendor struct {
	ID               string  `json:"vendor_id" bson:"vendor_id" firestore:"vendor_id"`
	Name             string  `json:"name" bson:"name" firestore:"name"`
	Type             string  `json:"type" bson:"type" firestore:"type"` // Distributor|Maker|Aggregator|Specialist
	ReliabilityScore float64 `json:"reliability_score" bson:"reliability_score" firestore:"reliability_score"`
	ContactEndpoint  string  `json:"contact_endpoint" bson:"contact_endpoint" firestore:"contact_endpoint"`
}

// VendorOffer is marketplace data: one vendor's standing wholesale offer for
// one product. Ascending PriceWholesale defines negotiation priority.
type VendorOffer struct {
	ProductID      string     `json:"product_id" bson:"product_id" firestore:"product_id"`
	VendorID       string     `json:"vendor_id" bson:"vendor_id" firestore:"vendor_id"`
	PriceWholesale float64    `json:"price_wholesale" bson:"price_wholesale" firestore:"price_wholesale"`
	MinOrderQty    int        `json:"min_order_qty" bson:"min_order_qty" firestore:"min_order_qty"`
	DeliveryDays   int        `json:"delivery_days" bson:"delivery_days" firestore:"delivery_days"`
	BatchExpiry    *time.Time `json:"batch_expiry_date,omitempty" bson:"batch_expiry_date,omitempty" firestore:"batch_expiry_date,omitempty"`
}

// StrategyRecord is a previously agreed buying target for a product, written
// by an out-of-band seeding process and read-only during negotiation.
type StrategyRecord struct {
	ProductName string  `json:"product_name" bson:"product_name"`
	TargetPrice float64 `json:"target_price" bson:"target_price"`
	MaxPrice    float64 `json:"max_price" bson:"max_price"`
}

// QuoteRequest is the purchase proposal sent to a vendor endpoint.
type QuoteRequest struct {
	Product      string  `json:"product"`
	Quantity     int     `json:"quantity"`
	OfferedPrice float64 `json:"offered_price"`
}

// Quote decisions on the wire.
const (
	DecisionAccept = "accept"
	DecisionReject = "reject"
)

// QuoteResponse is a vendor's answer to a QuoteRequest. Price carries the
// accepted price or the counter-offer; it is omitted on a flat rejection.
type QuoteResponse struct {
	Decision     string   `json:"decision"`
	Price        *float64 `json:"price,omitempty"`
	DeliveryDays *int     `json:"delivery_days,omitempty"`
}

// Round responses recorded in the session audit trail.
const (
	RoundAccepted    = "accepted"
	RoundCountered   = "countered"
	RoundRejected    = "rejected"
	RoundUnreachable = "unreachable"
)

// RoundRecord is one proposal/response exchange with one vendor.
type RoundRecord struct {
	RoundID      string   `json:"round_id" bson:"round_id"`
	VendorID     string   `json:"vendor_id" bson:"vendor_id"`
	OfferedPrice float64  `json:"offered_price" bson:"offered_price"`
	Response     string   `json:"response" bson:"response"`
	CounterPrice *float64 `json:"counter_price,omitempty" bson:"counter_price,omitempty"`
	Note         string   `json:"note,omitempty" bson:"note,omitempty"`
}

// Terminal negotiation statuses.
const (
	StatusDeal      = "deal"
	StatusExhausted = "exhausted"
	StatusAborted   = "aborted"
)

// Abort reasons surfaced in NegotiationOutcome.Reason.
const (
	ReasonInvalidQuantity       = "invalid quantity"
	ReasonCancelled             = "cancelled"
	ReasonAllVendorsUnreachable = "all vendors unreachable"
)

// NegotiationOutcome is the terminal result of one procurement attempt.
type NegotiationOutcome struct {
	SessionID    string        `json:"session_id" bson:"session_id"`
	ProductID    string        `json:"product_id" bson:"product_id"`
	ProductName  string        `json:"product_name" bson:"product_name"`
	Quantity     int           `json:"quantity" bson:"quantity"`
	Status       string        `json:"status" bson:"status"` // deal|exhausted|aborted
	VendorID     string        `json:"vendor_id,omitempty" bson:"vendor_id,omitempty"`
	FinalPrice   float64       `json:"final_price,omitempty" bson:"final_price,omitempty"`
	DeliveryDays int           `json:"delivery_days,omitempty" bson:"delivery_days,omitempty"`
	VendorsTried int           `json:"vendors_tried" bson:"vendors_tried"`
	Reason       string        `json:"reason,omitempty" bson:"reason,omitempty"`
	Rounds       []RoundRecord `json:"rounds" bson:"rounds"`
	StartedAt    time.Time     `json:"started_at" bson:"started_at"`
	CompletedAt  time.Time     `json:"completed_at" bson:"completed_at"`
}
