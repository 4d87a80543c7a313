package events

import "time"

// Event types emitted by the procurement pipeline.
const (
	TypeRiskDetected         = "risk.detected"
	TypeNegotiationCompleted = "negotiation.completed"
	TypeDealClosed           = "deal.closed"
)

// Envelope wraps every published event.
type Envelope struct {
	EventID        string         `json:"event_id"`
	EventType      string         `json:"event_type"`
	SchemaVersion  string         `json:"schema_version"`
	IdempotencyKey string         `json:"idempotency_key"`
	Timestamp      time.Time      `json:"timestamp"`
	Source         string         `json:"source"`
	Data           map[string]any `json:"data"`
}
