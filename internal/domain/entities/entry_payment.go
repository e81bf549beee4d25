package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
//
// In the current scope we only create/process and persist an approved entry
// payment. The type supports a denied status for completeness.

type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// EntryPayment records the down payment charged when a proposal is signed.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (proposal_id-index): proposal_id
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the original body (JSON) for traceability/audit.
//   - MPPayload is an optional parsed representation, useful for querying.

type EntryPayment struct {
	ID         string        `json:"id"`
	ProposalID string        `json:"proposal_id"`
	Amount     float64       `json:"amount"`
	Date       time.Time     `json:"date"`
	Status     PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]any  `json:"mp_payload,omitempty"`
}
