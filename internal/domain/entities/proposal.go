package entities

import "time"

// ProposalStatus represents the lifecycle of a commercial proposal.
//
// Domain notes:
//   - The proposal-service is the source of truth for wizard state.
//   - A proposal is editable while "rascunho"; sending it freezes nothing, but
//     accepting/declining are terminal decisions made by the client.

type ProposalStatus string

const (
	ProposalStatusRascunho ProposalStatus = "rascunho"
	ProposalStatusEnviada  ProposalStatus = "enviada"
	ProposalStatusAceita   ProposalStatus = "aceita"
	ProposalStatusRecusada ProposalStatus = "recusada"
)

// Client holds the prospect identification collected in the first wizard step.
type Client struct {
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// ServiceLineItem is one selected service instance.
//
// Monetary notes:
//   - UnitValue is per unit, per month when IsMonthly.
//   - Term is only meaningful for monthly items; the pricing engine defaults it
//     to 1 when absent.
type ServiceLineItem struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	IsMonthly   bool    `json:"isMonthly"`
	Term        int     `json:"term,omitempty"`
	Qty         float64 `json:"qty"`
	UnitValue   float64 `json:"unitValue"`
}

// PaymentCondition is the financing configured for one service package.
//
// Entry and Installments are loosely typed on purpose: the wizard lets staff
// type free-form values ("R$ 1.234,56", "50% na assinatura", plain numbers) and
// the live preview must never reject a half-filled form. The pricing engine
// owns the lenient parsing.
type PaymentCondition struct {
	Method       string `json:"method,omitempty"`
	Entry        any    `json:"entry,omitempty"`
	Installments any    `json:"installments,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// Proposal is the wizard state persisted by the proposal-service.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Conditions is keyed by service package type; the derived views (quoted items,
// totals, installment schedule) are recomputed on every read and never stored.
type Proposal struct {
	ID         string                      `json:"id"`
	Client     Client                      `json:"client"`
	Services   []ServiceLineItem           `json:"services"`
	Term       int                         `json:"term,omitempty"`
	Conditions map[string]PaymentCondition `json:"conditions,omitempty"`
	Details    string                      `json:"details,omitempty"`
	Status     ProposalStatus              `json:"status"`
	CreatedAt  time.Time                   `json:"created_at"`
	UpdatedAt  time.Time                   `json:"updated_at"`
}
