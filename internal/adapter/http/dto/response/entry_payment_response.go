package response

import (
	"time"

	"agencia_xpto/internal/domain/entities"
)

type EntryPaymentResponse struct {
	ID         string    `json:"id"`
	ProposalID string    `json:"proposal_id"`
	Amount     float64   `json:"amount"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`

	MPPayloadRaw string         `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]any `json:"mp_payload,omitempty"`
}

func FromEntryPayment(p entities.EntryPayment) EntryPaymentResponse {
	return EntryPaymentResponse{
		ID:           p.ID,
		ProposalID:   p.ProposalID,
		Amount:       p.Amount,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}
