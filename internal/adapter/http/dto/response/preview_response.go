package response

import (
	"agencia_xpto/internal/domain/pricing"
	"agencia_xpto/internal/usecase"
)

// PreviewResponse mirrors what the live preview screen renders: the quoted
// items sorted by subtotal, totals per package type plus "overall", and the
// consolidated installment schedule. typeOrder carries the presentation order
// since JSON objects have none.
type PreviewResponse struct {
	Items        []pricing.QuotedItem       `json:"items"`
	TypeOrder    []string                   `json:"typeOrder"`
	Totals       map[string]float64         `json:"totals"`
	Installments []pricing.InstallmentRange `json:"installments"`
}

func FromPreview(p usecase.ProposalPreview) PreviewResponse {
	return PreviewResponse{
		Items:        p.Items,
		TypeOrder:    p.TypeOrder,
		Totals:       p.Totals,
		Installments: p.Installments,
	}
}
