package response

import (
	"time"

	"agencia_xpto/internal/domain/entities"
)

type ProposalResponse struct {
	ID         string                               `json:"id"`
	Client     entities.Client                      `json:"client"`
	Services   []entities.ServiceLineItem           `json:"services"`
	Term       int                                  `json:"term,omitempty"`
	Conditions map[string]entities.PaymentCondition `json:"conditions,omitempty"`
	Details    string                               `json:"details,omitempty"`
	Status     string                               `json:"status"`
	CreatedAt  time.Time                            `json:"created_at"`
	UpdatedAt  time.Time                            `json:"updated_at"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	return ProposalResponse{
		ID:         p.ID,
		Client:     p.Client,
		Services:   p.Services,
		Term:       p.Term,
		Conditions: p.Conditions,
		Details:    p.Details,
		Status:     string(p.Status),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
