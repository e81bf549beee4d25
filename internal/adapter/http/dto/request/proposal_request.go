package request

import (
	"strings"

	"agencia_xpto/internal/domain/entities"
)

type ClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// ServiceLineItemRequest mirrors the wizard's service card. Field casing
// follows the front-end payload (camelCase), unlike the rest of the API.
type ServiceLineItemRequest struct {
	ID          string  `json:"id"`
	Type        string  `json:"type" binding:"required"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	IsMonthly   bool    `json:"isMonthly"`
	Term        int     `json:"term"`
	Qty         float64 `json:"qty"`
	UnitValue   float64 `json:"unitValue"`
}

// PaymentConditionRequest keeps entry/installments loosely typed: the wizard
// sends whatever the staff typed and the pricing engine parses it leniently.
type PaymentConditionRequest struct {
	Method       string `json:"method"`
	Entry        any    `json:"entry"`
	Installments any    `json:"installments"`
	Notes        string `json:"notes"`
}

type ProposalCreateRequest struct {
	Client  ClientRequest `json:"client" binding:"required"`
	Term    int           `json:"term"`
	Details string        `json:"details"`
}

func (r ProposalCreateRequest) ToEntity() entities.Proposal {
	return entities.Proposal{
		Client: entities.Client{
			Name:    strings.TrimSpace(r.Client.Name),
			Company: strings.TrimSpace(r.Client.Company),
			Email:   strings.TrimSpace(r.Client.Email),
			Phone:   strings.TrimSpace(r.Client.Phone),
		},
		Term:    r.Term,
		Details: r.Details,
	}
}

type ProposalServicesRequest struct {
	Services []ServiceLineItemRequest `json:"services" binding:"required"`
}

func (r ProposalServicesRequest) ToEntities() []entities.ServiceLineItem {
	items := make([]entities.ServiceLineItem, 0, len(r.Services))
	for _, s := range r.Services {
		items = append(items, entities.ServiceLineItem{
			ID:          s.ID,
			Type:        s.Type,
			Title:       s.Title,
			Description: s.Description,
			IsMonthly:   s.IsMonthly,
			Term:        s.Term,
			Qty:         s.Qty,
			UnitValue:   s.UnitValue,
		})
	}
	return items
}

type ProposalConditionsRequest struct {
	Conditions map[string]PaymentConditionRequest `json:"conditions" binding:"required"`
}

func (r ProposalConditionsRequest) ToEntities() map[string]entities.PaymentCondition {
	conditions := make(map[string]entities.PaymentCondition, len(r.Conditions))
	for k, c := range r.Conditions {
		conditions[k] = entities.PaymentCondition{
			Method:       c.Method,
			Entry:        c.Entry,
			Installments: c.Installments,
			Notes:        c.Notes,
		}
	}
	return conditions
}
