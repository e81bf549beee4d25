package interfaces

import (
	"context"

	"agencia_xpto/internal/domain/entities"
)

// IProposalRepository abstracts DynamoDB persistence for Proposal.
//
// The proposal-service must be able to:
//   - create a proposal when the wizard starts
//   - replace the selected services / payment conditions as steps are edited
//   - move the proposal through its lifecycle (send/accept/decline)

type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	UpdateServices(ctx context.Context, id string, services []entities.ServiceLineItem) (entities.Proposal, error)
	UpdateConditions(ctx context.Context, id string, conditions map[string]entities.PaymentCondition) (entities.Proposal, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.ProposalStatus) (entities.Proposal, error)
}
