package interfaces

import (
	"context"

	"agencia_xpto/internal/domain/entities"
)

// IEntryPaymentRepository abstracts DynamoDB persistence for EntryPayment.

type IEntryPaymentRepository interface {
	Create(ctx context.Context, p entities.EntryPayment) (entities.EntryPayment, error)
	GetByID(ctx context.Context, id string) (entities.EntryPayment, error)
	ListByProposalID(ctx context.Context, proposalID string) ([]entities.EntryPayment, error)
}
