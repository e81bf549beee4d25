package interfaces

import (
	"context"

	"agencia_xpto/internal/domain/entities"
)

// IContractRepository abstracts DynamoDB persistence for Contract form data.

type IContractRepository interface {
	Create(ctx context.Context, c entities.Contract) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
}
