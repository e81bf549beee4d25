package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"agencia_xpto/internal/domain/entities"
	"agencia_xpto/internal/domain/templates"
	"agencia_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrContractNotFound    = errors.New("contract not found")
	ErrInvalidContractID   = errors.New("invalid contract id")
	ErrInvalidContractKind = errors.New("invalid contract kind")
	ErrMissingPrestador    = errors.New("missing prestador data")
	ErrMissingParametros   = errors.New("missing contract parameters")
	ErrMissingServico      = errors.New("missing service selection")
	ErrMissingDistrato     = errors.New("missing distrato data")
)

// IContractUseCase exposes the contract wizard operations: persist the form
// data and render the legal document from the clause templates.

type IContractUseCase interface {
	Create(ctx context.Context, c entities.Contract) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	RenderByID(ctx context.Context, id string) (templates.Document, error)
}

type ContractUseCase struct {
	repo interfaces.IContractRepository
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(repo interfaces.IContractRepository) *ContractUseCase {
	return &ContractUseCase{repo: repo}
}

func (u *ContractUseCase) Create(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	if c.Kind == "" {
		c.Kind = entities.ContractKindContrato
	}
	if err := validateContract(c); err != nil {
		return entities.Contract{}, err
	}

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	return u.repo.Create(ctx, c)
}

func (u *ContractUseCase) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contract{}, ErrInvalidContractID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	return c, nil
}

// RenderByID interpolates the stored form data into the clause template set.
// Rendering itself never fails; only lookup can.
func (u *ContractUseCase) RenderByID(ctx context.Context, id string) (templates.Document, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return templates.Document{}, err
	}
	return templates.RenderDocument(c), nil
}

// validateContract applies the wizard's step rules: parties, general
// parameters, and the service/distrato specifics for the chosen kind.
func validateContract(c entities.Contract) error {
	if c.Kind != entities.ContractKindContrato && c.Kind != entities.ContractKindDistrato {
		return ErrInvalidContractKind
	}

	if strings.TrimSpace(c.Prestador.Name) == "" ||
		strings.TrimSpace(c.Prestador.CPF) == "" ||
		strings.TrimSpace(c.Prestador.Email) == "" ||
		strings.TrimSpace(c.Prestador.Address) == "" {
		return ErrMissingPrestador
	}

	if strings.TrimSpace(c.DataInicio) == "" ||
		!hasLooseValue(c.ValorTotal) ||
		strings.TrimSpace(c.ForoCidade) == "" ||
		strings.TrimSpace(c.ForoUF) == "" {
		return ErrMissingParametros
	}

	if c.Kind == entities.ContractKindContrato {
		if strings.TrimSpace(c.ServicoChave) == "" {
			return ErrMissingServico
		}
		if c.ServicoChave == templates.ServiceKeyCustom {
			if strings.TrimSpace(c.ServicoCustomTitulo) == "" || strings.TrimSpace(c.ServicoCustomEscopo) == "" {
				return ErrMissingServico
			}
		} else if _, ok := templates.ForService(c.ServicoChave); !ok {
			return ErrMissingServico
		}
		return nil
	}

	if strings.TrimSpace(c.DataDistrato) == "" {
		return ErrMissingDistrato
	}
	return nil
}

func hasLooseValue(v any) bool {
	if v == nil {
		return false
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v)) != ""
}
