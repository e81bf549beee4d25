package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"agencia_xpto/internal/domain/entities"
	"agencia_xpto/internal/domain/pricing"
	"agencia_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProposalNotFound      = errors.New("proposal not found")
	ErrInvalidProposalID     = errors.New("invalid proposal id")
	ErrInvalidProposalClient = errors.New("invalid proposal client")
	ErrInvalidTransition     = errors.New("invalid proposal status transition")
)

// ProposalPreview is the derived view handed to the preview UI and the PDF
// renderer: quoted items, per-package totals and the consolidated installment
// schedule. It is recomputed from the stored proposal on every call, never
// persisted.
type ProposalPreview struct {
	Items        []pricing.QuotedItem
	TypeOrder    []string
	Totals       map[string]float64
	Installments []pricing.InstallmentRange
}

// IProposalUseCase exposes the proposal wizard operations.
//
// These operations map to the wizard steps:
//   - client step        => Create()
//   - services step      => UpdateServices()
//   - conditions step    => UpdateConditions()
//   - preview step       => Preview()
//   - send/accept/decline => lifecycle transitions

type IProposalUseCase interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	UpdateServices(ctx context.Context, id string, services []entities.ServiceLineItem) (entities.Proposal, error)
	UpdateConditions(ctx context.Context, id string, conditions map[string]entities.PaymentCondition) (entities.Proposal, error)
	Preview(ctx context.Context, id string) (ProposalPreview, error)
	SendByID(ctx context.Context, id string) (entities.Proposal, error)
	AcceptByID(ctx context.Context, id string) (entities.Proposal, error)
	DeclineByID(ctx context.Context, id string) (entities.Proposal, error)
}

type ProposalUseCase struct {
	repo interfaces.IProposalRepository
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(repo interfaces.IProposalRepository) *ProposalUseCase {
	return &ProposalUseCase{repo: repo}
}

func (u *ProposalUseCase) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	if strings.TrimSpace(p.Client.Name) == "" {
		return entities.Proposal{}, ErrInvalidProposalClient
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.Status = entities.ProposalStatusRascunho
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Term <= 0 {
		p.Term = 1
	}
	return u.repo.Create(ctx, p)
}

func (u *ProposalUseCase) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

func (u *ProposalUseCase) UpdateServices(ctx context.Context, id string, services []entities.ServiceLineItem) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}

	updated, err := u.repo.UpdateServices(ctx, id, services)
	if err != nil {
		return entities.Proposal{}, err
	}
	if updated.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return updated, nil
}

func (u *ProposalUseCase) UpdateConditions(ctx context.Context, id string, conditions map[string]entities.PaymentCondition) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}

	updated, err := u.repo.UpdateConditions(ctx, id, conditions)
	if err != nil {
		return entities.Proposal{}, err
	}
	if updated.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return updated, nil
}

// Preview recomputes every derived pricing view from the stored proposal.
// Half-filled proposals are fine: empty selections yield zero totals and an
// empty schedule, never an error.
func (u *ProposalUseCase) Preview(ctx context.Context, id string) (ProposalPreview, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return ProposalPreview{}, err
	}
	return BuildPreview(p), nil
}

// BuildPreview is the pure composition of the pricing engine over a proposal.
func BuildPreview(p entities.Proposal) ProposalPreview {
	items := pricing.BuildItems(p.Services)
	grouped := pricing.GroupByType(items)
	totals := pricing.TypeTotals(grouped)
	return ProposalPreview{
		Items:        items,
		TypeOrder:    pricing.TypeOrder(items),
		Totals:       totals,
		Installments: pricing.InstallmentRanges(grouped, totals, p.Conditions),
	}
}

func (u *ProposalUseCase) SendByID(ctx context.Context, id string) (entities.Proposal, error) {
	return u.transition(ctx, id, entities.ProposalStatusEnviada,
		entities.ProposalStatusRascunho, entities.ProposalStatusEnviada)
}

func (u *ProposalUseCase) AcceptByID(ctx context.Context, id string) (entities.Proposal, error) {
	return u.transition(ctx, id, entities.ProposalStatusAceita, entities.ProposalStatusEnviada)
}

func (u *ProposalUseCase) DeclineByID(ctx context.Context, id string) (entities.Proposal, error) {
	return u.transition(ctx, id, entities.ProposalStatusRecusada, entities.ProposalStatusEnviada)
}

func (u *ProposalUseCase) transition(ctx context.Context, id string, target entities.ProposalStatus, allowedFrom ...entities.ProposalStatus) (entities.Proposal, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}

	allowed := false
	for _, s := range allowedFrom {
		if p.Status == s {
			allowed = true
			break
		}
	}
	if !allowed {
		return entities.Proposal{}, ErrInvalidTransition
	}

	updated, err := u.repo.UpdateStatusByID(ctx, p.ID, target)
	if err != nil {
		return entities.Proposal{}, err
	}
	if updated.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return updated, nil
}
