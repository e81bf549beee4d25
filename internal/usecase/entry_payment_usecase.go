package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"agencia_xpto/internal/domain/entities"
	"agencia_xpto/internal/domain/pricing"
	"agencia_xpto/internal/usecase/interfaces"
)

var (
	ErrEntryPaymentNotFound       = errors.New("entry payment not found")
	ErrInvalidPaymentProposalID   = errors.New("invalid proposal_id")
	ErrInvalidMPPayload           = errors.New("invalid mercado pago payload")
	ErrProposalNotAccepted        = errors.New("proposal not accepted")
	ErrNothingToCharge            = errors.New("nothing to charge")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IEntryPaymentUseCase encapsulates charging a proposal's signing entry.
//
// Requested behavior:
//   - Once the client accepts, charge the down payment through the gateway and
//     persist the approved payment with the provider payload.

type IEntryPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, proposalID string, mpPayload json.RawMessage) (entities.EntryPayment, error)
	GetByID(ctx context.Context, id string) (entities.EntryPayment, error)
	ListByProposalID(ctx context.Context, proposalID string) ([]entities.EntryPayment, error)
}

type EntryPaymentUseCase struct {
	repo         interfaces.IEntryPaymentRepository
	proposalRepo interfaces.IProposalRepository
	gateway      interfaces.IPaymentGateway
}

var _ IEntryPaymentUseCase = (*EntryPaymentUseCase)(nil)

func NewEntryPaymentUseCase(repo interfaces.IEntryPaymentRepository, proposalRepo interfaces.IProposalRepository, gateway interfaces.IPaymentGateway) *EntryPaymentUseCase {
	return &EntryPaymentUseCase{repo: repo, proposalRepo: proposalRepo, gateway: gateway}
}

func (u *EntryPaymentUseCase) CreateAndApprove(ctx context.Context, proposalID string, mpPayload json.RawMessage) (entities.EntryPayment, error) {
	log.Printf("[payment][usecase] create-and-approve start proposal_id=%q payload_len=%d", proposalID, len(mpPayload))
	mockMode := isPaymentGatewayMockEnabled()

	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return entities.EntryPayment{}, ErrInvalidPaymentProposalID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload proposal_id=%s", proposalID)
			return entities.EntryPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		return entities.EntryPayment{}, errors.New("payment gateway not configured")
	}
	if u.proposalRepo == nil {
		return entities.EntryPayment{}, errors.New("proposal repository not configured")
	}

	p, err := u.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading proposal proposal_id=%s err=%v", proposalID, err)
		return entities.EntryPayment{}, err
	}
	if p.ID == "" {
		return entities.EntryPayment{}, ErrProposalNotFound
	}
	if !mockMode && p.Status != entities.ProposalStatusAceita {
		log.Printf("[payment][usecase] proposal not accepted proposal_id=%s status=%s", proposalID, p.Status)
		return entities.EntryPayment{}, ErrProposalNotAccepted
	}

	amount := chargeAmount(p)
	if amount <= 0 {
		log.Printf("[payment][usecase] nothing to charge proposal_id=%s", proposalID)
		return entities.EntryPayment{}, ErrNothingToCharge
	}
	log.Printf("[payment][usecase] proposal loaded proposal_id=%s status=%s amount=%.2f", proposalID, p.Status, amount)

	// Amount and reconciliation data come from the stored proposal, never from
	// the caller payload.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			return entities.EntryPayment{}, ErrInvalidMPPayload
		}
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = proposalID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Entrada da proposta %s", proposalID)
		}
		reqMap["transaction_amount"] = amount
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	}

	providerPaymentID := ""
	providerResp := json.RawMessage(nil)

	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping external payment gateway proposal_id=%s", proposalID)
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		mockResp := map[string]any{
			"id":                 providerPaymentID,
			"status":             "approved",
			"status_detail":      "accredited",
			"external_reference": proposalID,
			"transaction_amount": amount,
			"date_created":       time.Now().UTC().Format(time.RFC3339Nano),
		}
		b, mErr := json.Marshal(mockResp)
		if mErr != nil {
			return entities.EntryPayment{}, mErr
		}
		providerResp = b
	} else {
		log.Printf("[payment][usecase] calling payment gateway proposal_id=%s", proposalID)
		providerPaymentID, _, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed proposal_id=%s err=%v", proposalID, err)
			if isGatewayUnauthorized(err) {
				return entities.EntryPayment{}, ErrPaymentGatewayUnauthorized
			}
			if isGatewayBadRequest(err) {
				return entities.EntryPayment{}, ErrPaymentGatewayBadRequest
			}
			return entities.EntryPayment{}, err
		}
	}
	log.Printf("[payment][usecase] payment gateway success proposal_id=%s provider_payment_id=%s", proposalID, providerPaymentID)

	var parsed map[string]any
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed proposal_id=%s err=%v", proposalID, err)
	}

	payment := entities.EntryPayment{
		ID:           providerPaymentID,
		ProposalID:   proposalID,
		Amount:       amount,
		Date:         time.Now().UTC(),
		Status:       entities.PaymentStatusAprovado,
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, payment)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed proposal_id=%s payment_id=%s err=%v", proposalID, payment.ID, err)
		return entities.EntryPayment{}, err
	}
	log.Printf("[payment][usecase] create-and-approve success proposal_id=%s payment_id=%s", proposalID, created.ID)
	return created, nil
}

func (u *EntryPaymentUseCase) GetByID(ctx context.Context, id string) (entities.EntryPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EntryPayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.EntryPayment{}, err
	}
	if p.ID == "" {
		return entities.EntryPayment{}, ErrEntryPaymentNotFound
	}
	return p, nil
}

func (u *EntryPaymentUseCase) ListByProposalID(ctx context.Context, proposalID string) ([]entities.EntryPayment, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return nil, ErrInvalidPaymentProposalID
	}
	return u.repo.ListByProposalID(ctx, proposalID)
}

// chargeAmount is what is due at signing: the configured entries summed across
// all packages, or the overall total when the proposal has no entry configured
// (fully up-front deals).
func chargeAmount(p entities.Proposal) float64 {
	if entry := pricing.EntryTotal(p.Conditions); entry > 0 {
		return entry
	}
	preview := BuildPreview(p)
	return preview.Totals[pricing.OverallKey]
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
