package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	response "agencia_xpto/internal/adapter/http/dto/response"
	"agencia_xpto/internal/usecase"
	"agencia_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// EntryPaymentHandler handles HTTP requests for proposal entry payments.

type EntryPaymentHandler struct {
	usecase usecase.IEntryPaymentUseCase
}

func NewEntryPaymentHandler(uc usecase.IEntryPaymentUseCase) *EntryPaymentHandler {
	return &EntryPaymentHandler{usecase: uc}
}

// CreatePaymentByProposalID charges the signing entry using proposal_id in path.
func (h *EntryPaymentHandler) CreatePaymentByProposalID(c *gin.Context) {
	proposalID := c.Param("proposal_id")
	log.Printf("[payment][handler] create start proposal_id=%s", proposalID)
	mockMode := isPaymentGatewayMockEnabled()
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload proposal_id=%s err=%v", proposalID, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload proposal_id=%s err=%v", proposalID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), proposalID, mpPayload)
	if err != nil {
		log.Printf("[payment][handler] create failed proposal_id=%s err=%v", proposalID, err)
		appErr := mapEntryPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success proposal_id=%s payment_id=%s status=%s", proposalID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromEntryPayment(created))
}

// GetPaymentByProposalID returns the latest payment for a proposal.
func (h *EntryPaymentHandler) GetPaymentByProposalID(c *gin.Context) {
	proposalID := c.Param("proposal_id")
	log.Printf("[payment][handler] get-by-proposal start proposal_id=%s", proposalID)

	payments, err := h.usecase.ListByProposalID(c.Request.Context(), proposalID)
	if err != nil {
		log.Printf("[payment][handler] get-by-proposal failed proposal_id=%s err=%v", proposalID, err)
		appErr := mapEntryPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		log.Printf("[payment][handler] get-by-proposal not-found proposal_id=%s", proposalID)
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	log.Printf("[payment][handler] get-by-proposal success proposal_id=%s payment_id=%s status=%s", proposalID, latest.ID, latest.Status)

	c.JSON(http.StatusOK, response.FromEntryPayment(latest))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapEntryPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentProposalID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProposalNotAccepted):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_ACCEPTED", "Proposal not accepted", http.StatusConflict)
	case errors.Is(err, usecase.ErrNothingToCharge):
		return pkg.NewDomainErrorSimple("NOTHING_TO_CHARGE", "Proposal has no amount due at signing", http.StatusConflict)
	case errors.Is(err, usecase.ErrEntryPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}
