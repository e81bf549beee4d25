package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "agencia_xpto/internal/adapter/http/dto/request"
	response "agencia_xpto/internal/adapter/http/dto/response"
	"agencia_xpto/internal/domain/entities"
	"agencia_xpto/internal/usecase"
	"agencia_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProposalPayload = pkg.NewDomainErrorSimple("INVALID_PROPOSAL_INPUT", "Invalid proposal payload", http.StatusBadRequest)
)

// ProposalHandler handles HTTP requests for the proposal wizard.
//
// Each wizard step maps to one route; the preview route is read-only and
// always derived from the stored state.

type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

// CreateProposal starts a new proposal from the client step.
func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	var payload request.ProposalCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	proposal, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[proposal][handler] create success proposal_id=%s", proposal.ID)

	c.JSON(http.StatusCreated, response.FromProposal(proposal))
}

func (h *ProposalHandler) GetProposal(c *gin.Context) {
	proposal, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

// UpdateServices replaces the selected services (wizard services step).
func (h *ProposalHandler) UpdateServices(c *gin.Context) {
	var payload request.ProposalServicesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	proposal, err := h.usecase.UpdateServices(c.Request.Context(), c.Param("id"), payload.ToEntities())
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

// UpdateConditions replaces the payment conditions (wizard conditions step).
func (h *ProposalHandler) UpdateConditions(c *gin.Context) {
	var payload request.ProposalConditionsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	proposal, err := h.usecase.UpdateConditions(c.Request.Context(), c.Param("id"), payload.ToEntities())
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

// PreviewProposal returns the derived pricing views for the preview screen.
func (h *ProposalHandler) PreviewProposal(c *gin.Context) {
	preview, err := h.usecase.Preview(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPreview(preview))
}

func (h *ProposalHandler) SendProposal(c *gin.Context) {
	h.patchProposalStatus(c, h.usecase.SendByID)
}

func (h *ProposalHandler) AcceptProposal(c *gin.Context) {
	h.patchProposalStatus(c, h.usecase.AcceptByID)
}

func (h *ProposalHandler) DeclineProposal(c *gin.Context) {
	h.patchProposalStatus(c, h.usecase.DeclineByID)
}

func (h *ProposalHandler) patchProposalStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Proposal, error),
) {
	proposal, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

func mapProposalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID), errors.Is(err, usecase.ErrInvalidProposalClient):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Proposal status does not allow this transition", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
