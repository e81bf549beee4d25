package handlers

import (
	"errors"
	"log"
	"net/http"

	request "agencia_xpto/internal/adapter/http/dto/request"
	response "agencia_xpto/internal/adapter/http/dto/response"
	"agencia_xpto/internal/usecase"
	"agencia_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidContractPayload = pkg.NewDomainErrorSimple("INVALID_CONTRACT_INPUT", "Invalid contract payload", http.StatusBadRequest)
)

// ContractHandler handles HTTP requests for the contract wizard.

type ContractHandler struct {
	usecase usecase.IContractUseCase
}

func NewContractHandler(uc usecase.IContractUseCase) *ContractHandler {
	return &ContractHandler{usecase: uc}
}

// CreateContract persists the full wizard form.
func (h *ContractHandler) CreateContract(c *gin.Context) {
	var payload request.ContractCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	contract, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[contract][handler] create success contract_id=%s kind=%s", contract.ID, contract.Kind)

	c.JSON(http.StatusCreated, response.FromContract(contract))
}

func (h *ContractHandler) GetContract(c *gin.Context) {
	contract, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContract(contract))
}

// GetContractDocument renders the legal document from the stored form data.
func (h *ContractHandler) GetContractDocument(c *gin.Context) {
	doc, err := h.usecase.RenderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDocument(doc))
}

func mapContractError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContractID),
		errors.Is(err, usecase.ErrInvalidContractKind),
		errors.Is(err, usecase.ErrMissingPrestador),
		errors.Is(err, usecase.ErrMissingParametros),
		errors.Is(err, usecase.ErrMissingServico),
		errors.Is(err, usecase.ErrMissingDistrato):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
