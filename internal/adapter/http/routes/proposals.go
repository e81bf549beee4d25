package routes

import (
	"agencia_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProposals = "/proposals"
	PathContracts = "/contracts"
	PathPayments  = "/payments"
)

func addProposalRoutes(rg *gin.RouterGroup, proposalHandler *handlers.ProposalHandler, contractHandler *handlers.ContractHandler, paymentHandler *handlers.EntryPaymentHandler) {
	proposals := rg.Group(PathProposals)
	{
		// Etapas do wizard de propostas.
		proposals.POST("", proposalHandler.CreateProposal)
		proposals.GET("/:id", proposalHandler.GetProposal)
		proposals.PUT("/:id/services", proposalHandler.UpdateServices)
		proposals.PUT("/:id/conditions", proposalHandler.UpdateConditions)
		proposals.GET("/:id/preview", proposalHandler.PreviewProposal)
		proposals.PATCH("/:id/send", proposalHandler.SendProposal)
		proposals.PATCH("/:id/accept", proposalHandler.AcceptProposal)
		proposals.PATCH("/:id/decline", proposalHandler.DeclineProposal)
	}

	contracts := rg.Group(PathContracts)
	{
		contracts.POST("", contractHandler.CreateContract)
		contracts.GET("/:id", contractHandler.GetContract)
		contracts.GET("/:id/document", contractHandler.GetContractDocument)
	}

	payments := rg.Group(PathPayments)
	{
		// Cobrança da entrada via Mercado Pago.
		payments.POST("/:proposal_id", paymentHandler.CreatePaymentByProposalID)
		payments.GET("/:proposal_id", paymentHandler.GetPaymentByProposalID)
	}
}
