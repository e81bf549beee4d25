package routes

import (
	"log"
	"os"
	"strconv"

	_ "agencia_xpto/docs" // This will be auto-generated
	"agencia_xpto/internal/adapter/http/handlers"
	repository2 "agencia_xpto/internal/adapter/persistence/repository"
	"agencia_xpto/internal/infrastructure/database"
	"agencia_xpto/internal/infrastructure/payments"
	"agencia_xpto/internal/usecase"
	"agencia_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	proposalRepo := repository2.NewProposalDynamoRepository(ddb)
	contractRepo := repository2.NewContractDynamoRepository(ddb)
	paymentRepo := repository2.NewEntryPaymentDynamoRepository(ddb)

	proposalUseCase := usecase.NewProposalUseCase(proposalRepo)
	contractUseCase := usecase.NewContractUseCase(contractRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewEntryPaymentUseCase(paymentRepo, proposalRepo, paymentGateway)

	proposalHandler := handlers.NewProposalHandler(proposalUseCase)
	contractHandler := handlers.NewContractHandler(contractUseCase)
	paymentHandler := handlers.NewEntryPaymentHandler(paymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addProposalRoutes(v1, proposalHandler, contractHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
