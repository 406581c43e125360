package routes

import (
	"log"
	"strconv"

	_ "amsi_crm/docs" // This will be auto-generated
	"amsi_crm/internal/adapter/http/handlers"
	repository2 "amsi_crm/internal/adapter/persistence/repository"
	"amsi_crm/internal/infrastructure/ai"
	"amsi_crm/internal/usecase"
	"amsi_crm/internal/usecase/interfaces"

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
	bus := repository2.NewChangeBus()
	bus.Subscribe(func(ch repository2.Change) {
		log.Printf("[store][change] kind=%s id=%s op=%s", ch.Kind, ch.ID, ch.Op)
	})

	customerRepo := repository2.NewCustomerRepository(bus)
	leadRepo := repository2.NewLeadRepository(bus)
	quoteRepo := repository2.NewQuoteRepository(bus)
	invoiceRepo := repository2.NewInvoiceRepository(bus)
	ticketRepo := repository2.NewTicketRepository(bus)
	subscriptionRepo := repository2.NewSubscriptionRepository(bus)
	productRepo := repository2.NewProductRepository(bus)

	var analyzer interfaces.ITicketAnalyzer
	aiClient, err := ai.NewAnalyzerClient()
	if err != nil {
		log.Printf("Ticket analyzer not configured: %v", err)
	} else {
		analyzer = aiClient
	}

	customerUseCase := usecase.NewCustomerUseCase(customerRepo, ticketRepo)
	leadUseCase := usecase.NewLeadUseCase(leadRepo)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, invoiceRepo)
	ticketUseCase := usecase.NewTicketUseCase(ticketRepo, analyzer)
	subscriptionUseCase := usecase.NewSubscriptionUseCase(subscriptionRepo, invoiceRepo)
	inventoryUseCase := usecase.NewInventoryUseCase(productRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(invoiceRepo, ticketRepo, leadRepo, subscriptionRepo, productRepo)

	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	leadHandler := handlers.NewLeadHandler(leadUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase, customerUseCase)
	ticketHandler := handlers.NewTicketHandler(ticketUseCase)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionUseCase)
	productHandler := handlers.NewProductHandler(inventoryUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCRMRoutes(v1, crmHandlers{
		customers:     customerHandler,
		leads:         leadHandler,
		quotes:        quoteHandler,
		invoices:      invoiceHandler,
		tickets:       ticketHandler,
		subscriptions: subscriptionHandler,
		products:      productHandler,
		dashboard:     dashboardHandler,
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
