package api

import (
	"github.com/gin-gonic/gin"
	v1 "github.com/puntoventa/puntoventa/internal/api/v1"
	"github.com/puntoventa/puntoventa/internal/auth"
	"github.com/puntoventa/puntoventa/internal/config"
	"github.com/puntoventa/puntoventa/internal/logger"
	"github.com/puntoventa/puntoventa/internal/rest/middleware"
	"github.com/puntoventa/puntoventa/internal/types"
)

type Handlers struct {
	Health  *v1.HealthHandler
	Auth    *v1.AuthHandler
	Credit  *v1.CreditHandler
	Sale    *v1.SaleHandler
	Product *v1.ProductHandler
	Client  *v1.ClientHandler
	Stats   *v1.StatsHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, log *logger.Logger, authProvider auth.Provider) *gin.Engine {
	if cfg.Deployment.Mode == types.ModeProd {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.ErrorHandler(),
	)

	v1Group := router.Group("/v1")

	v1Group.GET("/health", handlers.Health.Health)

	authGroup := v1Group.Group("/auth")
	{
		authGroup.POST("/signup", handlers.Auth.SignUp)
		authGroup.POST("/login", handlers.Auth.Login)
	}

	private := v1Group.Group("")
	private.Use(middleware.AuthenticateMiddleware(authProvider, log))
	registerPrivateRoutes(private, handlers)

	return router
}

func registerPrivateRoutes(router *gin.RouterGroup, handlers Handlers) {
	credits := router.Group("/credits")
	{
		credits.GET("", handlers.Credit.ListCredits)
		credits.POST("", handlers.Credit.CreateCredit)
		credits.GET("/customer", handlers.Credit.ListCustomerRecords)
		credits.GET("/customer/invoices", handlers.Credit.ListCustomerInvoices)
		credits.POST("/payments", handlers.Credit.RecordPayment)
	}

	router.POST("/sales", handlers.Sale.ProcessSale)

	invoices := router.Group("/invoices")
	{
		invoices.GET("", handlers.Sale.ListInvoices)
		invoices.GET("/:id", handlers.Sale.GetInvoice)
	}

	products := router.Group("/products")
	{
		products.POST("", handlers.Product.CreateProduct)
		products.GET("", handlers.Product.ListProducts)
		products.GET("/:id", handlers.Product.GetProduct)
		products.PUT("/:id", handlers.Product.UpdateProduct)
		products.DELETE("/:id", handlers.Product.DeleteProduct)
	}

	clients := router.Group("/clients")
	{
		clients.POST("", handlers.Client.CreateClient)
		clients.GET("", handlers.Client.ListClients)
		clients.GET("/:id", handlers.Client.GetClient)
		clients.PUT("/:id", handlers.Client.UpdateClient)
		clients.DELETE("/:id", handlers.Client.DeleteClient)
	}

	router.GET("/stats/dashboard", handlers.Stats.GetDashboardStats)
}
