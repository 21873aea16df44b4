package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/puntoventa/puntoventa/internal/api"
	v1 "github.com/puntoventa/puntoventa/internal/api/v1"
	"github.com/puntoventa/puntoventa/internal/auth"
	"github.com/puntoventa/puntoventa/internal/config"
	"github.com/puntoventa/puntoventa/internal/exchangerate"
	"github.com/puntoventa/puntoventa/internal/httpclient"
	"github.com/puntoventa/puntoventa/internal/logger"
	"github.com/puntoventa/puntoventa/internal/postgres"
	"github.com/puntoventa/puntoventa/internal/repository"
	"github.com/puntoventa/puntoventa/internal/service"
	"github.com/puntoventa/puntoventa/internal/validator"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC

	// Local development env file, ignored when absent
	_ = godotenv.Load()
}

func main() {
	app := fx.New(
		fx.Provide(
			validator.NewValidator,
			config.NewConfig,
			logger.NewLogger,

			// Postgres
			postgres.NewClient,

			// HTTP client
			httpclient.NewDefaultClient,

			// External providers
			auth.NewSupabaseAuth,
			exchangerate.NewProvider,

			// Repositories
			repository.NewCreditRepository,
			repository.NewInvoiceRepository,
			repository.NewLineItemRepository,
			repository.NewProductRepository,
			repository.NewClientRepository,

			// Services
			service.NewServiceParams,
			service.NewAuthService,
			service.NewCreditService,
			service.NewPaymentService,
			service.NewSaleService,
			service.NewProductService,
			service.NewClientService,
			service.NewStatsService,

			provideHandlers,
			provideRouter,
		),
		fx.Invoke(startServer),
	)

	app.Run()
}

func provideHandlers(
	logger *logger.Logger,
	authService service.AuthService,
	creditService service.CreditService,
	paymentService service.PaymentService,
	saleService service.SaleService,
	productService service.ProductService,
	clientService service.ClientService,
	statsService service.StatsService,
) api.Handlers {
	return api.Handlers{
		Health:  v1.NewHealthHandler(),
		Auth:    v1.NewAuthHandler(authService, logger),
		Credit:  v1.NewCreditHandler(creditService, paymentService, logger),
		Sale:    v1.NewSaleHandler(saleService, logger),
		Product: v1.NewProductHandler(productService, logger),
		Client:  v1.NewClientHandler(clientService, logger),
		Stats:   v1.NewStatsHandler(statsService, logger),
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration, log *logger.Logger, authProvider auth.Provider) *gin.Engine {
	return api.NewRouter(handlers, cfg, log, authProvider)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting API server", "address", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}
