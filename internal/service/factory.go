package service

import (
	"github.com/puntoventa/puntoventa/internal/config"
	"github.com/puntoventa/puntoventa/internal/domain/client"
	"github.com/puntoventa/puntoventa/internal/domain/credit"
	"github.com/puntoventa/puntoventa/internal/domain/invoice"
	"github.com/puntoventa/puntoventa/internal/domain/product"
	"github.com/puntoventa/puntoventa/internal/exchangerate"
	"github.com/puntoventa/puntoventa/internal/logger"
	"github.com/puntoventa/puntoventa/internal/postgres"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	DB     postgres.IClient

	// Repositories
	CreditRepo   credit.Repository
	InvoiceRepo  invoice.Repository
	LineItemRepo invoice.LineItemRepository
	ProductRepo  product.Repository
	ClientRepo   client.Repository

	// External providers
	RateProvider exchangerate.Provider
}

// NewServiceParams builds the shared dependency bundle handed to every
// service constructor.
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	db postgres.IClient,
	creditRepo credit.Repository,
	invoiceRepo invoice.Repository,
	lineItemRepo invoice.LineItemRepository,
	productRepo product.Repository,
	clientRepo client.Repository,
	rateProvider exchangerate.Provider,
) ServiceParams {
	return ServiceParams{
		Logger:       logger,
		Config:       config,
		DB:           db,
		CreditRepo:   creditRepo,
		InvoiceRepo:  invoiceRepo,
		LineItemRepo: lineItemRepo,
		ProductRepo:  productRepo,
		ClientRepo:   clientRepo,
		RateProvider: rateProvider,
	}
}
