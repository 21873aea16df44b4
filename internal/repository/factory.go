package repository

import (
	"github.com/puntoventa/puntoventa/internal/domain/client"
	"github.com/puntoventa/puntoventa/internal/domain/credit"
	"github.com/puntoventa/puntoventa/internal/domain/invoice"
	"github.com/puntoventa/puntoventa/internal/domain/product"
	"github.com/puntoventa/puntoventa/internal/logger"
	"github.com/puntoventa/puntoventa/internal/postgres"
	"github.com/puntoventa/puntoventa/internal/repository/gormstore"
)

func NewCreditRepository(db postgres.IClient, log *logger.Logger) credit.Repository {
	return gormstore.NewCreditRepository(db, log)
}

func NewInvoiceRepository(db postgres.IClient, log *logger.Logger) invoice.Repository {
	return gormstore.NewInvoiceRepository(db, log)
}

func NewLineItemRepository(db postgres.IClient, log *logger.Logger) invoice.LineItemRepository {
	return gormstore.NewLineItemRepository(db, log)
}

func NewProductRepository(db postgres.IClient, log *logger.Logger) product.Repository {
	return gormstore.NewProductRepository(db, log)
}

func NewClientRepository(db postgres.IClient, log *logger.Logger) client.Repository {
	return gormstore.NewClientRepository(db, log)
}
