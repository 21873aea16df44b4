package gormstore

import (
	"context"

	"github.com/puntoventa/puntoventa/internal/domain/invoice"
	ierr "github.com/puntoventa/puntoventa/internal/errors"
	"github.com/puntoventa/puntoventa/internal/logger"
	"github.com/puntoventa/puntoventa/internal/postgres"
	"github.com/puntoventa/puntoventa/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type invoiceRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

func NewInvoiceRepository(db postgres.IClient, log *logger.Logger) invoice.Repository {
	return &invoiceRepository{db: db, logger: log}
}

func (r *invoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	r.logger.Debugw("creating invoice",
		"invoice_id", inv.ID,
		"payment_type", inv.PaymentType,
		"total", inv.Total,
	)

	if err := r.db.DB(ctx).Create(inv).Error; err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create invoice").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *invoiceRepository) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	var inv invoice.Invoice
	err := r.db.DB(ctx).
		Where("id = ? AND user_id = ?", id, types.GetUserID(ctx)).
		First(&inv).Error
	if err != nil {
		if ierr.Is(err, gorm.ErrRecordNotFound) {
			return nil, ierr.WithError(err).
				WithHintf("Invoice %s was not found", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get invoice").
			Mark(ierr.ErrDatabase)
	}
	return &inv, nil
}

func (r *invoiceRepository) GetByIDs(ctx context.Context, ids []string) ([]*invoice.Invoice, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var invoices []*invoice.Invoice
	err := r.db.DB(ctx).
		Where("user_id = ? AND id IN ?", types.GetUserID(ctx), ids).
		Find(&invoices).Error
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list invoices").
			Mark(ierr.ErrDatabase)
	}
	return invoices, nil
}

func (r *invoiceRepository) ListForUser(ctx context.Context) ([]*invoice.Invoice, error) {
	var invoices []*invoice.Invoice
	err := r.db.DB(ctx).
		Where("user_id = ?", types.GetUserID(ctx)).
		Order("created_at desc").
		Find(&invoices).Error
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list invoices").
			Mark(ierr.ErrDatabase)
	}
	return invoices, nil
}

func (r *invoiceRepository) SumTotalsBetween(ctx context.Context, window types.TimeRangeFilter) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	err := r.db.DB(ctx).
		Model(&invoice.Invoice{}).
		Select("COALESCE(SUM(total), 0) AS total").
		Where("user_id = ? AND created_at >= ? AND created_at <= ?",
			types.GetUserID(ctx), window.Start, window.End).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, ierr.WithError(err).
			WithHint("Failed to sum invoice totals").
			Mark(ierr.ErrDatabase)
	}
	return result.Total, nil
}
