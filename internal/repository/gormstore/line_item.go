package gormstore

import (
	"context"

	"github.com/puntoventa/puntoventa/internal/domain/invoice"
	ierr "github.com/puntoventa/puntoventa/internal/errors"
	"github.com/puntoventa/puntoventa/internal/logger"
	"github.com/puntoventa/puntoventa/internal/postgres"
	"github.com/puntoventa/puntoventa/internal/types"
)

type lineItemRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

func NewLineItemRepository(db postgres.IClient, log *logger.Logger) invoice.LineItemRepository {
	return &lineItemRepository{db: db, logger: log}
}

func (r *lineItemRepository) CreateBulk(ctx context.Context, items []*invoice.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	if err := r.db.DB(ctx).Create(&items).Error; err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create invoice line items").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *lineItemRepository) ListByInvoice(ctx context.Context, invoiceID string) ([]*invoice.LineItem, error) {
	var items []*invoice.LineItem
	err := r.db.DB(ctx).
		Where("user_id = ? AND invoice_id = ?", types.GetUserID(ctx), invoiceID).
		Find(&items).Error
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list invoice line items").
			Mark(ierr.ErrDatabase)
	}
	return items, nil
}

func (r *lineItemRepository) DeleteByInvoiceIDs(ctx context.Context, invoiceIDs []string) error {
	if len(invoiceIDs) == 0 {
		return nil
	}

	r.logger.Debugw("deleting invoice line items", "invoice_ids", invoiceIDs)

	err := r.db.DB(ctx).
		Where("user_id = ? AND invoice_id IN ?", types.GetUserID(ctx), invoiceIDs).
		Delete(&invoice.LineItem{}).Error
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete invoice line items").
			Mark(ierr.ErrDatabase)
	}
	return nil
}
