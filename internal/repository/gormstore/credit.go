package gormstore

import (
	"context"
	"time"

	"github.com/puntoventa/puntoventa/internal/domain/credit"
	ierr "github.com/puntoventa/puntoventa/internal/errors"
	"github.com/puntoventa/puntoventa/internal/logger"
	"github.com/puntoventa/puntoventa/internal/postgres"
	"github.com/puntoventa/puntoventa/internal/types"
	"github.com/shopspring/decimal"
)

type creditRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

func NewCreditRepository(db postgres.IClient, log *logger.Logger) credit.Repository {
	return &creditRepository{db: db, logger: log}
}

func (r *creditRepository) Create(ctx context.Context, record *credit.CreditRecord) error {
	r.logger.Debugw("creating credit record",
		"credit_id", record.ID,
		"customer_name", record.CustomerName,
		"total", record.Total,
	)

	if err := r.db.DB(ctx).Create(record).Error; err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create credit record").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *creditRepository) ListForUser(ctx context.Context) ([]*credit.CreditRecord, error) {
	var records []*credit.CreditRecord
	err := r.db.DB(ctx).
		Where("user_id = ?", types.GetUserID(ctx)).
		Order("customer_name asc, created_at asc").
		Find(&records).Error
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list credit records").
			Mark(ierr.ErrDatabase)
	}
	return records, nil
}

func (r *creditRepository) ListByCustomer(ctx context.Context, ref types.CustomerRef) ([]*credit.CreditRecord, error) {
	query := r.db.DB(ctx).Where("user_id = ?", types.GetUserID(ctx))
	if ref.CustomerID != nil {
		query = query.Where("customer_id = ?", *ref.CustomerID)
	} else {
		query = query.Where("customer_id IS NULL AND customer_name = ?", ref.CustomerName)
	}

	var records []*credit.CreditRecord
	if err := query.Order("created_at asc").Find(&records).Error; err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list customer credit records").
			Mark(ierr.ErrDatabase)
	}
	return records, nil
}

func (r *creditRepository) ListSettled(ctx context.Context) ([]*credit.CreditRecord, error) {
	var records []*credit.CreditRecord
	err := r.db.DB(ctx).
		Where("user_id = ? AND pending_amount <= ?", types.GetUserID(ctx), types.DecimalTolerance).
		Find(&records).Error
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list settled credit records").
			Mark(ierr.ErrDatabase)
	}
	return records, nil
}

func (r *creditRepository) UpdatePending(ctx context.Context, id string, pending decimal.Decimal) error {
	result := r.db.DB(ctx).
		Model(&credit.CreditRecord{}).
		Where("id = ? AND user_id = ?", id, types.GetUserID(ctx)).
		Updates(map[string]interface{}{
			"pending_amount": pending,
			"updated_at":     time.Now().UTC(),
		})
	if result.Error != nil {
		return ierr.WithError(result.Error).
			WithHint("Failed to update credit record").
			Mark(ierr.ErrDatabase)
	}
	if result.RowsAffected == 0 {
		return ierr.NewError("credit record not found").
			WithHintf("Credit record %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *creditRepository) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	err := r.db.DB(ctx).
		Where("user_id = ? AND id IN ?", types.GetUserID(ctx), ids).
		Delete(&credit.CreditRecord{}).Error
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete credit records").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *creditRepository) SumPending(ctx context.Context) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	err := r.db.DB(ctx).
		Model(&credit.CreditRecord{}).
		Select("COALESCE(SUM(pending_amount), 0) AS total").
		Where("user_id = ?", types.GetUserID(ctx)).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, ierr.WithError(err).
			WithHint("Failed to sum pending credits").
			Mark(ierr.ErrDatabase)
	}
	return result.Total, nil
}
