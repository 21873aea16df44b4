package gormstore

import (
	"context"
	"time"

	"github.com/puntoventa/puntoventa/internal/domain/product"
	ierr "github.com/puntoventa/puntoventa/internal/errors"
	"github.com/puntoventa/puntoventa/internal/logger"
	"github.com/puntoventa/puntoventa/internal/postgres"
	"github.com/puntoventa/puntoventa/internal/types"
	"gorm.io/gorm"
)

type productRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

func NewProductRepository(db postgres.IClient, log *logger.Logger) product.Repository {
	return &productRepository{db: db, logger: log}
}

func (r *productRepository) Create(ctx context.Context, p *product.Product) error {
	if err := r.db.DB(ctx).Create(p).Error; err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create product").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *productRepository) Get(ctx context.Context, id string) (*product.Product, error) {
	var p product.Product
	err := r.db.DB(ctx).
		Where("id = ? AND user_id = ?", id, types.GetUserID(ctx)).
		First(&p).Error
	if err != nil {
		if ierr.Is(err, gorm.ErrRecordNotFound) {
			return nil, ierr.WithError(err).
				WithHintf("Product %s was not found", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get product").
			Mark(ierr.ErrDatabase)
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context) ([]*product.Product, error) {
	var products []*product.Product
	err := r.db.DB(ctx).
		Where("user_id = ?", types.GetUserID(ctx)).
		Order("description asc").
		Find(&products).Error
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list products").
			Mark(ierr.ErrDatabase)
	}
	return products, nil
}

func (r *productRepository) Update(ctx context.Context, p *product.Product) error {
	p.UpdatedAt = time.Now().UTC()
	result := r.db.DB(ctx).
		Model(&product.Product{}).
		Where("id = ? AND user_id = ?", p.ID, types.GetUserID(ctx)).
		Updates(p)
	if result.Error != nil {
		return ierr.WithError(result.Error).
			WithHint("Failed to update product").
			Mark(ierr.ErrDatabase)
	}
	if result.RowsAffected == 0 {
		return ierr.NewError("product not found").
			WithHintf("Product %s was not found", p.ID).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	result := r.db.DB(ctx).
		Where("id = ? AND user_id = ?", id, types.GetUserID(ctx)).
		Delete(&product.Product{})
	if result.Error != nil {
		return ierr.WithError(result.Error).
			WithHint("Failed to delete product").
			Mark(ierr.ErrDatabase)
	}
	if result.RowsAffected == 0 {
		return ierr.NewError("product not found").
			WithHintf("Product %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.DB(ctx).
		Model(&product.Product{}).
		Where("user_id = ?", types.GetUserID(ctx)).
		Count(&count).Error
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count products").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}
