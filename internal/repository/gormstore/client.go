package gormstore

import (
	"context"
	"time"

	"github.com/puntoventa/puntoventa/internal/domain/client"
	ierr "github.com/puntoventa/puntoventa/internal/errors"
	"github.com/puntoventa/puntoventa/internal/logger"
	"github.com/puntoventa/puntoventa/internal/postgres"
	"github.com/puntoventa/puntoventa/internal/types"
	"gorm.io/gorm"
)

type clientRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

func NewClientRepository(db postgres.IClient, log *logger.Logger) client.Repository {
	return &clientRepository{db: db, logger: log}
}

func (r *clientRepository) Create(ctx context.Context, c *client.Client) error {
	if err := r.db.DB(ctx).Create(c).Error; err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create client").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *clientRepository) Get(ctx context.Context, id string) (*client.Client, error) {
	var c client.Client
	err := r.db.DB(ctx).
		Where("id = ? AND user_id = ?", id, types.GetUserID(ctx)).
		First(&c).Error
	if err != nil {
		if ierr.Is(err, gorm.ErrRecordNotFound) {
			return nil, ierr.WithError(err).
				WithHintf("Client %s was not found", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get client").
			Mark(ierr.ErrDatabase)
	}
	return &c, nil
}

func (r *clientRepository) List(ctx context.Context) ([]*client.Client, error) {
	var clients []*client.Client
	err := r.db.DB(ctx).
		Where("user_id = ?", types.GetUserID(ctx)).
		Order("name asc").
		Find(&clients).Error
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list clients").
			Mark(ierr.ErrDatabase)
	}
	return clients, nil
}

func (r *clientRepository) Update(ctx context.Context, c *client.Client) error {
	c.UpdatedAt = time.Now().UTC()
	result := r.db.DB(ctx).
		Model(&client.Client{}).
		Where("id = ? AND user_id = ?", c.ID, types.GetUserID(ctx)).
		Updates(c)
	if result.Error != nil {
		return ierr.WithError(result.Error).
			WithHint("Failed to update client").
			Mark(ierr.ErrDatabase)
	}
	if result.RowsAffected == 0 {
		return ierr.NewError("client not found").
			WithHintf("Client %s was not found", c.ID).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *clientRepository) Delete(ctx context.Context, id string) error {
	result := r.db.DB(ctx).
		Where("id = ? AND user_id = ?", id, types.GetUserID(ctx)).
		Delete(&client.Client{})
	if result.Error != nil {
		return ierr.WithError(result.Error).
			WithHint("Failed to delete client").
			Mark(ierr.ErrDatabase)
	}
	if result.RowsAffected == 0 {
		return ierr.NewError("client not found").
			WithHintf("Client %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *clientRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.DB(ctx).
		Model(&client.Client{}).
		Where("user_id = ?", types.GetUserID(ctx)).
		Count(&count).Error
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count clients").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}
