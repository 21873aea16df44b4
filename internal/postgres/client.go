package postgres

import (
	"context"
	"time"

	"github.com/puntoventa/puntoventa/internal/config"
	ierr "github.com/puntoventa/puntoventa/internal/errors"
	"github.com/puntoventa/puntoventa/internal/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// IClient is the database access point handed to repositories. DB returns
// the connection bound to the context, which is the open transaction when
// the caller is inside WithTx.
type IClient interface {
	DB(ctx context.Context) *gorm.DB
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type txKey struct{}

type client struct {
	db     *gorm.DB
	logger *logger.Logger
}

// NewClient opens the postgres connection pool
func NewClient(cfg *config.Configuration, log *logger.Logger) (IClient, error) {
	db, err := gorm.Open(postgres.Open(cfg.Postgres.GetDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to connect to the database").
			Mark(ierr.ErrDatabase)
	}

	return &client{db: db, logger: log}, nil
}

func (c *client) DB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return c.db.WithContext(ctx)
}

// WithTx runs fn inside a single database transaction. The transaction is
// carried in the context so every repository call within fn joins it; a
// nested WithTx joins the outer transaction instead of opening a new one.
func (c *client) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
