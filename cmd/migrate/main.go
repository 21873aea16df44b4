package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/puntoventa/puntoventa/internal/config"
	"github.com/puntoventa/puntoventa/internal/domain/client"
	"github.com/puntoventa/puntoventa/internal/domain/credit"
	"github.com/puntoventa/puntoventa/internal/domain/invoice"
	"github.com/puntoventa/puntoventa/internal/domain/product"
	"github.com/puntoventa/puntoventa/internal/logger"
	"github.com/puntoventa/puntoventa/internal/postgres"
)

func main() {
	time.Local = time.UTC
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logg, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}

	db, err := postgres.NewClient(cfg, logg)
	if err != nil {
		logg.Fatalf("failed to connect to postgres: %v", err)
	}

	logg.Info("running migrations")
	err = db.DB(context.Background()).AutoMigrate(
		&product.Product{},
		&client.Client{},
		&invoice.Invoice{},
		&invoice.LineItem{},
		&credit.CreditRecord{},
	)
	if err != nil {
		logg.Fatalf("migration failed: %v", err)
	}

	logg.Info("migrations complete")
}
