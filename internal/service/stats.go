package service

import (
	"context"
	"time"

	"github.com/puntoventa/puntoventa/internal/api/dto"
	"github.com/puntoventa/puntoventa/internal/types"
	"github.com/sourcegraph/conc/pool"
)

// StatsService assembles the dashboard figures
type StatsService interface {
	// GetDashboardStats gathers the dashboard reads concurrently: sales
	// sums, outstanding credit, catalog counts and the USD quote.
	GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
}

type statsService struct {
	ServiceParams
}

func NewStatsService(params ServiceParams) StatsService {
	return &statsService{ServiceParams: params}
}

func (s *statsService) GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	now := time.Now().UTC()
	resp := &dto.DashboardStatsResponse{}

	// independent reads writing to disjoint fields, no lock needed
	p := pool.New().WithContext(ctx).WithCancelOnError()

	p.Go(func(ctx context.Context) error {
		total, err := s.InvoiceRepo.SumTotalsBetween(ctx, types.MonthRange(now))
		if err != nil {
			return err
		}
		resp.MonthlySales = total
		return nil
	})

	p.Go(func(ctx context.Context) error {
		total, err := s.InvoiceRepo.SumTotalsBetween(ctx, types.DayRange(now))
		if err != nil {
			return err
		}
		resp.DailySales = total
		return nil
	})

	p.Go(func(ctx context.Context) error {
		total, err := s.CreditRepo.SumPending(ctx)
		if err != nil {
			return err
		}
		resp.PendingCredits = total
		return nil
	})

	p.Go(func(ctx context.Context) error {
		count, err := s.ProductRepo.Count(ctx)
		if err != nil {
			return err
		}
		resp.ProductCount = count
		return nil
	})

	p.Go(func(ctx context.Context) error {
		count, err := s.ClientRepo.Count(ctx)
		if err != nil {
			return err
		}
		resp.ClientCount = count
		return nil
	})

	p.Go(func(ctx context.Context) error {
		resp.ExchangeRate = s.RateProvider.GetUSDQuote(ctx)
		return nil
	})

	if err := p.Wait(); err != nil {
		return nil, err
	}
	return resp, nil
}
