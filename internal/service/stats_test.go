package service

import (
	"testing"
	"time"

	"github.com/puntoventa/puntoventa/internal/domain/client"
	"github.com/puntoventa/puntoventa/internal/domain/credit"
	"github.com/puntoventa/puntoventa/internal/domain/invoice"
	"github.com/puntoventa/puntoventa/internal/domain/product"
	"github.com/puntoventa/puntoventa/internal/testutil"
	"github.com/puntoventa/puntoventa/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type StatsServiceSuite struct {
	testutil.BaseServiceTestSuite
	service StatsService
}

func TestStatsService(t *testing.T) {
	suite.Run(t, new(StatsServiceSuite))
}

func (s *StatsServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewStatsService(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *StatsServiceSuite) seedInvoice(id string, total float64, createdAt time.Time) {
	s.NoError(s.GetStores().InvoiceRepo.Create(s.GetContext(), &invoice.Invoice{
		ID:           id,
		Number:       "INV-" + id,
		CustomerName: "Ana",
		PaymentType:  types.PaymentTypeCash,
		Total:        decimal.NewFromFloat(total),
		BaseModel: types.BaseModel{
			UserID:    types.DefaultUserID,
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		},
	}))
}

func (s *StatsServiceSuite) TestDashboardStats() {
	// anchor on the start of the current day so the seeds never drift
	// across a day or month boundary whatever the wall clock says
	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	s.seedInvoice("inv_1", 100, dayStart.Add(6*time.Hour))
	s.seedInvoice("inv_2", 50, dayStart.Add(9*time.Hour))
	// two months back is outside both windows
	s.seedInvoice("inv_3", 30, dayStart.AddDate(0, -2, 0))

	s.NoError(s.GetStores().CreditRepo.Create(s.GetContext(), &credit.CreditRecord{
		ID:            "cred_1",
		CustomerName:  "Ana",
		Total:         decimal.NewFromInt(40),
		PendingAmount: decimal.NewFromInt(25),
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}))

	s.NoError(s.GetStores().ProductRepo.Create(s.GetContext(), &product.Product{
		ID:          "prod_1",
		Description: "Harina",
		Price:       decimal.NewFromInt(2),
		BaseModel:   types.GetDefaultBaseModel(s.GetContext()),
	}))
	s.NoError(s.GetStores().ClientRepo.Create(s.GetContext(), &client.Client{
		ID:        "clnt_1",
		Name:      "Ana",
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}))

	resp, err := s.service.GetDashboardStats(s.GetContext())
	s.NoError(err)
	s.True(resp.MonthlySales.Equal(decimal.NewFromInt(150)))
	s.True(resp.DailySales.Equal(decimal.NewFromInt(150)))
	s.True(resp.PendingCredits.Equal(decimal.NewFromInt(25)))
	s.Equal(int64(1), resp.ProductCount)
	s.Equal(int64(1), resp.ClientCount)
	s.NotNil(resp.ExchangeRate)
	s.True(resp.ExchangeRate.Average.Equal(decimal.NewFromFloat(35.50)))
}

func (s *StatsServiceSuite) TestDashboardStatsEmpty() {
	resp, err := s.service.GetDashboardStats(s.GetContext())
	s.NoError(err)
	s.True(resp.MonthlySales.IsZero())
	s.True(resp.DailySales.IsZero())
	s.True(resp.PendingCredits.IsZero())
	s.Equal(int64(0), resp.ProductCount)
	s.Equal(int64(0), resp.ClientCount)
}
