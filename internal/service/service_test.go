package service

import (
	"github.com/puntoventa/puntoventa/internal/testutil"
)

// newTestServiceParams wires a ServiceParams from the base suite's in-memory
// stores.
func newTestServiceParams(s *testutil.BaseServiceTestSuite) ServiceParams {
	stores := s.GetStores()
	return ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		DB:           s.GetDB(),
		CreditRepo:   stores.CreditRepo,
		InvoiceRepo:  stores.InvoiceRepo,
		LineItemRepo: stores.LineItemRepo,
		ProductRepo:  stores.ProductRepo,
		ClientRepo:   stores.ClientRepo,
		RateProvider: testutil.NewMockRateProvider(),
	}
}
