package testutil

import (
	"context"

	"github.com/puntoventa/puntoventa/internal/exchangerate"
	"github.com/shopspring/decimal"
)

// MockRateProvider returns a fixed exchange-rate quote for testing
type MockRateProvider struct {
	Quote *exchangerate.Quote
}

func NewMockRateProvider() *MockRateProvider {
	return &MockRateProvider{
		Quote: &exchangerate.Quote{
			Source:  "test",
			Name:    "Dólar de prueba",
			Buy:     decimal.NewFromFloat(35.00),
			Sell:    decimal.NewFromFloat(36.00),
			Average: decimal.NewFromFloat(35.50),
		},
	}
}

func (m *MockRateProvider) GetUSDQuote(ctx context.Context) *exchangerate.Quote {
	return m.Quote
}
