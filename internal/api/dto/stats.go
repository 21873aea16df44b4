package dto

import (
	"github.com/puntoventa/puntoventa/internal/exchangerate"
	"github.com/shopspring/decimal"
)

// DashboardStatsResponse is the register's landing dashboard: sales
// figures, outstanding credit, catalog sizes and the display-only USD
// quote.
type DashboardStatsResponse struct {
	MonthlySales   decimal.Decimal     `json:"monthly_sales"`
	DailySales     decimal.Decimal     `json:"daily_sales"`
	PendingCredits decimal.Decimal     `json:"pending_credits"`
	ProductCount   int64               `json:"product_count"`
	ClientCount    int64               `json:"client_count"`
	ExchangeRate   *exchangerate.Quote `json:"exchange_rate,omitempty"`
}
