package invoice

import (
	ierr "github.com/puntoventa/puntoventa/internal/errors"
	"github.com/puntoventa/puntoventa/internal/types"
	"github.com/shopspring/decimal"
)

// LineItem is a single product line on an invoice. Line items belong to
// exactly one invoice and are cascade-deleted when every credit record
// referencing that invoice is removed.
type LineItem struct {
	ID          string          `json:"id"`
	InvoiceID   string          `json:"invoice_id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Unit        string          `json:"unit"`
	Quantity    decimal.Decimal `json:"quantity" gorm:"type:numeric(14,3)"`
	Price       decimal.Decimal `json:"price" gorm:"type:numeric(14,2)"`
	Total       decimal.Decimal `json:"total" gorm:"type:numeric(14,2)"`

	types.BaseModel
}

// TableName returns the table name for the invoice line item
func (l *LineItem) TableName() string {
	return "invoice_items"
}

// Validate validates the invoice line item
func (l *LineItem) Validate() error {
	if l.InvoiceID == "" {
		return ierr.NewError("missing invoice id").
			WithHint("Line item must reference an invoice").
			Mark(ierr.ErrValidation)
	}
	if l.Quantity.IsZero() || l.Quantity.IsNegative() {
		return ierr.NewError("invalid quantity").
			WithHint("Quantity must be greater than 0").
			Mark(ierr.ErrValidation)
	}
	if l.Price.IsNegative() {
		return ierr.NewError("invalid price").
			WithHint("Price must not be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}
