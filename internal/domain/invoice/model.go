package invoice

import (
	ierr "github.com/puntoventa/puntoventa/internal/errors"
	"github.com/puntoventa/puntoventa/internal/types"
	"github.com/shopspring/decimal"
)

// Invoice is one processed sale. Credit-type sales additionally open a
// credit record for the invoice total.
type Invoice struct {
	ID string `json:"id"`
	// Number is the short human-facing reference printed on the receipt
	Number       string  `json:"number"`
	CustomerID   *string `json:"customer_id,omitempty"`
	CustomerName string  `json:"customer_name"`
	// PaymentType records how the sale was settled: contado or credito
	PaymentType types.PaymentType `json:"payment_type"`
	Subtotal    decimal.Decimal   `json:"subtotal" gorm:"type:numeric(14,2)"`
	Tax         decimal.Decimal   `json:"tax" gorm:"type:numeric(14,2)"`
	Total       decimal.Decimal   `json:"total" gorm:"type:numeric(14,2)"`

	types.BaseModel
}

// TableName returns the table name for the invoice
func (i *Invoice) TableName() string {
	return "invoices"
}

// Validate validates the invoice
func (i *Invoice) Validate() error {
	if !i.PaymentType.Validate() {
		return ierr.NewError("invalid payment type").
			WithHint("Payment type must be contado or credito").
			Mark(ierr.ErrValidation)
	}
	if i.Total.IsNegative() || i.Subtotal.IsNegative() || i.Tax.IsNegative() {
		return ierr.NewError("invalid invoice amounts").
			WithHint("Invoice amounts must not be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}
