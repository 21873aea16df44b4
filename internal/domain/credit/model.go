package credit

import (
	ierr "github.com/puntoventa/puntoventa/internal/errors"
	"github.com/puntoventa/puntoventa/internal/types"
	"github.com/shopspring/decimal"
)

// CreditRecord is a ledger entry for money owed by a customer on one
// credit-type sale. PendingAmount starts equal to Total and only ever
// decreases; once it drops within tolerance of zero the record is removed
// together with its invoice's line items.
type CreditRecord struct {
	ID string `json:"id"`
	// CustomerID links the record to a registered client. Walk-in customers
	// have no id and are identified by CustomerName alone.
	CustomerID   *string `json:"customer_id,omitempty"`
	CustomerName string  `json:"customer_name"`
	// InvoiceID references the originating invoice when the credit was
	// opened at the register. Manual credit entries have none.
	InvoiceID *string `json:"invoice_id,omitempty"`
	// Products is the free-text product note typed on manual credit entries
	Products      string          `json:"products,omitempty"`
	Total         decimal.Decimal `json:"total" gorm:"type:numeric(14,2)"`
	PendingAmount decimal.Decimal `json:"pending_amount" gorm:"type:numeric(14,2)"`

	types.BaseModel
}

// TableName returns the table name for the credit record
func (c *CreditRecord) TableName() string {
	return "credits"
}

// Settled reports whether the remaining balance is zero within tolerance.
func (c *CreditRecord) Settled() bool {
	return types.ApproxZero(c.PendingAmount)
}

// Status is the settlement state projected from the pending amount. It is
// intentionally not a stored field so it can never drift from the balance.
func (c *CreditRecord) Status() types.CreditStatus {
	if c.Settled() {
		return types.CreditStatusPaid
	}
	return types.CreditStatusPending
}

// CustomerRef returns the grouping identity of the record.
func (c *CreditRecord) CustomerRef() types.CustomerRef {
	return types.CustomerRef{
		CustomerID:   c.CustomerID,
		CustomerName: c.CustomerName,
	}
}

// Validate validates the credit record
func (c *CreditRecord) Validate() error {
	if c.CustomerID == nil && c.CustomerName == "" {
		return ierr.NewError("missing customer identity").
			WithHint("Customer name is required when there is no registered client").
			Mark(ierr.ErrValidation)
	}
	if c.Total.IsZero() || c.Total.IsNegative() {
		return ierr.NewError("invalid total").
			WithHint("Credit total must be greater than 0").
			Mark(ierr.ErrValidation)
	}
	if c.PendingAmount.IsNegative() {
		return ierr.NewError("invalid pending amount").
			WithHint("Pending amount must not be negative").
			Mark(ierr.ErrValidation)
	}
	if c.PendingAmount.GreaterThan(c.Total.Add(types.DecimalTolerance)) {
		return ierr.NewError("pending amount exceeds total").
			WithHint("Pending amount must not exceed the credit total").
			Mark(ierr.ErrValidation)
	}
	return nil
}
