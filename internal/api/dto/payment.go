package dto

import (
	ierr "github.com/puntoventa/puntoventa/internal/errors"
	"github.com/puntoventa/puntoventa/internal/types"
	"github.com/puntoventa/puntoventa/internal/validator"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest represents a payment made by a customer against
// their outstanding credit balance.
type RecordPaymentRequest struct {
	CustomerID   *string         `json:"customer_id,omitempty"`
	CustomerName string          `json:"customer_name"`
	Amount       decimal.Decimal `json:"amount" validate:"required"`
}

func (r *RecordPaymentRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.CustomerID == nil && r.CustomerName == "" {
		return ierr.NewError("missing customer identity").
			WithHint("Either customer_id or customer_name is required").
			Mark(ierr.ErrValidation)
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		return ierr.NewError("invalid payment amount").
			WithHint("Payment amount must be greater than 0").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *RecordPaymentRequest) ToCustomerRef() types.CustomerRef {
	return types.CustomerRef{
		CustomerID:   r.CustomerID,
		CustomerName: r.CustomerName,
	}
}

// RecordPaymentResponse reports how the payment was absorbed by the
// customer's credit records.
type RecordPaymentResponse struct {
	Applied          decimal.Decimal `json:"applied"`
	UpdatedRecords   int             `json:"updated_records"`
	SettledRecords   int             `json:"settled_records"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}
