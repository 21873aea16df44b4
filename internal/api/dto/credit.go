package dto

import (
	"time"

	"github.com/puntoventa/puntoventa/internal/domain/credit"
	"github.com/puntoventa/puntoventa/internal/types"
	"github.com/puntoventa/puntoventa/internal/validator"
	"github.com/shopspring/decimal"
)

// CreateCreditRequest represents a manual credit entry: debt registered
// directly on the ledger without a sale at the register.
type CreateCreditRequest struct {
	CustomerID   *string         `json:"customer_id,omitempty"`
	CustomerName string          `json:"customer_name" validate:"required"`
	Products     string          `json:"products,omitempty"`
	Total        decimal.Decimal `json:"total" validate:"required"`
}

func (r *CreateCreditRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// ToCreditRecord converts the request to a credit record opened for the
// full amount.
func (r *CreateCreditRequest) ToCreditRecord() *credit.CreditRecord {
	return &credit.CreditRecord{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CREDIT),
		CustomerID:    r.CustomerID,
		CustomerName:  r.CustomerName,
		Products:      r.Products,
		Total:         r.Total,
		PendingAmount: r.Total,
	}
}

// CustomerQuery identifies the customer a ledger operation targets
type CustomerQuery struct {
	CustomerID   *string `json:"customer_id,omitempty" form:"customer_id"`
	CustomerName string  `json:"customer_name" form:"customer_name"`
}

func (q *CustomerQuery) ToCustomerRef() types.CustomerRef {
	return types.CustomerRef{
		CustomerID:   q.CustomerID,
		CustomerName: q.CustomerName,
	}
}

// CreditRecordResponse represents a single credit record
type CreditRecordResponse struct {
	ID            string             `json:"id"`
	CustomerID    *string            `json:"customer_id,omitempty"`
	CustomerName  string             `json:"customer_name"`
	InvoiceID     *string            `json:"invoice_id,omitempty"`
	Products      string             `json:"products,omitempty"`
	Total         decimal.Decimal    `json:"total"`
	PendingAmount decimal.Decimal    `json:"pending_amount"`
	Status        types.CreditStatus `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
}

func NewCreditRecordResponse(record *credit.CreditRecord) *CreditRecordResponse {
	return &CreditRecordResponse{
		ID:            record.ID,
		CustomerID:    record.CustomerID,
		CustomerName:  record.CustomerName,
		InvoiceID:     record.InvoiceID,
		Products:      record.Products,
		Total:         record.Total,
		PendingAmount: record.PendingAmount,
		Status:        record.Status(),
		CreatedAt:     record.CreatedAt,
	}
}

// CustomerCreditResponse is one row of the aggregated credit list
type CustomerCreditResponse struct {
	CustomerID    *string            `json:"customer_id,omitempty"`
	CustomerName  string             `json:"customer_name"`
	Total         decimal.Decimal    `json:"total"`
	PendingAmount decimal.Decimal    `json:"pending_amount"`
	Status        types.CreditStatus `json:"status"`
}

func NewCustomerCreditResponse(summary *credit.CustomerSummary) *CustomerCreditResponse {
	return &CustomerCreditResponse{
		CustomerID:    summary.CustomerID,
		CustomerName:  summary.CustomerName,
		Total:         summary.Total,
		PendingAmount: summary.PendingAmount,
		Status:        summary.Status,
	}
}

// ListCreditsResponse is the aggregated credit ledger
type ListCreditsResponse struct {
	Items []*CustomerCreditResponse `json:"items"`
	Total int                       `json:"total"`
}
