package dto

import (
	"time"

	"github.com/puntoventa/puntoventa/internal/domain/invoice"
	ierr "github.com/puntoventa/puntoventa/internal/errors"
	"github.com/puntoventa/puntoventa/internal/types"
	"github.com/puntoventa/puntoventa/internal/validator"
	"github.com/shopspring/decimal"
	"github.com/samber/lo"
)

// SaleItemRequest is one product line rung up at the register
type SaleItemRequest struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name" validate:"required"`
	Unit        string          `json:"unit"`
	Quantity    decimal.Decimal `json:"quantity" validate:"required"`
	Price       decimal.Decimal `json:"price"`
}

// ProcessSaleRequest represents a checkout: the invoice to create plus,
// for credit sales, the credit record it opens.
type ProcessSaleRequest struct {
	CustomerID   *string           `json:"customer_id,omitempty"`
	CustomerName string            `json:"customer_name" validate:"required"`
	PaymentType  types.PaymentType `json:"payment_type" validate:"required"`
	// TaxRatePercent overrides the configured default when set, e.g. 16
	TaxRatePercent *decimal.Decimal  `json:"tax_rate_percent,omitempty"`
	Items          []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

func (r *ProcessSaleRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if !r.PaymentType.Validate() {
		return ierr.NewError("invalid payment type").
			WithHint("Payment type must be contado or credito").
			Mark(ierr.ErrValidation)
	}
	for _, item := range r.Items {
		if item.Quantity.LessThanOrEqual(decimal.Zero) {
			return ierr.NewError("invalid quantity").
				WithHintf("Quantity for %s must be greater than 0", item.ProductName).
				Mark(ierr.ErrValidation)
		}
		if item.Price.IsNegative() {
			return ierr.NewError("invalid price").
				WithHintf("Price for %s must not be negative", item.ProductName).
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

// LineItemResponse represents one invoice line
type LineItemResponse struct {
	ID          string          `json:"id"`
	InvoiceID   string          `json:"invoice_id"`
	ProductID   string          `json:"product_id,omitempty"`
	ProductName string          `json:"product_name"`
	Unit        string          `json:"unit,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
}

func NewLineItemResponse(item *invoice.LineItem) *LineItemResponse {
	return &LineItemResponse{
		ID:          item.ID,
		InvoiceID:   item.InvoiceID,
		ProductID:   item.ProductID,
		ProductName: item.ProductName,
		Unit:        item.Unit,
		Quantity:    item.Quantity,
		Price:       item.Price,
		Total:       item.Total,
	}
}

// InvoiceResponse represents a processed sale
type InvoiceResponse struct {
	ID           string              `json:"id"`
	Number       string              `json:"number"`
	CustomerID   *string             `json:"customer_id,omitempty"`
	CustomerName string              `json:"customer_name"`
	PaymentType  types.PaymentType   `json:"payment_type"`
	Subtotal     decimal.Decimal     `json:"subtotal"`
	Tax          decimal.Decimal     `json:"tax"`
	Total        decimal.Decimal     `json:"total"`
	CreatedAt    time.Time           `json:"created_at"`
	Items        []*LineItemResponse `json:"items,omitempty"`
}

func NewInvoiceResponse(inv *invoice.Invoice, items []*invoice.LineItem) *InvoiceResponse {
	return &InvoiceResponse{
		ID:           inv.ID,
		Number:       inv.Number,
		CustomerID:   inv.CustomerID,
		CustomerName: inv.CustomerName,
		PaymentType:  inv.PaymentType,
		Subtotal:     inv.Subtotal,
		Tax:          inv.Tax,
		Total:        inv.Total,
		CreatedAt:    inv.CreatedAt,
		Items:        lo.Map(items, func(item *invoice.LineItem, _ int) *LineItemResponse { return NewLineItemResponse(item) }),
	}
}

// ProcessSaleResponse is the checkout result. CreditID is set only for
// credit sales.
type ProcessSaleResponse struct {
	Invoice  *InvoiceResponse `json:"invoice"`
	CreditID *string          `json:"credit_id,omitempty"`
}

// ListInvoicesResponse is the invoice history
type ListInvoicesResponse struct {
	Items []*InvoiceResponse `json:"items"`
	Total int                `json:"total"`
}
