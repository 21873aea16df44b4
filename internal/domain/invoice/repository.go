package invoice

import (
	"context"

	"github.com/puntoventa/puntoventa/internal/types"
	"github.com/shopspring/decimal"
)

// Repository defines the interface for invoice persistence operations
type Repository interface {
	// Create creates a new invoice
	Create(ctx context.Context, invoice *Invoice) error

	// Get retrieves an invoice by ID
	Get(ctx context.Context, id string) (*Invoice, error)

	// GetByIDs retrieves the given invoices
	GetByIDs(ctx context.Context, ids []string) ([]*Invoice, error)

	// ListForUser retrieves all invoices for the user, newest first
	ListForUser(ctx context.Context) ([]*Invoice, error)

	// SumTotalsBetween returns the sum of invoice totals created within the
	// window, used by the sales stats
	SumTotalsBetween(ctx context.Context, window types.TimeRangeFilter) (decimal.Decimal, error)
}

// LineItemRepository defines the interface for invoice line item
// persistence operations
type LineItemRepository interface {
	// CreateBulk inserts all line items of an invoice
	CreateBulk(ctx context.Context, items []*LineItem) error

	// ListByInvoice retrieves the line items of one invoice
	ListByInvoice(ctx context.Context, invoiceID string) ([]*LineItem, error)

	// DeleteByInvoiceIDs removes every line item belonging to the given
	// invoices, the cascade step of credit cleanup
	DeleteByInvoiceIDs(ctx context.Context, invoiceIDs []string) error
}
