package credit

import (
	"context"

	"github.com/puntoventa/puntoventa/internal/types"
	"github.com/shopspring/decimal"
)

// Repository defines the interface for credit record persistence operations.
// Every method is scoped to the user id carried in the context.
type Repository interface {
	// Create creates a new credit record
	Create(ctx context.Context, record *CreditRecord) error

	// ListForUser retrieves all credit records for the user, ordered by
	// customer name
	ListForUser(ctx context.Context) ([]*CreditRecord, error)

	// ListByCustomer retrieves the customer's credit records ordered by
	// created_at ascending, the order the allocator consumes them in
	ListByCustomer(ctx context.Context, ref types.CustomerRef) ([]*CreditRecord, error)

	// ListSettled retrieves records whose pending amount is within
	// tolerance of zero
	ListSettled(ctx context.Context) ([]*CreditRecord, error)

	// UpdatePending sets a new pending amount on a record
	UpdatePending(ctx context.Context, id string, pending decimal.Decimal) error

	// DeleteByIDs removes the given records
	DeleteByIDs(ctx context.Context, ids []string) error

	// SumPending returns the total outstanding balance across all records
	SumPending(ctx context.Context) (decimal.Decimal, error)
}
