package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/puntoventa/puntoventa/internal/domain/invoice"
	ierr "github.com/puntoventa/puntoventa/internal/errors"
	"github.com/puntoventa/puntoventa/internal/types"
	"github.com/shopspring/decimal"
)

// InMemoryInvoiceStore implements invoice.Repository
type InMemoryInvoiceStore struct {
	mu       sync.RWMutex
	invoices map[string]*invoice.Invoice
}

// NewInMemoryInvoiceStore creates a new in-memory invoice repository
func NewInMemoryInvoiceStore() *InMemoryInvoiceStore {
	return &InMemoryInvoiceStore{
		invoices: make(map[string]*invoice.Invoice),
	}
}

// Clear resets all stored data
func (m *InMemoryInvoiceStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invoices = make(map[string]*invoice.Invoice)
}

func (m *InMemoryInvoiceStore) Create(ctx context.Context, inv *invoice.Invoice) error {
	if inv == nil || inv.ID == "" {
		return ierr.NewError("invalid invoice").
			WithHint("Invoice and its ID are required").
			Mark(ierr.ErrValidation)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.invoices[inv.ID]; exists {
		return ierr.NewError("invoice already exists").
			WithHintf("Invoice %s already exists", inv.ID).
			Mark(ierr.ErrAlreadyExists)
	}

	copied := *inv
	m.invoices[inv.ID] = &copied
	return nil
}

func (m *InMemoryInvoiceStore) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	inv, ok := m.invoices[id]
	if !ok || inv.UserID != types.GetUserID(ctx) {
		return nil, ierr.NewError("invoice not found").
			WithHintf("Invoice %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	copied := *inv
	return &copied, nil
}

func (m *InMemoryInvoiceStore) GetByIDs(ctx context.Context, ids []string) ([]*invoice.Invoice, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	invoices := make([]*invoice.Invoice, 0, len(ids))
	for _, id := range ids {
		if inv, ok := m.invoices[id]; ok && inv.UserID == types.GetUserID(ctx) {
			copied := *inv
			invoices = append(invoices, &copied)
		}
	}
	return invoices, nil
}

func (m *InMemoryInvoiceStore) ListForUser(ctx context.Context) ([]*invoice.Invoice, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	invoices := make([]*invoice.Invoice, 0, len(m.invoices))
	for _, inv := range m.invoices {
		if inv.UserID == types.GetUserID(ctx) {
			copied := *inv
			invoices = append(invoices, &copied)
		}
	}
	sort.Slice(invoices, func(i, j int) bool {
		return invoices[i].CreatedAt.After(invoices[j].CreatedAt)
	})
	return invoices, nil
}

func (m *InMemoryInvoiceStore) SumTotalsBetween(ctx context.Context, window types.TimeRangeFilter) (decimal.Decimal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := decimal.Zero
	for _, inv := range m.invoices {
		if inv.UserID != types.GetUserID(ctx) {
			continue
		}
		if inv.CreatedAt.Before(window.Start) || inv.CreatedAt.After(window.End) {
			continue
		}
		total = total.Add(inv.Total)
	}
	return total, nil
}
