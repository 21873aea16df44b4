package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/puntoventa/puntoventa/internal/domain/invoice"
	ierr "github.com/puntoventa/puntoventa/internal/errors"
	"github.com/puntoventa/puntoventa/internal/types"
)

// InMemoryLineItemStore implements invoice.LineItemRepository
type InMemoryLineItemStore struct {
	mu    sync.RWMutex
	items map[string]*invoice.LineItem
}

// NewInMemoryLineItemStore creates a new in-memory line item repository
func NewInMemoryLineItemStore() *InMemoryLineItemStore {
	return &InMemoryLineItemStore{
		items: make(map[string]*invoice.LineItem),
	}
}

// Clear resets all stored data
func (m *InMemoryLineItemStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = make(map[string]*invoice.LineItem)
}

func (m *InMemoryLineItemStore) CreateBulk(ctx context.Context, items []*invoice.LineItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, item := range items {
		if item == nil || item.ID == "" {
			return ierr.NewError("invalid line item").
				WithHint("Line item and its ID are required").
				Mark(ierr.ErrValidation)
		}
		copied := *item
		m.items[item.ID] = &copied
	}
	return nil
}

func (m *InMemoryLineItemStore) ListByInvoice(ctx context.Context, invoiceID string) ([]*invoice.LineItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]*invoice.LineItem, 0)
	for _, item := range m.items {
		if item.UserID == types.GetUserID(ctx) && item.InvoiceID == invoiceID {
			copied := *item
			items = append(items, &copied)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (m *InMemoryLineItemStore) DeleteByInvoiceIDs(ctx context.Context, invoiceIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	wanted := make(map[string]struct{}, len(invoiceIDs))
	for _, id := range invoiceIDs {
		wanted[id] = struct{}{}
	}

	for id, item := range m.items {
		if item.UserID != types.GetUserID(ctx) {
			continue
		}
		if _, ok := wanted[item.InvoiceID]; ok {
			delete(m.items, id)
		}
	}
	return nil
}

// CountForInvoice reports how many line items an invoice has, a test helper
// for asserting the cascade delete.
func (m *InMemoryLineItemStore) CountForInvoice(invoiceID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, item := range m.items {
		if item.InvoiceID == invoiceID {
			count++
		}
	}
	return count
}
