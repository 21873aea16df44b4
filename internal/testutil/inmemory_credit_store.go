package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/puntoventa/puntoventa/internal/domain/credit"
	ierr "github.com/puntoventa/puntoventa/internal/errors"
	"github.com/puntoventa/puntoventa/internal/types"
	"github.com/shopspring/decimal"
)

// InMemoryCreditStore implements credit.Repository
type InMemoryCreditStore struct {
	mu      sync.RWMutex
	records map[string]*credit.CreditRecord
}

// NewInMemoryCreditStore creates a new in-memory credit repository
func NewInMemoryCreditStore() *InMemoryCreditStore {
	return &InMemoryCreditStore{
		records: make(map[string]*credit.CreditRecord),
	}
}

// Clear resets all stored data
func (m *InMemoryCreditStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = make(map[string]*credit.CreditRecord)
}

func (m *InMemoryCreditStore) Create(ctx context.Context, record *credit.CreditRecord) error {
	if record == nil {
		return ierr.NewError("credit record cannot be nil").
			WithHint("Credit record cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if record.ID == "" {
		return ierr.NewError("credit record ID cannot be empty").
			WithHint("Credit record ID cannot be empty").
			Mark(ierr.ErrValidation)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.records[record.ID]; exists {
		return ierr.NewError("credit record already exists").
			WithHintf("Credit record %s already exists", record.ID).
			Mark(ierr.ErrAlreadyExists)
	}

	copied := *record
	m.records[record.ID] = &copied
	return nil
}

func (m *InMemoryCreditStore) ListForUser(ctx context.Context) ([]*credit.CreditRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := m.filter(func(r *credit.CreditRecord) bool {
		return r.UserID == types.GetUserID(ctx)
	})
	sort.Slice(records, func(i, j int) bool {
		if records[i].CustomerName != records[j].CustomerName {
			return records[i].CustomerName < records[j].CustomerName
		}
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
	return records, nil
}

func (m *InMemoryCreditStore) ListByCustomer(ctx context.Context, ref types.CustomerRef) ([]*credit.CreditRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := m.filter(func(r *credit.CreditRecord) bool {
		return r.UserID == types.GetUserID(ctx) && ref.Matches(r.CustomerID, r.CustomerName)
	})
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
	return records, nil
}

func (m *InMemoryCreditStore) ListSettled(ctx context.Context) ([]*credit.CreditRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.filter(func(r *credit.CreditRecord) bool {
		return r.UserID == types.GetUserID(ctx) && r.PendingAmount.LessThanOrEqual(types.DecimalTolerance)
	}), nil
}

func (m *InMemoryCreditStore) UpdatePending(ctx context.Context, id string, pending decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[id]
	if !ok || record.UserID != types.GetUserID(ctx) {
		return ierr.NewError("credit record not found").
			WithHintf("Credit record %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	record.PendingAmount = pending
	record.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *InMemoryCreditStore) DeleteByIDs(ctx context.Context, ids []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, id := range ids {
		if record, ok := m.records[id]; ok && record.UserID == types.GetUserID(ctx) {
			delete(m.records, id)
		}
	}
	return nil
}

func (m *InMemoryCreditStore) SumPending(ctx context.Context) (decimal.Decimal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := decimal.Zero
	for _, record := range m.records {
		if record.UserID == types.GetUserID(ctx) {
			total = total.Add(record.PendingAmount)
		}
	}
	return total, nil
}

func (m *InMemoryCreditStore) filter(keep func(*credit.CreditRecord) bool) []*credit.CreditRecord {
	records := make([]*credit.CreditRecord, 0, len(m.records))
	for _, record := range m.records {
		if keep(record) {
			copied := *record
			records = append(records, &copied)
		}
	}
	return records
}
