package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/puntoventa/puntoventa/internal/domain/product"
	ierr "github.com/puntoventa/puntoventa/internal/errors"
	"github.com/puntoventa/puntoventa/internal/types"
)

// InMemoryProductStore implements product.Repository
type InMemoryProductStore struct {
	mu       sync.RWMutex
	products map[string]*product.Product
}

// NewInMemoryProductStore creates a new in-memory product repository
func NewInMemoryProductStore() *InMemoryProductStore {
	return &InMemoryProductStore{
		products: make(map[string]*product.Product),
	}
}

// Clear resets all stored data
func (m *InMemoryProductStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products = make(map[string]*product.Product)
}

func (m *InMemoryProductStore) Create(ctx context.Context, p *product.Product) error {
	if p == nil || p.ID == "" {
		return ierr.NewError("invalid product").
			WithHint("Product and its ID are required").
			Mark(ierr.ErrValidation)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.products[p.ID]; exists {
		return ierr.NewError("product already exists").
			WithHintf("Product %s already exists", p.ID).
			Mark(ierr.ErrAlreadyExists)
	}

	copied := *p
	m.products[p.ID] = &copied
	return nil
}

func (m *InMemoryProductStore) Get(ctx context.Context, id string) (*product.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.products[id]
	if !ok || p.UserID != types.GetUserID(ctx) {
		return nil, ierr.NewError("product not found").
			WithHintf("Product %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	copied := *p
	return &copied, nil
}

func (m *InMemoryProductStore) List(ctx context.Context) ([]*product.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	products := make([]*product.Product, 0, len(m.products))
	for _, p := range m.products {
		if p.UserID == types.GetUserID(ctx) {
			copied := *p
			products = append(products, &copied)
		}
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].Description < products[j].Description
	})
	return products, nil
}

func (m *InMemoryProductStore) Update(ctx context.Context, p *product.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.products[p.ID]
	if !ok || existing.UserID != types.GetUserID(ctx) {
		return ierr.NewError("product not found").
			WithHintf("Product %s was not found", p.ID).
			Mark(ierr.ErrNotFound)
	}

	copied := *p
	copied.UpdatedAt = time.Now().UTC()
	m.products[p.ID] = &copied
	return nil
}

func (m *InMemoryProductStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.products[id]
	if !ok || existing.UserID != types.GetUserID(ctx) {
		return ierr.NewError("product not found").
			WithHintf("Product %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	delete(m.products, id)
	return nil
}

func (m *InMemoryProductStore) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var count int64
	for _, p := range m.products {
		if p.UserID == types.GetUserID(ctx) {
			count++
		}
	}
	return count, nil
}
