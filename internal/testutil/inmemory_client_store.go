package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/puntoventa/puntoventa/internal/domain/client"
	ierr "github.com/puntoventa/puntoventa/internal/errors"
	"github.com/puntoventa/puntoventa/internal/types"
)

// InMemoryClientStore implements client.Repository
type InMemoryClientStore struct {
	mu      sync.RWMutex
	clients map[string]*client.Client
}

// NewInMemoryClientStore creates a new in-memory client repository
func NewInMemoryClientStore() *InMemoryClientStore {
	return &InMemoryClientStore{
		clients: make(map[string]*client.Client),
	}
}

// Clear resets all stored data
func (m *InMemoryClientStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clients = make(map[string]*client.Client)
}

func (m *InMemoryClientStore) Create(ctx context.Context, c *client.Client) error {
	if c == nil || c.ID == "" {
		return ierr.NewError("invalid client").
			WithHint("Client and its ID are required").
			Mark(ierr.ErrValidation)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.clients[c.ID]; exists {
		return ierr.NewError("client already exists").
			WithHintf("Client %s already exists", c.ID).
			Mark(ierr.ErrAlreadyExists)
	}

	copied := *c
	m.clients[c.ID] = &copied
	return nil
}

func (m *InMemoryClientStore) Get(ctx context.Context, id string) (*client.Client, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.clients[id]
	if !ok || c.UserID != types.GetUserID(ctx) {
		return nil, ierr.NewError("client not found").
			WithHintf("Client %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	copied := *c
	return &copied, nil
}

func (m *InMemoryClientStore) List(ctx context.Context) ([]*client.Client, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	clients := make([]*client.Client, 0, len(m.clients))
	for _, c := range m.clients {
		if c.UserID == types.GetUserID(ctx) {
			copied := *c
			clients = append(clients, &copied)
		}
	}
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].Name < clients[j].Name
	})
	return clients, nil
}

func (m *InMemoryClientStore) Update(ctx context.Context, c *client.Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.clients[c.ID]
	if !ok || existing.UserID != types.GetUserID(ctx) {
		return ierr.NewError("client not found").
			WithHintf("Client %s was not found", c.ID).
			Mark(ierr.ErrNotFound)
	}

	copied := *c
	copied.UpdatedAt = time.Now().UTC()
	m.clients[c.ID] = &copied
	return nil
}

func (m *InMemoryClientStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.clients[id]
	if !ok || existing.UserID != types.GetUserID(ctx) {
		return ierr.NewError("client not found").
			WithHintf("Client %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	delete(m.clients, id)
	return nil
}

func (m *InMemoryClientStore) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var count int64
	for _, c := range m.clients {
		if c.UserID == types.GetUserID(ctx) {
			count++
		}
	}
	return count, nil
}
