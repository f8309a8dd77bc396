package repository

import (
	"context"
	"sync"

	"github.com/kauelucena/barberhub/internal/account/domain"
)

// MemorySessionRepository is an in-memory session repository for tests
type MemorySessionRepository struct {
	mu    sync.Mutex
	shops map[string]domain.BarberShop
}

// NewMemorySessionRepository creates a new in-memory session repository
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{shops: make(map[string]domain.BarberShop)}
}

// Save stores the shop account blob
func (r *MemorySessionRepository) Save(ctx context.Context, shop *domain.BarberShop) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shops[shop.ID] = *shop
	return nil
}

// Load reads the shop account blob
func (r *MemorySessionRepository) Load(ctx context.Context, shopID string) (*domain.BarberShop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	shop, ok := r.shops[shopID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &shop, nil
}

// Delete removes the shop account blob
func (r *MemorySessionRepository) Delete(ctx context.Context, shopID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.shops, shopID)
	return nil
}
