package repository

import (
	"context"
	"sync"
)

// MemoryPreferenceRepository is an in-memory city preference repository for tests
type MemoryPreferenceRepository struct {
	mu   sync.Mutex
	city string
}

// NewMemoryPreferenceRepository creates a new in-memory preference repository
func NewMemoryPreferenceRepository() *MemoryPreferenceRepository {
	return &MemoryPreferenceRepository{}
}

// Load returns the stored city, empty when none
func (r *MemoryPreferenceRepository) Load(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.city, nil
}

// Save stores the city
func (r *MemoryPreferenceRepository) Save(ctx context.Context, city string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.city = city
	return nil
}

// Clear removes the stored city
func (r *MemoryPreferenceRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.city = ""
	return nil
}
