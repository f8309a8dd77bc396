package repository

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/kauelucena/barberhub/internal/favorites/domain"
	"github.com/kauelucena/barberhub/pkg/logger"
)

// MemoryFavoriteRepository is an in-memory favorite repository holding the
// serialized payload exactly as a durable store would, so tests can assert
// on the persisted JSON and seed malformed values.
type MemoryFavoriteRepository struct {
	mu      sync.Mutex
	payload string
	exists  bool
}

// NewMemoryFavoriteRepository creates a new in-memory favorite repository
func NewMemoryFavoriteRepository() *MemoryFavoriteRepository {
	return &MemoryFavoriteRepository{}
}

// Seed stores a raw payload, bypassing encoding
func (r *MemoryFavoriteRepository) Seed(raw string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payload = raw
	r.exists = true
}

// Raw returns the stored payload and whether one exists
func (r *MemoryFavoriteRepository) Raw() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.payload, r.exists
}

// Load reads the stored favorite set, treating absence and malformed
// JSON as an empty set
func (r *MemoryFavoriteRepository) Load(ctx context.Context) (domain.Set, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.exists {
		return domain.NewSet(), nil
	}

	var ids []string
	if err := json.Unmarshal([]byte(r.payload), &ids); err != nil {
		logger.Warn(ctx).Err(err).Str("key", domain.StorageKey).Msg("Malformed favorites payload, falling back to empty set")
		return domain.NewSet(), nil
	}
	return domain.NewSet(ids...), nil
}

// Save stores the full favorite set as JSON
func (r *MemoryFavoriteRepository) Save(ctx context.Context, set domain.Set) error {
	payload, err := json.Marshal(set.IDs())
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.payload = string(payload)
	r.exists = true
	return nil
}
