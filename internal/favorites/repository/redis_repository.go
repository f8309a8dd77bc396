package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/kauelucena/barberhub/internal/favorites/domain"
	"github.com/kauelucena/barberhub/pkg/logger"
)

// RedisFavoriteRepository persists the favorite set as a JSON array of
// shop ids under the fixed storage key
type RedisFavoriteRepository struct {
	client *redis.Client
}

// NewRedisFavoriteRepository creates a new redis-backed favorite repository
func NewRedisFavoriteRepository(client *redis.Client) *RedisFavoriteRepository {
	return &RedisFavoriteRepository{client: client}
}

// Load reads the persisted favorite set. A missing key or a corrupted
// value yields an empty set: favorites are best-effort state and must
// never take the discovery screen down.
func (r *RedisFavoriteRepository) Load(ctx context.Context) (domain.Set, error) {
	raw, err := r.client.Get(ctx, domain.StorageKey).Result()
	if errors.Is(err, redis.Nil) {
		return domain.NewSet(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		logger.Warn(ctx).Err(err).Str("key", domain.StorageKey).Msg("Malformed favorites payload, falling back to empty set")
		return domain.NewSet(), nil
	}
	return domain.NewSet(ids...), nil
}

// Save persists the full favorite set
func (r *RedisFavoriteRepository) Save(ctx context.Context, set domain.Set) error {
	payload, err := json.Marshal(set.IDs())
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}
	if err := r.client.Set(ctx, domain.StorageKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to save favorites: %w", err)
	}
	return nil
}
