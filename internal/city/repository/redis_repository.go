package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/kauelucena/barberhub/internal/city/domain"
)

// RedisPreferenceRepository persists the accepted city as a plain string
// under the fixed storage key
type RedisPreferenceRepository struct {
	client *redis.Client
}

// NewRedisPreferenceRepository creates a new redis-backed city preference repository
func NewRedisPreferenceRepository(client *redis.Client) *RedisPreferenceRepository {
	return &RedisPreferenceRepository{client: client}
}

// Load returns the persisted city, or empty string when none was chosen yet
func (r *RedisPreferenceRepository) Load(ctx context.Context) (string, error) {
	city, err := r.client.Get(ctx, domain.StorageKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load city preference: %w", err)
	}
	return city, nil
}

// Save persists the accepted city, overriding any previous choice
func (r *RedisPreferenceRepository) Save(ctx context.Context, city string) error {
	if err := r.client.Set(ctx, domain.StorageKey, city, 0).Err(); err != nil {
		return fmt.Errorf("failed to save city preference: %w", err)
	}
	return nil
}

// Clear removes the persisted city
func (r *RedisPreferenceRepository) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, domain.StorageKey).Err(); err != nil {
		return fmt.Errorf("failed to clear city preference: %w", err)
	}
	return nil
}
