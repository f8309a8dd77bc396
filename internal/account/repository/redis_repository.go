package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kauelucena/barberhub/internal/account/domain"
)

// sessionTTL matches the session token lifetime: there is no refresh,
// so the blob expires with the token
const sessionTTL = 24 * time.Hour

// ErrSessionNotFound is returned when no session blob exists for the shop
var ErrSessionNotFound = errors.New("session not found")

// RedisSessionRepository persists the logged-in shop account blob
type RedisSessionRepository struct {
	client *redis.Client
}

// NewRedisSessionRepository creates a new redis-backed session repository
func NewRedisSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

// Save persists the shop account blob for the session lifetime
func (r *RedisSessionRepository) Save(ctx context.Context, shop *domain.BarberShop) error {
	payload, err := json.Marshal(shop)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := r.client.Set(ctx, domain.SessionKey(shop.ID), payload, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Load reads the shop account blob for the given shop id
func (r *RedisSessionRepository) Load(ctx context.Context, shopID string) (*domain.BarberShop, error) {
	raw, err := r.client.Get(ctx, domain.SessionKey(shopID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var shop domain.BarberShop
	if err := json.Unmarshal([]byte(raw), &shop); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &shop, nil
}

// Delete removes the session blob
func (r *RedisSessionRepository) Delete(ctx context.Context, shopID string) error {
	if err := r.client.Del(ctx, domain.SessionKey(shopID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
