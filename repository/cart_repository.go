package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"play-cards-store/models"

	"github.com/redis/go-redis/v9"
)

// CartRepository defines the interface for session cart and pending order
// storage.
type CartRepository interface {
	GetCart(ctx context.Context, sessionID string) (*models.Cart, error)
	SaveCart(ctx context.Context, cart *models.Cart) error
	DeleteCart(ctx context.Context, sessionID string) error
	GetPendingOrder(ctx context.Context, sessionID string) (*models.PendingOrder, error)
	SavePendingOrder(ctx context.Context, pending *models.PendingOrder) error
	DeletePendingOrder(ctx context.Context, sessionID string) error
}

// RedisCartRepository implements CartRepository with JSON values under
// per-session keys.
type RedisCartRepository struct {
	client     *redis.Client
	cartTTL    time.Duration
	pendingTTL time.Duration
}

// NewRedisCartRepository creates a new RedisCartRepository.
func NewRedisCartRepository(client *redis.Client, cartTTL, pendingTTL time.Duration) CartRepository {
	return &RedisCartRepository{
		client:     client,
		cartTTL:    cartTTL,
		pendingTTL: pendingTTL,
	}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

func pendingKey(sessionID string) string {
	return fmt.Sprintf("pending:session:%s", sessionID)
}

func (r *RedisCartRepository) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	data, err := r.client.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *RedisCartRepository) SaveCart(ctx context.Context, cart *models.Cart) error {
	cart.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, cartKey(cart.SessionID), data, r.cartTTL).Err()
}

func (r *RedisCartRepository) DeleteCart(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, cartKey(sessionID)).Err()
}

func (r *RedisCartRepository) GetPendingOrder(ctx context.Context, sessionID string) (*models.PendingOrder, error) {
	data, err := r.client.Get(ctx, pendingKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var pending models.PendingOrder
	if err := json.Unmarshal([]byte(data), &pending); err != nil {
		return nil, err
	}
	return &pending, nil
}

func (r *RedisCartRepository) SavePendingOrder(ctx context.Context, pending *models.PendingOrder) error {
	data, err := json.Marshal(pending)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, pendingKey(pending.SessionID), data, r.pendingTTL).Err()
}

func (r *RedisCartRepository) DeletePendingOrder(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, pendingKey(sessionID)).Err()
}
