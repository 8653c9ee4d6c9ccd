package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pizza_delivery/internal/cart"

	"github.com/go-redis/redis/v8"
)

// Client wraps Redis for the two session-scoped concerns the storefront
// has: the serialized cart blob and auth tokens. It implements
// cart.Persister.
type Client struct {
	rdb      *redis.Client
	cartTTL  time.Duration
	tokenTTL time.Duration
}

func Initialize(redisURL string, cartTTL, tokenTTL time.Duration) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb, cartTTL: cartTTL, tokenTTL: tokenTTL}, nil
}

// Cart persistence

func (c *Client) SaveCart(sessionID string, items []cart.Item) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	return c.rdb.Set(ctx, "cart:"+sessionID, jsonData, c.cartTTL).Err()
}

func (c *Client) LoadCart(sessionID string) ([]cart.Item, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "cart:"+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var items []cart.Item
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart: %w", err)
	}

	return items, nil
}

func (c *Client) DeleteCart(sessionID string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "cart:"+sessionID).Err()
}

// Auth tokens

func (c *Client) SetAuthToken(token string, userID uint) error {
	ctx := context.Background()
	return c.rdb.Set(ctx, "auth:"+token, userID, c.tokenTTL).Err()
}

func (c *Client) GetAuthToken(token string) (uint, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "auth:"+token).Uint64()
	if err != nil {
		if err == redis.Nil {
			return 0, fmt.Errorf("token not found")
		}
		return 0, fmt.Errorf("failed to get token: %w", err)
	}
	return uint(val), nil
}

func (c *Client) DeleteAuthToken(token string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "auth:"+token).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
