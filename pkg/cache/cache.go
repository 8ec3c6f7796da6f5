package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs. Conversation views change on every send, so they stay short.
const (
	TTLConversations = 30 * time.Second
	TTLUnreadCount   = 15 * time.Second
	TTLDefault       = 1 * time.Minute
)

// Cache key prefixes
const (
	PrefixConversations = "conversations:"
	PrefixUnread        = "unread:"
)

// Service redis cache service interface
type Service interface {
	// Base operations
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)

	// Conversation list cache (per viewing user)
	GetConversations(ctx context.Context, userID string) ([]byte, error)
	SetConversations(ctx context.Context, userID string, data interface{}) error
	InvalidateConversations(ctx context.Context, userIDs ...string) error

	// Unread badge cache
	GetUnreadCount(ctx context.Context, userID string) (int64, error)
	SetUnreadCount(ctx context.Context, userID string, count int64) error
	InvalidateUnreadCount(ctx context.Context, userID string) error

	// Utilities
	IsAvailable() bool
	Ping(ctx context.Context) error
}

// redisCache redis-backed cache implementation
type redisCache struct {
	client *redis.Client
}

// NewService creates a new cache service
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

// IsAvailable reports whether a redis client is configured
func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

// Ping tests the redis connection
func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}

// Get reads a value from the cache into dest
func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return fmt.Errorf("redis not available")
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

// Set stores a value in the cache
func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil // cache is best effort; absent redis is not an error
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = TTLDefault
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

// Delete removes keys from the cache
func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil || len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// Exists reports whether a key is cached
func (c *redisCache) Exists(ctx context.Context, key string) (bool, error) {
	if c.client == nil {
		return false, nil
	}
	n, err := c.client.Exists(ctx, key).Result()
	return n > 0, err
}

// GetConversations returns the cached conversation list payload for a user
func (c *redisCache) GetConversations(ctx context.Context, userID string) ([]byte, error) {
	if c.client == nil {
		return nil, fmt.Errorf("redis not available")
	}
	return c.client.Get(ctx, PrefixConversations+userID).Bytes()
}

// SetConversations caches the conversation list payload for a user
func (c *redisCache) SetConversations(ctx context.Context, userID string, data interface{}) error {
	return c.Set(ctx, PrefixConversations+userID, data, TTLConversations)
}

// InvalidateConversations drops cached conversation lists for the given users.
// Both participants are invalidated on every send.
func (c *redisCache) InvalidateConversations(ctx context.Context, userIDs ...string) error {
	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, PrefixConversations+id)
	}
	return c.Delete(ctx, keys...)
}

// GetUnreadCount returns the cached unread badge count
func (c *redisCache) GetUnreadCount(ctx context.Context, userID string) (int64, error) {
	if c.client == nil {
		return 0, fmt.Errorf("redis not available")
	}
	return c.client.Get(ctx, PrefixUnread+userID).Int64()
}

// SetUnreadCount caches the unread badge count
func (c *redisCache) SetUnreadCount(ctx context.Context, userID string, count int64) error {
	if c.client == nil {
		return nil
	}
	return c.client.Set(ctx, PrefixUnread+userID, count, TTLUnreadCount).Err()
}

// InvalidateUnreadCount drops the cached unread badge count
func (c *redisCache) InvalidateUnreadCount(ctx context.Context, userID string) error {
	return c.Delete(ctx, PrefixUnread+userID)
}
