package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/craftkart/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ProductCache stores catalog entries keyed by product ID.
// A nil product with a nil error means a cache miss.
type ProductCache interface {
	Get(ctx context.Context, id uuid.UUID) (*catalog.Product, error)
	Set(ctx context.Context, product *catalog.Product, ttl time.Duration) error
	Delete(ctx context.Context, id uuid.UUID) error
	Close() error
}

const productKeyPrefix = "catalog:product:"

// RedisProductCache is the shared cache tier. Entries are JSON with a
// TTL, so a stale write heals itself even if an invalidation is lost.
type RedisProductCache struct {
	client *redis.Client
}

func NewRedisProductCache(client *redis.Client) *RedisProductCache {
	return &RedisProductCache{client: client}
}

func (c *RedisProductCache) Get(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	data, err := c.client.Get(ctx, productKeyPrefix+id.String()).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading product cache: %w", err)
	}

	var product catalog.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, fmt.Errorf("decoding cached product: %w", err)
	}
	return &product, nil
}

func (c *RedisProductCache) Set(ctx context.Context, product *catalog.Product, ttl time.Duration) error {
	data, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("encoding product for cache: %w", err)
	}
	if err := c.client.Set(ctx, productKeyPrefix+product.ID.String(), data, ttl).Err(); err != nil {
		return fmt.Errorf("writing product cache: %w", err)
	}
	return nil
}

func (c *RedisProductCache) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Del(ctx, productKeyPrefix+id.String()).Err(); err != nil {
		return fmt.Errorf("invalidating product cache: %w", err)
	}
	return nil
}

func (c *RedisProductCache) Close() error {
	return nil
}

type inMemoryEntry struct {
	product   catalog.Product
	expiresAt time.Time
}

// InMemoryProductCache backs tests and deployments without Redis.
type InMemoryProductCache struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]inMemoryEntry
}

func NewInMemoryProductCache() *InMemoryProductCache {
	return &InMemoryProductCache{entries: make(map[uuid.UUID]inMemoryEntry)}
}

func (c *InMemoryProductCache) Get(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	c.mu.RLock()
	entry, ok := c.entries[id]
	c.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, id)
		c.mu.Unlock()
		return nil, nil
	}
	product := entry.product
	return &product, nil
}

func (c *InMemoryProductCache) Set(_ context.Context, product *catalog.Product, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[product.ID] = inMemoryEntry{product: *product, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (c *InMemoryProductCache) Delete(_ context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
	return nil
}

func (c *InMemoryProductCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[uuid.UUID]inMemoryEntry)
	return nil
}

var (
	_ ProductCache = (*RedisProductCache)(nil)
	_ ProductCache = (*InMemoryProductCache)(nil)
)
