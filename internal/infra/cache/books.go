package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"library-lending/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const availableBooksKey = "books:available"

// CachedBookReadStore decorates a book read store with a best-effort
// Redis cache over the public availability listing. Cache failures fall
// through to the database and never surface to callers.
type CachedBookReadStore struct {
	inner queries.BookReadStore
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachedBookReadStore(inner queries.BookReadStore, rdb *redis.Client, ttl time.Duration) *CachedBookReadStore {
	return &CachedBookReadStore{inner: inner, rdb: rdb, ttl: ttl}
}

func (c *CachedBookReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookView, error) {
	return c.inner.FindByID(ctx, id)
}

func (c *CachedBookReadStore) FindAvailable(ctx context.Context, limit int32) ([]*queries.BookListItem, error) {
	if cached, ok := c.load(ctx); ok {
		return cached, nil
	}

	items, err := c.inner.FindAvailable(ctx, limit)
	if err != nil {
		return nil, err
	}

	c.store(ctx, items)
	return items, nil
}

func (c *CachedBookReadStore) FindAll(ctx context.Context) ([]*queries.BookView, error) {
	return c.inner.FindAll(ctx)
}

// InvalidateBookListings drops the cached listing after any write that
// changes availability.
func (c *CachedBookReadStore) InvalidateBookListings(ctx context.Context) {
	if err := c.rdb.Del(ctx, availableBooksKey).Err(); err != nil {
		slog.Warn("failed to invalidate book listing cache", "error", err.Error())
	}
}

func (c *CachedBookReadStore) load(ctx context.Context) ([]*queries.BookListItem, bool) {
	payload, err := c.rdb.Get(ctx, availableBooksKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("book listing cache read failed", "error", err.Error())
		}
		return nil, false
	}

	var items []*queries.BookListItem
	if err := json.Unmarshal(payload, &items); err != nil {
		slog.Warn("book listing cache payload corrupt", "error", err.Error())
		return nil, false
	}
	return items, true
}

func (c *CachedBookReadStore) store(ctx context.Context, items []*queries.BookListItem) {
	payload, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, availableBooksKey, payload, c.ttl).Err(); err != nil {
		slog.Warn("book listing cache write failed", "error", err.Error())
	}
}

// NoopListingCache satisfies cache invalidation when Redis is not
// configured.
type NoopListingCache struct{}

func (NoopListingCache) InvalidateBookListings(context.Context) {}
