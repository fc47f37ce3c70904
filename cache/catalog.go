// Package cache keeps recent catalog reads in Redis. Keys carry a version
// number that every write to books or rentals bumps, so stale listings age
// out immediately instead of waiting for the TTL.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/the1kimko/book-rental-management-system/models"
)

type Catalog struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCatalog wraps rdb; a nil client yields a no-op cache so callers never
// have to branch on whether Redis is configured.
func NewCatalog(rdb *redis.Client, ttl time.Duration) *Catalog {
	return &Catalog{rdb: rdb, ttl: ttl}
}

const verKey = "books:ver"

func (c *Catalog) disabled() bool { return c == nil || c.rdb == nil }

func (c *Catalog) key(ctx context.Context, suffix string) string {
	ver, err := c.rdb.Get(ctx, verKey).Int64()
	if err != nil && err != redis.Nil {
		ver = -1 // unreachable version, falls through to the store
	}
	return fmt.Sprintf("books:v%d:%s", ver, suffix)
}

func (c *Catalog) GetBooks(ctx context.Context, suffix string) ([]models.Book, bool) {
	if c.disabled() {
		return nil, false
	}
	b, err := c.rdb.Get(ctx, c.key(ctx, suffix)).Bytes()
	if err != nil {
		return nil, false
	}
	var books []models.Book
	if err := json.Unmarshal(b, &books); err != nil {
		return nil, false
	}
	return books, true
}

func (c *Catalog) SetBooks(ctx context.Context, suffix string, books []models.Book) {
	if c.disabled() {
		return
	}
	b, _ := json.Marshal(books)
	_ = c.rdb.Set(ctx, c.key(ctx, suffix), b, c.ttl).Err()
}

// Bump invalidates every cached listing by moving the version forward.
func (c *Catalog) Bump(ctx context.Context) {
	if c.disabled() {
		return
	}
	_ = c.rdb.Incr(ctx, verKey).Err()
}
