package source

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/moyeonlab/contest-board/internal/types"
)

// DefaultCacheTTL is how long a fetched contest batch stays fresh.
const DefaultCacheTTL = 10 * time.Minute

// Cached wraps an accessor with an in-memory TTL cache. A stale cache is
// still served when a refresh fails: feed trouble degrades to slightly old
// data, never to an empty page.
type Cached struct {
	inner Accessor
	ttl   time.Duration

	mu        sync.RWMutex
	contests  []types.Contest
	fetchedAt time.Time
}

// NewCached wraps inner with a TTL cache. A non-positive ttl uses
// DefaultCacheTTL.
func NewCached(inner Accessor, ttl time.Duration) *Cached {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cached{inner: inner, ttl: ttl}
}

// Contests implements Accessor.
func (c *Cached) Contests(ctx context.Context) ([]types.Contest, error) {
	c.mu.RLock()
	if c.fresh() {
		cached := cloneContests(c.contests)
		c.mu.RUnlock()
		return cached, nil
	}
	c.mu.RUnlock()

	return c.Refresh(ctx)
}

// Refresh fetches from the inner accessor unconditionally and replaces the
// cached batch on success. On failure it serves the stale batch if one
// exists.
func (c *Cached) Refresh(ctx context.Context) ([]types.Contest, error) {
	contests, err := c.inner.Contests(ctx)
	if err != nil {
		c.mu.RLock()
		defer c.mu.RUnlock()
		if c.contests != nil {
			log.Printf("contest refresh failed, serving stale cache: %v", err)
			return cloneContests(c.contests), nil
		}
		return nil, err
	}

	c.mu.Lock()
	c.contests = contests
	c.fetchedAt = time.Now()
	c.mu.Unlock()

	return cloneContests(contests), nil
}

// Invalidate drops the cached batch, forcing the next call to hit the
// inner accessor.
func (c *Cached) Invalidate() {
	c.mu.Lock()
	c.contests = nil
	c.fetchedAt = time.Time{}
	c.mu.Unlock()
}

// fresh must be called with at least the read lock held.
func (c *Cached) fresh() bool {
	return c.contests != nil && time.Since(c.fetchedAt) < c.ttl
}

// cloneContests copies the cached slice so callers cannot mutate the cache
// through the returned value.
func cloneContests(contests []types.Contest) []types.Contest {
	out := make([]types.Contest, len(contests))
	copy(out, contests)
	return out
}
