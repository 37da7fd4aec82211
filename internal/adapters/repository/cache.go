package repository

import (
	"strings"
	"sync"
	"sync/atomic"

	"github.com/okian/faceoff/internal/domain/aggregate"
	"github.com/okian/faceoff/internal/domain/index"
	"github.com/okian/faceoff/pkg/metrics"
)

// memoKey builds the cache key for a selection against a roster version.
// Entries are name-normalized so equivalent spellings share one slot.
func memoKey(version, label string, selection []string) string {
	var b strings.Builder
	b.WriteString(version)
	b.WriteByte(0x1f)
	b.WriteString(label)
	for _, entry := range selection {
		b.WriteByte(0x1f)
		b.WriteString(index.Normalize(entry))
	}
	return b.String()
}

// memoCache is a bounded insertion-order cache for group aggregates. When
// full, the oldest entry is evicted. Aggregates are cheap to rebuild, so
// eviction precision matters less than keeping the map bounded.
type memoCache struct {
	mu      sync.Mutex
	entries map[string]aggregate.Group
	order   []string
	maxSize int

	hits   atomic.Uint64
	misses atomic.Uint64
}

func newMemoCache(maxSize int) *memoCache {
	return &memoCache{
		entries: make(map[string]aggregate.Group),
		maxSize: maxSize,
	}
}

func (c *memoCache) get(key string) (aggregate.Group, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	g, ok := c.entries[key]
	if ok {
		c.hits.Add(1)
		metrics.RecordAggregateCacheHit()
	} else {
		c.misses.Add(1)
		metrics.RecordAggregateCacheMiss()
	}
	return g, ok
}

func (c *memoCache) put(key string, g aggregate.Group) {
	if c.maxSize <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		return
	}
	if len(c.entries) >= c.maxSize {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[key] = g
	c.order = append(c.order, key)
}

// reset drops every entry. Counters survive; they describe the session, not
// one roster.
func (c *memoCache) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]aggregate.Group)
	c.order = nil
}

func (c *memoCache) stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}
