// Package cache implements a bounded, TTL-expiring mapping from
// (input-hash, config-hash) to a ParseResult, evicting by least hit-count
// under capacity pressure. The fixed-capacity backing store is
// github.com/hashicorp/golang-lru/v2; its own LRU-by-recency eviction is
// bypassed in favor of the explicit hit-count comparison this package
// wants (see DESIGN.md).
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jugadas/parser/pkg/jugadas/model"
	"gopkg.in/yaml.v3"
)

// entry is one cache slot's bookkeeping, alongside the stored value.
type entry struct {
	value     *model.ParseResult
	insertedAt time.Time
	ttl       time.Duration
	hitCount  int64
}

// Cache is a bounded TTL cache guarded by a single mutex, so get/set/evict
// never interleave.
type Cache struct {
	mu      sync.Mutex
	backing *lru.Cache[string, *entry]
	maxSize int

	hits      int64
	misses    int64
	evictions int64
}

// New builds a Cache with the given capacity. maxSize <= 0 skips the
// least-hit-count eviction, but the backing store is then sized to a
// single entry, so each new key replaces the previous one.
func New(maxSize int) *Cache {
	size := maxSize
	if size <= 0 {
		size = 1
	}
	backing, _ := lru.New[string, *entry](size)
	return &Cache{backing: backing, maxSize: maxSize}
}

// Key computes the cache key for a given input text and config: a hash of
// the input text plus a config fingerprint.
func Key(text string, cfg *model.ParserConfig) string {
	h := sha256.New()
	h.Write([]byte(text))
	h.Write([]byte{0})
	if cfg != nil {
		if fp, err := yaml.Marshal(cfg); err == nil {
			h.Write(fp)
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Get looks up key. On a TTL-expired hit, the entry is evicted and Get
// reports a miss.
func (c *Cache) Get(key string) (*model.ParseResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.backing.Get(key)
	if !ok {
		c.misses++
		return nil, false
	}
	if time.Since(e.insertedAt) > e.ttl {
		c.backing.Remove(key)
		c.evictions++
		c.misses++
		return nil, false
	}

	e.hitCount++
	c.hits++
	return e.value, true
}

// Set stores value under key with the given ttl. Expired entries are
// evicted first; if the cache is still at capacity, the entry with the
// minimum hit_count is evicted next. Only successful parses should be
// passed to Set.
func (c *Cache) Set(key string, value *model.ParseResult, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.evictExpiredLocked()
	if c.maxSize > 0 && c.backing.Len() >= c.maxSize {
		if _, present := c.backing.Peek(key); !present {
			c.evictLeastHitLocked()
		}
	}

	c.backing.Add(key, &entry{value: value, insertedAt: time.Now(), ttl: ttl})
}

func (c *Cache) evictExpiredLocked() {
	for _, k := range c.backing.Keys() {
		e, ok := c.backing.Peek(k)
		if !ok {
			continue
		}
		if time.Since(e.insertedAt) > e.ttl {
			c.backing.Remove(k)
			c.evictions++
		}
	}
}

func (c *Cache) evictLeastHitLocked() {
	var minKey string
	var minHits int64 = -1
	for _, k := range c.backing.Keys() {
		e, ok := c.backing.Peek(k)
		if !ok {
			continue
		}
		if minHits < 0 || e.hitCount < minHits {
			minHits = e.hitCount
			minKey = k
		}
	}
	if minKey != "" {
		c.backing.Remove(minKey)
		c.evictions++
	}
}

// Stats reports the cache's cumulative hit/miss bookkeeping.
func (c *Cache) Stats() model.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := c.hits + c.misses
	rate := 0.0
	if total > 0 {
		rate = float64(c.hits) / float64(total)
	}
	return model.CacheStats{
		Hits:      c.hits,
		Misses:    c.misses,
		Size:      c.backing.Len(),
		Evictions: c.evictions,
		HitRate:   rate,
	}
}
