package evaluator

import (
	"crypto/md5"
	"encoding/hex"
	"sync"
	"time"

	"github.com/listing-evaluator/backend/stats"
)

// Cache entry with expiration
type cacheEntry struct {
	report    *Report
	timestamp time.Time
}

// Cached wraps an Evaluator with an md5-keyed TTL report cache. Evaluation
// is cheap but the service re-scores the same generated document many
// times, so repeated requests are served from memory and hit/miss counts
// feed the persistent statistics.
type Cached struct {
	evaluator  *Evaluator
	cache      map[string]cacheEntry
	cacheMutex sync.RWMutex
	cacheTTL   time.Duration
	stats      *stats.Storage
}

// NewCached creates a caching front for the evaluator. The stats storage
// may be nil, in which case hit/miss accounting is skipped.
func NewCached(evaluator *Evaluator, storage *stats.Storage) *Cached {
	return &Cached{
		evaluator: evaluator,
		cache:     make(map[string]cacheEntry),
		cacheTTL:  30 * time.Minute,
		stats:     storage,
	}
}

// cacheKey creates a unique key for a document/language pair
func cacheKey(content string, language Language) string {
	hash := md5.Sum([]byte(string(language) + "|" + content))
	return hex.EncodeToString(hash[:])
}

// SetTTL sets the cache TTL
func (c *Cached) SetTTL(ttl time.Duration) {
	c.cacheMutex.Lock()
	defer c.cacheMutex.Unlock()
	c.cacheTTL = ttl
}

// Clear empties the report cache
func (c *Cached) Clear() {
	c.cacheMutex.Lock()
	defer c.cacheMutex.Unlock()
	c.cache = make(map[string]cacheEntry)
}

// Entries returns the number of cached reports, counting expired entries
// that have not been swept yet
func (c *Cached) Entries() int {
	c.cacheMutex.RLock()
	defer c.cacheMutex.RUnlock()
	return len(c.cache)
}

// IsCached reports whether a document/language pair has a fresh cached report
func (c *Cached) IsCached(content string, language Language) bool {
	key := cacheKey(content, language)
	c.cacheMutex.RLock()
	defer c.cacheMutex.RUnlock()

	entry, found := c.cache[key]
	return found && time.Since(entry.timestamp) < c.cacheTTL
}

// Evaluate returns the cached report for the document when fresh, running
// the evaluator and storing the result otherwise.
func (c *Cached) Evaluate(content string, language Language) *Report {
	key := cacheKey(content, language)

	c.cacheMutex.RLock()
	if entry, found := c.cache[key]; found {
		if time.Since(entry.timestamp) < c.cacheTTL {
			c.cacheMutex.RUnlock()
			if c.stats != nil {
				c.stats.IncrementStats(1, 0, 0, 0)
			}
			return entry.report
		}
	}
	c.cacheMutex.RUnlock()

	// Not in cache or expired
	if c.stats != nil {
		c.stats.IncrementStats(0, 1, 1, 0)
	}

	report := c.evaluator.Evaluate(content, language)

	c.cacheMutex.Lock()
	c.cache[key] = cacheEntry{
		report:    report,
		timestamp: time.Now(),
	}

	// Sweep expired entries while holding the lock; the cache is small
	// enough that a full pass is fine
	for k, entry := range c.cache {
		if time.Since(entry.timestamp) > c.cacheTTL {
			delete(c.cache, k)
		}
	}
	c.cacheMutex.Unlock()

	return report
}
