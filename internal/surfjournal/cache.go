package surfjournal

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTTL is how long a cached read stays valid.
const DefaultTTL = 5 * time.Minute

type cacheEntry struct {
	payload any
	at      time.Time
}

// ttlCache is a process-wide read cache keyed by operation name plus
// normalized parameters. Entries older than ttl are treated as absent and
// only ever overwritten. Writes to the store clear the whole map, so a read
// never observes data older than the most recent write.
type ttlCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cacheEntry
}

func newTTLCache(ttl time.Duration, now func() time.Time) *ttlCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}

	return &ttlCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]cacheEntry),
	}
}

func (c *ttlCache) get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok || c.now().Sub(entry.at) >= c.ttl {
		return nil, false
	}

	return entry.payload, true
}

func (c *ttlCache) set(key string, payload any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{payload: payload, at: c.now()}
}

func (c *ttlCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]cacheEntry)
}

// Cache keys live here so they cannot drift apart across call sites.

func articleBySlugKey(slug string) string {
	return "articleBySlug:" + slug
}

func relatedKey(categoryID, excludeID, limit int) string {
	return fmt.Sprintf("related:%d:%d:%d", categoryID, excludeID, limit)
}

func categoriesKey() string {
	return "categories"
}

func listKey(f Filter) string {
	categoryID := "-"
	if f.CategoryID != nil {
		categoryID = fmt.Sprint(*f.CategoryID)
	}

	featured := "-"
	if f.Featured != nil {
		featured = fmt.Sprint(*f.Featured)
	}

	excludeID := "-"
	if f.ExcludeID != nil {
		excludeID = fmt.Sprint(*f.ExcludeID)
	}

	return fmt.Sprintf("articles:%d:%d:%s:%s:%s:%s",
		f.Limit, f.Offset, categoryID, featured, excludeID, f.Search)
}
