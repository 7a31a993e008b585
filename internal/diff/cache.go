package diff

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/yourusername/gitti/internal/log"
)

const defaultCleanupInterval = 30 * time.Minute

// hunkCache holds hunks for historical commits, whose content never changes.
type hunkCache struct {
	cache *gocache.Cache
	ttl   time.Duration
}

func newHunkCache(ttl time.Duration) *hunkCache {
	return &hunkCache{
		cache: gocache.New(ttl, defaultCleanupInterval),
		ttl:   ttl,
	}
}

func cacheKey(commit, path string, context int) string {
	return fmt.Sprintf("%s\x00%s\x00%d", commit, path, context)
}

func (c *hunkCache) get(key string) ([]Hunk, bool) {
	value, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	hunks, ok := value.([]Hunk)
	if !ok {
		log.Error(log.CatCache, "wrong type in hunk cache", "key", key)
		return nil, false
	}
	log.Debug(log.CatCache, "cache hit", "key", key)
	return hunks, true
}

func (c *hunkCache) set(key string, hunks []Hunk) {
	c.cache.Set(key, hunks, c.ttl)
}

func (c *hunkCache) size() int {
	return c.cache.ItemCount()
}
