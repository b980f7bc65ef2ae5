package character

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/etheris-rpg/etheris/internal/domain"
)

// CacheSchemaVersion invalidates stale entries when the cached character
// shape changes. Bump it with every incompatible domain.Character change.
const CacheSchemaVersion = "1.0"

type cachedEntry struct {
	Version  string
	Char     *domain.Character
	CachedAt time.Time
}

// characterCache is an in-memory LRU keyed by user handle, with TTL
// expiry and version-based invalidation.
type characterCache struct {
	lru *expirable.LRU[string, *cachedEntry]
}

func newCharacterCache(size int, ttl time.Duration) *characterCache {
	return &characterCache{
		lru: expirable.NewLRU[string, *cachedEntry](size, nil, ttl),
	}
}

func (c *characterCache) Get(userHandle string) (*domain.Character, bool) {
	entry, found := c.lru.Get(userHandle)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(userHandle)
		return nil, false
	}
	return entry.Char.Clone(), true
}

// Set stores its own copy; the cache never aliases a character a caller
// may still be mutating.
func (c *characterCache) Set(userHandle string, ch *domain.Character) {
	c.lru.Add(userHandle, &cachedEntry{
		Version:  CacheSchemaVersion,
		Char:     ch.Clone(),
		CachedAt: time.Now(),
	})
}

func (c *characterCache) Invalidate(userHandle string) {
	c.lru.Remove(userHandle)
}

func (c *characterCache) Clear() {
	c.lru.Purge()
}
