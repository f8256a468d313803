package user

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// cachedName wraps a username with version metadata for cache invalidation
type cachedName struct {
	Version  string
	Username string
	CachedAt time.Time
}

// nameCache is an in-memory LRU of user id to username
// with time-based expiration and version-based invalidation.
type nameCache struct {
	lru *expirable.LRU[string, *cachedName]
}

// newNameCache creates a cache holding at most size names for ttl each.
// Non-positive arguments use the defaults.
func newNameCache(size int, ttl time.Duration) *nameCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &nameCache{
		lru: expirable.NewLRU[string, *cachedName](size, nil, ttl),
	}
}

// Get returns the cached username for userID.
// Entries with a stale version are dropped and reported as missing.
func (c *nameCache) Get(userID string) (string, bool) {
	entry, found := c.lru.Get(userID)
	if !found {
		return "", false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(userID)
		return "", false
	}
	return entry.Username, true
}

// Set stores username for userID
func (c *nameCache) Set(userID, username string) {
	c.lru.Add(userID, &cachedName{
		Version:  CacheSchemaVersion,
		Username: username,
		CachedAt: time.Now(),
	})
}

// Invalidate removes userID from the cache
func (c *nameCache) Invalidate(userID string) {
	c.lru.Remove(userID)
}

// Len reports the number of live entries
func (c *nameCache) Len() int {
	return c.lru.Len()
}

// Clear removes all entries
func (c *nameCache) Clear() {
	c.lru.Purge()
}
