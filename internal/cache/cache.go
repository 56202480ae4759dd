package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Keys of the cached public reads.
const (
	KeyProjects         = "projects:all"
	KeyFeaturedProjects = "projects:featured"
	KeySkills           = "skills:all"
	KeyExperiences      = "experiences:all"
	KeyHomepage         = "homepage"
)

// Cache is a read-through cache for public, rarely changing data.
// A nil *Cache is valid and caches nothing.
type Cache struct {
	c *gocache.Cache
}

// New creates a cache whose entries live for ttl.
func New(ttl time.Duration) *Cache {
	return &Cache{c: gocache.New(ttl, 2*ttl)}
}

// GetOrLoad returns the cached value for key, calling fetch and storing its
// result on a miss. Errors are never cached.
func (c *Cache) GetOrLoad(key string, fetch func() (interface{}, error)) (interface{}, error) {
	if c == nil {
		return fetch()
	}
	if data, found := c.c.Get(key); found {
		return data, nil
	}

	data, err := fetch()
	if err != nil {
		return nil, err
	}

	c.c.Set(key, data, gocache.DefaultExpiration)
	return data, nil
}

// Load is the typed form of GetOrLoad.
func Load[T any](c *Cache, key string, fetch func() (T, error)) (T, error) {
	data, err := c.GetOrLoad(key, func() (interface{}, error) {
		return fetch()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return data.(T), nil
}

// Flush drops every entry. Called after each write.
func (c *Cache) Flush() {
	if c == nil {
		return
	}
	c.c.Flush()
}

// Len reports the number of live entries.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.c.ItemCount()
}
