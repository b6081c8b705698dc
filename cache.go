package rematch

import (
	lru "github.com/hashicorp/golang-lru"
)

type cacheKey struct {
	pattern string
	config  Config
}

// Cache is a bounded, least-recently-used cache of compiled patterns keyed
// by pattern and Config. It suits programs that compile patterns supplied
// at run time in a loop.
//
// A Cache is safe for concurrent use. Compile errors are not cached.
//
// Example:
//
//	cache, err := rematch.NewCache(128)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re, err := cache.Get(userPattern, rematch.DefaultConfig())
type Cache struct {
	lru *lru.Cache
}

// NewCache returns a Cache holding at most size patterns.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		return nil, &ConfigError{Field: "size", Message: "must be positive"}
	}
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: c}, nil
}

// Get returns the compiled form of pattern under config, compiling it on a
// miss. Two goroutines missing on the same key may both compile; either
// result is valid.
func (c *Cache) Get(pattern string, config Config) (*Regex, error) {
	key := cacheKey{pattern: pattern, config: config}
	if v, ok := c.lru.Get(key); ok {
		return v.(*Regex), nil
	}

	re, err := CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}
	c.lru.Add(key, re)
	return re, nil
}

// Len returns the number of cached patterns.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Purge removes every cached pattern.
func (c *Cache) Purge() {
	c.lru.Purge()
}
