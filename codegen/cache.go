package codegen

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// renderCache memoizes rendered files by model fingerprint. A nil cache
// disables memoization.
type renderCache struct {
	lru *lru.Cache[string, []byte]
}

func newRenderCache(size int) (*renderCache, error) {
	c, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, fmt.Errorf("render cache: %w", err)
	}
	return &renderCache{lru: c}, nil
}

func (c *renderCache) get(fingerprint string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	return c.lru.Get(fingerprint)
}

func (c *renderCache) add(fingerprint string, content []byte) {
	if c == nil {
		return
	}
	c.lru.Add(fingerprint, content)
}

func (c *renderCache) len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}
