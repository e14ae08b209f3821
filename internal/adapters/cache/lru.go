package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// LRUCounts es el cache de viewCount en memoria del proceso, con TTL por entrada.
type LRUCounts struct {
	lru *expirable.LRU[string, int]
}

func NewLRUCounts(size int, ttl time.Duration) *LRUCounts {
	if size <= 0 {
		size = 10_000
	}
	return &LRUCounts{lru: expirable.NewLRU[string, int](size, nil, ttl)}
}

func (c *LRUCounts) GetMany(ctx context.Context, petIDs []string) (map[string]int, error) {
	out := make(map[string]int, len(petIDs))
	for _, id := range petIDs {
		if n, ok := c.lru.Get(id); ok {
			out[id] = n
		}
	}
	return out, nil
}

func (c *LRUCounts) SetMany(ctx context.Context, counts map[string]int) error {
	for id, n := range counts {
		c.lru.Add(id, n)
	}
	return nil
}

func (c *LRUCounts) Invalidate(ctx context.Context, petID string) error {
	c.lru.Remove(petID)
	return nil
}
