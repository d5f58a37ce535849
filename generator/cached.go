package generator

import (
	"context"
	"strings"
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cached memoizes successful generations per prompt.
type Cached struct {
	next  Generator
	cache *cache.Cache
}

func NewCached(next Generator, ttl time.Duration) *Cached {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Cached{next: next, cache: cache.New(ttl, 2*ttl)}
}

func (c *Cached) Generate(ctx context.Context, prompt string) ([]string, error) {
	key := strings.ToLower(strings.Join(strings.Fields(prompt), " "))
	if v, ok := c.cache.Get(key); ok {
		if urls, ok := v.([]string); ok {
			return append([]string(nil), urls...), nil
		}
	}
	urls, err := c.next.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, append([]string(nil), urls...), cache.DefaultExpiration)
	return urls, nil
}
