package urlcheck

import "sync"

// Cache is the set of URLs confirmed reachable during a run. URLs are only
// ever added, and only after a successful probe.
type Cache struct {
	mu   sync.RWMutex
	urls map[string]struct{}
}

func NewCache() *Cache {
	return &Cache{urls: make(map[string]struct{})}
}

func (c *Cache) Contains(url string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.urls[url]
	return ok
}

func (c *Cache) Add(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.urls[url] = struct{}{}
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.urls)
}
