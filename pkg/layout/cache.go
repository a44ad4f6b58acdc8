package layout

import "sync"

// cacheKey identifies one solved split. Layouts are keyed by identity, so
// a cached Layout must not be mutated after its first Split.
type cacheKey struct {
	layout *Layout
	area   Rect
}

// Cache memoizes Split results across render frames. It is safe for
// concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey][]Rect
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey][]Rect)}
}

// Split returns l.Split(area), computing it once per (layout, area) pair.
// The returned slice is the caller's to mutate.
func (c *Cache) Split(l *Layout, area Rect) []Rect {
	key := cacheKey{layout: l, area: area}

	c.mu.RLock()
	rects, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		rects = l.Split(area)
		c.mu.Lock()
		c.entries[key] = rects
		c.mu.Unlock()
	}

	cp := make([]Rect, len(rects))
	copy(cp, rects)
	return cp
}

// Invalidate drops every entry. Call on terminal resize.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[cacheKey][]Rect)
	c.mu.Unlock()
}

// Len returns the number of memoized splits.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
