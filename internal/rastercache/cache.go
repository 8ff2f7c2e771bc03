package rastercache

import (
	"image"
	"sync"
)

// DefaultBudget is the byte budget used when New is given a non-positive
// budget: room for sixteen 1024x1024 RGBA rasters.
const DefaultBudget = 16 * 1024 * 1024 * 4

// Cache maps keys to scaled rasters with LRU eviction.
type Cache[K comparable] struct {
	mu      sync.Mutex
	entries map[K]*entry[K]
	order   lruList[K]
	budget  int
	size    int

	hits   uint64
	misses uint64
}

type entry[K comparable] struct {
	img  *image.RGBA
	node *lruNode[K]
}

// New creates a cache holding at most budget bytes of pixel data.
func New[K comparable](budget int) *Cache[K] {
	if budget <= 0 {
		budget = DefaultBudget
	}
	return &Cache[K]{
		entries: make(map[K]*entry[K]),
		budget:  budget,
	}
}

// Get returns the raster stored under key.
func (c *Cache[K]) Get(key K) (*image.RGBA, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses++
		return nil, false
	}
	c.hits++
	c.order.moveToFront(e.node)
	return e.img, true
}

// Put stores img under key, evicting least recently used rasters until
// the budget holds. A raster larger than the whole budget is not stored.
func (c *Cache[K]) Put(key K, img *image.RGBA) {
	cost := len(img.Pix)
	if cost > c.budget {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if old, ok := c.entries[key]; ok {
		c.size -= len(old.img.Pix)
		old.img = img
		c.size += cost
		c.order.moveToFront(old.node)
	} else {
		c.entries[key] = &entry[K]{img: img, node: c.order.pushFront(key)}
		c.size += cost
	}

	for c.size > c.budget {
		oldest := c.order.back()
		if oldest == nil {
			break
		}
		c.order.unlink(oldest)
		c.size -= len(c.entries[oldest.key].img.Pix)
		delete(c.entries, oldest.key)
	}
}

// Clear removes all entries and resets statistics.
func (c *Cache[K]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*entry[K])
	c.order = lruList[K]{}
	c.size = 0
	c.hits = 0
	c.misses = 0
}

// Stats contains cache statistics.
type Stats struct {
	Len    int
	Bytes  int
	Budget int
	Hits   uint64
	Misses uint64
}

// Stats returns a snapshot of the cache statistics.
func (c *Cache[K]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Len:    len(c.entries),
		Bytes:  c.size,
		Budget: c.budget,
		Hits:   c.hits,
		Misses: c.misses,
	}
}
