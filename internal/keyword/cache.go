package keyword

import (
	"container/list"
	"slices"
	"sync"
)

// SuggestionCache is an LRU cache of spelling suggestions keyed by the
// lowercased term. It is safe for concurrent use.
type SuggestionCache struct {
	capacity int
	cache    map[string]*list.Element
	lru      *list.List
	mu       sync.Mutex
}

type cacheEntry struct {
	key   string
	value []Suggestion
}

// NewSuggestionCache creates a new cache with the given capacity.
func NewSuggestionCache(capacity int) *SuggestionCache {
	return &SuggestionCache{
		capacity: capacity,
		cache:    make(map[string]*list.Element),
		lru:      list.New(),
	}
}

// Get returns a copy of the cached suggestions for key if present.
func (c *SuggestionCache) Get(key string) ([]Suggestion, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.cache[key]; ok {
		c.lru.MoveToFront(elem)
		return slices.Clone(elem.Value.(*cacheEntry).value), true
	}
	return nil, false
}

// Set stores the suggestions for key, evicting the oldest entry if at capacity.
func (c *SuggestionCache) Set(key string, value []Suggestion) {
	if c.capacity <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	value = slices.Clone(value)
	if elem, ok := c.cache[key]; ok {
		c.lru.MoveToFront(elem)
		elem.Value.(*cacheEntry).value = value
		return
	}

	entry := &cacheEntry{key: key, value: value}
	elem := c.lru.PushFront(entry)
	c.cache[key] = elem

	if c.lru.Len() > c.capacity {
		oldest := c.lru.Back()
		if oldest != nil {
			c.lru.Remove(oldest)
			delete(c.cache, oldest.Value.(*cacheEntry).key)
		}
	}
}

// Len returns the number of cached terms.
func (c *SuggestionCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Purge drops every entry.
func (c *SuggestionCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]*list.Element)
	c.lru.Init()
}
