package viewloader

import (
	"slices"
	"strings"
	"sync"

	"go.trai.ch/desk/internal/core/domain"
	"golang.org/x/sync/singleflight"
)

// Cache maps view identifiers to constructed (view, controller) pairs.
// Entries are inserted once and never replaced or removed. There is no size
// bound; the cache lives as long as its owner.
type Cache struct {
	mu      sync.RWMutex
	entries map[domain.ViewID]*domain.CacheEntry
	group   singleflight.Group
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[domain.ViewID]*domain.CacheEntry)}
}

// Get returns the entry for id.
func (c *Cache) Get(id domain.ViewID) (*domain.CacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[id]
	return entry, ok
}

// Contains reports whether id has an entry.
func (c *Cache) Contains(id domain.ViewID) bool {
	_, ok := c.Get(id)
	return ok
}

// Len returns the number of entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// IDs returns the cached identifiers, sorted by name.
func (c *Cache) IDs() []domain.ViewID {
	c.mu.RLock()
	ids := make([]domain.ViewID, 0, len(c.entries))
	for id := range c.entries {
		ids = append(ids, id)
	}
	c.mu.RUnlock()

	slices.SortFunc(ids, func(a, b domain.ViewID) int {
		return strings.Compare(a.String(), b.String())
	})
	return ids
}

// putIfAbsent stores entry unless id already has one. It returns the entry
// held by the cache afterwards and whether entry was inserted.
func (c *Cache) putIfAbsent(id domain.ViewID, entry *domain.CacheEntry) (*domain.CacheEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.entries[id]; ok {
		return existing, false
	}
	c.entries[id] = entry
	return entry, true
}

// getOrBuild returns the entry for id, running build at most once at a time
// per identifier when it is missing. hit is false only for the caller whose
// build produced the stored entry; callers sharing its flight see a hit.
func (c *Cache) getOrBuild(id domain.ViewID, build func() (*domain.CacheEntry, error)) (entry *domain.CacheEntry, hit bool, err error) {
	if entry, ok := c.Get(id); ok {
		return entry, true, nil
	}

	inserted := false
	v, err, _ := c.group.Do(id.String(), func() (any, error) {
		if entry, ok := c.Get(id); ok {
			return entry, nil
		}
		built, err := build()
		if err != nil {
			return nil, err
		}
		stored, ok := c.putIfAbsent(id, built)
		inserted = ok
		return stored, nil
	})
	if err != nil {
		return nil, false, err
	}
	return v.(*domain.CacheEntry), !inserted, nil
}
