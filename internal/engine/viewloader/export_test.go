// export_test.go exports private functions for white-box testing.
package viewloader

import "go.trai.ch/desk/internal/core/domain"

// PutIfAbsent exposes Cache.putIfAbsent.
func PutIfAbsent(c *Cache, id domain.ViewID, entry *domain.CacheEntry) (*domain.CacheEntry, bool) {
	return c.putIfAbsent(id, entry)
}

// GetOrBuild exposes Cache.getOrBuild.
func GetOrBuild(c *Cache, id domain.ViewID, build func() (*domain.CacheEntry, error)) (*domain.CacheEntry, bool, error) {
	return c.getOrBuild(id, build)
}
