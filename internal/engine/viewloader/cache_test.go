package viewloader_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/desk/internal/core/domain"
	"go.trai.ch/desk/internal/engine/viewloader"
)

func TestCache_Empty(t *testing.T) {
	cache := viewloader.NewCache()

	_, ok := cache.Get(domain.NewViewID("home"))
	assert.False(t, ok)
	assert.False(t, cache.Contains(domain.NewViewID("home")))
	assert.Zero(t, cache.Len())
	assert.Empty(t, cache.IDs())
}

func TestCache_KeyedByIdentity(t *testing.T) {
	cache := viewloader.NewCache()
	entry := &domain.CacheEntry{View: &domain.View{ID: domain.NewViewID("home")}}

	viewloader.PutIfAbsent(cache, domain.NewViewID("home"), entry)

	// Identifiers built separately from the same name are equal keys.
	got, ok := cache.Get(domain.NewViewID("/home/"))
	assert.True(t, ok)
	assert.Same(t, entry, got)
}

func TestCache_InsertOnly(t *testing.T) {
	cache := viewloader.NewCache()
	id := domain.NewViewID("home")
	first := &domain.CacheEntry{View: &domain.View{ID: id}}
	second := &domain.CacheEntry{View: &domain.View{ID: id}}

	stored, inserted := viewloader.PutIfAbsent(cache, id, first)
	assert.True(t, inserted)
	assert.Same(t, first, stored)

	stored, inserted = viewloader.PutIfAbsent(cache, id, second)
	assert.False(t, inserted)
	assert.Same(t, first, stored)
	assert.Equal(t, 1, cache.Len())
}

func TestCache_IDsSorted(t *testing.T) {
	cache := viewloader.NewCache()
	for _, name := range []string{"trade/offer", "home", "main"} {
		viewloader.PutIfAbsent(cache, domain.NewViewID(name), &domain.CacheEntry{})
	}

	ids := cache.IDs()

	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, id.String())
	}
	assert.Equal(t, []string{"home", "main", "trade/offer"}, names)
}

func TestCache_GetOrBuild_SharedFlightIsHit(t *testing.T) {
	cache := viewloader.NewCache()
	id := domain.NewViewID("trade/offer")
	release := make(chan struct{})
	var builds atomic.Int32

	build := func() (*domain.CacheEntry, error) {
		builds.Add(1)
		<-release
		return &domain.CacheEntry{View: &domain.View{ID: id}}, nil
	}

	const callers = 8
	hits := make([]bool, callers)
	var started, wg sync.WaitGroup
	started.Add(callers)
	for i := range callers {
		wg.Go(func() {
			started.Done()
			_, hit, err := viewloader.GetOrBuild(cache, id, build)
			assert.NoError(t, err)
			hits[i] = hit
		})
	}
	started.Wait()
	close(release)
	wg.Wait()

	misses := 0
	for _, hit := range hits {
		if !hit {
			misses++
		}
	}
	assert.Equal(t, int32(1), builds.Load())
	assert.Equal(t, 1, misses)
}

func TestCache_GetOrBuild_Error(t *testing.T) {
	cache := viewloader.NewCache()
	id := domain.NewViewID("home")
	errBuild := errors.New("broken")

	_, hit, err := viewloader.GetOrBuild(cache, id, func() (*domain.CacheEntry, error) {
		return nil, errBuild
	})

	require.ErrorIs(t, err, errBuild)
	assert.False(t, hit)
	assert.False(t, cache.Contains(id))
}
