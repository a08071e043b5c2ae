// Package viewloader resolves view identifiers to constructed views and their
// controllers, caching the pairs per identifier.
package viewloader

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"go.trai.ch/desk/internal/core/domain"
	"go.trai.ch/desk/internal/core/ports"
	"go.trai.ch/zerr"
)

// SpanName is the name of the span recorded around every load.
const SpanName = "viewloader.load"

// Initializer is implemented by controllers that bind to their view after
// construction.
type Initializer interface {
	Initialize(view *domain.View) error
}

// ViewLoader creates Loaders that share one Cache.
type ViewLoader struct {
	cache   *Cache
	locator ports.ResourceLocator
	parser  ports.ViewParser
	factory ports.ControllerFactory
	logger  ports.Logger
	tracer  ports.Tracer
}

// NewViewLoader creates a ViewLoader. factory may be nil, in which case views
// are loaded without controllers.
func NewViewLoader(
	cache *Cache,
	locator ports.ResourceLocator,
	parser ports.ViewParser,
	factory ports.ControllerFactory,
	log ports.Logger,
	tracer ports.Tracer,
) *ViewLoader {
	return &ViewLoader{
		cache:   cache,
		locator: locator,
		parser:  parser,
		factory: factory,
		logger:  log,
		tracer:  tracer,
	}
}

// Cache returns the cache shared by all loaders of v.
func (v *ViewLoader) Cache() *Cache {
	return v.cache
}

// New resolves id and prepares a Loader for it. It fails with
// domain.ErrResourceNotFound when id does not resolve, whatever useCaching is.
// With useCaching set and an entry present for id, the loader is cached and
// Load returns the stored pair.
func (v *ViewLoader) New(id domain.ViewID, useCaching bool) (*Loader, error) {
	res, err := v.locator.Locate(id)
	if err != nil {
		return nil, err
	}

	return &Loader{
		owner:      v,
		resource:   res,
		useCaching: useCaching,
		cached:     useCaching && v.cache.Contains(id),
	}, nil
}

// NewCached is New with caching enabled.
func (v *ViewLoader) NewCached(id domain.ViewID) (*Loader, error) {
	return v.New(id, true)
}

// construct builds a fresh (view, controller) pair for res.
func (v *ViewLoader) construct(ctx context.Context, res domain.Resource) (*domain.CacheEntry, error) {
	rc, err := v.locator.Open(res)
	if err != nil {
		return nil, loadFailed(res.ID, err)
	}
	defer rc.Close() //nolint:errcheck // Read-only close

	view, err := v.parser.Parse(rc, res)
	if err != nil {
		return nil, loadFailed(res.ID, err)
	}

	var controller any
	if v.factory != nil && view.Controller != "" {
		controller, err = v.factory.Resolve(ctx, view.Controller)
		if err != nil {
			return nil, loadFailed(res.ID, err)
		}

		if initializer, ok := controller.(Initializer); ok {
			if err := initializer.Initialize(view); err != nil {
				return nil, loadFailed(res.ID, err)
			}
		}
	}

	return &domain.CacheEntry{View: view, Controller: controller}, nil
}

func loadFailed(id domain.ViewID, err error) error {
	return zerr.With(errors.Join(domain.ErrViewLoadFailed, err), "view", id.String())
}

// Loader loads one view. It is safe for concurrent use.
type Loader struct {
	owner      *ViewLoader
	resource   domain.Resource
	useCaching bool
	cached     bool

	mu          sync.Mutex
	entry       *domain.CacheEntry
	constructed bool
}

// ID returns the identifier the loader was created for.
func (l *Loader) ID() domain.ViewID {
	return l.resource.ID
}

// Resource returns the resolved resource.
func (l *Loader) Resource() domain.Resource {
	return l.resource
}

// Cached reports whether the identifier was already cached when the loader
// was created with caching enabled.
func (l *Loader) Cached() bool {
	return l.cached
}

// Load returns the view. A cached loader returns the stored view without
// constructing anything. Otherwise a fresh pair is constructed and stored
// unless the cache already holds one for the identifier; with caching
// enabled, concurrent loads of one identifier construct once.
func (l *Loader) Load(ctx context.Context) (*domain.View, error) {
	id := l.resource.ID
	ctx, span := l.owner.tracer.Start(ctx, SpanName)
	defer span.End()
	span.SetAttribute("view.id", id.String())

	entry, fromCache, err := l.load(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("view.cached", fromCache)

	if fromCache {
		l.owner.logger.Debug(fmt.Sprintf("loaded view %s from cache", id))
	} else {
		l.owner.logger.Debug(fmt.Sprintf("loaded view %s from %s", id, l.resource.Path))
	}

	l.mu.Lock()
	l.entry = entry
	l.constructed = !fromCache
	l.mu.Unlock()

	return entry.View, nil
}

func (l *Loader) load(ctx context.Context) (*domain.CacheEntry, bool, error) {
	cache := l.owner.cache
	id := l.resource.ID

	if l.cached {
		if entry, ok := cache.Get(id); ok {
			return entry, true, nil
		}
	}

	if l.useCaching {
		return cache.getOrBuild(id, func() (*domain.CacheEntry, error) {
			return l.owner.construct(ctx, l.resource)
		})
	}

	entry, err := l.owner.construct(ctx, l.resource)
	if err != nil {
		return nil, false, err
	}
	cache.putIfAbsent(id, entry)
	return entry, false, nil
}

// Constructed reports whether the most recent Load built the pair it
// returned instead of taking it from the cache.
func (l *Loader) Constructed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.constructed
}

// Controller returns the controller recorded by the most recent Load. It is
// nil for views without a controller.
func (l *Loader) Controller() (any, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.entry == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrViewNotLoaded, "no controller recorded"), "view", l.resource.ID.String())
	}
	return l.entry.Controller, nil
}

// ControllerAs returns the controller of the most recent Load as C.
func ControllerAs[C any](l *Loader) (C, error) {
	var zero C

	controller, err := l.Controller()
	if err != nil {
		return zero, err
	}

	typed, ok := controller.(C)
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrControllerType, "unexpected controller"), "view", l.resource.ID.String())
		err = zerr.With(err, "want", reflect.TypeFor[C]().String())
		return zero, zerr.With(err, "got", fmt.Sprintf("%T", controller))
	}
	return typed, nil
}

// LoadController loads the view of l and returns it with its controller as C.
func LoadController[C any](ctx context.Context, l *Loader) (*domain.View, C, error) {
	var zero C

	view, err := l.Load(ctx)
	if err != nil {
		return nil, zero, err
	}

	controller, err := ControllerAs[C](l)
	if err != nil {
		return nil, zero, err
	}
	return view, controller, nil
}
