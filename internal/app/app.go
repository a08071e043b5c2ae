// Package app implements the application layer for desk.
package app

import (
	"context"
	"runtime"
	"sync/atomic"

	"go.trai.ch/desk/internal/core/domain"
	"go.trai.ch/desk/internal/core/ports"
	"go.trai.ch/desk/internal/engine/validation"
	"go.trai.ch/desk/internal/engine/viewloader"
	"go.trai.ch/desk/internal/gui/trade"
	"golang.org/x/sync/errgroup"
)

// OfferViewName is the view driven by Offer.
const OfferViewName = "trade/offer"

// App represents the main application logic.
type App struct {
	loader    *viewloader.ViewLoader
	validator *validation.AmountValidator
	locator   ports.ResourceLocator
	logger    ports.Logger
	settings  *domain.Settings
}

// New creates a new App instance.
func New(
	loader *viewloader.ViewLoader,
	validator *validation.AmountValidator,
	locator ports.ResourceLocator,
	log ports.Logger,
	settings *domain.Settings,
) *App {
	return &App{
		loader:    loader,
		validator: validator,
		locator:   locator,
		logger:    log,
		settings:  settings,
	}
}

// Settings returns the settings the app was built with.
func (a *App) Settings() *domain.Settings {
	return a.settings
}

// ShowOptions configures ShowView.
type ShowOptions struct {
	// NoCache bypasses the view cache for this call.
	NoCache bool
	// Repeat is the number of loads; values below 1 mean one.
	Repeat int
}

// LoadResult describes one load of a view.
type LoadResult struct {
	View       *domain.View
	Controller any
	Cached     bool
}

// ShowView loads the named view opts.Repeat times and reports every load.
// Caching applies when it is enabled in the settings and not disabled by opts.
func (a *App) ShowView(ctx context.Context, name string, opts ShowOptions) ([]LoadResult, error) {
	id, err := domain.ParseViewID(name)
	if err != nil {
		return nil, err
	}

	useCaching := a.settings.Views.Cache && !opts.NoCache
	results := make([]LoadResult, 0, max(opts.Repeat, 1))

	for range max(opts.Repeat, 1) {
		l, err := a.loader.New(id, useCaching)
		if err != nil {
			return nil, err
		}

		view, err := l.Load(ctx)
		if err != nil {
			return nil, err
		}

		controller, err := l.Controller()
		if err != nil {
			return nil, err
		}

		results = append(results, LoadResult{View: view, Controller: controller, Cached: l.Cached()})
	}

	return results, nil
}

// ViewInfo describes an available view.
type ViewInfo struct {
	ID     domain.ViewID
	Cached bool
}

// ListViews returns every available view and whether it is cached.
func (a *App) ListViews() ([]ViewInfo, error) {
	ids, err := a.locator.List()
	if err != nil {
		return nil, err
	}

	cache := a.loader.Cache()
	infos := make([]ViewInfo, 0, len(ids))
	for _, id := range ids {
		infos = append(infos, ViewInfo{ID: id, Cached: cache.Contains(id)})
	}
	return infos, nil
}

// Preload loads the named views into the cache concurrently. With no names,
// every available view is loaded. It returns the number of views that were
// constructed by this call; a name given twice is constructed once.
func (a *App) Preload(ctx context.Context, names []string) (int, error) {
	ids, err := a.preloadTargets(names)
	if err != nil {
		return 0, err
	}

	var constructed atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, id := range ids {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			l, err := a.loader.NewCached(id)
			if err != nil {
				return err
			}
			if l.Cached() {
				return nil
			}
			if _, err := l.Load(ctx); err != nil {
				return err
			}
			if l.Constructed() {
				constructed.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return int(constructed.Load()), err
	}

	a.logger.Debug("preloaded views")
	return int(constructed.Load()), nil
}

func (a *App) preloadTargets(names []string) ([]domain.ViewID, error) {
	if len(names) == 0 {
		ids, err := a.locator.List()
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return nil, domain.ErrNoViewsSpecified
		}
		return ids, nil
	}

	ids := make([]domain.ViewID, 0, len(names))
	for _, name := range names {
		id, err := domain.ParseViewID(name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Validate checks every input with the amount validator.
func (a *App) Validate(inputs []string) []domain.ValidationResult {
	results := make([]domain.ValidationResult, 0, len(inputs))
	for _, input := range inputs {
		results = append(results, a.validator.Validate(input))
	}
	return results
}

// Offer enters amount into the create-offer form and returns the updated
// view with the validation result.
func (a *App) Offer(ctx context.Context, amount string) (*domain.View, domain.ValidationResult, error) {
	l, err := a.loader.New(domain.NewViewID(OfferViewName), a.settings.Views.Cache)
	if err != nil {
		return nil, domain.ValidationResult{}, err
	}

	view, controller, err := viewloader.LoadController[*trade.OfferController](ctx, l)
	if err != nil {
		return nil, domain.ValidationResult{}, err
	}

	return view, controller.SetAmount(amount), nil
}
