package viewloader_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/desk/internal/adapters/telemetry"
	"go.trai.ch/desk/internal/core/domain"
	"go.trai.ch/desk/internal/core/ports/mocks"
	"go.trai.ch/desk/internal/engine/viewloader"
	"go.uber.org/mock/gomock"
)

var (
	offerID  = domain.NewViewID("trade/offer")
	offerRes = domain.Resource{ID: offerID, Path: "trade/offer.yaml"}
)

type offerController struct {
	initialized *domain.View
}

func (c *offerController) Initialize(view *domain.View) error {
	c.initialized = view
	return nil
}

type fixture struct {
	locator *mocks.MockResourceLocator
	parser  *mocks.MockViewParser
	factory *mocks.MockControllerFactory
	logger  *mocks.MockLogger
	loader  *viewloader.ViewLoader
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		locator: mocks.NewMockResourceLocator(ctrl),
		parser:  mocks.NewMockViewParser(ctrl),
		factory: mocks.NewMockControllerFactory(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	f.loader = viewloader.NewViewLoader(
		viewloader.NewCache(),
		f.locator,
		f.parser,
		f.factory,
		f.logger,
		telemetry.NewNoOpTracer(),
	)
	return f
}

// expectConstruction sets up the calls made by one construction of the offer view.
func (f *fixture) expectConstruction(times int) {
	f.locator.EXPECT().Open(offerRes).DoAndReturn(func(domain.Resource) (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader("definition")), nil
	}).Times(times)
	f.parser.EXPECT().Parse(gomock.Any(), offerRes).DoAndReturn(func(io.Reader, domain.Resource) (*domain.View, error) {
		return &domain.View{ID: offerID, Controller: "trade.offer", Root: &domain.Node{Kind: "page"}}, nil
	}).Times(times)
	f.factory.EXPECT().Resolve(gomock.Any(), domain.ControllerType("trade.offer")).DoAndReturn(
		func(context.Context, domain.ControllerType) (any, error) {
			return &offerController{}, nil
		}).Times(times)
}

func TestViewLoader_New_NotFound(t *testing.T) {
	for _, useCaching := range []bool{true, false} {
		f := newFixture(t)
		missing := domain.NewViewID("missing")
		f.locator.EXPECT().Locate(missing).Return(domain.Resource{}, domain.ErrResourceNotFound)

		_, err := f.loader.New(missing, useCaching)

		require.ErrorIs(t, err, domain.ErrResourceNotFound)
	}
}

func TestLoader_FirstCachedLoadConstructs(t *testing.T) {
	f := newFixture(t)
	f.locator.EXPECT().Locate(offerID).Return(offerRes, nil)
	f.expectConstruction(1)

	l, err := f.loader.NewCached(offerID)
	require.NoError(t, err)
	assert.False(t, l.Cached())
	assert.Equal(t, offerID, l.ID())
	assert.Equal(t, offerRes, l.Resource())

	view, err := l.Load(t.Context())
	require.NoError(t, err)
	assert.Equal(t, offerID, view.ID)

	controller, err := viewloader.ControllerAs[*offerController](l)
	require.NoError(t, err)
	assert.Same(t, view, controller.initialized)

	entry, ok := f.loader.Cache().Get(offerID)
	require.True(t, ok)
	assert.Same(t, view, entry.View)
	assert.Same(t, controller, entry.Controller)
}

func TestLoader_CachedLoadReturnsStoredPair(t *testing.T) {
	f := newFixture(t)
	f.locator.EXPECT().Locate(offerID).Return(offerRes, nil).Times(2)
	f.expectConstruction(1)

	first, err := f.loader.NewCached(offerID)
	require.NoError(t, err)
	firstView, err := first.Load(t.Context())
	require.NoError(t, err)
	firstController, err := first.Controller()
	require.NoError(t, err)

	second, err := f.loader.NewCached(offerID)
	require.NoError(t, err)
	assert.True(t, second.Cached())

	secondView, err := second.Load(t.Context())
	require.NoError(t, err)
	secondController, err := second.Controller()
	require.NoError(t, err)

	assert.Same(t, firstView, secondView)
	assert.Same(t, firstController, secondController)
	assert.Equal(t, 1, f.loader.Cache().Len())
}

func TestLoader_UncachedLoadDoesNotReplaceEntry(t *testing.T) {
	f := newFixture(t)
	f.locator.EXPECT().Locate(offerID).Return(offerRes, nil).Times(2)
	f.expectConstruction(2)

	cached, err := f.loader.NewCached(offerID)
	require.NoError(t, err)
	cachedView, err := cached.Load(t.Context())
	require.NoError(t, err)

	fresh, err := f.loader.New(offerID, false)
	require.NoError(t, err)
	assert.False(t, fresh.Cached())

	freshView, err := fresh.Load(t.Context())
	require.NoError(t, err)
	assert.NotSame(t, cachedView, freshView)

	freshController, err := fresh.Controller()
	require.NoError(t, err)

	entry, ok := f.loader.Cache().Get(offerID)
	require.True(t, ok)
	assert.Same(t, cachedView, entry.View)
	assert.NotSame(t, freshController, entry.Controller)
}

func TestLoader_UncachedLoadPopulatesEmptyCache(t *testing.T) {
	f := newFixture(t)
	f.locator.EXPECT().Locate(offerID).Return(offerRes, nil)
	f.expectConstruction(1)

	l, err := f.loader.New(offerID, false)
	require.NoError(t, err)
	view, err := l.Load(t.Context())
	require.NoError(t, err)

	entry, ok := f.loader.Cache().Get(offerID)
	require.True(t, ok)
	assert.Same(t, view, entry.View)
}

func TestLoader_ControllerBeforeLoad(t *testing.T) {
	f := newFixture(t)
	f.locator.EXPECT().Locate(offerID).Return(offerRes, nil)

	l, err := f.loader.NewCached(offerID)
	require.NoError(t, err)

	_, err = l.Controller()
	require.ErrorIs(t, err, domain.ErrViewNotLoaded)

	_, err = viewloader.ControllerAs[*offerController](l)
	require.ErrorIs(t, err, domain.ErrViewNotLoaded)
}

func TestLoader_ParseFailure(t *testing.T) {
	f := newFixture(t)
	f.locator.EXPECT().Locate(offerID).Return(offerRes, nil)
	f.locator.EXPECT().Open(offerRes).Return(io.NopCloser(strings.NewReader("")), nil)
	f.parser.EXPECT().Parse(gomock.Any(), offerRes).Return(nil, domain.ErrViewParseFailed)

	l, err := f.loader.NewCached(offerID)
	require.NoError(t, err)

	_, err = l.Load(t.Context())

	require.ErrorIs(t, err, domain.ErrViewLoadFailed)
	require.ErrorIs(t, err, domain.ErrViewParseFailed)
	assert.Zero(t, f.loader.Cache().Len())
}

func TestLoader_OpenFailure(t *testing.T) {
	f := newFixture(t)
	f.locator.EXPECT().Locate(offerID).Return(offerRes, nil)
	f.locator.EXPECT().Open(offerRes).Return(nil, errors.New("permission denied"))

	l, err := f.loader.New(offerID, false)
	require.NoError(t, err)

	_, err = l.Load(t.Context())

	require.ErrorIs(t, err, domain.ErrViewLoadFailed)
	assert.Zero(t, f.loader.Cache().Len())
}

func TestLoader_ControllerResolutionFailure(t *testing.T) {
	f := newFixture(t)
	f.locator.EXPECT().Locate(offerID).Return(offerRes, nil)
	f.locator.EXPECT().Open(offerRes).Return(io.NopCloser(strings.NewReader("")), nil)
	f.parser.EXPECT().Parse(gomock.Any(), offerRes).Return(&domain.View{ID: offerID, Controller: "trade.offer"}, nil)
	f.factory.EXPECT().Resolve(gomock.Any(), domain.ControllerType("trade.offer")).Return(nil, domain.ErrControllerNotRegistered)

	l, err := f.loader.NewCached(offerID)
	require.NoError(t, err)

	_, err = l.Load(t.Context())

	require.ErrorIs(t, err, domain.ErrViewLoadFailed)
	require.ErrorIs(t, err, domain.ErrControllerNotRegistered)
	assert.False(t, f.loader.Cache().Contains(offerID))
}

func TestLoader_ViewWithoutController(t *testing.T) {
	f := newFixture(t)
	mainID := domain.NewViewID("main")
	mainRes := domain.Resource{ID: mainID, Path: "main.yaml"}
	f.locator.EXPECT().Locate(mainID).Return(mainRes, nil)
	f.locator.EXPECT().Open(mainRes).Return(io.NopCloser(strings.NewReader("")), nil)
	f.parser.EXPECT().Parse(gomock.Any(), mainRes).Return(&domain.View{ID: mainID}, nil)

	l, err := f.loader.NewCached(mainID)
	require.NoError(t, err)
	_, err = l.Load(t.Context())
	require.NoError(t, err)

	controller, err := l.Controller()
	require.NoError(t, err)
	assert.Nil(t, controller)
}

func TestLoader_NilFactory(t *testing.T) {
	ctrl := gomock.NewController(t)
	locator := mocks.NewMockResourceLocator(ctrl)
	parser := mocks.NewMockViewParser(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	locator.EXPECT().Locate(offerID).Return(offerRes, nil)
	locator.EXPECT().Open(offerRes).Return(io.NopCloser(strings.NewReader("")), nil)
	parser.EXPECT().Parse(gomock.Any(), offerRes).Return(&domain.View{ID: offerID, Controller: "trade.offer"}, nil)

	loader := viewloader.NewViewLoader(viewloader.NewCache(), locator, parser, nil, log, telemetry.NewNoOpTracer())
	l, err := loader.NewCached(offerID)
	require.NoError(t, err)

	_, err = l.Load(t.Context())
	require.NoError(t, err)

	controller, err := l.Controller()
	require.NoError(t, err)
	assert.Nil(t, controller)
}

func TestLoader_ConcurrentCachedLoadsConstructOnce(t *testing.T) {
	f := newFixture(t)
	f.locator.EXPECT().Locate(offerID).Return(offerRes, nil).AnyTimes()
	f.locator.EXPECT().Open(offerRes).DoAndReturn(func(domain.Resource) (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader("")), nil
	}).Times(1)
	f.parser.EXPECT().Parse(gomock.Any(), offerRes).DoAndReturn(func(io.Reader, domain.Resource) (*domain.View, error) {
		time.Sleep(20 * time.Millisecond)
		return &domain.View{ID: offerID, Controller: "trade.offer"}, nil
	}).Times(1)
	f.factory.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(&offerController{}, nil).Times(1)

	const workers = 16
	views := make([]*domain.View, workers)
	constructed := make([]bool, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Go(func() {
			l, err := f.loader.NewCached(offerID)
			if !assert.NoError(t, err) {
				return
			}
			views[i], err = l.Load(context.Background())
			assert.NoError(t, err)
			constructed[i] = l.Constructed()
		})
	}
	wg.Wait()

	builders := 0
	for i, view := range views {
		assert.Same(t, views[0], view)
		if constructed[i] {
			builders++
		}
	}
	assert.Equal(t, 1, builders, "exactly one loader constructs the pair")
	assert.Equal(t, 1, f.loader.Cache().Len())
}

func TestControllerAs_TypeMismatch(t *testing.T) {
	f := newFixture(t)
	f.locator.EXPECT().Locate(offerID).Return(offerRes, nil)
	f.expectConstruction(1)

	l, err := f.loader.NewCached(offerID)
	require.NoError(t, err)
	_, err = l.Load(t.Context())
	require.NoError(t, err)

	_, err = viewloader.ControllerAs[*strings.Builder](l)
	require.ErrorIs(t, err, domain.ErrControllerType)
}

func TestLoadController(t *testing.T) {
	f := newFixture(t)
	f.locator.EXPECT().Locate(offerID).Return(offerRes, nil)
	f.expectConstruction(1)

	l, err := f.loader.NewCached(offerID)
	require.NoError(t, err)

	view, controller, err := viewloader.LoadController[*offerController](t.Context(), l)

	require.NoError(t, err)
	assert.Same(t, view, controller.initialized)
}

func TestLoader_Span(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)
	loader := viewloader.NewViewLoader(viewloader.NewCache(), f.locator, f.parser, f.factory, f.logger, tracer)

	f.locator.EXPECT().Locate(offerID).Return(offerRes, nil)
	f.expectConstruction(1)

	tracer.EXPECT().Start(gomock.Any(), viewloader.SpanName).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, *mocks.MockSpan) {
			return ctx, span
		})
	gomock.InOrder(
		span.EXPECT().SetAttribute("view.id", "trade/offer"),
		span.EXPECT().SetAttribute("view.cached", false),
		span.EXPECT().End(),
	)

	l, err := loader.NewCached(offerID)
	require.NoError(t, err)
	_, err = l.Load(t.Context())
	require.NoError(t, err)
}
