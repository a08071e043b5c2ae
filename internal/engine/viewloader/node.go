package viewloader

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/desk/internal/adapters/controllers"
	"go.trai.ch/desk/internal/adapters/fs"
	"go.trai.ch/desk/internal/adapters/logger"
	"go.trai.ch/desk/internal/adapters/telemetry"
	"go.trai.ch/desk/internal/adapters/viewdef"
	"go.trai.ch/desk/internal/core/ports"
)

const (
	// CacheNodeID is the unique identifier for the view cache Graft node.
	CacheNodeID graft.ID = "engine.viewloader.cache"

	// NodeID is the unique identifier for the view loader Graft node.
	NodeID graft.ID = "engine.viewloader"
)

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        CacheNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Cache, error) {
			return NewCache(), nil
		},
	})

	graft.Register(graft.Node[*ViewLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			CacheNodeID,
			fs.LocatorNodeID,
			viewdef.NodeID,
			controllers.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*ViewLoader, error) {
			cache, err := graft.Dep[*Cache](ctx)
			if err != nil {
				return nil, err
			}
			locator, err := graft.Dep[ports.ResourceLocator](ctx)
			if err != nil {
				return nil, err
			}
			parser, err := graft.Dep[ports.ViewParser](ctx)
			if err != nil {
				return nil, err
			}
			factory, err := graft.Dep[ports.ControllerFactory](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewViewLoader(cache, locator, parser, factory, log, tracer), nil
		},
	})
}
