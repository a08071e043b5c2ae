package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/desk/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/desk/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/desk/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/desk/internal/core/domain"
	"go.trai.ch/desk/internal/core/ports"
	"go.trai.ch/desk/internal/engine/validation"
	"go.trai.ch/desk/internal/engine/viewloader"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			viewloader.NodeID,
			validation.NodeID,
			fs.LocatorNodeID,
			logger.NodeID,
			config.SettingsNodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[*viewloader.ViewLoader](ctx)
			if err != nil {
				return nil, err
			}
			validator, err := graft.Dep[*validation.AmountValidator](ctx)
			if err != nil {
				return nil, err
			}
			locator, err := graft.Dep[ports.ResourceLocator](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, validator, locator, log, settings), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.SettingsNodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[*domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	if configurable, ok := log.(*logger.Logger); ok {
		if err := configurable.Configure(settings.Log); err != nil {
			return nil, err
		}
	}

	return NewComponents(app, log), nil
}
