package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/desk/internal/adapters/logger"
	"go.trai.ch/desk/internal/core/domain"
	"go.trai.ch/desk/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the configuration loader Graft node.
	NodeID graft.ID = "adapter.config_loader"

	// SourceNodeID is the unique identifier for the configuration source node.
	SourceNodeID graft.ID = "adapter.config.source"

	// SettingsNodeID is the unique identifier for the resolved settings node.
	SettingsNodeID graft.ID = "adapter.config.settings"
)

// Source is the path the settings are loaded from: a directory searched for
// desk.yaml or the config file itself. Patch it with graft.PatchValue to
// select another file.
type Source string

// DefaultSource is the working directory.
const DefaultSource Source = "."

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[Source]{
		ID:        SourceNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (Source, error) {
			return DefaultSource, nil
		},
	})

	graft.Register(graft.Node[*domain.Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID, SourceNodeID},
		Run: func(ctx context.Context) (*domain.Settings, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			source, err := graft.Dep[Source](ctx)
			if err != nil {
				return nil, err
			}
			return loader.Load(string(source))
		},
	})
}
