package home

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/desk/internal/adapters/config"
	"go.trai.ch/desk/internal/adapters/i18n"
	"go.trai.ch/desk/internal/core/domain"
	"go.trai.ch/desk/internal/core/ports"
)

// NodeID is the unique identifier for the home controller Graft node.
const NodeID graft.ID = "gui.home"

func init() {
	// Not cacheable: every view instance gets its own controller.
	graft.Register(graft.Node[*Controller]{
		ID:        NodeID,
		DependsOn: []graft.ID{config.SettingsNodeID, i18n.NodeID},
		Run: func(ctx context.Context) (*Controller, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			localizer, err := graft.Dep[ports.Localizer](ctx)
			if err != nil {
				return nil, err
			}
			return New(settings, localizer), nil
		},
	})
}
