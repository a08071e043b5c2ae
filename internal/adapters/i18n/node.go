package i18n

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/desk/internal/adapters/config"
	"go.trai.ch/desk/internal/assets"
	"go.trai.ch/desk/internal/core/domain"
	"go.trai.ch/desk/internal/core/ports"
)

// NodeID is the unique identifier for the localizer Graft node.
const NodeID graft.ID = "adapter.i18n"

func init() {
	graft.Register(graft.Node[ports.Localizer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.Localizer, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return New(assets.Locales(), settings.Locale)
		},
	})
}
