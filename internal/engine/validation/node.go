package validation

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/desk/internal/adapters/config"
	"go.trai.ch/desk/internal/adapters/i18n"
	"go.trai.ch/desk/internal/core/domain"
	"go.trai.ch/desk/internal/core/ports"
)

// NodeID is the unique identifier for the amount validator Graft node.
const NodeID graft.ID = "engine.validation"

func init() {
	graft.Register(graft.Node[*AmountValidator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			i18n.NodeID,
		},
		Run: func(ctx context.Context) (*AmountValidator, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			localizer, err := graft.Dep[ports.Localizer](ctx)
			if err != nil {
				return nil, err
			}

			params, err := settings.NetworkParams()
			if err != nil {
				return nil, err
			}

			return NewAmountValidator(params, localizer), nil
		},
	})
}
