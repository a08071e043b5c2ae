package viewdef

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/desk/internal/adapters/i18n"
	"go.trai.ch/desk/internal/core/ports"
)

// NodeID is the unique identifier for the view parser Graft node.
const NodeID graft.ID = "adapter.viewdef"

func init() {
	graft.Register(graft.Node[ports.ViewParser]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{i18n.NodeID},
		Run: func(ctx context.Context) (ports.ViewParser, error) {
			localizer, err := graft.Dep[ports.Localizer](ctx)
			if err != nil {
				return nil, err
			}
			return NewParser(localizer), nil
		},
	})
}
