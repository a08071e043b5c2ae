package trade

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/desk/internal/engine/validation"
)

// OfferNodeID is the unique identifier for the offer controller Graft node.
const OfferNodeID graft.ID = "gui.trade.offer"

func init() {
	graft.Register(graft.Node[*OfferController]{
		ID:        OfferNodeID,
		DependsOn: []graft.ID{validation.NodeID},
		Run: func(ctx context.Context) (*OfferController, error) {
			validator, err := graft.Dep[*validation.AmountValidator](ctx)
			if err != nil {
				return nil, err
			}
			return NewOfferController(validator), nil
		},
	})
}
