package controllers

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/desk/internal/core/ports"
	"go.trai.ch/desk/internal/gui/home"
	"go.trai.ch/desk/internal/gui/settings"
	"go.trai.ch/desk/internal/gui/trade"
)

// NodeID is the unique identifier for the controller factory Graft node.
const NodeID graft.ID = "adapter.controllers"

// DefaultBindings binds every controller named by the embedded views.
func DefaultBindings(opts ...graft.Option) []Binding {
	return []Binding{
		Bind[*home.Controller](home.ControllerType, opts...),
		Bind[*trade.OfferController](trade.OfferControllerType, opts...),
		Bind[*settings.Controller](settings.ControllerType, opts...),
	}
}

func init() {
	graft.Register(graft.Node[ports.ControllerFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ControllerFactory, error) {
			return NewFactory(DefaultBindings()...), nil
		},
	})
}
