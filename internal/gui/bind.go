// Package gui holds the controllers bound to the embedded views. Each
// controller is a graft node so its dependencies come from the graph.
package gui

import (
	"go.trai.ch/desk/internal/core/domain"
	"go.trai.ch/zerr"
)

// BindNode returns the element with the given id in view, or
// domain.ErrControllerBindFailed when the view has no such element.
func BindNode(view *domain.View, id string) (*domain.Node, error) {
	if view == nil || view.Root == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrControllerBindFailed, "view has no elements"), "element", id)
	}
	node := view.Root.Find(id)
	if node == nil {
		err := zerr.With(zerr.Wrap(domain.ErrControllerBindFailed, "element not found"), "element", id)
		return nil, zerr.With(err, "view", view.ID.String())
	}
	return node, nil
}
