// Package home implements the controller of the home view.
package home

import (
	"go.trai.ch/desk/internal/core/domain"
	"go.trai.ch/desk/internal/core/ports"
	"go.trai.ch/desk/internal/gui"
)

// ControllerType is the controller type named by the home view.
const ControllerType domain.ControllerType = "home"

// Controller drives the home view.
type Controller struct {
	settings  *domain.Settings
	localizer ports.Localizer
	targets   []domain.ViewID
}

// New creates a Controller.
func New(settings *domain.Settings, localizer ports.Localizer) *Controller {
	return &Controller{settings: settings, localizer: localizer}
}

// Initialize shows the active network and collects the navigation targets.
func (c *Controller) Initialize(view *domain.View) error {
	network, err := gui.BindNode(view, "network")
	if err != nil {
		return err
	}
	network.Text = c.NetworkLabel()

	view.Root.Walk(func(node *domain.Node, _ int) bool {
		if target, ok := node.Props["target"]; ok {
			c.targets = append(c.targets, domain.NewViewID(target))
		}
		return true
	})
	return nil
}

// NetworkLabel returns the localized label of the active network.
func (c *Controller) NetworkLabel() string {
	return c.localizer.Localize("home.network", c.settings.Network)
}

// Targets returns the views the home view links to, in document order.
func (c *Controller) Targets() []domain.ViewID {
	return c.targets
}
