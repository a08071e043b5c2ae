// Package settings implements the controller of the settings view.
package settings

import (
	"go.trai.ch/desk/internal/core/domain"
	"go.trai.ch/desk/internal/core/ports"
	"go.trai.ch/desk/internal/gui"
)

// ControllerType is the controller type named by the settings view.
const ControllerType domain.ControllerType = "settings"

// Controller drives the settings view.
type Controller struct {
	settings  *domain.Settings
	localizer ports.Localizer
}

// New creates a Controller.
func New(settings *domain.Settings, localizer ports.Localizer) *Controller {
	return &Controller{settings: settings, localizer: localizer}
}

// Initialize fills in the active locale and network.
func (c *Controller) Initialize(view *domain.View) error {
	locale, err := gui.BindNode(view, "locale-value")
	if err != nil {
		return err
	}
	network, err := gui.BindNode(view, "network-value")
	if err != nil {
		return err
	}

	locale.Text = c.Locale()
	network.Text = c.Network()
	return nil
}

// Locale returns the tag of the active message bundle.
func (c *Controller) Locale() string {
	return c.localizer.Locale()
}

// Network returns the configured network.
func (c *Controller) Network() string {
	return c.settings.Network
}
