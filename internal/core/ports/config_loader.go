package ports

import "go.trai.ch/desk/internal/core/domain"

// ConfigLoader defines the interface for loading the application configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration at path: a directory searched upwards for
	// desk.yaml or the config file itself.
	// A missing config file yields the default settings.
	Load(path string) (*domain.Settings, error)
}
