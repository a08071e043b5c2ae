package domain

// Settings is the resolved application configuration.
type Settings struct {
	Locale  string
	Network string
	Views   ViewSettings
	Log     LogSettings
}

// ViewSettings configures where view definitions come from and whether loads are cached.
type ViewSettings struct {
	// Dir overrides the embedded view definitions when set.
	Dir   string
	Cache bool
}

// LogSettings configures the logger.
type LogSettings struct {
	Level string
	JSON  bool
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Locale:  DefaultLocale,
		Network: DefaultNetwork,
		Views:   ViewSettings{Cache: true},
		Log:     LogSettings{Level: DefaultLogLevel},
	}
}

// NetworkParams returns the preset for the configured network.
func (s *Settings) NetworkParams() (NetworkParams, error) {
	return NetworkByName(s.Network)
}
