package config

// Deskfile represents the structure of the desk.yaml configuration file.
// Omitted fields keep their defaults.
type Deskfile struct {
	Version string   `yaml:"version"`
	Locale  string   `yaml:"locale"`
	Network string   `yaml:"network"`
	Views   ViewsDTO `yaml:"views"`
	Log     LogDTO   `yaml:"log"`
}

// ViewsDTO configures the view resources.
type ViewsDTO struct {
	Dir   string `yaml:"dir"`
	Cache *bool  `yaml:"cache"`
}

// LogDTO configures the logger.
type LogDTO struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}
