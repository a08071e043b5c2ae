// Package config provides the configuration loader for desk.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/desk/internal/adapters/logger"
	"go.trai.ch/desk/internal/core/domain"
	"go.trai.ch/desk/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// Load resolves the settings for path. A directory is searched upwards for
// desk.yaml; a file is read directly. When nothing is found the defaults are
// returned.
func (l *Loader) Load(path string) (*domain.Settings, error) {
	configPath, found, err := findConfiguration(path)
	if err != nil {
		return nil, err
	}

	if !found {
		l.Logger.Debug("no " + domain.ConfigFileName + " found, using defaults")
		return domain.DefaultSettings(), nil
	}

	var deskfile Deskfile
	if err := readAndUnmarshalYAML(configPath, &deskfile); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to load configuration"), "path", configPath)
	}

	settings, err := buildSettings(&deskfile, filepath.Dir(configPath))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid configuration"), "path", configPath)
	}

	l.Logger.Debug("loaded configuration from " + configPath)
	return settings, nil
}

func findConfiguration(path string) (string, bool, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false, errors.Join(domain.ErrConfigReadFailed, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", false, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}
	if !info.IsDir() {
		return abs, true, nil
	}

	currentDir := abs
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false, nil
		}
		currentDir = parentDir
	}
}

func buildSettings(dto *Deskfile, baseDir string) (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	if dto.Locale != "" {
		tag, err := language.Parse(dto.Locale)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidLocale, err.Error()), "locale", dto.Locale)
		}
		settings.Locale = tag.String()
	}

	if dto.Network != "" {
		params, err := domain.NetworkByName(dto.Network)
		if err != nil {
			return nil, err
		}
		settings.Network = params.Name
	}

	if dto.Log.Level != "" {
		if _, err := logger.ParseLevel(dto.Log.Level); err != nil {
			return nil, err
		}
		settings.Log.Level = dto.Log.Level
	}
	settings.Log.JSON = dto.Log.JSON

	if dto.Views.Cache != nil {
		settings.Views.Cache = *dto.Views.Cache
	}

	if dto.Views.Dir != "" {
		dir := dto.Views.Dir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(baseDir, dir)
		}
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			return nil, zerr.With(domain.ErrViewsDirNotFound, "views_dir", dir)
		}
		settings.Views.Dir = dir
	}

	return settings, nil
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath comes from the discovery walk or the caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Join(domain.ErrConfigReadFailed, err)
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return errors.Join(domain.ErrConfigParseFailed, parseErr)
	}

	return nil
}
