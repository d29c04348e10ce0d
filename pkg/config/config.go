// Package config loads squire's optional settings file. The file only
// tunes logging; the interactive session itself takes no configuration.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// AppFs is the filesystem used to read settings. Tests swap in a MemMapFs.
var AppFs afero.Fs = afero.NewOsFs()

type Settings struct {
	LogLevel  string `yaml:"log-level"`
	LogFormat string `yaml:"log-format"`
}

func Default() Settings {
	return Settings{
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads the settings file at filename. A missing file is not an
// error: defaults are returned. Values absent from the file keep their
// defaults.
func Load(filename string) (Settings, error) {
	settings := Default()

	data, err := afero.ReadFile(AppFs, filename)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("reading settings file %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("parsing settings file %s: %w", filename, err)
	}

	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("invalid settings in %s: %w", filename, err)
	}

	return settings, nil
}

func (s Settings) Validate() error {
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log-level: must be one of debug, info, warn, error (got %q)", s.LogLevel)
	}
	switch s.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log-format: must be text or json (got %q)", s.LogFormat)
	}
	return nil
}
