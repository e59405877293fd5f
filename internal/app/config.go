package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/todocsv/internal/config"
)

// SettingsFileExtensions lists the settings file formats NewApp can read.
var SettingsFileExtensions = []string{".hcl", ".yaml", ".yml"}

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ConfigPath is an optional HCL or YAML settings file.
	ConfigPath string
	// Flags are the settings given on the command line. They win over
	// every other layer.
	Flags config.Overrides
	// Strict turns rows that could not be saved into a failed run.
	Strict bool
	// Environ is the environment as KEY=value pairs. Nil means os.Environ.
	Environ []string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath != "" {
		ext := strings.ToLower(filepath.Ext(cfg.ConfigPath))
		supported := false
		for _, e := range SettingsFileExtensions {
			if ext == e {
				supported = true
				break
			}
		}
		if !supported {
			return nil, fmt.Errorf("settings file must end in one of %s, got %q", strings.Join(SettingsFileExtensions, ", "), cfg.ConfigPath)
		}
	}
	if cfg.Environ == nil {
		cfg.Environ = os.Environ()
	}
	return &cfg, nil
}
