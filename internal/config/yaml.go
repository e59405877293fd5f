package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/todocsv/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// yamlFile mirrors the layout of a YAML settings file.
type yamlFile struct {
	Debug      *bool `yaml:"debug"`
	APIService *struct {
		URL           *string `yaml:"url"`
		Path          *string `yaml:"path"`
		OverrideFiles *bool   `yaml:"override_files"`
		Timeout       *string `yaml:"timeout"`
	} `yaml:"api_service"`
	Log *struct {
		Level  *string `yaml:"level"`
		Format *string `yaml:"format"`
	} `yaml:"log"`
}

// YAMLLoader reads settings from YAML files.
type YAMLLoader struct{}

// NewYAMLLoader creates a new YAML loader.
func NewYAMLLoader() *YAMLLoader {
	return &YAMLLoader{}
}

// Load implements Loader. Unknown keys are rejected so typos surface early.
func (l *YAMLLoader) Load(ctx context.Context, path string) (*Overrides, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Reading YAML settings file.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f yamlFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	o := &Overrides{Debug: f.Debug}
	if s := f.APIService; s != nil {
		o.URL = s.URL
		o.StoragePath = s.Path
		o.OverrideFiles = s.OverrideFiles
		if s.Timeout != nil {
			d, err := ParseDuration(*s.Timeout)
			if err != nil {
				return nil, fmt.Errorf("api_service.timeout: %w", err)
			}
			o.Timeout = &d
		}
	}
	if lg := f.Log; lg != nil {
		o.LogLevel = lg.Level
		o.LogFormat = lg.Format
	}

	logger.Debug("YAML settings file parsed.", "path", path)
	return o, nil
}
