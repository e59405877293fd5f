package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/todocsv/internal/apiservice"
	"github.com/specialistvlad/todocsv/internal/config"
	"github.com/specialistvlad/todocsv/internal/ctxlog"
	"github.com/specialistvlad/todocsv/internal/fsutil"
	"github.com/specialistvlad/todocsv/internal/hcl"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	settings config.Settings
	service  *apiservice.Service
}

// NewApp is the constructor for the main application. It resolves the
// settings, builds an isolated logger writing to outW, makes sure the
// storage directory exists and wires the API service.
func NewApp(outW io.Writer, appConfig *Config) (*App, error) {
	settings, err := ResolveSettings(context.Background(), appConfig)
	if err != nil {
		return nil, err
	}

	logger := newLogger(settings.EffectiveLogLevel(), settings.LogFormat, outW)
	logger.Debug("Logger configured successfully.")
	logger.Debug("Settings resolved.",
		"url", settings.URL,
		"path", settings.StoragePath,
		"override_files", settings.OverrideFiles,
		"timeout", settings.Timeout,
	)

	if err := fsutil.EnsureDir(settings.StoragePath); err != nil {
		return nil, fmt.Errorf("failed to prepare storage: %w", err)
	}

	service := apiservice.New(apiservice.Config{
		URL:           settings.URL,
		Path:          settings.StoragePath,
		OverrideFiles: settings.OverrideFiles,
		Timeout:       settings.Timeout,
	}, apiservice.WithLogger(logger))
	logger.Debug("API service created.")

	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		settings: settings,
		service:  service,
	}, nil
}

// ResolveSettings layers defaults, the settings file, the environment and
// the command-line flags, in that order, and validates the result.
func ResolveSettings(ctx context.Context, appConfig *Config) (config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	settings := config.Defaults()
	env := config.ParseEnviron(appConfig.Environ)

	if appConfig.ConfigPath != "" {
		yamlLoader := config.NewYAMLLoader()
		loaders := map[string]config.Loader{
			".hcl":  hcl.NewLoader(hcl.WithEnv(env)),
			".yaml": yamlLoader,
			".yml":  yamlLoader,
		}
		fileOverrides, err := config.LoadFile(ctx, appConfig.ConfigPath, loaders)
		if err != nil {
			return config.Settings{}, err
		}
		settings.Apply(fileOverrides)
		logger.Debug("Applied settings file.", "path", appConfig.ConfigPath)
	}

	envOverrides, err := config.FromEnv(config.MapLookup(env))
	if err != nil {
		return config.Settings{}, fmt.Errorf("invalid environment: %w", err)
	}
	settings.Apply(envOverrides)
	settings.Apply(&appConfig.Flags)

	if err := settings.Validate(); err != nil {
		return config.Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	return settings, nil
}

// Settings returns the resolved settings. This is primarily for testing.
func (a *App) Settings() config.Settings {
	return a.settings
}

// Close releases the resources held by the App.
func (a *App) Close() error {
	a.logger.Debug("Closing app.")
	return a.service.Close()
}
