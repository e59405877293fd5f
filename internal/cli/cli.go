package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/specialistvlad/todocsv/internal/app"
	"github.com/specialistvlad/todocsv/internal/config"
	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// flagValues collects the raw flag values before they are turned into
// overrides. Only flags the user actually set become overrides, so that
// defaults here never mask the settings file or the environment.
type flagValues struct {
	configPath    string
	url           string
	path          string
	overrideFiles bool
	timeout       string
	debug         bool
	logLevel      string
	logFormat     string
	strict        bool
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	var (
		v      flagValues
		result *app.Config
	)

	cmd := &cobra.Command{
		Use:   "todocsv [SETTINGS_FILE]",
		Short: "Export todo records from an HTTP API into CSV files",
		Long: `todocsv fetches the todo list from a JSON API, validates every record and
writes one CSV file per record into the storage directory.

Settings are layered: built-in defaults, then the settings file (.hcl, .yaml
or .yml), then APISERVICE_* / LOG_* / DEBUG environment variables, then flags.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, positional []string) error {
			if len(positional) == 1 {
				if v.configPath != "" && v.configPath != positional[0] {
					return fmt.Errorf("settings file given twice: %q and %q", v.configPath, positional[0])
				}
				v.configPath = positional[0]
			}

			overrides, err := v.overrides(cmd)
			if err != nil {
				return err
			}

			cfg, err := app.NewConfig(app.Config{
				ConfigPath: v.configPath,
				Flags:      *overrides,
				Strict:     v.strict,
			})
			if err != nil {
				return err
			}
			result = cfg
			return nil
		},
	}
	cmd.SetOut(output)
	cmd.SetErr(output)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	flags := cmd.Flags()
	flags.StringVarP(&v.configPath, "config", "c", "", "Path to a settings file (.hcl, .yaml or .yml).")
	flags.StringVar(&v.url, "url", config.DefaultURL, "URL of the todo API.")
	flags.StringVar(&v.path, "path", config.DefaultStoragePath, "Directory the CSV files are written to.")
	flags.BoolVar(&v.overrideFiles, "override-files", true, "Overwrite existing CSV files.")
	flags.StringVar(&v.timeout, "timeout", config.DefaultTimeout.String(), "HTTP timeout, e.g. 30s or a number of seconds.")
	flags.BoolVar(&v.debug, "debug", false, "Enable debug logging.")
	flags.StringVar(&v.logLevel, "log-level", config.DefaultLogLevel, "Logging level. Options: "+strings.Join(config.LogLevels, ", ")+".")
	flags.StringVar(&v.logFormat, "log-format", config.DefaultLogFormat, "Log output format. Options: "+strings.Join(config.LogFormats, ", ")+".")
	flags.BoolVar(&v.strict, "strict", false, "Exit with an error when any record could not be saved.")

	if err := cmd.Execute(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if result == nil {
		// Help was printed.
		return nil, true, nil
	}
	return result, false, nil
}

func (v *flagValues) overrides(cmd *cobra.Command) (*config.Overrides, error) {
	changed := cmd.Flags().Changed
	o := &config.Overrides{}

	if changed("url") {
		o.URL = &v.url
	}
	if changed("path") {
		o.StoragePath = &v.path
	}
	if changed("override-files") {
		o.OverrideFiles = &v.overrideFiles
	}
	if changed("debug") {
		o.Debug = &v.debug
	}
	if changed("timeout") {
		d, err := config.ParseDuration(v.timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout: %w", err)
		}
		o.Timeout = &d
	}
	if changed("log-level") {
		level := strings.ToLower(v.logLevel)
		if !slices.Contains(config.LogLevels, level) {
			return nil, fmt.Errorf("invalid log-level: must be one of %s", strings.Join(config.LogLevels, ", "))
		}
		o.LogLevel = &level
	}
	if changed("log-format") {
		format := strings.ToLower(v.logFormat)
		if !slices.Contains(config.LogFormats, format) {
			return nil, fmt.Errorf("invalid log-format: must be one of %s", strings.Join(config.LogFormats, ", "))
		}
		o.LogFormat = &format
	}
	return o, nil
}
