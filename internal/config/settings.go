package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Default values, matching the public demo endpoint.
const (
	DefaultURL         = "https://jsonplaceholder.typicode.com/todos/"
	DefaultStoragePath = "storage"
	DefaultTimeout     = 30 * time.Second
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
)

// LogLevels and LogFormats list the accepted logging options.
var (
	LogLevels  = []string{"debug", "info", "warn", "error"}
	LogFormats = []string{"text", "json"}
)

// Settings is the resolved configuration of a run. It is built once at
// startup and handed to the components that need it.
type Settings struct {
	URL           string
	StoragePath   string
	OverrideFiles bool
	Debug         bool
	Timeout       time.Duration
	LogLevel      string
	LogFormat     string
}

// Overrides is one configuration layer. Nil fields are not set by the layer.
type Overrides struct {
	URL           *string
	StoragePath   *string
	OverrideFiles *bool
	Debug         *bool
	Timeout       *time.Duration
	LogLevel      *string
	LogFormat     *string
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		URL:           DefaultURL,
		StoragePath:   DefaultStoragePath,
		OverrideFiles: true,
		Debug:         false,
		Timeout:       DefaultTimeout,
		LogLevel:      DefaultLogLevel,
		LogFormat:     DefaultLogFormat,
	}
}

// Apply copies every field set in o onto s. A nil o is a no-op.
func (s *Settings) Apply(o *Overrides) {
	if o == nil {
		return
	}
	if o.URL != nil {
		s.URL = *o.URL
	}
	if o.StoragePath != nil {
		s.StoragePath = *o.StoragePath
	}
	if o.OverrideFiles != nil {
		s.OverrideFiles = *o.OverrideFiles
	}
	if o.Debug != nil {
		s.Debug = *o.Debug
	}
	if o.Timeout != nil {
		s.Timeout = *o.Timeout
	}
	if o.LogLevel != nil {
		s.LogLevel = strings.ToLower(*o.LogLevel)
	}
	if o.LogFormat != nil {
		s.LogFormat = strings.ToLower(*o.LogFormat)
	}
}

// EffectiveLogLevel is the log level to use. Debug mode always wins.
func (s Settings) EffectiveLogLevel() string {
	if s.Debug {
		return "debug"
	}
	return s.LogLevel
}

// Validate reports every invalid field at once.
func (s Settings) Validate() error {
	var errs []error

	u, err := url.Parse(s.URL)
	switch {
	case s.URL == "":
		errs = append(errs, errors.New("url is required"))
	case err != nil:
		errs = append(errs, fmt.Errorf("url is invalid: %w", err))
	case u.Scheme != "http" && u.Scheme != "https":
		errs = append(errs, fmt.Errorf("url must use http or https, got %q", s.URL))
	case u.Host == "":
		errs = append(errs, fmt.Errorf("url must include a host, got %q", s.URL))
	}

	if s.StoragePath == "" {
		errs = append(errs, errors.New("storage path is required"))
	}
	if s.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", s.Timeout))
	}
	if !oneOf(s.LogLevel, LogLevels) {
		errs = append(errs, fmt.Errorf("log level must be one of %s, got %q", strings.Join(LogLevels, ", "), s.LogLevel))
	}
	if !oneOf(s.LogFormat, LogFormats) {
		errs = append(errs, fmt.Errorf("log format must be one of %s, got %q", strings.Join(LogFormats, ", "), s.LogFormat))
	}

	return errors.Join(errs...)
}

func oneOf(v string, options []string) bool {
	for _, o := range options {
		if v == o {
			return true
		}
	}
	return false
}

// ParseDuration accepts Go duration strings ("30s", "1m") and bare numbers,
// which are read as seconds.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		return time.Duration(secs * float64(time.Second)), nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return d, nil
}

// ParseBool accepts the usual spellings of a boolean flag: true/false,
// 1/0, yes/no and on/off, case-insensitively.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "t", "yes", "y", "on":
		return true, nil
	case "0", "false", "f", "no", "n", "off":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}
