package config

import (
	"errors"
	"fmt"
	"strings"
)

// Environment variables read by FromEnv.
const (
	EnvURL           = "APISERVICE_URL"
	EnvStoragePath   = "APISERVICE_PATH"
	EnvOverrideFiles = "APISERVICE_OVERRIDE_FILES"
	EnvTimeout       = "APISERVICE_TIMEOUT"
	EnvDebug         = "DEBUG"
	EnvLogLevel      = "LOG_LEVEL"
	EnvLogFormat     = "LOG_FORMAT"
)

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ParseEnviron turns KEY=value pairs, as returned by os.Environ, into a map.
// Malformed pairs are skipped; later pairs win.
func ParseEnviron(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, pair := range environ {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = v
	}
	return env
}

// MapLookup returns a LookupFunc reading from env.
func MapLookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

// FromEnv reads the environment layer through lookup. Unset variables leave
// their field nil; malformed values are reported together.
func FromEnv(lookup LookupFunc) (*Overrides, error) {
	o := &Overrides{}
	if lookup == nil {
		return o, nil
	}
	var errs []error

	if v, ok := lookup(EnvURL); ok {
		o.URL = &v
	}
	if v, ok := lookup(EnvStoragePath); ok {
		o.StoragePath = &v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		o.LogLevel = &v
	}
	if v, ok := lookup(EnvLogFormat); ok {
		o.LogFormat = &v
	}
	if v, ok := lookup(EnvOverrideFiles); ok {
		b, err := ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvOverrideFiles, err))
		} else {
			o.OverrideFiles = &b
		}
	}
	if v, ok := lookup(EnvDebug); ok {
		b, err := ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvDebug, err))
		} else {
			o.Debug = &b
		}
	}
	if v, ok := lookup(EnvTimeout); ok {
		d, err := ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvTimeout, err))
		} else {
			o.Timeout = &d
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return o, nil
}
