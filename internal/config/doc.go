// Package config defines the format-agnostic settings model for the
// application, the Loader interface for reading settings files, and the
// environment layer.
//
// Settings are resolved in layers, each one overriding the previous:
// built-in defaults, a settings file, environment variables and finally
// command-line flags. Every layer is expressed as an Overrides value so the
// layers stay independent of the format they were read from. Concrete file
// formats other than YAML, such as HCL, are provided in separate packages.
package config
