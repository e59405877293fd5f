// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It parses a settings file, evaluates its expressions against a
// context exposing the process environment, and translates the result into
// config.Overrides.
package hcl
