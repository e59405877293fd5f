// Package app contains the core application logic. It resolves the settings
// of a run, builds the logger and the API service from them, and drives the
// fetch-and-save pipeline, decoupled from any specific entrypoint like a CLI.
package app
