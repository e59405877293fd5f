// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package apiservice

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single fetch from the API.
const DefaultTimeout = 30 * time.Second

// Config is everything the Service needs to know about where to read from
// and where to write to.
type Config struct {
	// URL of the endpoint returning a JSON array of todo records.
	URL string
	// Path is the default directory CSV files are written to.
	Path string
	// OverrideFiles allows existing CSV files to be replaced.
	OverrideFiles bool
	// Timeout for the fetch request. Zero means DefaultTimeout.
	Timeout time.Duration
}

// Service fetches todo records and persists them as CSV files.
type Service struct {
	cfg    Config
	client *http.Client
	logger *slog.Logger
	now    func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithLogger sets the logger the Service reports through.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithHTTPClient replaces the default HTTP client. The client's own timeout
// is left untouched.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		if client != nil {
			s.client = client
		}
	}
}

// WithClock replaces the clock used to date output files.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a Service. Without options it logs nowhere, uses a private HTTP
// client with cfg.Timeout and dates files with the local wall clock.
func New(cfg Config, opts ...Option) *Service {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	s := &Service{
		cfg:    cfg,
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = newHTTPClient(cfg.Timeout)
	}
	return s
}

// Config returns the configuration the Service was built with.
func (s *Service) Config() Config {
	return s.cfg
}

// Run fetches all records and saves them to the configured path. Fetch
// errors are returned as is; per-row write failures are only reported in the
// result.
func (s *Service) Run(ctx context.Context) (*SaveResult, error) {
	s.logger.Info("Running API service.", "url", s.cfg.URL, "path", s.cfg.Path)

	rows, err := s.FetchData(ctx)
	if err != nil {
		return nil, err
	}
	return s.SaveData(rows, ""), nil
}

// Close releases idle connections held by the HTTP client.
func (s *Service) Close() error {
	s.client.CloseIdleConnections()
	return nil
}
