// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package apiservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/specialistvlad/todocsv/internal/schema"
)

// ErrNotArray is returned when the API body is valid JSON but not an array.
var ErrNotArray = errors.New("response body is not a JSON array")

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status from %s: %s", e.URL, e.Status)
}

// FetchData issues a single GET to the configured URL and validates every
// record of the returned array. Records that fail validation are logged and
// skipped. Errors are returned only when the request itself fails or the
// body cannot be read as a JSON array.
//
// Any non-2xx status is an error (*StatusError) and its body is never read,
// so a 404 answered with `{}` fails the fetch instead of yielding no rows.
func (s *Service) FetchData(ctx context.Context) ([]schema.Row, error) {
	s.logger.Debug("Fetching data from the API.", "url", s.cfg.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	s.logger.Debug("Received HTTP response.", "status", resp.Status)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{URL: s.cfg.URL, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	records, err := decodeRecords(json.NewDecoder(resp.Body))
	if err != nil {
		return nil, err
	}

	rows := make([]schema.Row, 0, len(records))
	for i, raw := range records {
		row, err := schema.ValidateJSON(raw)
		if err != nil {
			s.logger.Error("Failed to parse row from API data.", "index", i, "error", err)
			continue
		}
		rows = append(rows, row)
	}

	s.logger.Debug("Fetched rows.", "count", len(rows), "rejected", len(records)-len(rows))
	return rows, nil
}

// decodeRecords reads exactly one JSON array and returns its elements
// undecoded, so each can be validated on its own. Anything but whitespace
// after the array makes the whole body invalid.
func decodeRecords(dec *json.Decoder) ([]json.RawMessage, error) {
	var body json.RawMessage
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(body, &records); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, ErrNotArray
		}
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}
	if records == nil {
		// A literal null decodes without error.
		return nil, ErrNotArray
	}
	return records, nil
}
