// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package apiservice

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/specialistvlad/todocsv/internal/schema"
)

// dateLayout is the YYYY_MM_DD prefix of every output file name.
const dateLayout = "2006_01_02"

// ErrFileExists is reported for a row whose target file already exists while
// overriding is disabled.
var ErrFileExists = errors.New("file already exists and overriding is disabled")

// FileName returns the name of the CSV file holding the row with the given
// id, for a run dated stamp.
func FileName(stamp string, id int64) string {
	return fmt.Sprintf("%s_%d.csv", stamp, id)
}

// SaveData writes every row to its own CSV file inside dir, or inside the
// configured path when dir is empty. Rows are processed independently: a
// failed row is logged, recorded in the result and skipped.
func (s *Service) SaveData(rows []schema.Row, dir string) *SaveResult {
	if dir == "" {
		dir = s.cfg.Path
	}
	s.logger.Debug("Saving data rows into storage path.", "count", len(rows), "path", dir)

	result := &SaveResult{Dir: dir}
	for id, group := range GroupByID(rows) {
		if len(group) > 1 {
			result.DuplicateIDs = append(result.DuplicateIDs, id)
		}
	}
	slices.Sort(result.DuplicateIDs)
	if len(result.DuplicateIDs) > 0 {
		s.logger.Warn("Rows share an id; later rows target the same file.", "ids", result.DuplicateIDs)
	}

	stamp := s.now().Format(dateLayout)
	for _, row := range rows {
		path := filepath.Join(dir, FileName(stamp, row.ID))
		if err := s.writeRow(path, row); err != nil {
			s.logger.Error("Failed to save file.", "id", row.ID, "path", path, "error", err)
			result.Failures = append(result.Failures, SaveFailure{ID: row.ID, Path: path, Err: err})
			continue
		}
		result.Saved = append(result.Saved, path)
	}

	s.logger.Info("Finished saving files.", "saved", result.SavedCount(), "failed", result.FailedCount())
	return result
}

// writeRow writes the header and the row to path. The existence check and
// the creation are a single O_EXCL open when overriding is disabled.
func (s *Service) writeRow(path string, row schema.Row) (err error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !s.cfg.OverrideFiles {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return ErrFileExists
		}
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			// Never leave a half-written file behind.
			_ = os.Remove(path)
		}
	}()

	w := csv.NewWriter(f)
	w.UseCRLF = true
	if err := w.Write(schema.FieldNames); err != nil {
		return err
	}
	if err := w.Write(row.Values()); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
