// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package apiservice

// SaveFailure records a row that could not be written.
type SaveFailure struct {
	ID   int64
	Path string
	Err  error
}

// SaveResult is the outcome of a SaveData call. Failed rows never abort the
// call, so this is the only place partial failures become visible to the
// caller.
type SaveResult struct {
	// Dir is the directory the files were written to.
	Dir string
	// Saved lists the written file paths in row order.
	Saved []string
	// Failures lists the rows that were not written, in row order.
	Failures []SaveFailure
	// DuplicateIDs holds ids carried by more than one row of the batch,
	// ascending. Later rows target the same file as earlier ones.
	DuplicateIDs []int64
}

// SavedCount is the number of files written.
func (r *SaveResult) SavedCount() int { return len(r.Saved) }

// FailedCount is the number of rows that were not written.
func (r *SaveResult) FailedCount() int { return len(r.Failures) }

// Total is the number of rows processed.
func (r *SaveResult) Total() int { return len(r.Saved) + len(r.Failures) }

// OK reports whether every row was written.
func (r *SaveResult) OK() bool { return len(r.Failures) == 0 }
