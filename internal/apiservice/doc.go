// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package apiservice implements the todo export pipeline: fetch raw records
// from the remote API, validate them into schema.Row values, group them by
// id, and write every row to its own CSV file.
//
// Failures are contained at the smallest possible scope. A record that does
// not validate is logged and dropped, a row that cannot be written is logged
// and recorded in the SaveResult, and only transport-level problems abort a
// run.
package apiservice
