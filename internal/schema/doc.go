// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package schema defines the shape of a single todo record and turns raw,
// untyped API records into validated Row values.
//
// # Validation
//
// A raw record is decoded into a cty.Value and every known field is checked
// independently, so a single ValidationError reports all offending fields at
// once. Validation is all-or-nothing: either a complete Row is returned or no
// Row at all.
//
//   - userId, id: required whole numbers. Numeric strings are coerced.
//   - title: required string. No coercion from other types.
//   - completed: optional boolean, false when absent. The strings "true" and
//     "false" (and "1" and "0") are coerced. JSON numbers, including 1 and 0,
//     are rejected, so records carrying them are dropped.
//
// Unknown fields are ignored.
package schema
