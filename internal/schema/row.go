// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package schema

import (
	"strconv"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Field names as they appear in API records and in the CSV header.
const (
	FieldUserID    = "userId"
	FieldID        = "id"
	FieldTitle     = "title"
	FieldCompleted = "completed"
)

// FieldNames lists the Row fields in CSV column order.
var FieldNames = []string{FieldUserID, FieldID, FieldTitle, FieldCompleted}

// Row is one validated todo item. Rows are only produced by Validate and
// ValidateJSON and are passed around by value.
type Row struct {
	UserID    int64  `cty:"userId" json:"userId"`
	ID        int64  `cty:"id" json:"id"`
	Title     string `cty:"title" json:"title"`
	Completed bool   `cty:"completed" json:"completed"`
}

// rowType is the cty object type a normalized record must have before it is
// bound to a Row.
var rowType = mustImpliedType(Row{})

func mustImpliedType(v any) cty.Type {
	ty, err := gocty.ImpliedType(v)
	if err != nil {
		panic(err)
	}
	return ty
}

// Values returns the row's fields rendered for CSV, in FieldNames order.
// Booleans are written as True or False.
func (r Row) Values() []string {
	return []string{
		strconv.FormatInt(r.UserID, 10),
		strconv.FormatInt(r.ID, 10),
		r.Title,
		FormatBool(r.Completed),
	}
}

// FormatBool renders b the way the CSV files store it.
func FormatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
