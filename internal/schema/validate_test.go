// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate_AcceptsWellFormedRecords(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		record   map[string]any
		expected Row
	}{
		{
			name:     "All fields present",
			record:   map[string]any{"userId": 1, "id": 1, "title": "delectus aut autem", "completed": false},
			expected: Row{UserID: 1, ID: 1, Title: "delectus aut autem", Completed: false},
		},
		{
			name:     "Completed defaults to false",
			record:   map[string]any{"userId": 3, "id": 44, "title": "missing flag"},
			expected: Row{UserID: 3, ID: 44, Title: "missing flag"},
		},
		{
			name:     "Completed true",
			record:   map[string]any{"userId": 2, "id": 21, "title": "done", "completed": true},
			expected: Row{UserID: 2, ID: 21, Title: "done", Completed: true},
		},
		{
			name:     "Numeric strings are coerced",
			record:   map[string]any{"userId": "7", "id": "70", "title": "coerced"},
			expected: Row{UserID: 7, ID: 70, Title: "coerced"},
		},
		{
			name:     "Boolean strings are coerced",
			record:   map[string]any{"userId": 1, "id": 2, "title": "x", "completed": "true"},
			expected: Row{UserID: 1, ID: 2, Title: "x", Completed: true},
		},
		{
			name:     "Whole floats are accepted",
			record:   map[string]any{"userId": 1.0, "id": 5.0, "title": "float ids"},
			expected: Row{UserID: 1, ID: 5, Title: "float ids"},
		},
		{
			name:     "Unknown fields are ignored",
			record:   map[string]any{"userId": 1, "id": 9, "title": "extra", "priority": "high"},
			expected: Row{UserID: 1, ID: 9, Title: "extra"},
		},
		{
			name:     "Empty title is a valid string",
			record:   map[string]any{"userId": 1, "id": 10, "title": ""},
			expected: Row{UserID: 1, ID: 10, Title: ""},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			row, err := Validate(tc.record)

			require.NoError(t, err)
			require.Equal(t, tc.expected, row)
		})
	}
}

func TestValidate_RejectsMalformedRecords(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		record         map[string]any
		expectedFields []string
	}{
		{
			name:           "Missing userId",
			record:         map[string]any{"id": 1, "title": "t"},
			expectedFields: []string{FieldUserID},
		},
		{
			name:           "Missing id",
			record:         map[string]any{"userId": 1, "title": "t"},
			expectedFields: []string{FieldID},
		},
		{
			name:           "Missing title",
			record:         map[string]any{"userId": 1, "id": 1},
			expectedFields: []string{FieldTitle},
		},
		{
			name:           "Every required field missing",
			record:         map[string]any{"completed": true},
			expectedFields: []string{FieldUserID, FieldID, FieldTitle},
		},
		{
			name:           "Non numeric id",
			record:         map[string]any{"userId": 1, "id": "abc", "title": "t"},
			expectedFields: []string{FieldID},
		},
		{
			name:           "Fractional id",
			record:         map[string]any{"userId": 1, "id": 1.5, "title": "t"},
			expectedFields: []string{FieldID},
		},
		{
			name:           "Boolean userId",
			record:         map[string]any{"userId": true, "id": 1, "title": "t"},
			expectedFields: []string{FieldUserID},
		},
		{
			name:           "Numeric title is not coerced",
			record:         map[string]any{"userId": 1, "id": 1, "title": 42},
			expectedFields: []string{FieldTitle},
		},
		{
			name:           "Null title",
			record:         map[string]any{"userId": 1, "id": 1, "title": nil},
			expectedFields: []string{FieldTitle},
		},
		{
			name:           "Null completed",
			record:         map[string]any{"userId": 1, "id": 1, "title": "t", "completed": nil},
			expectedFields: []string{FieldCompleted},
		},
		{
			name:           "Numeric completed one",
			record:         map[string]any{"userId": 1, "id": 1, "title": "t", "completed": 1},
			expectedFields: []string{FieldCompleted},
		},
		{
			name:           "Numeric completed zero",
			record:         map[string]any{"userId": 1, "id": 1, "title": "t", "completed": 0},
			expectedFields: []string{FieldCompleted},
		},
		{
			name:           "Unparseable completed",
			record:         map[string]any{"userId": 1, "id": 1, "title": "t", "completed": "maybe"},
			expectedFields: []string{FieldCompleted},
		},
		{
			name:           "Nested object as id",
			record:         map[string]any{"userId": 1, "id": map[string]any{"v": 1}, "title": "t"},
			expectedFields: []string{FieldID},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			row, err := Validate(tc.record)

			require.Error(t, err)
			require.Equal(t, Row{}, row, "no partial row may be returned")

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected a *ValidationError, got %T", err)
			require.Equal(t, tc.expectedFields, verr.Fields())
		})
	}
}

func TestValidateJSON_RecordMustBeObject(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{`[1,2]`, `42`, `"todo"`, `null`} {
		_, err := ValidateJSON([]byte(raw))

		var verr *ValidationError
		require.True(t, errors.As(err, &verr), "input %s", raw)
		require.Equal(t, []string{""}, verr.Fields())
		require.Contains(t, verr.Error(), "record must be an object")
	}
}

func TestValidateJSON_InvalidJSON(t *testing.T) {
	t.Parallel()

	_, err := ValidateJSON([]byte(`{"userId": 1,`))

	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid JSON")
}

func TestValidationError_Message(t *testing.T) {
	t.Parallel()

	_, err := Validate(map[string]any{"title": "t"})

	require.EqualError(t, err, "2 validation errors for Row: userId: field required; id: field required")
}

func TestRow_Values(t *testing.T) {
	t.Parallel()

	row := Row{UserID: 4, ID: 77, Title: "write, with comma", Completed: true}

	require.Equal(t, []string{"4", "77", "write, with comma", "True"}, row.Values())
	require.Equal(t, "False", FormatBool(false))
	require.Equal(t, []string{"userId", "id", "title", "completed"}, FieldNames)
}
