package testutil

import (
	_ "embed"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// todosJSON mirrors a full response of the public demo endpoint: 200 items,
// ten users with twenty todos each.
//
//go:embed testdata/todos_01.json
var todosJSON []byte

// TodoCount is the number of records in the fixture.
const TodoCount = 200

// TodosJSON returns a copy of the 200-item fixture body.
func TodosJSON() []byte {
	return append([]byte(nil), todosJSON...)
}

// TodoRecords returns the fixture decoded into untyped records.
func TodoRecords(t *testing.T) []map[string]any {
	t.Helper()

	var records []map[string]any
	require.NoError(t, json.Unmarshal(todosJSON, &records))
	return records
}

// MustJSON encodes v or fails the test.
func MustJSON(t *testing.T, v any) []byte {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}
