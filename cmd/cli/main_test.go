package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/todocsv/internal/app"
	"github.com/specialistvlad/todocsv/internal/cli"
	"github.com/specialistvlad/todocsv/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	srv := testutil.NewTodoServer(t)
	dir := filepath.Join(t.TempDir(), "storage")
	args := []string{"--url", srv.URL, "--path", dir}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, args)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, testutil.CSVFiles(t, dir), testutil.TodoCount)
	require.Contains(t, out.String(), "Export summary")
	require.Contains(t, out.String(), "saved:  200")
}

func TestRun_SettingsFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	srv := testutil.NewTodoServer(t)
	tempDir := t.TempDir()
	dir := filepath.Join(tempDir, "from-hcl")
	settings := `
debug = false

api_service {
  url  = "` + srv.URL + `"
  path = "` + filepath.ToSlash(dir) + `"
}

log {
  format = "json"
}
`
	settingsPath := filepath.Join(tempDir, "settings.hcl")
	require.NoError(t, os.WriteFile(settingsPath, []byte(settings), 0o600))
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, []string{"-c", settingsPath})

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, testutil.CSVFiles(t, dir), testutil.TodoCount)
	require.Contains(t, out.String(), `"msg":"🏁 Export finished."`)
}

func TestRun_StrictFailure(t *testing.T) {
	t.Parallel()

	srv := testutil.NewTodoServer(t)
	dir := t.TempDir()
	args := []string{"--url", srv.URL, "--path", dir, "--override-files=false", "--strict"}

	require.NoError(t, run(context.Background(), &bytes.Buffer{}, args))

	out := &bytes.Buffer{}
	err := run(context.Background(), out, args)

	require.ErrorIs(t, err, app.ErrPartialFailure)
	require.Contains(t, out.String(), "failed: 200")
}

func TestRun_StartupError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	invalidHCL := `
		api_service {
			url = "http://localhost"
		// Missing closing brace here
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(invalidHCL), 0o600), "failed to set up test file")

	// --- Act ---
	err := run(context.Background(), &bytes.Buffer{}, []string{filePath})

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "application startup failed")
	require.Contains(t, err.Error(), "failed to parse HCL file")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "unknown flag: --this-is-not-a-valid-flag")
}
