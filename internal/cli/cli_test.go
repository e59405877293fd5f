package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/specialistvlad/todocsv/internal/config"
	"github.com/stretchr/testify/require"
)

func TestParse_NoFlagsLeavesOverridesEmpty(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}

	// --- Act ---
	cfg, shouldExit, err := Parse([]string{}, out)

	// --- Assert ---
	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, config.Overrides{}, cfg.Flags, "unset flags must not override other layers")
	require.Empty(t, cfg.ConfigPath)
	require.False(t, cfg.Strict)
	require.NotNil(t, cfg.Environ)
}

func TestParse_Flags(t *testing.T) {
	t.Parallel()

	args := []string{
		"--url", "http://localhost:8080/todos",
		"--path", "out",
		"--override-files=false",
		"--timeout", "12",
		"--debug",
		"--log-level", "WARN",
		"--log-format", "json",
		"--strict",
		"-c", "settings.yaml",
	}

	cfg, shouldExit, err := Parse(args, &bytes.Buffer{})

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.True(t, cfg.Strict)
	require.Equal(t, "settings.yaml", cfg.ConfigPath)

	f := cfg.Flags
	require.Equal(t, "http://localhost:8080/todos", *f.URL)
	require.Equal(t, "out", *f.StoragePath)
	require.False(t, *f.OverrideFiles)
	require.Equal(t, 12*time.Second, *f.Timeout)
	require.True(t, *f.Debug)
	require.Equal(t, "warn", *f.LogLevel)
	require.Equal(t, "json", *f.LogFormat)
}

func TestParse_PositionalSettingsFile(t *testing.T) {
	t.Parallel()

	cfg, _, err := Parse([]string{"settings.hcl"}, &bytes.Buffer{})

	require.NoError(t, err)
	require.Equal(t, "settings.hcl", cfg.ConfigPath)
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{"-h"}, out)

	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "Usage:")
	require.Contains(t, out.String(), "--override-files")
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "unknown flag", args: []string{"--nope"}, wantErr: "unknown flag: --nope"},
		{name: "bad timeout", args: []string{"--timeout", "soon"}, wantErr: "invalid timeout"},
		{name: "bad log level", args: []string{"--log-level", "loud"}, wantErr: "invalid log-level"},
		{name: "bad log format", args: []string{"--log-format", "xml"}, wantErr: "invalid log-format"},
		{name: "bad settings extension", args: []string{"-c", "settings.toml"}, wantErr: "settings file must end in one of"},
		{name: "too many arguments", args: []string{"a.hcl", "b.hcl"}, wantErr: "accepts at most 1 arg"},
		{name: "settings file given twice", args: []string{"-c", "a.hcl", "b.hcl"}, wantErr: "settings file given twice"},
		{name: "bad boolean", args: []string{"--override-files=maybe"}, wantErr: "invalid argument"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			cfg, shouldExit, err := Parse(tc.args, &bytes.Buffer{})

			// --- Assert ---
			require.Nil(t, cfg)
			require.False(t, shouldExit)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			require.Equal(t, 2, exitErr.Code)
			require.Contains(t, exitErr.Message, tc.wantErr)
		})
	}
}
