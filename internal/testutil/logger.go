package testutil

import (
	"log/slog"
	"os"
	"testing"
)

// NewLogger returns a debug-level text logger writing into a buffer the test
// can inspect. Set TODOCSV_TEST_LOGS=true to dump the buffer after the test.
func NewLogger(t *testing.T) (*slog.Logger, *SafeBuffer) {
	t.Helper()

	buf := &SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	t.Cleanup(func() {
		if os.Getenv("TODOCSV_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), buf.String())
		}
	})
	return logger, buf
}
