package testutil

import (
	"encoding/csv"
	"os"
	"testing"

	"github.com/specialistvlad/todocsv/internal/fsutil"
	"github.com/stretchr/testify/require"
)

// ReadCSV returns all records of the CSV file at path.
func ReadCSV(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	lines, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return lines
}

// CSVFiles lists the CSV files directly inside dir.
func CSVFiles(t *testing.T, dir string) []string {
	t.Helper()

	files, err := fsutil.FindFilesByExtension(dir, ".csv")
	require.NoError(t, err)
	return files
}
