package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Loader is the interface for a format-specific settings file loader.
type Loader interface {
	// Load reads the file at path and returns the settings it sets. Fields
	// the file does not mention are left nil.
	Load(ctx context.Context, path string) (*Overrides, error)
}

// LoadFile picks a loader by the file extension of path (".hcl", ".yaml",
// ...) and runs it.
func LoadFile(ctx context.Context, path string, loaders map[string]Loader) (*Overrides, error) {
	ext := strings.ToLower(filepath.Ext(path))
	loader, ok := loaders[ext]
	if !ok {
		known := make([]string, 0, len(loaders))
		for k := range loaders {
			known = append(known, k)
		}
		sort.Strings(known)
		return nil, fmt.Errorf("unsupported settings file '%s': extension must be one of %s", path, strings.Join(known, ", "))
	}

	o, err := loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings file '%s': %w", path, err)
	}
	return o, nil
}
