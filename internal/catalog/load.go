package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads a catalog from path, choosing the format by file extension:
// .yaml/.yml documents, .db/.sqlite/.sqlite3 databases or .xlsx workbooks.
// An empty path returns the built-in catalog.
func Load(ctx context.Context, path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		return ParseYAML(data)
	case ".db", ".sqlite", ".sqlite3":
		return LoadSQLite(ctx, path)
	case ".xlsx":
		return LoadXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q (want .yaml, .db or .xlsx)", ext)
	}
}
