// Package loader decodes invoices and play catalogs from files.
// Raw genre strings are validated here, before anything reaches the pricing engine.
package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatINI  Format = "ini"
)

// FormatFromPath picks a decoder by file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".ini", ".cfg":
		return FormatINI, nil
	default:
		return "", fmt.Errorf("unsupported file format: %q", path)
	}
}

func open(path string) (io.ReadCloser, Format, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, "", err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, format, nil
}
