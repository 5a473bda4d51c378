// Package defaults bundles the model settings, route graph and example flight data
// the simulator uses when no file is configured.
package defaults

import (
	"context"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/airline-sim/airline-route-simulator/internal/infrastructure/retry"
)

// Bundled file names.
const (
	PropertiesFile = "default.properties"
	GraphFile      = "default-graph"
	DataFile       = "default-data"
)

//go:embed default.properties default-graph default-data
var files embed.FS

// Open opens path, or the bundled file name when path is empty.
// Transient failures to open path are retried with retry.FileConfig.
func Open(ctx context.Context, path, name string) (io.ReadCloser, error) {
	if path == "" {
		return files.Open(name)
	}
	return retry.Do(ctx, func() (io.ReadCloser, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		return f, nil
	}, retry.FileConfig)
}

// Describe names the file Open would read, for logs.
func Describe(path, name string) string {
	if path == "" {
		return "embedded:" + name
	}
	return path
}

// Read returns the content of a bundled file.
func Read(name string) ([]byte, error) {
	return files.ReadFile(name)
}

// WriteTo copies every bundled file into dir, creating it if needed.
// Existing files are overwritten.
func WriteTo(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create defaults directory: %w", err)
	}

	written := make([]string, 0, 3)
	for _, name := range []string{PropertiesFile, GraphFile, DataFile} {
		data, err := files.ReadFile(name)
		if err != nil {
			return written, err
		}
		dst := filepath.Join(dir, name)
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", dst, err)
		}
		written = append(written, dst)
	}
	return written, nil
}
