// Package properties loads model settings from a KEY=VALUE properties file or a flat YAML map.
package properties

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/airline-sim/airline-route-simulator/internal/adapter/provider/defaults"
	"github.com/airline-sim/airline-route-simulator/internal/domain"
)

// Adapter reads model settings. An empty path reads the bundled defaults.
type Adapter struct {
	filePath string
	fallback bool
	log      zerolog.Logger
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithFallback makes the adapter use the bundled defaults when the configured file
// cannot be opened or parsed.
func WithFallback() Option {
	return func(a *Adapter) {
		a.fallback = true
	}
}

// NewAdapter creates a settings adapter.
func NewAdapter(filePath string, log zerolog.Logger, opts ...Option) *Adapter {
	a := &Adapter{
		filePath: filePath,
		log:      log.With().Str("source", defaults.Describe(filePath, defaults.PropertiesFile)).Logger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Name identifies the file being read.
func (a *Adapter) Name() string {
	return defaults.Describe(a.filePath, defaults.PropertiesFile)
}

// LoadSettings implements domain.SettingsSource. Files ending in .yaml or .yml are decoded
// as YAML; everything else is read as KEY=VALUE lines with # comments.
func (a *Adapter) LoadSettings(ctx context.Context) (domain.Settings, error) {
	if err := ctx.Err(); err != nil {
		return domain.Settings{}, err
	}

	values, err := a.read(ctx, a.filePath)
	if err != nil {
		if !a.fallback || a.filePath == "" {
			return domain.Settings{}, err
		}
		a.log.Warn().Err(err).Msg("unable to load properties file, reverting to defaults")
		if values, err = a.read(ctx, ""); err != nil {
			return domain.Settings{}, err
		}
	}

	a.log.Debug().Int("keys", len(values)).Msg("properties loaded")
	return domain.NewSettings(values), nil
}

func (a *Adapter) read(ctx context.Context, path string) (map[string]string, error) {
	f, err := defaults.Open(ctx, path, defaults.PropertiesFile)
	if err != nil {
		return nil, fmt.Errorf("open properties file: %w", err)
	}
	defer f.Close()

	values, err := Parse(f, path)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", defaults.Describe(path, defaults.PropertiesFile), err)
	}
	return values, nil
}

// Parse decodes settings from r. The format is picked from name's extension.
func Parse(r io.Reader, name string) (map[string]string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return parseYAML(r)
	default:
		return godotenv.Parse(r)
	}
}

func parseYAML(r io.Reader) (map[string]string, error) {
	var raw map[string]yaml.Node
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return map[string]string{}, nil
		}
		return nil, err
	}

	values := make(map[string]string, len(raw))
	for key, node := range raw {
		if node.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("key %s: expected a scalar value", key)
		}
		values[key] = node.Value
	}
	return values, nil
}

var _ domain.SettingsSource = (*Adapter)(nil)
