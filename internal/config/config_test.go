package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults tests that all default values load correctly without any env vars.
func TestLoad_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "10s", cfg.Server.ReadTimeout.String())
	assert.Equal(t, "1m0s", cfg.Server.WriteTimeout.String())
	assert.Equal(t, "30s", cfg.Timeouts.Simulation.String())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "development", cfg.App.Env)

	assert.Empty(t, cfg.Simulation.PropertiesFile, "embedded properties by default")
	assert.Empty(t, cfg.Simulation.GraphFile)
	assert.Empty(t, cfg.Simulation.DataFile)
	assert.True(t, cfg.Simulation.PropertiesFallback)
	assert.Zero(t, cfg.Simulation.RandomSeed)
}

// TestLoad_EnvironmentOverrides tests that environment variables override defaults.
func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnvVars(t)
	dir := t.TempDir()
	props := writeFile(t, dir, "model.properties", "FUEL_COST=15\n")
	graph := writeFile(t, dir, "graph.psv", "SRC|DST|DIST\nA|B|10\n")
	data := writeFile(t, dir, "data.psv", "header\n")

	setEnvVars(t, map[string]string{
		"SERVER_PORT":             "3000",
		"SERVER_READ_TIMEOUT":     "30s",
		"SERVER_WRITE_TIMEOUT":    "2m",
		"TIMEOUT_SIMULATION":      "90s",
		"LOG_LEVEL":               "debug",
		"LOG_FORMAT":              "console",
		"APP_ENV":                 "production",
		"SIM_PROPERTIES_FILE":     props,
		"SIM_GRAPH_FILE":          graph,
		"SIM_DATA_FILE":           data,
		"SIM_PROPERTIES_FALLBACK": "false",
		"SIM_RANDOM_SEED":         "1234",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "30s", cfg.Server.ReadTimeout.String())
	assert.Equal(t, "2m0s", cfg.Server.WriteTimeout.String())
	assert.Equal(t, "1m30s", cfg.Timeouts.Simulation.String())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, props, cfg.Simulation.PropertiesFile)
	assert.Equal(t, graph, cfg.Simulation.GraphFile)
	assert.Equal(t, data, cfg.Simulation.DataFile)
	assert.False(t, cfg.Simulation.PropertiesFallback)
	assert.Equal(t, int64(1234), cfg.Simulation.RandomSeed)
}

// TestLoad_Validation tests that invalid values are rejected and keyed by variable.
func TestLoad_Validation(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{name: "valid port 1", env: map[string]string{"SERVER_PORT": "1"}},
		{name: "valid port 65535", env: map[string]string{"SERVER_PORT": "65535"}},
		{name: "port zero", env: map[string]string{"SERVER_PORT": "0"}, wantErr: "SERVER_PORT"},
		{name: "port negative", env: map[string]string{"SERVER_PORT": "-1"}, wantErr: "SERVER_PORT"},
		{name: "port too high", env: map[string]string{"SERVER_PORT": "65536"}, wantErr: "SERVER_PORT"},
		{name: "zero read timeout", env: map[string]string{"SERVER_READ_TIMEOUT": "0s"}, wantErr: "SERVER_READ_TIMEOUT: must be positive"},
		{name: "negative write timeout", env: map[string]string{"SERVER_WRITE_TIMEOUT": "-5s"}, wantErr: "SERVER_WRITE_TIMEOUT"},
		{name: "zero simulation timeout", env: map[string]string{"TIMEOUT_SIMULATION": "0s"}, wantErr: "TIMEOUT_SIMULATION"},
		{name: "unknown log level", env: map[string]string{"LOG_LEVEL": "verbose"}, wantErr: "LOG_LEVEL"},
		{name: "unknown log format", env: map[string]string{"LOG_FORMAT": "xml"}, wantErr: "LOG_FORMAT"},
		{name: "unknown app env", env: map[string]string{"APP_ENV": "testing"}, wantErr: "APP_ENV"},
		{name: "negative seed", env: map[string]string{"SIM_RANDOM_SEED": "-3"}, wantErr: "SIM_RANDOM_SEED"},
		{
			name:    "missing graph file",
			env:     map[string]string{"SIM_GRAPH_FILE": filepath.Join(dir, "nope.psv")},
			wantErr: "SIM_GRAPH_FILE: file does not exist",
		},
		{
			name:    "data file is a directory",
			env:     map[string]string{"SIM_DATA_FILE": dir},
			wantErr: "SIM_DATA_FILE: must be a file",
		},
		{
			name: "missing properties file with fallback",
			env:  map[string]string{"SIM_PROPERTIES_FILE": filepath.Join(dir, "nope.properties")},
		},
		{
			name: "missing properties file without fallback",
			env: map[string]string{
				"SIM_PROPERTIES_FILE":     filepath.Join(dir, "nope.properties"),
				"SIM_PROPERTIES_FALLBACK": "false",
			},
			wantErr: "SIM_PROPERTIES_FILE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, tt.env)

			cfg, err := Load()
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validate config")
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Nil(t, cfg)
		})
	}
}

// TestLoad_ReportsEveryProblem tests that all invalid variables appear in one error.
func TestLoad_ReportsEveryProblem(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{
		"SERVER_PORT": "0",
		"LOG_LEVEL":   "loud",
	})

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SERVER_PORT")
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

// TestLoad_ParseError tests that malformed values fail before validation.
func TestLoad_ParseError(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"TIMEOUT_SIMULATION": "soon"})

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

// TestMustLoad tests MustLoad with valid and invalid config.
func TestMustLoad(t *testing.T) {
	clearEnvVars(t)
	assert.NotPanics(t, func() {
		assert.NotNil(t, MustLoad())
	})

	setEnvVars(t, map[string]string{"SERVER_PORT": "0"})
	assert.Panics(t, func() {
		MustLoad()
	})
}

// TestConfig_Environment tests the IsDevelopment and IsProduction helpers.
func TestConfig_Environment(t *testing.T) {
	tests := []struct {
		env         string
		development bool
		production  bool
	}{
		{"development", true, false},
		{"staging", false, false},
		{"production", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"APP_ENV": tt.env})

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.development, cfg.IsDevelopment())
			assert.Equal(t, tt.production, cfg.IsProduction())
		})
	}
}

// Helper functions

var configEnvVars = []string{
	"SERVER_PORT",
	"SERVER_READ_TIMEOUT",
	"SERVER_WRITE_TIMEOUT",
	"TIMEOUT_SIMULATION",
	"LOG_LEVEL",
	"LOG_FORMAT",
	"APP_ENV",
	"SIM_PROPERTIES_FILE",
	"SIM_GRAPH_FILE",
	"SIM_DATA_FILE",
	"SIM_PROPERTIES_FALLBACK",
	"SIM_RANDOM_SEED",
}

// clearEnvVars unsets all config-related environment variables for the test.
// t.Setenv records the previous value so it is restored afterwards.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, v := range configEnvVars {
		t.Setenv(v, "")
		require.NoError(t, os.Unsetenv(v))
	}
}

// setEnvVars sets multiple environment variables for the test.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
