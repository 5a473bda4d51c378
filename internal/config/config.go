// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Timeouts   TimeoutConfig
	Logging    LoggingConfig
	App        AppConfig
	Simulation SimulationConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`
}

// TimeoutConfig holds timeout settings for simulation requests.
type TimeoutConfig struct {
	// Simulation bounds a single run or comparison started over HTTP
	Simulation time.Duration `env:"TIMEOUT_SIMULATION" envDefault:"30s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// SimulationConfig points the simulator at its input files.
// An empty path selects the embedded default for that file.
type SimulationConfig struct {
	PropertiesFile string `env:"SIM_PROPERTIES_FILE"`
	GraphFile      string `env:"SIM_GRAPH_FILE"`
	DataFile       string `env:"SIM_DATA_FILE"`

	// PropertiesFallback reverts to the embedded properties when the file cannot be read
	PropertiesFallback bool `env:"SIM_PROPERTIES_FALLBACK" envDefault:"true"`

	// RandomSeed seeds runs that do not name a seed; zero seeds from the clock
	RandomSeed int64 `env:"SIM_RANDOM_SEED" envDefault:"0"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness. Every problem is
// reported, keyed by its environment variable.
func validate(cfg *Config) error {
	positive := []validation.Rule{validation.Required.Error("must be positive"), validation.Min(time.Millisecond)}

	errs := validation.Errors{
		"SERVER_PORT":          validation.Validate(cfg.Server.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		"SERVER_READ_TIMEOUT":  validation.Validate(cfg.Server.ReadTimeout, positive...),
		"SERVER_WRITE_TIMEOUT": validation.Validate(cfg.Server.WriteTimeout, positive...),
		"TIMEOUT_SIMULATION":   validation.Validate(cfg.Timeouts.Simulation, positive...),
		"LOG_LEVEL":            validation.Validate(cfg.Logging.Level, validation.In("debug", "info", "warn", "error")),
		"LOG_FORMAT":           validation.Validate(cfg.Logging.Format, validation.In("json", "console")),
		"APP_ENV":              validation.Validate(cfg.App.Env, validation.In("development", "staging", "production")),
		"SIM_PROPERTIES_FILE":  validation.Validate(cfg.Simulation.PropertiesFile, validation.By(readableFile)),
		"SIM_GRAPH_FILE":       validation.Validate(cfg.Simulation.GraphFile, validation.By(readableFile)),
		"SIM_DATA_FILE":        validation.Validate(cfg.Simulation.DataFile, validation.By(readableFile)),
		"SIM_RANDOM_SEED":      validation.Validate(cfg.Simulation.RandomSeed, validation.Min(int64(0))),
	}

	// A missing properties file is tolerated when the service may fall back to defaults.
	if cfg.Simulation.PropertiesFallback {
		delete(errs, "SIM_PROPERTIES_FILE")
	}

	return errs.Filter()
}

// readableFile accepts an empty path or an existing regular file.
func readableFile(value interface{}) error {
	path, _ := value.(string)
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return errors.New("file does not exist")
		}
		return err
	}
	if info.IsDir() {
		return errors.New("must be a file, not a directory")
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
