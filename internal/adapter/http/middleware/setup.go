package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Config groups the options of every middleware in the chain.
type Config struct {
	Logger   LoggerConfig
	Recovery RecoveryConfig
}

// DefaultConfig returns the configuration used by Setup.
func DefaultConfig() Config {
	return Config{
		Logger:   DefaultLoggerConfig(),
		Recovery: DefaultRecoveryConfig(),
	}
}

// Setup registers all middleware on the Echo instance. Order matters:
//  1. RequestID, so every later log line can be correlated
//  2. ContextLogger, so handlers can log with the request ID
//  3. RequestLogger, which logs the final status
//  4. Recover, innermost, so a panic still produces a logged 500
//
// Call it before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger) {
	SetupWithConfig(e, log, DefaultConfig())
}

// SetupWithConfig registers the middleware chain with custom configuration.
func SetupWithConfig(e *echo.Echo, log zerolog.Logger, config Config) {
	e.Use(ChainWithConfig(log, config)...)
}

// Chain returns the default middleware as a slice for use with route groups.
func Chain(log zerolog.Logger) []echo.MiddlewareFunc {
	return ChainWithConfig(log, DefaultConfig())
}

// ChainWithConfig returns the middleware chain built from config.
func ChainWithConfig(log zerolog.Logger, config Config) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		RequestID(),
		ContextLogger(log),
		RequestLoggerWithConfig(log, config.Logger),
		RecoverWithConfig(log, config.Recovery),
	}
}
