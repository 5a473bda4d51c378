package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// LoggerConfig tunes the access log.
type LoggerConfig struct {
	// SkipPrefixes lists path prefixes that are not logged (health probes, swagger assets)
	SkipPrefixes []string
}

// DefaultLoggerConfig skips the swagger UI assets.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{SkipPrefixes: []string{"/swagger/"}}
}

// RequestLogger returns middleware that logs every completed HTTP request.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return RequestLoggerWithConfig(log, LoggerConfig{})
}

// RequestLoggerWithConfig returns the access log middleware with custom configuration.
// The level follows the status: 5xx is error, 4xx is warn, everything else info.
func RequestLoggerWithConfig(log zerolog.Logger, config LoggerConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			for _, prefix := range config.SkipPrefixes {
				if strings.HasPrefix(path, prefix) {
					return next(c)
				}
			}

			start := time.Now()

			// Let Echo's error handler write the response so the status is final.
			if err := next(c); err != nil {
				c.Error(err)
			}

			duration := time.Since(start)
			req := c.Request()
			res := c.Response()

			var event *zerolog.Event
			status := res.Status
			switch {
			case status >= 500:
				event = log.Error()
			case status >= 400:
				event = log.Warn()
			default:
				event = log.Info()
			}

			event.
				Str("request_id", GetRequestID(c)).
				Str("method", req.Method).
				Str("path", path).
				Str("route", c.Path()).
				Str("query", req.URL.RawQuery).
				Int("status", status).
				Int64("duration_ms", duration.Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			return nil
		}
	}
}
