package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airline-sim/airline-route-simulator/internal/adapter/http/response"
)

func newContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// logEntries decodes one JSON object per log line.
func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "log line should be JSON: %s", line)
		out = append(out, entry)
	}
	return out
}

func findEntry(entries []map[string]interface{}, message string) map[string]interface{} {
	for _, e := range entries {
		if e["message"] == message {
			return e
		}
	}
	return nil
}

func TestRequestID(t *testing.T) {
	t.Run("generates a new id", func(t *testing.T) {
		c, rec := newContext(http.MethodGet, "/api/v1/graph")

		err := RequestID()(func(c echo.Context) error {
			return c.String(http.StatusOK, "ok")
		})(c)
		require.NoError(t, err)

		reqID := rec.Header().Get(RequestIDHeader)
		assert.Len(t, reqID, 36)
		assert.Equal(t, reqID, GetRequestID(c))
	})

	t.Run("propagates an existing id", func(t *testing.T) {
		c, rec := newContext(http.MethodGet, "/api/v1/graph")
		c.Request().Header.Set(RequestIDHeader, "sim-run-42")

		err := RequestID()(func(c echo.Context) error {
			return c.NoContent(http.StatusNoContent)
		})(c)
		require.NoError(t, err)

		assert.Equal(t, "sim-run-42", rec.Header().Get(RequestIDHeader))
		assert.Equal(t, "sim-run-42", GetRequestID(c))
	})

	t.Run("empty when not set", func(t *testing.T) {
		c, _ := newContext(http.MethodGet, "/")
		assert.Empty(t, GetRequestID(c))
	})
}

func TestContextLogger_CarriesRequestID(t *testing.T) {
	var logBuf bytes.Buffer
	logger := zerolog.New(&logBuf)

	c, _ := newContext(http.MethodPost, "/api/v1/simulations")
	c.Set(requestIDKey, "req-7")

	err := ContextLogger(logger)(func(c echo.Context) error {
		zerolog.Ctx(c.Request().Context()).Info().Msg("inside handler")
		return nil
	})(c)
	require.NoError(t, err)

	entry := findEntry(logEntries(t, &logBuf), "inside handler")
	require.NotNil(t, entry)
	assert.Equal(t, "req-7", entry["request_id"])
}

func TestRequestLogger_LogsRequestDetails(t *testing.T) {
	var logBuf bytes.Buffer
	logger := zerolog.New(&logBuf)

	c, _ := newContext(http.MethodGet, "/api/v1/simulations/latest/flights?offset=10&limit=5")
	c.Request().Header.Set("User-Agent", "sim-client/1.0")
	c.Request().Header.Set("X-Real-IP", "10.0.0.8")
	c.Set(requestIDKey, "req-1")

	err := RequestLogger(logger)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})(c)
	require.NoError(t, err)

	entry := findEntry(logEntries(t, &logBuf), "HTTP request")
	require.NotNil(t, entry)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/v1/simulations/latest/flights", entry["path"])
	assert.Equal(t, "offset=10&limit=5", entry["query"])
	assert.Equal(t, float64(200), entry["status"])
	assert.Equal(t, "10.0.0.8", entry["client_ip"])
	assert.Equal(t, "sim-client/1.0", entry["user_agent"])
	assert.Contains(t, entry, "duration_ms")
}

func TestRequestLogger_LevelFollowsStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		level  string
	}{
		{name: "success", status: http.StatusCreated, level: "info"},
		{name: "not found", status: http.StatusNotFound, level: "warn"},
		{name: "conflict", status: http.StatusConflict, level: "warn"},
		{name: "server error", status: http.StatusInternalServerError, level: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			c, _ := newContext(http.MethodGet, "/api/v1/routes/profit")

			err := RequestLogger(zerolog.New(&logBuf))(func(c echo.Context) error {
				return c.NoContent(tt.status)
			})(c)
			require.NoError(t, err)

			entry := findEntry(logEntries(t, &logBuf), "HTTP request")
			require.NotNil(t, entry)
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, float64(tt.status), entry["status"])
		})
	}
}

func TestRequestLogger_HandlesReturnedError(t *testing.T) {
	var logBuf bytes.Buffer
	c, rec := newContext(http.MethodGet, "/missing")

	err := RequestLogger(zerolog.New(&logBuf))(func(c echo.Context) error {
		return echo.ErrNotFound
	})(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	entry := findEntry(logEntries(t, &logBuf), "HTTP request")
	require.NotNil(t, entry)
	assert.Equal(t, float64(404), entry["status"])
}

func TestRequestLogger_SkipsConfiguredPrefixes(t *testing.T) {
	var logBuf bytes.Buffer
	c, rec := newContext(http.MethodGet, "/swagger/index.html")

	err := RequestLoggerWithConfig(zerolog.New(&logBuf), DefaultLoggerConfig())(func(c echo.Context) error {
		return c.String(http.StatusOK, "swagger")
	})(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, logBuf.String())
}

func TestRecover(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{name: "string panic", value: "ledger corrupted", want: "ledger corrupted"},
		{name: "error panic", value: errors.New("nil graph"), want: "nil graph"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			c, rec := newContext(http.MethodPost, "/api/v1/simulations")
			c.Set(requestIDKey, "req-panic")

			var err error
			assert.NotPanics(t, func() {
				err = Recover(zerolog.New(&logBuf))(func(c echo.Context) error {
					panic(tt.value)
				})(c)
			})
			require.NoError(t, err)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			var body response.ErrorDetail
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, response.CodeInternalError, body.Code)

			entry := findEntry(logEntries(t, &logBuf), "Panic recovered")
			require.NotNil(t, entry)
			assert.Equal(t, tt.want, entry["panic"])
			assert.Equal(t, "req-panic", entry["request_id"])
			assert.Contains(t, entry["stack"], "goroutine")
		})
	}
}

func TestRecover_PassesThroughNormalRequests(t *testing.T) {
	var logBuf bytes.Buffer
	c, rec := newContext(http.MethodGet, "/health")

	err := Recover(zerolog.New(&logBuf))(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, logBuf.String())
}

func TestRecoverWithConfig_DisableStackPrint(t *testing.T) {
	var logBuf bytes.Buffer
	c, _ := newContext(http.MethodGet, "/panic")

	_ = RecoverWithConfig(zerolog.New(&logBuf), RecoveryConfig{DisablePrintStack: true})(func(c echo.Context) error {
		panic("no stack")
	})(c)

	entry := findEntry(logEntries(t, &logBuf), "Panic recovered")
	require.NotNil(t, entry)
	assert.NotContains(t, entry, "stack")
}

func TestSetup(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	Setup(e, zerolog.New(&logBuf))

	e.GET("/api/v1/graph", func(c echo.Context) error {
		zerolog.Ctx(c.Request().Context()).Debug().Msg("graph requested")
		return c.String(http.StatusOK, "graph")
	})
	e.GET("/panic", func(c echo.Context) error {
		panic("setup panic")
	})

	t.Run("applies the chain", func(t *testing.T) {
		logBuf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/graph", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		reqID := rec.Header().Get(RequestIDHeader)
		require.NotEmpty(t, reqID)

		entries := logEntries(t, &logBuf)
		handlerEntry := findEntry(entries, "graph requested")
		require.NotNil(t, handlerEntry)
		assert.Equal(t, reqID, handlerEntry["request_id"])

		accessEntry := findEntry(entries, "HTTP request")
		require.NotNil(t, accessEntry)
		assert.Equal(t, "/api/v1/graph", accessEntry["route"])
	})

	t.Run("recovers panics", func(t *testing.T) {
		logBuf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/panic", nil)
		rec := httptest.NewRecorder()

		assert.NotPanics(t, func() { e.ServeHTTP(rec, req) })
		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		entries := logEntries(t, &logBuf)
		require.NotNil(t, findEntry(entries, "Panic recovered"))
		access := findEntry(entries, "HTTP request")
		require.NotNil(t, access)
		assert.Equal(t, float64(500), access["status"])
	})
}

func TestChain_ReturnsMiddlewareSlice(t *testing.T) {
	chain := Chain(zerolog.Nop())
	assert.Len(t, chain, 4)

	e := echo.New()
	e.Use(chain...)
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}
