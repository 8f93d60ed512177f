package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"adpilot/config"
	deliverycontext "adpilot/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, deliverycontext.GetRequestIDFromContext(c.Request().Context()))
	})
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	return e
}

func TestRequestIDMiddleware(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, false)

	t.Run("propagates client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Equal(t, "client-id", rec.Body.String())
	})

	t.Run("replaces oversized id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("x", 500))
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		id := rec.Header().Get(deliverycontext.HeaderXRequestID)
		assert.Len(t, id, 36)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("replaces id with unsafe characters", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, `abc"><script>`)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
	})
}

func TestValidRequestID(t *testing.T) {
	assert.True(t, validRequestID("3f1c2a9e-req_1.2"))
	assert.False(t, validRequestID(""))
	assert.False(t, validRequestID("a b"))
	assert.False(t, validRequestID("line\nbreak"))
}

func TestLoggerMiddleware(t *testing.T) {
	t.Run("logs with request id and final status", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, false)

		req := httptest.NewRequest(http.MethodGet, "/boom", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "abc")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusTeapot, rec.Code)
		out := buf.String()
		assert.Contains(t, out, `"request_id":"abc"`)
		assert.Contains(t, out, `"status":418`)
		assert.Contains(t, out, `"level":"WARN"`)
	})

	t.Run("skips health probes unless debugging", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, false)
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Empty(t, buf.String())

		buf.Reset()
		e = newTestEcho(&buf, true)
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Contains(t, buf.String(), "HTTP Request")
	})
}
