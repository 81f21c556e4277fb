//go:build unit

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"reservation-engine/internal/handler/httperr"
	"reservation-engine/internal/handler/middleware"
	"reservation-engine/internal/pkg/config"
	"reservation-engine/internal/pkg/errs"
	"reservation-engine/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	router := gin.New()
	router.Use(middleware.LoggingMiddleware(logger, config.LogConfig{TimeZone: "UTC"}))
	router.GET("/things/:id", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})
	router.GET("/fail", func(c *gin.Context) {
		c.Status(http.StatusServiceUnavailable)
	})
	router.GET("/boom", func(c *gin.Context) {
		httperr.AbortWithEngineError(c, errs.New("disk on fire"))
	})
	return router
}

func TestLoggingMiddleware(t *testing.T) {
	t.Run("echoes a caller supplied request id", func(t *testing.T) {
		var buf bytes.Buffer
		rec := httptest.PerformRequestWithHeaders(t, newRouter(&buf), http.MethodGet, "/things/7", nil,
			map[string]string{middleware.RequestIDHeader: "req-123"})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "req-123", rec.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "req-123", rec.Body.String())
		assert.Contains(t, buf.String(), "route=/things/:id")
		assert.Contains(t, buf.String(), "status_code=200")
	})

	t.Run("generates an id when the header is missing or oversized", func(t *testing.T) {
		for _, header := range []map[string]string{nil, {middleware.RequestIDHeader: strings.Repeat("x", 65)}} {
			var buf bytes.Buffer
			rec := httptest.PerformRequestWithHeaders(t, newRouter(&buf), http.MethodGet, "/things/7", nil, header)

			id := rec.Header().Get(middleware.RequestIDHeader)
			require.NotEmpty(t, id)
			assert.LessOrEqual(t, len(id), 64)
			assert.Equal(t, id, rec.Body.String())
		}
	})

	t.Run("server errors are logged at error level", func(t *testing.T) {
		var buf bytes.Buffer
		httptest.PerformRequest(t, newRouter(&buf), http.MethodGet, "/fail", nil)

		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "status_code=503")
		assert.NotContains(t, buf.String(), "stack=")
	})

	t.Run("internal errors carry their stack", func(t *testing.T) {
		var buf bytes.Buffer
		httptest.PerformRequest(t, newRouter(&buf), http.MethodGet, "/boom", nil)

		assert.Contains(t, buf.String(), "status_code=500")
		assert.Contains(t, buf.String(), "stack=")
		assert.Contains(t, buf.String(), "disk on fire")
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, middleware.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, middleware.ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, middleware.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, middleware.ParseLevel("verbose"))
}

func TestRequestIDContext(t *testing.T) {
	ctx := middleware.WithRequestID(t.Context(), "abc")
	assert.Equal(t, "abc", middleware.RequestIDFrom(ctx))
	assert.Empty(t, middleware.RequestIDFrom(t.Context()))
}
