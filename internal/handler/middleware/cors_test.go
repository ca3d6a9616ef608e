//go:build unit

package middleware_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"bengkel-service/internal/handler/middleware"
	"bengkel-service/internal/pkg/config"
	"bengkel-service/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func corsRouter(cfg config.CORSConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.NewCORSMiddleware(cfg))
	r.GET("/api/queue/next", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func corsConfig(origins ...string) config.CORSConfig {
	return config.CORSConfig{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}
}

func TestCORSMiddleware(t *testing.T) {
	t.Run("listed origin gets credentials and can read the request id", func(t *testing.T) {
		r := corsRouter(corsConfig("https://bengkel.example.com"))

		rec := httptest.PerformRequestWithHeaders(t, r, http.MethodGet, "/api/queue/next",
			map[string]string{"Origin": "https://bengkel.example.com"}, "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "https://bengkel.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
		assert.Contains(t, strings.ToLower(rec.Header().Get("Access-Control-Expose-Headers")), "x-request-id")
	})

	t.Run("preflight may send the request id header", func(t *testing.T) {
		r := corsRouter(corsConfig("https://bengkel.example.com"))

		rec := httptest.PerformRequestWithHeaders(t, r, http.MethodOptions, "/api/queue/next", map[string]string{
			"Origin":                         "https://bengkel.example.com",
			"Access-Control-Request-Method":  http.MethodGet,
			"Access-Control-Request-Headers": middleware.RequestIDHeader,
		}, "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Contains(t, strings.ToLower(rec.Header().Get("Access-Control-Allow-Headers")), "x-request-id")
	})

	t.Run("unlisted origin is refused", func(t *testing.T) {
		r := corsRouter(corsConfig("https://bengkel.example.com"))

		rec := httptest.PerformRequestWithHeaders(t, r, http.MethodGet, "/api/queue/next",
			map[string]string{"Origin": "https://evil.example.com"}, "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard origin drops credentials", func(t *testing.T) {
		r := corsRouter(corsConfig("*"))

		rec := httptest.PerformRequestWithHeaders(t, r, http.MethodGet, "/api/queue/next",
			map[string]string{"Origin": "https://anywhere.example.com"}, "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
	})
}
