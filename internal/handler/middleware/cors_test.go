//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"spa-pos/internal/handler/middleware"
	"spa-pos/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var handler gin.HandlerFunc
	require.NotPanics(t, func() {
		handler = middleware.NewCORSMiddleware(config.NewTestConfig().CORS)
	})

	r := gin.New()
	r.Use(handler)
	r.POST("/api/transactions", func(c *gin.Context) { c.Status(http.StatusCreated) })

	t.Run("preflight from the terminal origin is allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/transactions", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("unknown origin is refused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/transactions", nil)
		req.Header.Set("Origin", "http://evil.example")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
