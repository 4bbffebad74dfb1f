//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"spa-pos/internal/handler/dto/request"
	"spa-pos/internal/pkg/cookie"
	"spa-pos/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginUser logs in through the API and returns the terminal token from the
// session cookie.
func LoginUser(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	sessionCookie := httptest.ExtractCookie(w, cookie.SessionCookieName)
	require.NotNil(t, sessionCookie, "session cookie not set")
	require.NotEmpty(t, sessionCookie.Value, "session cookie is empty")

	return sessionCookie.Value
}

func LogoutUser(t *testing.T, router *gin.Engine, token string) {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/logout", nil, token)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
