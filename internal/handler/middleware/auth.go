package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"spa-pos/internal/domain/session"
	"spa-pos/internal/domain/user"
	"spa-pos/internal/handler/httperr"
	"spa-pos/internal/pkg/cookie"
	"spa-pos/internal/pkg/errs"
	"spa-pos/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	resolver usecase.SessionResolver
}

const (
	ctxSessionKey  = "session"
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

var errUnauthenticated = errs.New("unauthenticated")

func NewAuthMiddleware(resolver usecase.SessionResolver) *AuthMiddleware {
	return &AuthMiddleware{
		resolver: resolver,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetSessionToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Access token required", nil)
			return
		}

		sess, role, err := m.resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			msg := "Invalid or expired token"
			if errs.Is(err, errs.ErrSessionExpired) {
				msg = "Session expired, please log in again"
			}
			httperr.AbortWithError(c, http.StatusUnauthorized, err, msg, nil)
			return
		}

		SetSession(c, sess, role)
		c.Next()
	}
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			httperr.AbortWithError(c, http.StatusInternalServerError, errUnauthenticated, "Internal server error", nil)
			return
		}

		if !role.AtLeast(minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, errs.Newf("role %s below %s", role, minRole), "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

// SetSession stores the resolved session and the caller's role on the request.
func SetSession(c *gin.Context, sess *session.Session, role user.Role) {
	c.Set(ctxSessionKey, sess)
	c.Set(ctxUserIDKey, sess.Profile().ID())
	c.Set(ctxUserRoleKey, role)
}

func GetSession(c *gin.Context) (*session.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}

func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}
