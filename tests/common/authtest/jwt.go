//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"spa-pos/internal/domain/user"
	"spa-pos/internal/pkg/config"
	"spa-pos/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

// GenerateToken signs a terminal token for a session id that may not exist.
func (h *JWTHelper) GenerateToken(t *testing.T, sessionID uuid.UUID, userID string, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.Duration).GenerateToken(sessionID, userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, sessionID uuid.UUID, userID string, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateToken(sessionID, userID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
