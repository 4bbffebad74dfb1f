package usecase

import (
	"context"

	"spa-pos/internal/domain/session"
	"spa-pos/internal/domain/user"
	"spa-pos/internal/infra"
	"spa-pos/internal/pkg/errs"
	"spa-pos/internal/pkg/jwt"

	"github.com/google/uuid"
)

var (
	ErrInvalidToken   = errs.New("invalid token")
	ErrSessionExpired = errs.New("session expired")
)

type SessionReader interface {
	Get(ctx context.Context, id uuid.UUID) (*session.Session, error)
}

// SessionResolver provides token validation for middleware. A token is only
// good while the session it names is still held and valid.
type SessionResolver interface {
	Resolve(ctx context.Context, tokenString string) (*session.Session, user.Role, error)
}

type sessionResolverImpl struct {
	jwtService *jwt.Service
	sessions   SessionReader
}

func NewSessionResolver(jwtService *jwt.Service, sessions SessionReader) SessionResolver {
	return &sessionResolverImpl{
		jwtService: jwtService,
		sessions:   sessions,
	}
}

func (r *sessionResolverImpl) Resolve(ctx context.Context, tokenString string) (*session.Session, user.Role, error) {
	claims, err := r.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, "", errs.Mark(err, ErrInvalidToken)
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, "", errs.Mark(err, ErrInvalidToken)
	}

	sess, err := r.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, "", errs.MarkAll(err, ErrSessionExpired, errs.ErrSessionExpired)
		}
		return nil, "", err
	}
	if !sess.IsValid() || sess.Profile().ID() != claims.UserID {
		return nil, "", errs.MarkAll(errs.New("session no longer valid"), ErrSessionExpired, errs.ErrSessionExpired)
	}

	return sess, role, nil
}
