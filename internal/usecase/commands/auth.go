package commands

import (
	"context"
	"log/slog"
	"time"

	"spa-pos/internal/domain/session"
	"spa-pos/internal/domain/user"
	reqdto "spa-pos/internal/handler/dto/request"
	"spa-pos/internal/infra"
	"spa-pos/internal/pkg/clock"
	"spa-pos/internal/pkg/errs"
	"spa-pos/internal/pkg/jwt"
	"spa-pos/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrRoleNotAllowed       = errs.New("role not allowed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrSessionNotFound      = errs.New("session not found")
)

type LoginResult struct {
	Session   *session.Session
	Token     string
	ExpiresAt time.Time
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
}

type authCommandsImpl struct {
	authenticator Authenticator
	sessions      SessionStore
	jwtService    *jwt.Service
	clock         clock.Clock
}

func NewAuthCommands(authenticator Authenticator, sessions SessionStore, jwtService *jwt.Service, clock clock.Clock) AuthCommands {
	return &authCommandsImpl{
		authenticator: authenticator,
		sessions:      sessions,
		jwtService:    jwtService,
		clock:         clock,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, shared.Invalid(err, ErrAuthenticationFailed)
	}

	grant, err := a.authenticator.Login(ctx, credentials)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindRejected), infra.IsKind(err, infra.KindUnauthorized):
			msg := infra.RemoteMessage(err)
			if msg == "" {
				msg = "Invalid credentials"
			}
			return nil, errs.WithUserMessage(errs.MarkAll(err, ErrInvalidCredentials, errs.ErrRemoteRejection), msg)
		default:
			return nil, errs.WithUserMessage(errs.MarkAll(err, ErrAuthenticationFailed, errs.ErrTransportFailure), "Spa backend is unavailable, please retry")
		}
	}

	role, err := user.NewRole(grant.Role)
	if err != nil {
		slog.Warn("backend returned a role this terminal does not know", "user_id", grant.UserID, "role", grant.Role)
		return nil, errs.WithUserMessage(errs.Mark(err, ErrRoleNotAllowed), "This account cannot use the POS terminal")
	}

	profile, err := user.NewProfile(grant.UserID, grant.Name, grant.Email, role, grant.BranchID)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	now := a.clock.Now()
	sess, err := session.NewSession(grant.AccessToken, profile, now)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(sess.ID(), profile.ID(), role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	if err := a.sessions.Save(ctx, sess); err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	slog.Info("operator logged in", "user_id", profile.ID(), "role", role.String(), "session_id", sess.ID())

	return &LoginResult{
		Session:   sess,
		Token:     token,
		ExpiresAt: now.Add(a.jwtService.TokenDuration()),
	}, nil
}

// Logout is idempotent: an unknown session is already logged out.
func (a *authCommandsImpl) Logout(ctx context.Context, sessionID uuid.UUID) error {
	sess, err := a.sessions.Get(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return errs.Mark(err, ErrSessionNotFound)
	}

	sess.Invalidate(a.clock.Now())
	if err := a.sessions.Delete(ctx, sessionID); err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return err
	}
	return nil
}
