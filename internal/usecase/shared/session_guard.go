package shared

import (
	"context"
	"log/slog"

	"spa-pos/internal/domain/session"
	"spa-pos/internal/infra"
	"spa-pos/internal/pkg/clock"
	"spa-pos/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	msgSessionExpired     = "Session expired, please log in again"
	msgBackendUnavailable = "Spa backend is unavailable, please retry"
)

type SessionRemover interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

// SessionGuard turns infra failures from backend calls into usecase errors. A
// backend 401 ends the session that made the call.
type SessionGuard struct {
	sessions SessionRemover
	clock    clock.Clock
}

func NewSessionGuard(sessions SessionRemover, clock clock.Clock) *SessionGuard {
	return &SessionGuard{sessions: sessions, clock: clock}
}

// BackendError marks err with specific and with its category. Rejections keep
// the backend's own message, or fallback when it sent none.
func (g *SessionGuard) BackendError(ctx context.Context, sess *session.Session, err error, specific error, fallback string) error {
	if err == nil {
		return nil
	}

	switch {
	case infra.IsKind(err, infra.KindUnauthorized):
		g.expire(ctx, sess)
		return errs.WithUserMessage(errs.MarkAll(err, specific, errs.ErrSessionExpired), msgSessionExpired)
	case infra.IsKind(err, infra.KindRejected):
		msg := infra.RemoteMessage(err)
		if msg == "" {
			msg = fallback
		}
		return errs.WithUserMessage(errs.MarkAll(err, specific, errs.ErrRemoteRejection), msg)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.WithUserMessage(errs.MarkAll(err, specific, errs.ErrNotFound), fallback)
	default:
		return errs.WithUserMessage(errs.MarkAll(err, specific, errs.ErrTransportFailure), msgBackendUnavailable)
	}
}

func (g *SessionGuard) expire(ctx context.Context, sess *session.Session) {
	if sess == nil {
		return
	}
	sess.Invalidate(g.clock.Now())
	if err := g.sessions.Delete(ctx, sess.ID()); err != nil {
		slog.Warn("failed to drop expired session", "session_id", sess.ID(), "error", err.Error())
		return
	}
	slog.Info("backend rejected session token, session ended", "session_id", sess.ID(), "user_id", sess.Profile().ID())
}

// Invalid marks a local validation failure and surfaces the domain message.
func Invalid(err error, specific error) error {
	if err == nil {
		return nil
	}
	return errs.WithUserMessage(errs.MarkAll(err, specific, errs.ErrValidation), err.Error())
}

// CatalogScope keys cached catalog entries by branch, since prices differ per branch.
func CatalogScope(sess *session.Session) string {
	if b := sess.Profile().BranchID(); b != nil {
		return "branch:" + *b
	}
	return "branch:none"
}
