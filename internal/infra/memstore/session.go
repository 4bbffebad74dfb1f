package memstore

import (
	"context"
	"log/slog"
	"time"

	"spa-pos/internal/domain/session"
	"spa-pos/internal/infra"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SessionStore keeps operator sessions in process memory until they expire.
type SessionStore struct {
	cache *cache.Cache
}

func NewSessionStore(ttl, cleanupInterval time.Duration) *SessionStore {
	return &SessionStore{cache: cache.New(ttl, cleanupInterval)}
}

func (s *SessionStore) Save(_ context.Context, sess *session.Session) error {
	if sess == nil {
		return infra.WrapErr(slog.Default(), infra.KindRejected, "cannot save nil session", nil)
	}
	snapshot := *sess
	s.cache.Set(sess.ID().String(), &snapshot, cache.DefaultExpiration)
	return nil
}

// Get returns a copy, so invalidating it does not touch the stored session.
func (s *SessionStore) Get(_ context.Context, id uuid.UUID) (*session.Session, error) {
	v, ok := s.cache.Get(id.String())
	if !ok {
		return nil, infra.WrapErr(slog.Default(), infra.KindNotFound, "session not found", nil)
	}
	snapshot := *v.(*session.Session)
	return &snapshot, nil
}

func (s *SessionStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.cache.Get(id.String()); !ok {
		return infra.WrapErr(slog.Default(), infra.KindNotFound, "session not found", nil)
	}
	s.cache.Delete(id.String())
	return nil
}
