package session

import (
	"errors"
	"time"

	"spa-pos/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrEmptyBackendToken = errors.New("backend access token is required")
	ErrMissingProfile    = errors.New("session profile is required")
	ErrSessionInvalid    = errors.New("session is no longer valid")
)

// Session is one operator login. It carries the backend bearer token that every
// outbound call must present.
type Session struct {
	id            uuid.UUID
	backendToken  string
	profile       *user.Profile
	createdAt     time.Time
	invalidatedAt *time.Time
}

func NewSession(backendToken string, profile *user.Profile, now time.Time) (*Session, error) {
	if backendToken == "" {
		return nil, ErrEmptyBackendToken
	}
	if profile == nil {
		return nil, ErrMissingProfile
	}
	return &Session{
		id:           uuid.New(),
		backendToken: backendToken,
		profile:      profile,
		createdAt:    now,
	}, nil
}

// Invalidate is called on logout and whenever the backend answers 401.
func (s *Session) Invalidate(now time.Time) {
	if s.invalidatedAt != nil {
		return
	}
	s.invalidatedAt = &now
}

func (s *Session) IsValid() bool {
	return s.invalidatedAt == nil
}

// Token returns the backend bearer token, or ErrSessionInvalid once invalidated.
func (s *Session) Token() (string, error) {
	if !s.IsValid() {
		return "", ErrSessionInvalid
	}
	return s.backendToken, nil
}

func (s *Session) ID() uuid.UUID             { return s.id }
func (s *Session) Profile() *user.Profile    { return s.profile }
func (s *Session) CreatedAt() time.Time      { return s.createdAt }
func (s *Session) InvalidatedAt() *time.Time { return s.invalidatedAt }
