//go:build unit || e2e

package builder

import (
	"time"

	"spa-pos/internal/domain/session"
)

type SessionBuilder struct {
	BackendToken string
	User         *UserBuilder
	CreatedAt    time.Time
}

func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{
		BackendToken: "backend-token",
		User:         NewUserBuilder(),
		CreatedAt:    time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *SessionBuilder) WithUser(u *UserBuilder) *SessionBuilder {
	b.User = u
	return b
}

func (b *SessionBuilder) WithToken(token string) *SessionBuilder {
	b.BackendToken = token
	return b
}

func (b *SessionBuilder) Build() (*session.Session, error) {
	profile, err := b.User.BuildDomain()
	if err != nil {
		return nil, err
	}
	return session.NewSession(b.BackendToken, profile, b.CreatedAt)
}

func (b *SessionBuilder) MustBuild() *session.Session {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
