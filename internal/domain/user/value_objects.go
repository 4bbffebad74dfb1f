package user

import (
	"errors"
	"strings"
)

var (
	ErrInvalidRole     = errors.New("invalid role")
	ErrEmptyUsername   = errors.New("username is required")
	ErrEmptyPassword   = errors.New("password is required")
	ErrInvalidBranchID = errors.New("invalid branch id")
)

type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Username{}, ErrEmptyUsername
	}
	return Username{value: s}, nil
}

func (u Username) Value() string {
	return u.value
}

// Password is held only long enough to forward it to the backend.
type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if s == "" {
		return Password{}, ErrEmptyPassword
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
