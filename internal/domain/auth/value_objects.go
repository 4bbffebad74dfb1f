package auth

import (
	"errors"

	"spa-pos/internal/domain/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type Credentials struct {
	username user.Username
	password user.Password
}

func NewCredentials(usernameStr, passwordStr string) (Credentials, error) {
	username, err := user.NewUsername(usernameStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		username: username,
		password: password,
	}, nil
}

func (c Credentials) Username() user.Username {
	return c.username
}

func (c Credentials) Password() user.Password {
	return c.password
}
