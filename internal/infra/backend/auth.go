package backend

import (
	"context"
	"net/http"

	"spa-pos/internal/domain/auth"
	"spa-pos/internal/infra"
	"spa-pos/internal/usecase/commands"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginUser struct {
	ID     flexID  `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Role   string  `json:"role"`
	Branch *flexID `json:"branch"`
}

type loginResponse struct {
	Status      flexBool   `json:"status"`
	Message     string     `json:"message"`
	AccessToken string     `json:"access_token"`
	User        *loginUser `json:"user"`
}

// Login exchanges operator credentials for a backend bearer token.
func (c *Client) Login(ctx context.Context, creds auth.Credentials) (*commands.LoginGrant, error) {
	var out loginResponse
	err := c.do(ctx, call{
		endpoint: "login",
		method:   http.MethodPost,
		path:     "web-login",
		body: loginRequest{
			Username: creds.Username().Value(),
			Password: creds.Password().Value(),
		},
	}, &out)
	if err != nil {
		return nil, err
	}

	if !out.Status || out.AccessToken == "" || out.User == nil {
		msg := out.Message
		if msg == "" {
			msg = "Login failed"
		}
		return nil, infra.Rejected("login refused", msg)
	}

	grant := &commands.LoginGrant{
		AccessToken: out.AccessToken,
		UserID:      string(out.User.ID),
		Name:        out.User.Name,
		Email:       out.User.Email,
		Role:        out.User.Role,
	}
	if out.User.Branch != nil && *out.User.Branch != "" {
		branch := string(*out.User.Branch)
		grant.BranchID = &branch
	}
	return grant, nil
}
