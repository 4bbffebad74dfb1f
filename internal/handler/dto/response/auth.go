package response

import (
	"time"

	"spa-pos/internal/domain/user"
)

type UserResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email,omitempty"`
	Role     string  `json:"role"`
	BranchID *string `json:"branch_id,omitempty"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

func FromProfile(p *user.Profile) UserResponse {
	return UserResponse{
		ID:       p.ID(),
		Name:     p.Name(),
		Email:    p.Email(),
		Role:     p.Role().String(),
		BranchID: p.BranchID(),
	}
}
