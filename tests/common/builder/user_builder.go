//go:build unit || e2e

package builder

import (
	"spa-pos/internal/domain/user"
)

type UserBuilder struct {
	ID       string
	Name     string
	Email    string
	Role     string
	BranchID *string
}

func NewUserBuilder() *UserBuilder {
	branchID := "1"
	return &UserBuilder{
		ID:       "17",
		Name:     "Front Desk",
		Email:    "frontdesk@example.com",
		Role:     "pos",
		BranchID: &branchID,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.Profile, error) {
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	return user.NewProfile(u.ID, u.Name, u.Email, role, u.BranchID)
}

func (u *UserBuilder) MustBuildDomain() *user.Profile {
	p, err := u.BuildDomain()
	if err != nil {
		panic(err)
	}
	return p
}

// Fluent builder methods
func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithBranchID(branchID *string) *UserBuilder {
	u.BranchID = branchID
	return u
}

func (u *UserBuilder) WithoutBranch() *UserBuilder {
	u.BranchID = nil
	return u
}
