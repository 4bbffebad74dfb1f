package user

import "strings"

// Profile is the operator identity returned by the backend at login.
type Profile struct {
	id       string
	name     string
	email    string
	role     Role
	branchID *string
}

func NewProfile(id, name, email string, role Role, branchID *string) (*Profile, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	if branchID != nil && strings.TrimSpace(*branchID) == "" {
		return nil, ErrInvalidBranchID
	}
	return &Profile{
		id:       id,
		name:     name,
		email:    email,
		role:     role,
		branchID: branchID,
	}, nil
}

func (p *Profile) ID() string        { return p.id }
func (p *Profile) Name() string      { return p.name }
func (p *Profile) Email() string     { return p.email }
func (p *Profile) Role() Role        { return p.role }
func (p *Profile) BranchID() *string { return p.branchID }
