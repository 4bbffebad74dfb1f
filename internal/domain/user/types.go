package user

// Role is the role string issued by the spa backend.
type Role string

const (
	RolePOS     Role = "pos"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

var roleLevels = map[Role]int{
	RolePOS:     1,
	RoleManager: 2,
	RoleAdmin:   3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleLevels[r]
	return ok
}

// AtLeast reports whether r ranks at or above min. Unknown roles never do.
func (r Role) AtLeast(min Role) bool {
	have, ok := roleLevels[r]
	if !ok {
		return false
	}
	want, ok := roleLevels[min]
	return ok && have >= want
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
