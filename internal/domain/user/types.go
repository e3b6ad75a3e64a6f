package user

type Role string

const (
	RoleUser       Role = "user"
	RoleApprover   Role = "approver"
	RoleSuperadmin Role = "superadmin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleApprover, RoleSuperadmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
