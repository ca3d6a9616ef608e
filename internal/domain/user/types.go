package user

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleKaryawan Role = "KARYAWAN"
	RoleAdmin    Role = "ADMIN"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleKaryawan, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role works on the workshop floor.
func (r Role) IsStaff() bool {
	return r == RoleKaryawan || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
