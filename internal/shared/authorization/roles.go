package authorization

type UserRole string

const (
	RoleCitizen  UserRole = "citizen"
	RoleOfficial UserRole = "official"
	RoleAdmin    UserRole = "admin"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// IsStaff reports whether the role belongs to government-side personnel.
func (r UserRole) IsStaff() bool {
	return r == RoleOfficial || r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleCitizen || r == RoleOfficial || r == RoleAdmin
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleCitizen
}
