package entity

// Role represents the authorization role attached to an identity.
type Role string

const (
	// RoleUser can browse, search and compare.
	RoleUser Role = "user"
	// RoleAdmin can also create, update and delete.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role grants mutating operations.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// Identity is the account resolved by the identity provider.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// Field names of the role side record stored under users/{uid}.
const (
	UserFieldEmail     = "email"
	UserFieldRole      = "role"
	UserFieldCreatedAt = "createdAt"
)
