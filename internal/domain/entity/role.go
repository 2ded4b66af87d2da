// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a family member can have in the system.
type Role string

const (
	// RoleAdmin indicates an administrator who manages members, dishes and the kitchen workflow.
	RoleAdmin Role = "ADMIN"
	// RoleMember indicates a regular family member.
	RoleMember Role = "MEMBER"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleMember:
		return true
	default:
		return false
	}
}
