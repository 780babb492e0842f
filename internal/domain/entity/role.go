// Package entity contains the core business objects of the project.
package entity

// Role represents the portal a user signs in to.
type Role string

const (
	// RoleAdmin is the property manager role. It sees every record.
	RoleAdmin Role = "admin"
	// RoleResident is a tenant role. It sees only records it owns.
	RoleResident Role = "resident"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleResident:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether r grants admin scope. Only the exact admin value
// does; anything else is treated as a resident.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
