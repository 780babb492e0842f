// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is an account that can sign in to one of the portals.
type User struct {
	ID     string `json:"id"`               // Stable identifier, e.g. "resident-1".
	Email  string `json:"email"`            // Login identifier, matched case-sensitively.
	Name   string `json:"name"`             // Display name.
	Role   Role   `json:"role"`             // Portal the user belongs to.
	UnitID string `json:"unitId,omitempty"` // Assigned unit as recorded on the user. Units own the occupancy edge; prefer querying units.
}

// IsAdmin reports whether the user has admin scope.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role.IsAdmin()
}

// Clone returns a copy of u that can be modified freely.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u

	return &c
}
