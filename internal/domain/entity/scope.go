package entity

// Scope is the capability set that decides which owned records a caller can see.
// Admin scope sees everything; otherwise only records owned by OwnerID are visible.
type Scope struct {
	Admin   bool
	OwnerID string
}

// ScopeFor resolves the scope of callerID. user is the record found for
// callerID and may be nil. Only a user whose role is exactly admin gets admin
// scope; unknown users and every other role are narrowed to their own records.
func ScopeFor(user *User, callerID string) Scope {
	if user != nil && user.ID == callerID && user.IsAdmin() {
		return Scope{Admin: true}
	}

	return Scope{OwnerID: callerID}
}

// Visible reports whether a record owned by ownerID is visible in s.
func (s Scope) Visible(ownerID string) bool {
	if s.Admin {
		return true
	}

	return s.OwnerID != "" && ownerID == s.OwnerID
}

// Filter returns the elements of items visible in s, in their original order.
func Filter[T any](s Scope, items []T, owner func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if s.Visible(owner(item)) {
			out = append(out, item)
		}
	}

	return out
}
