package entity

// Session is the authenticated identity of a caller. It is passed explicitly
// into every query instead of being read from ambient state.
type Session struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
}

// SessionOf builds the session a signed-in user carries.
func SessionOf(u *User) Session {
	if u == nil {
		return Session{}
	}

	return Session{UserID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}

// IsAdmin reports whether the session has admin scope.
func (s Session) IsAdmin() bool {
	return s.Role.IsAdmin()
}

// Scope returns the visibility scope the session grants.
func (s Session) Scope() Scope {
	if s.IsAdmin() {
		return Scope{Admin: true}
	}

	return Scope{OwnerID: s.UserID}
}
