package domain

// Session is the single currently-authenticated identity. The store holds at
// most one session record at a time; absence means logged out.
type Session struct {
	OwnerID string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    Role   `json:"role"`
}

// Privileged reports whether this session may mutate the catalog.
func (s Session) Privileged() bool {
	return s.Role == RolePrivileged
}

// SessionFor builds the session record persisted at login. Only public
// account fields are copied; the password never leaves the accounts
// collection.
func SessionFor(a Account) Session {
	return Session{
		OwnerID: a.OwnerID(),
		Name:    a.Name,
		Email:   a.Email,
		Role:    a.Role,
	}
}
