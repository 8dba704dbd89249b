package domain

import "time"

// Member models a registered account. PasswordHash is a one-way bcrypt
// digest and is never serialized to clients.
type Member struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	YearOfBirth  int       `json:"yob"`
	Gender       bool      `json:"gender"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MemberSummary is the projection stored in server-side sessions and
// returned to clients after login.
type MemberSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// Summary returns the client-safe projection of m.
func (m *Member) Summary() MemberSummary {
	return MemberSummary{ID: m.ID, Name: m.Name, Email: m.Email, IsAdmin: m.IsAdmin}
}

// Principal is the runtime-resolved identity of a caller, derived from a
// verified bearer token or an active session. Never persisted.
type Principal struct {
	ID      string
	IsAdmin bool
}
