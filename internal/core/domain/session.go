package domain

import "time"

// Session binds a portal login to the core banking API token and user profile.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session is past its expiry at now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// Roles returns the typed roles of the session user.
func (s *Session) Roles() RoleSet {
	return s.User.RoleSet()
}
