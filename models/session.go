package models

import "time"

// Role values mirror the role selector on the login screen.
const (
	RoleCouple = "Couple"
	RoleVendor = "Vendor"
)

// Session is the authenticated identity behind every gateway call.
// It is created at login, destroyed at logout, and passed explicitly to
// every upstream client call instead of living in ambient global state.
type Session struct {
	UserID     string    `json:"user_id"`
	AuthToken  string    `json:"auth_token"`
	Role       string    `json:"role"`
	Email      string    `json:"email,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

// IsCouple reports whether the session belongs to a couple account.
func (s *Session) IsCouple() bool {
	return s.Role == RoleCouple
}

// IsVendor reports whether the session belongs to a vendor account.
func (s *Session) IsVendor() bool {
	return s.Role == RoleVendor
}
