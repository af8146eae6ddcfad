package domain

import "time"

// Session proves a login. It is valid while it exists and, when ExpiresAt is
// set, until that instant.
type Session struct {
	ID        uint64
	UserID    uint64
	CreatedAt time.Time
	ExpiresAt *time.Time
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return s.ExpiresAt != nil && !now.Before(*s.ExpiresAt)
}
