package models

import "time"

// RefreshToken is an opaque random credential bound to one user. It is
// validated purely by database lookup so it stays revocable at any instant;
// the value itself is never decoded.
type RefreshToken struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	IsRevoked bool      `json:"is_revoked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
