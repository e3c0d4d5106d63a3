package models

import "time"

type User struct {
	ID         int       `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Password   string    `json:"-"` // Never expose in JSON
	Role       string    `json:"role"` // admin, manager or user
	IsActive   bool      `json:"is_active"`
	IDKaryawan *int      `json:"id_karyawan,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// RegisterRequest represents the request body for registration
type RegisterRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role,omitempty"`
	IDKaryawan *int   `json:"id_karyawan,omitempty"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	User         *User  `json:"user"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// RefreshRequest carries the opaque refresh token
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshResponse returns a fresh access token. The refresh token value is
// echoed back unchanged: tokens are not rotated on use.
type RefreshResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// ChangePasswordRequest represents the request body for a password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UpdateProfileRequest represents the request body for a profile update
type UpdateProfileRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

// UserPatch lists the mutable user fields. Nil means "leave unchanged".
type UserPatch struct {
	Username   *string `json:"username,omitempty"`
	Email      *string `json:"email,omitempty"`
	Role       *string `json:"role,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
	IDKaryawan *int    `json:"id_karyawan,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p *UserPatch) IsEmpty() bool {
	return p.Username == nil && p.Email == nil && p.Role == nil &&
		p.IsActive == nil && p.IDKaryawan == nil
}

// UserFilter narrows user list queries.
type UserFilter struct {
	Search          string
	Role            string
	IncludeInactive bool
	Page            int
	Limit           int
}
