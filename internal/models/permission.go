package models

// Permission is a named capability. The set is seeded by migration and read
// only; role assignments live in role_permissions.
type Permission struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// UserRoles is the closed set of roles permissions can be assigned to.
var UserRoles = []string{"admin", "manager", "user"}
