package models

import "time"

// Role represents the closed set of portal roles.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleTeacher Role = "TEACHER"
	RoleViewer  Role = "VIEWER"
)

// ValidRole reports whether r is a member of the role enumeration.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleViewer:
		return true
	}
	return false
}

// User is a stored credential record scoped to one tenant. The secret is
// stored and compared as plain text: this is a demonstration system and the
// seeded credentials are documented, not secret. Unsuitable for real
// deployments as-is.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Secret    string    `json:"secret,omitempty"`
	Role      Role      `json:"role"`
	TenantID  string    `json:"tenant_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Public returns the record with the secret stripped.
func (u User) Public() UserInfo {
	return UserInfo{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Role:     u.Role,
		TenantID: u.TenantID,
	}
}

// UserInfo is the redacted identity used in sessions and display listings.
type UserInfo struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
	TenantID string `json:"tenant_id"`
}
