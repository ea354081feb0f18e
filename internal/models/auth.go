package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims is the signed token payload. TenantID binds the session to the
// school that was active at login time.
type JWTClaims struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
	TenantID string `json:"tenant_id"`
	jwt.RegisteredClaims
}

// Session is the single persisted sign-in record. At most one exists at a
// time; it is discarded on logout, expiry, or tenant mismatch.
type Session struct {
	Token     string    `json:"token"`
	User      UserInfo  `json:"user"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session's validity window has elapsed.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
