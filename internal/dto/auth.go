package dto

import (
	"time"

	"github.com/noah-isme/school-portal-api/internal/models"
)

// LoginRequest holds the credentials for a sign-in attempt.
type LoginRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Secret string `json:"secret" validate:"required"`
}

// LoginResponse returns the issued token and the signed-in identity.
type LoginResponse struct {
	Token     string          `json:"token"`
	User      models.UserInfo `json:"user"`
	ExpiresAt time.Time       `json:"expires_at"`
	IssuedAt  time.Time       `json:"issued_at"`
}
