package dto

// UserRequest creates or replaces a credential record in the active tenant.
type UserRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Name   string `json:"name" validate:"required"`
	Secret string `json:"secret" validate:"required"`
	Role   string `json:"role" validate:"required,oneof=ADMIN TEACHER VIEWER"`
}
