package dto

// TenantRequest creates or replaces a tenant record.
type TenantRequest struct {
	Name           string `json:"name" validate:"required"`
	Logo           string `json:"logo"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	Tagline        string `json:"tagline"`
	Template       string `json:"template" validate:"omitempty,oneof=modern classic minimal vibrant"`
	Font           string `json:"font" validate:"omitempty,oneof=inter roboto poppins playfair"`
}

// SetActiveTenantRequest switches the active tenant.
type SetActiveTenantRequest struct {
	ID string `json:"id" validate:"required"`
}

// BrandingRequest updates the active tenant's theme.
type BrandingRequest struct {
	Name           string `json:"name" validate:"required"`
	Logo           string `json:"logo"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	Tagline        string `json:"tagline"`
	Template       string `json:"template" validate:"omitempty,oneof=modern classic minimal vibrant"`
	Font           string `json:"font" validate:"omitempty,oneof=inter roboto poppins playfair"`
}
