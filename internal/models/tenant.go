package models

import "time"

// Portal template and font choices are free-form strings in storage but the
// editor offers a fixed palette, mirrored here for validation.
var (
	Templates = []string{"modern", "classic", "minimal", "vibrant"}
	Fonts     = []string{"inter", "roboto", "poppins", "playfair"}
)

// Tenant is one isolated school portal instance. Every content entity is
// keyed by the tenant's identifier.
type Tenant struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Logo           string    `json:"logo"`
	PrimaryColor   string    `json:"primary_color"`
	SecondaryColor string    `json:"secondary_color"`
	Tagline        string    `json:"tagline"`
	Template       string    `json:"template"`
	Font           string    `json:"font"`
	CreatedAt      time.Time `json:"created_at"`
}

// Branding carries the tenant theme fields edited in the branding view and
// included in bulk exports.
type Branding struct {
	Name           string `json:"name"`
	Logo           string `json:"logo"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	Tagline        string `json:"tagline"`
	Template       string `json:"template"`
	Font           string `json:"font"`
}

// BrandingOf extracts the theme fields from a tenant record.
func BrandingOf(t Tenant) Branding {
	return Branding{
		Name:           t.Name,
		Logo:           t.Logo,
		PrimaryColor:   t.PrimaryColor,
		SecondaryColor: t.SecondaryColor,
		Tagline:        t.Tagline,
		Template:       t.Template,
		Font:           t.Font,
	}
}
