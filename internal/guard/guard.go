// Package guard decides whether an identity may enter a view. It is a pure
// lookup recomputed per navigation; it holds no state.
package guard

import "github.com/noah-isme/school-portal-api/internal/models"

// View paths used as redirect targets.
const (
	LoginView    = "/login"
	BrandingView = "/admin"
	UploadsView  = "/uploads"
	PreviewView  = "/preview"
)

// Decision is the outcome of a guard check: either the navigation is
// allowed, or the caller must redirect to the given target.
type Decision struct {
	Allow    bool   `json:"allow"`
	Redirect string `json:"redirect,omitempty"`
}

// roleHome maps each role to its default landing view, used when an
// authenticated identity lacks the required role.
var roleHome = map[models.Role]string{
	models.RoleAdmin:   BrandingView,
	models.RoleTeacher: UploadsView,
	models.RoleViewer:  PreviewView,
}

// Resolve checks identity against the view's required roles. A missing
// identity redirects to sign-in; a role mismatch redirects to the role's
// home view; otherwise the navigation is allowed.
func Resolve(identity *models.UserInfo, requiredRoles []models.Role) Decision {
	if identity == nil {
		return Decision{Redirect: LoginView}
	}
	for _, role := range requiredRoles {
		if identity.Role == role {
			return Decision{Allow: true}
		}
	}
	if home, ok := roleHome[identity.Role]; ok {
		return Decision{Redirect: home}
	}
	return Decision{Redirect: LoginView}
}
