package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/school-portal-api/internal/models"
)

func identity(role models.Role) *models.UserInfo {
	return &models.UserInfo{ID: "u1", Email: "admin@school.edu", Name: "Admin", Role: role}
}

func TestResolveMissingIdentity(t *testing.T) {
	decision := Resolve(nil, []models.Role{models.RoleAdmin})
	assert.False(t, decision.Allow)
	assert.Equal(t, LoginView, decision.Redirect)
}

func TestResolveAllowsMatchingRole(t *testing.T) {
	decision := Resolve(identity(models.RoleTeacher), []models.Role{models.RoleAdmin, models.RoleTeacher})
	assert.True(t, decision.Allow)
	assert.Empty(t, decision.Redirect)
}

func TestResolveRedirectsToRoleHome(t *testing.T) {
	cases := []struct {
		role models.Role
		home string
	}{
		{models.RoleAdmin, BrandingView},
		{models.RoleTeacher, UploadsView},
		{models.RoleViewer, PreviewView},
	}
	for _, tc := range cases {
		decision := Resolve(identity(tc.role), []models.Role{"SOMETHING_ELSE"})
		assert.False(t, decision.Allow, string(tc.role))
		assert.Equal(t, tc.home, decision.Redirect, string(tc.role))
	}
}

func TestResolveUnknownRoleRedirectsToLogin(t *testing.T) {
	decision := Resolve(identity("GUEST"), []models.Role{models.RoleAdmin})
	assert.False(t, decision.Allow)
	assert.Equal(t, LoginView, decision.Redirect)
}
