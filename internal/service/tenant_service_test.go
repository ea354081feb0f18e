package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-portal-api/internal/dto"
	"github.com/noah-isme/school-portal-api/internal/store"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
	"github.com/noah-isme/school-portal-api/pkg/kvstore"
)

func newTenantService(t *testing.T) (*TenantService, *store.TenantStore) {
	t.Helper()
	kv := kvstore.NewMemory()
	tenants := store.NewTenantStore(kv)
	content := store.NewContentStore(kv, false)
	return NewTenantService(tenants, content, nil, nil), tenants
}

func TestTenantServiceCreateAndList(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTenantService(t)

	created, err := svc.Create(ctx, dto.TenantRequest{Name: "Lakeside Academy", Tagline: "Learn by the lake"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "modern", created.Template)
	assert.Equal(t, "inter", created.Font)

	tenants, err := svc.List(ctx)
	require.NoError(t, err)
	// The default tenant plus the new one, in insertion order.
	require.Len(t, tenants, 2)
	assert.Equal(t, store.DefaultTenantID, tenants[0].ID)
	assert.Equal(t, created.ID, tenants[1].ID)
}

func TestTenantServiceSetActiveUnknownSchool(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTenantService(t)

	_, err := svc.SetActive(ctx, dto.SetActiveTenantRequest{ID: "nope"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestTenantServiceDeleteLastRejected(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTenantService(t)

	err := svc.Delete(ctx, store.DefaultTenantID)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrLastTenant.Code, appErrors.FromError(err).Code)

	tenants, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tenants, 1)
}

func TestTenantServiceDeleteActiveSwitchesToRemaining(t *testing.T) {
	ctx := context.Background()
	svc, tenants := newTenantService(t)

	created, err := svc.Create(ctx, dto.TenantRequest{Name: "Lakeside Academy"})
	require.NoError(t, err)
	_, err = svc.SetActive(ctx, dto.SetActiveTenantRequest{ID: created.ID})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	id, err := tenants.ActiveID(ctx)
	require.NoError(t, err)
	assert.Equal(t, store.DefaultTenantID, id)
}

func TestTenantServiceBrandingFallsBackToRegistry(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTenantService(t)

	branding, err := svc.Branding(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Riverside High School", branding.Name)
	assert.Equal(t, "#1e40af", branding.PrimaryColor)
}

func TestTenantServiceSaveBranding(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTenantService(t)

	saved, err := svc.SaveBranding(ctx, dto.BrandingRequest{
		Name:         "Riverside Portal",
		PrimaryColor: "#112233",
		Template:     "classic",
		Font:         "roboto",
	})
	require.NoError(t, err)

	branding, err := svc.Branding(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, branding)
	assert.Equal(t, "classic", branding.Template)
}

func TestTenantServiceSaveBrandingRejectsUnknownTemplate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTenantService(t)

	_, err := svc.SaveBranding(ctx, dto.BrandingRequest{Name: "X", Template: "brutalist"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
