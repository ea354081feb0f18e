package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-portal-api/internal/models"
	"github.com/noah-isme/school-portal-api/pkg/kvstore"
)

func TestCredentialStoreSeedsDefaultsPerTenant(t *testing.T) {
	ctx := context.Background()
	store := NewCredentialStore(kvstore.NewMemory())

	users, err := store.ListForTenant(ctx, "school-1")
	require.NoError(t, err)
	require.Len(t, users, 3)

	roles := map[models.Role]string{}
	for _, u := range users {
		roles[u.Role] = u.Email
		assert.Equal(t, "school-1", u.TenantID)
	}
	assert.Equal(t, SeedAdminEmail, roles[models.RoleAdmin])
	assert.Equal(t, SeedTeacherEmail, roles[models.RoleTeacher])
	assert.Equal(t, SeedViewerEmail, roles[models.RoleViewer])
}

func TestCredentialStoreValidateExactMatch(t *testing.T) {
	ctx := context.Background()
	store := NewCredentialStore(kvstore.NewMemory())

	info, ok, err := store.Validate(ctx, SeedAdminEmail, SeedAdminSecret, "school-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.RoleAdmin, info.Role)
	assert.NotEmpty(t, info.ID)

	_, ok, err = store.Validate(ctx, SeedAdminEmail, "wrong", "school-1")
	require.NoError(t, err)
	assert.False(t, ok)

	// Case matters for the secret and the email.
	_, ok, err = store.Validate(ctx, "ADMIN@school.edu", SeedAdminSecret, "school-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCredentialStoreTenantIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewCredentialStore(kvstore.NewMemory())

	custom := models.User{
		ID:        "u-custom",
		Email:     "principal@lakeside.edu",
		Name:      "Principal",
		Secret:    "s3cret",
		Role:      models.RoleAdmin,
		TenantID:  "school-2",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, store.Add(ctx, custom))

	// The record validates only within its owning tenant.
	_, ok, err := store.Validate(ctx, custom.Email, custom.Secret, "school-1")
	require.NoError(t, err)
	assert.False(t, ok)

	info, ok, err := store.Validate(ctx, custom.Email, custom.Secret, "school-2")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "u-custom", info.ID)

	// school-2 also got its defaults seeded when first observed.
	users, err := store.ListForTenant(ctx, "school-2")
	require.NoError(t, err)
	assert.Len(t, users, 4)
}

func TestCredentialStoreUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	store := NewCredentialStore(kvstore.NewMemory())

	users, err := store.ListForTenant(ctx, "school-1")
	require.NoError(t, err)
	target := users[1]

	target.Name = "Renamed Teacher"
	ok, err := store.Update(ctx, target.ID, target)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = store.Delete(ctx, target.ID, "school-1")
	require.NoError(t, err)
	require.True(t, ok)

	remaining, err := store.ListForTenant(ctx, "school-1")
	require.NoError(t, err)
	assert.Len(t, remaining, 2)

	ok, err = store.Delete(ctx, target.ID, "school-1")
	require.NoError(t, err)
	assert.False(t, ok)
}
