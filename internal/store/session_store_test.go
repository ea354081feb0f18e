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

func TestSessionStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(kvstore.NewMemory())

	_, ok, err := store.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	session := models.Session{
		Token:     "abc",
		User:      models.UserInfo{ID: "u1", Role: models.RoleAdmin, TenantID: "school-1"},
		IssuedAt:  time.Now().UTC().Truncate(time.Second),
		ExpiresAt: time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second),
	}
	require.NoError(t, store.Put(ctx, session))

	got, ok, err := store.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, session.Token, got.Token)
	assert.Equal(t, session.User, got.User)

	require.NoError(t, store.Delete(ctx))
	_, ok, err = store.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionStoreMalformedRecordDiscarded(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	require.NoError(t, kv.Set(ctx, "auth_token", "not-json"))

	store := NewSessionStore(kv)
	_, ok, err := store.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// The broken record was removed, not just ignored.
	_, present, err := kv.Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.False(t, present)
}
