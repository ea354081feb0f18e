package kvstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "portal.json")

	store, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "schools_list", `[{"id":"school-1"}]`))
	require.NoError(t, store.Set(ctx, "active_school_id", "school-1"))

	reopened, err := NewFile(path)
	require.NoError(t, err)

	value, ok, err := reopened.Get(ctx, "schools_list")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"school-1"}]`, value)

	value, ok, err = reopened.Get(ctx, "active_school_id")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "school-1", value)
}

func TestFileMissingDocumentStartsEmpty(t *testing.T) {
	ctx := context.Background()
	store, err := NewFile(filepath.Join(t.TempDir(), "nested", "portal.json"))
	require.NoError(t, err)

	_, ok, err := store.Get(ctx, "anything")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileClearEmptiesDocument(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "portal.json")

	store, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "a", "1"))
	require.NoError(t, store.Clear(ctx))

	reopened, err := NewFile(path)
	require.NoError(t, err)
	_, ok, err := reopened.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)
}
