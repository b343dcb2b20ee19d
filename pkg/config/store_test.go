package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathStoreLoadMissingFile(t *testing.T) {
	store := NewPathStore(filepath.Join(t.TempDir(), "paths.json"))

	paths, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestPathStoreRoundTrip(t *testing.T) {
	store := NewPathStore(filepath.Join(t.TempDir(), "nested", "paths.json"))

	require.NoError(t, store.Save([]string{"/a", "/b"}))

	paths, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"/a", "/b"}, paths)
}

func TestPathStoreAdd(t *testing.T) {
	store := NewPathStore(filepath.Join(t.TempDir(), "paths.json"))

	added, err := store.Add("/a")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = store.Add("/a")
	require.NoError(t, err)
	assert.False(t, added, "adding an existing path should be a no-op")

	paths, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"/a"}, paths)
}

func TestPathStoreRemove(t *testing.T) {
	store := NewPathStore(filepath.Join(t.TempDir(), "paths.json"))
	require.NoError(t, store.Save([]string{"/a", "/b", "/c"}))

	removed, err := store.Remove("/b")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = store.Remove("/b")
	require.NoError(t, err)
	assert.False(t, removed)

	paths, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"/a", "/c"}, paths)
}

func TestPathStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paths.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := NewPathStore(path).Load()
	require.Error(t, err)
}
