package blobstore

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := New(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestStorePutAndOpen(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	name, size, err := store.Put(strings.NewReader("%PDF-1.4 content"), PrefixPDF, ".pdf")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(name, PrefixPDF+"/"))
	assert.True(t, strings.HasSuffix(name, ".pdf"))
	assert.Equal(t, int64(16), size)
	assert.True(t, store.Exists(name))

	f, err := store.Open(name)
	require.NoError(t, err)
	defer f.Close()

	content, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 content", string(content))
}

func TestStorePut_GeneratesUniqueNames(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	a, _, err := store.Put(strings.NewReader("one"), PrefixCover, ".jpg")
	require.NoError(t, err)
	b, _, err := store.Put(strings.NewReader("two"), PrefixCover, ".jpg")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestStoreDelete_MissingBlobIsNotAnError(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	name, _, err := store.Put(strings.NewReader("content"), PrefixCover, ".jpg")
	require.NoError(t, err)

	require.NoError(t, store.Delete(name))
	assert.False(t, store.Exists(name))

	// Deleting again is fine.
	require.NoError(t, store.Delete(name))
	require.NoError(t, store.Delete("covers/never-existed.jpg"))
}

func TestStorePath_TraversalStaysInsideRoot(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	assert.False(t, store.Exists("../../../etc/passwd"))
	assert.False(t, store.Exists("covers/../../secret"))

	_, err := store.Open("../outside")
	require.Error(t, err)
}

func TestStoreExists_EmptyNameIsFalse(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	assert.False(t, store.Exists(""))
}
