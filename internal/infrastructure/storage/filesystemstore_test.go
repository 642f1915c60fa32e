package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FilesystemStore {
	t.Helper()
	store, err := NewFilesystemStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestFilesystemStore_PutAndOpen(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	path, err := store.Put(ctx, "cir_abc/art_1.wav", "audio/wav", strings.NewReader("wav-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "cir_abc/art_1.wav", path)

	r, err := store.Open(ctx, path)
	require.NoError(t, err)
	defer r.Close()

	content, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "wav-bytes", string(content))
}

func TestFilesystemStore_PutRejectsBadKeys(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, key := range []string{"", "../outside.wav", "a/../../outside.wav", "/etc/passwd"} {
		_, err := store.Put(ctx, key, "audio/wav", strings.NewReader("x"))
		assert.Error(t, err, "key %q should be rejected", key)
	}
}

func TestFilesystemStore_PutLeavesNoPartialObject(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	reader := io.MultiReader(strings.NewReader("partial"), &failingReader{})
	_, err := store.Put(ctx, "cir_abc/art_2.wav", "audio/wav", reader)
	require.Error(t, err)

	_, err = store.Open(ctx, "cir_abc/art_2.wav")
	assert.Error(t, err)

	// The temp file is cleaned up as well.
	entries, err := os.ReadDir(filepath.Join(store.rootDir, "cir_abc"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFilesystemStore_Remove(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Put(ctx, "cir_abc/art_3.wav", "audio/wav", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(ctx, "cir_abc/art_3.wav"))

	_, err = store.Open(ctx, "cir_abc/art_3.wav")
	assert.Error(t, err)

	// Removing an absent object is not an error.
	assert.NoError(t, store.Remove(ctx, "cir_abc/art_3.wav"))
}

type failingReader struct{}

func (f *failingReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}
