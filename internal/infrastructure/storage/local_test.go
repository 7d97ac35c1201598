package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_UploadURLDelete(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/evidence/")
	require.NoError(t, err)

	err = s.Upload(ctx, "deliveries/q1/photo.jpg", strings.NewReader("jpeg"), 4, "image/jpeg")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(s.Root(), "deliveries", "q1", "photo.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", string(data))

	url, err := s.URL(ctx, "deliveries/q1/photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/evidence/deliveries/q1/photo.jpg", url)

	require.NoError(t, s.Delete(ctx, "deliveries/q1/photo.jpg"))
	_, err = os.Stat(filepath.Join(s.Root(), "deliveries", "q1", "photo.jpg"))
	assert.True(t, os.IsNotExist(err))

	// second delete is a no-op
	assert.NoError(t, s.Delete(ctx, "deliveries/q1/photo.jpg"))
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)

	err = s.Upload(context.Background(), "../escape.txt", strings.NewReader("x"), 1, "")
	assert.ErrorIs(t, err, ErrInvalidPath)

	err = s.Delete(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestLocalStorage_UploadDoesNotOverwrite(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)

	require.NoError(t, s.Upload(ctx, "a.jpg", strings.NewReader("one"), 3, ""))
	assert.Error(t, s.Upload(ctx, "a.jpg", strings.NewReader("two"), 3, ""))
}

func TestLocalStorage_ListOlderThan(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)

	require.NoError(t, s.Upload(ctx, "deliveries/old.jpg", strings.NewReader("old"), 3, ""))
	require.NoError(t, s.Upload(ctx, "deliveries/new.jpg", strings.NewReader("new"), 3, ""))
	require.NoError(t, s.Upload(ctx, "reports/x.pdf", strings.NewReader("pdf"), 3, ""))

	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(s.Root(), "deliveries", "old.jpg"), past, past))
	require.NoError(t, os.Chtimes(filepath.Join(s.Root(), "reports", "x.pdf"), past, past))

	objs, err := s.ListOlderThan(ctx, "deliveries/", time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	require.Len(t, objs, 1)
	assert.Equal(t, "deliveries/old.jpg", objs[0].Path)
	assert.Equal(t, int64(3), objs[0].Size)
}

func TestLocalStorage_ListOlderThanMissingPrefix(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)

	objs, err := s.ListOlderThan(context.Background(), "deliveries/", time.Now())
	require.NoError(t, err)
	assert.Empty(t, objs)

	_, err = s.ListOlderThan(context.Background(), "../etc", time.Now())
	assert.ErrorIs(t, err, ErrInvalidPath)
}
