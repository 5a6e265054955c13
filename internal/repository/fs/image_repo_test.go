package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/my-shop/go-backend/internal/cfg"
	"github.com/my-shop/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImageRepo(t *testing.T) (*ImageRepo, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "static", "images")
	repo := NewImageRepo(&cfg.ImagesCfg{Dir: dir, PublicPrefix: "/static/images"})
	return repo, dir
}

func TestImageSave(t *testing.T) {
	repo, dir := newImageRepo(t)

	url, err := repo.Save(context.Background(), "hero shot!.PNG", []byte("png-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/static/images/hero_shot__"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(url), entries[0].Name())
}

func TestImageSaveRejectsUnknownExtension(t *testing.T) {
	repo, _ := newImageRepo(t)

	_, err := repo.Save(context.Background(), "payload.exe", []byte("nope"))
	assert.ErrorIs(t, err, e.ErrUnsupportedMediaType)

	_, err = repo.Save(context.Background(), "noext", []byte("nope"))
	assert.ErrorIs(t, err, e.ErrUnsupportedMediaType)
}

func TestImageListFiltersAndSorts(t *testing.T) {
	repo, dir := newImageRepo(t)
	require.NoError(t, os.MkdirAll(dir, 0o755))

	for _, name := range []string{"b.jpg", "a.png", "notes.txt", "c.GIF"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	images, err := repo.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/static/images/a.png",
		"/static/images/b.jpg",
		"/static/images/c.GIF",
	}, images)
}

func TestImageListMissingDir(t *testing.T) {
	repo, _ := newImageRepo(t)

	images, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, images)
}
