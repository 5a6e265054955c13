package fs

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jimlawless/whereami"
	"github.com/my-shop/go-backend/internal/cfg"
	"github.com/my-shop/go-backend/pkg/e"
)

var allowedImageExts = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".webp": {},
	".gif":  {},
}

// ImageRepo stores uploaded product images on the local filesystem under the
// static images directory and serves them by public URL path.
type ImageRepo struct {
	dir          string
	publicPrefix string
}

func NewImageRepo(cfg *cfg.ImagesCfg) *ImageRepo {
	return &ImageRepo{
		dir:          cfg.Dir,
		publicPrefix: cfg.PublicPrefix,
	}
}

// Save writes the upload under a collision-safe name derived from the
// original filename and the current time, and returns the public URL path.
// Files with an extension outside the allowed image set are rejected.
func (i *ImageRepo) Save(ctx context.Context, filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedImageExts[ext]; !ok {
		return "", e.Wrap(whereami.WhereAmI(), e.ErrUnsupportedMediaType)
	}

	name := sanitizeBaseName(strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)))
	stored := name + "_" + strconv.FormatInt(time.Now().UnixMilli(), 10) + ext

	if err := os.MkdirAll(i.dir, 0o755); err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	if err := os.WriteFile(filepath.Join(i.dir, stored), data, 0o644); err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return path.Join(i.publicPrefix, stored), nil
}

// List returns the public URL paths of stored images, sorted by filename. A
// missing directory yields an empty list.
func (i *ImageRepo) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(i.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if _, ok := allowedImageExts[ext]; !ok {
			continue
		}

		result = append(result, path.Join(i.publicPrefix, entry.Name()))
	}

	sort.Strings(result)
	return result, nil
}

// sanitizeBaseName keeps letters, digits, dash and underscore, replacing
// everything else with an underscore. An empty result becomes "image".
func sanitizeBaseName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	if b.Len() == 0 {
		return "image"
	}

	return b.String()
}
