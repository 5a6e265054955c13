package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/my-shop/go-backend/internal/cfg"
	"github.com/my-shop/go-backend/internal/domain"
	"github.com/my-shop/go-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsRepo(t *testing.T) *SettingsRepo {
	t.Helper()
	path := filepath.Join(t.TempDir(), "instance", "settings.json")
	return NewSettingsRepo(&cfg.SettingsCfg{Path: path}, logger.NewSlogLogger())
}

func TestSettingsRoundTrip(t *testing.T) {
	repo := newSettingsRepo(t)

	saved := domain.SiteSettings{
		HeroImage:   "/static/images/hero_123.jpg",
		HeroOverlay: "rgba(0, 0, 0, 0.5)",
	}
	require.NoError(t, repo.Save(saved))

	assert.Equal(t, saved, repo.Load())
}

func TestSettingsMissingFileYieldsDefaults(t *testing.T) {
	repo := newSettingsRepo(t)

	assert.Equal(t, domain.DefaultSiteSettings(), repo.Load())
}

func TestSettingsCorruptFileYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo := NewSettingsRepo(&cfg.SettingsCfg{Path: path}, logger.NewSlogLogger())

	assert.Equal(t, domain.DefaultSiteSettings(), repo.Load())
}

func TestSettingsPartialDocumentKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"hero_image":"/x.jpg"}`), 0o644))

	repo := NewSettingsRepo(&cfg.SettingsCfg{Path: path}, logger.NewSlogLogger())
	settings := repo.Load()

	assert.Equal(t, "/x.jpg", settings.HeroImage)
	assert.Equal(t, domain.DefaultSiteSettings().HeroOverlay, settings.HeroOverlay)
}
