package fs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/jimlawless/whereami"
	"github.com/my-shop/go-backend/internal/cfg"
	"github.com/my-shop/go-backend/internal/domain"
	"github.com/my-shop/go-backend/pkg/e"
	"github.com/my-shop/go-backend/pkg/logger"
)

// SettingsRepo keeps the site settings document as a JSON file. The document
// is advisory: a missing or unreadable file degrades to the defaults instead
// of failing the page.
type SettingsRepo struct {
	path   string
	logger logger.Logger
}

func NewSettingsRepo(cfg *cfg.SettingsCfg, logger logger.Logger) *SettingsRepo {
	return &SettingsRepo{
		path:   cfg.Path,
		logger: logger,
	}
}

// Load reads the settings document. It never fails: any read or decode
// problem yields the defaults, and fields absent from the file keep their
// default values.
func (s *SettingsRepo) Load() domain.SiteSettings {
	settings := domain.DefaultSiteSettings()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warnf("settings read failed, using defaults: %v", err)
		}

		return settings
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		s.logger.Warnf("settings decode failed, using defaults: %v", err)
		return domain.DefaultSiteSettings()
	}

	return settings
}

func (s *SettingsRepo) Save(settings domain.SiteSettings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
