package repositories

import (
	"shelfmate/internal/models"
	"shelfmate/internal/storage"
)

// ConfigRepository persists the remember-me session config document.
type ConfigRepository struct {
	path string
}

// NewConfigRepository creates a [ConfigRepository] backed by the session document at path.
func NewConfigRepository(path string) *ConfigRepository {
	return &ConfigRepository{path: path}
}

// Load reads the persisted config. An absent or unparseable document is an
// empty config, never an error.
func (r *ConfigRepository) Load() models.SessionConfig {
	return storage.LoadJSON(r.path, models.SessionConfig{})
}

// Save rewrites the config document.
func (r *ConfigRepository) Save(cfg models.SessionConfig) error {
	return storage.SaveJSON(r.path, cfg)
}

// Clear overwrites the document with an empty object, erasing auto-login.
func (r *ConfigRepository) Clear() error {
	return storage.SaveJSON(r.path, models.SessionConfig{})
}
