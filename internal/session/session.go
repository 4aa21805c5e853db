// Package session tracks the authenticated user and implements remember-me.
//
// The session is an explicit value handed to screen handlers, not ambient
// state. The persisted subset (username, remember flag, language) lives in
// the config document managed by [repositories.ConfigRepository].
package session

import (
	"github.com/charmbracelet/log"

	"shelfmate/internal/models"
	"shelfmate/internal/repositories"
)

// Session is the in-memory session state.
type Session struct {
	Username string
	Language models.Language
	Remember bool
}

// Authenticated reports whether a user is logged in.
func (s Session) Authenticated() bool { return s.Username != "" }

// Manager bootstraps, persists and clears sessions via the config document.
type Manager struct {
	repo   *repositories.ConfigRepository
	logger *log.Logger
}

// NewManager creates a session [Manager] over the given config repository.
func NewManager(repo *repositories.ConfigRepository, logger *log.Logger) *Manager {
	return &Manager{repo: repo, logger: logger}
}

// Restore attempts remember-me auto-login from the persisted config.
//
// When the remember flag is set and a username is present, that username is
// adopted as the active user without re-checking credentials; the stored
// flag is implicitly trusted. The persisted language is restored alongside.
func (m *Manager) Restore() (Session, bool) {
	cfg := m.repo.Load()
	if !cfg.Remember || cfg.Username == "" {
		return Session{Language: models.LangEnglish}, false
	}

	lang := cfg.Language
	if lang == "" {
		lang = models.LangEnglish
	}
	m.logger.Info("restored remembered session", "user", cfg.Username, "lang", lang)
	return Session{Username: cfg.Username, Language: lang, Remember: true}, true
}

// Login records the active session and persists the remember-me subset.
func (m *Manager) Login(username string, remember bool, lang models.Language) (Session, error) {
	if lang == "" {
		lang = models.LangEnglish
	}
	cfg := models.SessionConfig{Username: username, Remember: remember, Language: lang}
	if err := m.repo.Save(cfg); err != nil {
		return Session{}, err
	}
	m.logger.Info("logged in", "user", username, "remember", remember)
	return Session{Username: username, Language: lang, Remember: remember}, nil
}

// Logout clears the in-memory session and erases the persisted config, so a
// fresh start never auto-logs-in afterwards.
func (m *Manager) Logout() (Session, error) {
	if err := m.repo.Clear(); err != nil {
		return Session{}, err
	}
	m.logger.Info("logged out")
	return Session{Language: models.LangEnglish}, nil
}
