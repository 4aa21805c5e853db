package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"shelfmate/internal/models"
	"shelfmate/internal/shared"
	"shelfmate/internal/ui"
)

// TUI launches the interactive reading tracker.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger(r.config.App.LogPath)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	// Remember-me bootstrap: a restored session skips the login form.
	sess, authenticated := r.sessions.Restore()
	if !authenticated && r.config.App.DefaultLanguage != "" {
		sess.Language = models.Language(r.config.App.DefaultLanguage)
	}

	model := ui.NewModel(ui.Opts{
		Session:       sess,
		Sessions:      r.sessions,
		Creds:         r.creds,
		Books:         r.books,
		Logger:        fileLogger,
		Authenticated: authenticated,
	})
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
