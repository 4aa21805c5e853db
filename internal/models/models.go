package models

import (
	"fmt"
	"strings"
	"time"

	"shelfmate/internal/shared"
)

// Status is the reading lifecycle state of a [Book].
type Status string

const (
	StatusToRead    Status = "To Read"
	StatusReading   Status = "Reading"
	StatusCompleted Status = "Completed"
)

// Statuses lists all valid states in display order.
var Statuses = []Status{StatusToRead, StatusReading, StatusCompleted}

// Valid reports whether s is one of the three known states.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Language is a display language. Only two hardcoded locales exist.
type Language string

const (
	LangEnglish Language = "English"
	LangHindi   Language = "Hindi"
)

// DeadlineLayout is the wire format for book deadlines.
const DeadlineLayout = "2006-01-02"

// Book represents a single reading entry owned by one user.
//
// PagesRead may exceed TotalPages; progress over 100% is preserved, not
// clamped.
type Book struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	PagesRead  int    `json:"page"`
	TotalPages int    `json:"total"`
	Status     Status `json:"status"`
	Deadline   string `json:"deadline"`
	Favorite   bool   `json:"favorite"`
	Owner      string `json:"user"`
}

// Validate checks if the book's data is valid and returns an error if not.
func (b Book) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return fmt.Errorf("%w: title must not be blank", shared.ErrInvalidInput)
	}
	if b.PagesRead < 0 {
		return fmt.Errorf("%w: pages read must not be negative", shared.ErrInvalidInput)
	}
	if b.TotalPages < 1 {
		return fmt.Errorf("%w: total pages must be at least 1", shared.ErrInvalidInput)
	}
	if !b.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", shared.ErrInvalidInput, b.Status)
	}
	if b.Deadline != "" {
		if _, err := time.Parse(DeadlineLayout, b.Deadline); err != nil {
			return fmt.Errorf("%w: deadline must be YYYY-MM-DD", shared.ErrInvalidInput)
		}
	}
	return nil
}

// Percent derives the displayed progress percentage: floor(page/total*100).
// Values above 100 are possible and intentional.
func (b Book) Percent() int {
	if b.TotalPages < 1 {
		return 0
	}
	return b.PagesRead * 100 / b.TotalPages
}

// SessionConfig is the persisted remember-me subset of the session.
//
// Written on login, overwritten with an empty object on logout. All fields
// are optional on the wire.
type SessionConfig struct {
	Username string   `json:"username,omitempty"`
	Remember bool     `json:"remember,omitempty"`
	Language Language `json:"lang,omitempty"`
}

// Empty reports whether the config carries no session at all.
func (c SessionConfig) Empty() bool {
	return c.Username == "" && !c.Remember && c.Language == ""
}
