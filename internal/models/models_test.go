package models

import (
	"errors"
	"testing"

	"shelfmate/internal/shared"
)

func validBook() Book {
	return Book{
		Title:      "Dune",
		PagesRead:  40,
		TotalPages: 200,
		Status:     StatusReading,
		Deadline:   "2026-10-01",
		Owner:      "alice",
	}
}

func TestBookValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		if err := validBook().Validate(); err != nil {
			t.Errorf("expected valid book, got %v", err)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		cases := map[string]func(*Book){
			"blank title":    func(b *Book) { b.Title = "   " },
			"negative pages": func(b *Book) { b.PagesRead = -1 },
			"zero total":     func(b *Book) { b.TotalPages = 0 },
			"unknown status": func(b *Book) { b.Status = "Skimming" },
			"bad deadline":   func(b *Book) { b.Deadline = "next tuesday" },
		}

		for name, mutate := range cases {
			b := validBook()
			mutate(&b)
			if err := b.Validate(); !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("%s: expected ErrInvalidInput, got %v", name, err)
			}
		}
	})

	t.Run("EmptyDeadlineAllowed", func(t *testing.T) {
		b := validBook()
		b.Deadline = ""
		if err := b.Validate(); err != nil {
			t.Errorf("empty deadline should validate, got %v", err)
		}
	})
}

func TestBookPercent(t *testing.T) {
	cases := []struct {
		name  string
		page  int
		total int
		want  int
	}{
		{"zero progress", 0, 200, 0},
		{"floor not round", 50, 300, 16},
		{"complete", 200, 200, 100},
		{"over 100 preserved", 250, 200, 125},
		{"guard against zero total", 10, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := Book{PagesRead: tc.page, TotalPages: tc.total}
			if got := b.Percent(); got != tc.want {
				t.Errorf("Percent(%d/%d) = %d, want %d", tc.page, tc.total, got, tc.want)
			}
		})
	}
}

func TestSessionConfigEmpty(t *testing.T) {
	if !(SessionConfig{}).Empty() {
		t.Error("zero config should be empty")
	}
	if (SessionConfig{Username: "alice"}).Empty() {
		t.Error("config with username is not empty")
	}
	if (SessionConfig{Remember: true}).Empty() {
		t.Error("config with remember flag is not empty")
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range Statuses {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if Status("Paused").Valid() {
		t.Error("unknown status should be invalid")
	}
}
