package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"shelfmate/internal/models"
)

var _ list.Item = bookItem{}

// bookItem wraps [models.Book] to implement [list.Item].
type bookItem struct {
	book models.Book
}

func (i bookItem) FilterValue() string { return i.book.Title }

func (i bookItem) Title() string {
	if i.book.Favorite {
		return "⭐ " + i.book.Title
	}
	return i.book.Title
}

func (i bookItem) Description() string {
	return fmt.Sprintf("%s • %d/%d pages (%d%%) • 📅 %s",
		i.book.Status, i.book.PagesRead, i.book.TotalPages, i.book.Percent(), i.book.Deadline)
}
