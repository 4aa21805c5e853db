package repositories

import (
	"fmt"
	"strings"

	"shelfmate/internal/models"
	"shelfmate/internal/shared"
	"shelfmate/internal/storage"
)

// StatusFilterAll is the wildcard value for the status filter predicate.
const StatusFilterAll = "All"

// BookRepository persists per-user reading entries in a single flat document.
type BookRepository struct {
	path string
}

// NewBookRepository creates a [BookRepository] backed by the books document at path.
func NewBookRepository(path string) *BookRepository {
	return &BookRepository{path: path}
}

// ListForUser returns username's books in storage (append) order.
//
// The isolation invariant holds by construction: records with a different
// owner tag never pass the filter.
func (r *BookRepository) ListForUser(username string) []models.Book {
	all := storage.LoadJSON(r.path, []models.Book{})
	var mine []models.Book
	for _, b := range all {
		if b.Owner == username {
			mine = append(mine, b)
		}
	}
	return mine
}

// Add appends a new record tagged with owner=username and rewrites the store.
// The title is trimmed; a blank title fails with [shared.ErrInvalidInput].
func (r *BookRepository) Add(username string, book models.Book) (models.Book, error) {
	book.Title = strings.TrimSpace(book.Title)
	book.Owner = username
	book.ID = shared.GenerateID()
	if err := book.Validate(); err != nil {
		return models.Book{}, err
	}

	mine := append(r.ListForUser(username), book)
	if err := r.saveUserBooks(username, mine); err != nil {
		return models.Book{}, err
	}
	return book, nil
}

// Update mutates the fields of the record matching updated.ID in place.
// The owner tag is fixed; updates cannot move a book between users.
func (r *BookRepository) Update(username string, updated models.Book) error {
	updated.Owner = username
	if err := updated.Validate(); err != nil {
		return err
	}

	mine := r.ListForUser(username)
	found := false
	for i, b := range mine {
		if b.ID == updated.ID {
			mine[i] = updated
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", shared.ErrBookNotFound, updated.ID)
	}
	return r.saveUserBooks(username, mine)
}

// Delete removes exactly one record by id and rewrites the store.
func (r *BookRepository) Delete(username, id string) error {
	mine := r.ListForUser(username)
	idx := -1
	for i, b := range mine {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", shared.ErrBookNotFound, id)
	}
	mine = append(mine[:idx], mine[idx+1:]...)
	return r.saveUserBooks(username, mine)
}

// saveUserBooks rewrites the whole document: every record owned by username
// is dropped and the given set appended. Last writer wins per user; there is
// no merge with concurrent writers.
func (r *BookRepository) saveUserBooks(username string, books []models.Book) error {
	all := storage.LoadJSON(r.path, []models.Book{})
	kept := make([]models.Book, 0, len(all)+len(books))
	for _, b := range all {
		if b.Owner != username {
			kept = append(kept, b)
		}
	}
	kept = append(kept, books...)
	return storage.SaveJSON(r.path, kept)
}

// Filter applies the list view's three predicates, ANDed: case-insensitive
// substring match on title, exact status match (or [StatusFilterAll]), and
// the favorites-only toggle. Pure read-time filter, no persistence effect.
func Filter(books []models.Book, query, status string, favoritesOnly bool) []models.Book {
	q := strings.ToLower(query)
	var out []models.Book
	for _, b := range books {
		matchTitle := strings.Contains(strings.ToLower(b.Title), q)
		matchStatus := status == StatusFilterAll || string(b.Status) == status
		matchFav := !favoritesOnly || b.Favorite
		if matchTitle && matchStatus && matchFav {
			out = append(out, b)
		}
	}
	return out
}
