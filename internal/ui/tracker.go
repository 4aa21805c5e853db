package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"shelfmate/internal/models"
	"shelfmate/internal/shared"
)

// bookForm is the add/edit form. Focus rows: 0 title, 1 pages, 2 total,
// 3 status (cycled with ←/→), 4 deadline, 5 favorite (toggled with space).
type bookForm struct {
	title     textinput.Model
	pages     textinput.Model
	total     textinput.Model
	deadline  textinput.Model
	statusIdx int
	favorite  bool
	focus     int
}

const bookFormRows = 6

func newBookForm(t Translations) bookForm {
	f := bookForm{
		title:    textinput.New(),
		pages:    textinput.New(),
		total:    textinput.New(),
		deadline: textinput.New(),
	}
	f.title.Placeholder = t["book.title"]
	f.pages.Placeholder = t["book.pages"]
	f.total.Placeholder = t["book.total"]
	f.deadline.Placeholder = t["book.deadline"]
	f.reset()
	return f
}

func (f *bookForm) reset() {
	f.title.SetValue("")
	f.pages.SetValue("0")
	f.total.SetValue("")
	f.deadline.SetValue(time.Now().Format(models.DeadlineLayout))
	f.statusIdx = 0
	f.favorite = false
	f.setFocus(0)
}

// populate loads an existing record into the form for editing.
func (f *bookForm) populate(b models.Book) {
	f.title.SetValue(b.Title)
	f.pages.SetValue(strconv.Itoa(b.PagesRead))
	f.total.SetValue(strconv.Itoa(b.TotalPages))
	f.deadline.SetValue(b.Deadline)
	f.statusIdx = 0
	for i, s := range models.Statuses {
		if s == b.Status {
			f.statusIdx = i
		}
	}
	f.favorite = b.Favorite
	f.setFocus(0)
}

func (f *bookForm) setFocus(i int) {
	f.focus = i
	for _, in := range []*textinput.Model{&f.title, &f.pages, &f.total, &f.deadline} {
		in.Blur()
	}
	switch i {
	case 0:
		f.title.Focus()
	case 1:
		f.pages.Focus()
	case 2:
		f.total.Focus()
	case 4:
		f.deadline.Focus()
	}
}

func (f *bookForm) cycle(delta int) {
	f.setFocus(((f.focus+delta)%bookFormRows + bookFormRows) % bookFormRows)
}

func (f *bookForm) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case 0:
		f.title, cmd = f.title.Update(msg)
	case 1:
		f.pages, cmd = f.pages.Update(msg)
	case 2:
		f.total, cmd = f.total.Update(msg)
	case 4:
		f.deadline, cmd = f.deadline.Update(msg)
	}
	return cmd
}

// toBook parses the form into a record. Field-level validation beyond number
// parsing is the repository's job.
func (f *bookForm) toBook() (models.Book, error) {
	pages, err := strconv.Atoi(strings.TrimSpace(f.pages.Value()))
	if err != nil {
		return models.Book{}, fmt.Errorf("%w: pages read must be a number", shared.ErrInvalidInput)
	}
	total, err := strconv.Atoi(strings.TrimSpace(f.total.Value()))
	if err != nil {
		return models.Book{}, fmt.Errorf("%w: total pages must be a number", shared.ErrInvalidInput)
	}
	return models.Book{
		Title:      f.title.Value(),
		PagesRead:  pages,
		TotalPages: total,
		Status:     models.Statuses[f.statusIdx],
		Deadline:   strings.TrimSpace(f.deadline.Value()),
		Favorite:   f.favorite,
	}, nil
}

func (m *Model) handleMenuKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "down", "tab":
		m.menuIdx = 1 - m.menuIdx
		return m, nil
	case "enter":
		if m.menuIdx == 0 {
			m.setView(TrackerHomeView)
			return m, nil
		}
		return m.logout()
	}
	return m, nil
}

// logout clears all session state, erases the persisted remember-me config
// and returns to the login view.
func (m *Model) logout() (tea.Model, tea.Cmd) {
	sess, err := m.sessions.Logout()
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	m.session = sess
	m.mine = nil
	m.listReady = false
	m.auth = newAuthForm(m.tr())
	m.form = newBookForm(m.tr())
	m.setView(LoginView)
	return m, nil
}

func (m *Model) handleTrackerHomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.setView(MenuView)
		return m, nil
	case "up", "shift+tab":
		m.menuIdx = (m.menuIdx + 2) % 3
		return m, nil
	case "down", "tab":
		m.menuIdx = (m.menuIdx + 1) % 3
		return m, nil
	case "enter":
		switch m.menuIdx {
		case 0:
			m.form.reset()
			m.setView(AddBookView)
			return m, textinput.Blink
		case 1:
			return m.openBookList()
		default:
			m.setView(MenuView)
			return m, nil
		}
	}
	return m, nil
}

// openBookList loads the user's records with fresh filters and shows the list.
func (m *Model) openBookList() (tea.Model, tea.Cmd) {
	m.loadBooks()
	m.search.SetValue("")
	m.search.Blur()
	m.searching = false
	m.statusIdx = 0
	m.favOnly = false
	cmd := m.applyFilter()
	m.setView(ListBooksView)
	return m, cmd
}

func (m *Model) handleAddBookKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.setView(TrackerHomeView)
		return m, nil
	case "tab", "down":
		m.form.cycle(1)
		return m, nil
	case "shift+tab", "up":
		m.form.cycle(-1)
		return m, nil
	case "left", "right":
		if m.form.focus == 3 {
			n := len(models.Statuses)
			if msg.String() == "left" {
				m.form.statusIdx = (m.form.statusIdx + n - 1) % n
			} else {
				m.form.statusIdx = (m.form.statusIdx + 1) % n
			}
			return m, nil
		}
	case " ":
		if m.form.focus == 5 {
			m.form.favorite = !m.form.favorite
			return m, nil
		}
	case "enter":
		book, err := m.form.toBook()
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		added, err := m.books.Add(m.session.Username, book)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		// Record added, form reset, view unchanged.
		m.form.reset()
		m.errMsg = ""
		m.okMsg = fmt.Sprintf(m.tr()["add.success"], added.Title)
		return m, nil
	}

	return m, m.form.updateFocused(msg)
}

func (m *Model) handleListBooksKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "esc", "enter":
			m.searching = false
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, tea.Batch(cmd, m.applyFilter())
	}

	switch msg.String() {
	case "esc":
		m.setView(TrackerHomeView)
		return m, nil
	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink
	case "s":
		m.statusIdx = (m.statusIdx + 1) % len(statusFilters)
		return m, m.applyFilter()
	case "f":
		m.favOnly = !m.favOnly
		return m, m.applyFilter()
	case "e":
		if b, ok := m.selectedBook(); ok {
			m.editingID = b.ID
			m.form.populate(b)
			m.setView(EditBookView)
			return m, textinput.Blink
		}
		return m, nil
	case "d":
		b, ok := m.selectedBook()
		if !ok {
			return m, nil
		}
		if err := m.books.Delete(m.session.Username, b.ID); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.loadBooks()
		m.errMsg = ""
		m.okMsg = m.tr()["list.deleted"]
		return m, m.applyFilter()
	}

	var cmd tea.Cmd
	m.bookList, cmd = m.bookList.Update(msg)
	return m, cmd
}

func (m *Model) handleEditBookKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.setView(ListBooksView)
		return m, nil
	case "tab", "down":
		m.form.cycle(1)
		return m, nil
	case "shift+tab", "up":
		m.form.cycle(-1)
		return m, nil
	case "left", "right":
		if m.form.focus == 3 {
			n := len(models.Statuses)
			if msg.String() == "left" {
				m.form.statusIdx = (m.form.statusIdx + n - 1) % n
			} else {
				m.form.statusIdx = (m.form.statusIdx + 1) % n
			}
			return m, nil
		}
	case " ":
		if m.form.focus == 5 {
			m.form.favorite = !m.form.favorite
			return m, nil
		}
	case "enter":
		book, err := m.form.toBook()
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		book.ID = m.editingID
		if err := m.books.Update(m.session.Username, book); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.loadBooks()
		m.setView(ListBooksView)
		m.okMsg = m.tr()["list.updated"]
		return m, m.applyFilter()
	}

	return m, m.form.updateFocused(msg)
}

func (m *Model) renderMenu() string {
	t := m.tr()
	var b strings.Builder
	b.WriteString(styles.title.Render(t["menu.title"]))
	b.WriteString("\n\n")
	b.WriteString(renderMenuOptions([]string{t["menu.tracker"], t["menu.logout"]}, m.menuIdx))
	b.WriteString(m.renderMessages())

	helpKeys := []key.Binding{m.keys.up, m.keys.down, m.keys.enter, m.keys.quit}
	b.WriteString("\n" + m.help.ShortHelpView(helpKeys))
	return b.String()
}

func (m *Model) renderTrackerHome() string {
	t := m.tr()
	var b strings.Builder
	b.WriteString(styles.title.Render(t["tracker.title"]))
	b.WriteString("\n\n")
	b.WriteString(renderMenuOptions([]string{t["tracker.add"], t["tracker.list"], t["tracker.back"]}, m.menuIdx))
	b.WriteString(m.renderMessages())

	helpKeys := []key.Binding{m.keys.up, m.keys.down, m.keys.enter, m.keys.back, m.keys.quit}
	b.WriteString("\n" + m.help.ShortHelpView(helpKeys))
	return b.String()
}

func (m *Model) renderAddBook() string {
	return m.renderBookForm(m.tr()["add.title"])
}

func (m *Model) renderEditBook() string {
	return m.renderBookForm(m.tr()["edit.title"])
}

func (m *Model) renderBookForm(title string) string {
	t := m.tr()
	f := &m.form
	var b strings.Builder
	b.WriteString(styles.title.Render(title))
	b.WriteString("\n\n")
	b.WriteString(t["book.title"] + "\n" + f.title.View() + "\n\n")
	b.WriteString(t["book.pages"] + "\n" + f.pages.View() + "\n\n")
	b.WriteString(t["book.total"] + "\n" + f.total.View() + "\n\n")
	b.WriteString(renderStatusRow(t["book.status"], f.statusIdx, f.focus == 3))
	b.WriteString("\n\n")
	b.WriteString(t["book.deadline"] + "\n" + f.deadline.View() + "\n\n")
	b.WriteString(renderCheckbox(t["book.favorite"], f.favorite, f.focus == 5))
	b.WriteString("\n")
	b.WriteString(m.renderMessages())

	helpKeys := []key.Binding{m.keys.next, m.keys.enter, m.keys.back, m.keys.quit}
	b.WriteString("\n" + m.help.ShortHelpView(helpKeys))
	return b.String()
}

func (m *Model) renderListBooks() string {
	t := m.tr()
	var b strings.Builder
	b.WriteString(t["list.search"] + " " + m.search.View() + "\n")
	b.WriteString(fmt.Sprintf("%s: %s   ", t["list.filter.status"], statusFilters[m.statusIdx]))
	b.WriteString(renderCheckbox(t["list.filter.fav"], m.favOnly, false))
	b.WriteString("\n\n")

	if m.listReady && len(m.bookList.Items()) > 0 {
		b.WriteString(m.bookList.View())
	} else {
		b.WriteString(styles.help.Render(t["list.empty"]))
	}
	b.WriteString("\n")
	b.WriteString(m.renderMessages())

	helpKeys := []key.Binding{m.keys.search, m.keys.status, m.keys.fav, m.keys.edit, m.keys.del, m.keys.back}
	b.WriteString("\n" + m.help.ShortHelpView(helpKeys))
	return b.String()
}

func renderStatusRow(label string, statusIdx int, focused bool) string {
	line := fmt.Sprintf("%s: ◀ %s ▶", label, models.Statuses[statusIdx])
	if focused {
		return styles.warn.Render("> " + line)
	}
	return "  " + line
}

func renderMenuOptions(options []string, cursor int) string {
	var b strings.Builder
	for i, opt := range options {
		if i == cursor {
			b.WriteString(styles.warn.Render("> "+opt) + "\n")
		} else {
			b.WriteString("  " + opt + "\n")
		}
	}
	return b.String()
}
