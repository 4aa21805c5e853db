package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"shelfmate/internal/models"
	"shelfmate/internal/repositories"
	"shelfmate/internal/session"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	SignupView ViewState = iota
	LoginView
	LanguageView
	WelcomeView
	MenuView
	TrackerHomeView
	AddBookView
	ListBooksView
	EditBookView
)

// statusFilters is the status predicate cycle for the list view, wildcard first.
var statusFilters = []string{
	repositories.StatusFilterAll,
	string(models.StatusToRead),
	string(models.StatusReading),
	string(models.StatusCompleted),
}

// Model represents the TUI application state.
//
// The session is carried explicitly on the model and updated by the handlers;
// there is no ambient session store.
type Model struct {
	session  session.Session
	sessions *session.Manager
	creds    *repositories.CredentialRepository
	books    *repositories.BookRepository
	logger   *log.Logger

	view   ViewState
	width  int
	height int

	okMsg  string
	errMsg string

	auth authForm
	form bookForm

	// List view state
	mine      []models.Book
	bookList  list.Model
	listReady bool
	search    textinput.Model
	searching bool
	statusIdx int
	favOnly   bool
	editingID string

	menuIdx int
	help    help.Model
	keys    keyMap
}

// Opts contains the dependencies for creating a [Model].
type Opts struct {
	Session  session.Session
	Sessions *session.Manager
	Creds    *repositories.CredentialRepository
	Books    *repositories.BookRepository
	Logger   *log.Logger

	// Authenticated marks a restored remember-me session: the model starts
	// on the welcome view instead of the login form.
	Authenticated bool
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(opts Opts) *Model {
	m := &Model{
		session:  opts.Session,
		sessions: opts.Sessions,
		creds:    opts.Creds,
		books:    opts.Books,
		logger:   opts.Logger,
		view:     LoginView,
		help:     help.New(),
		keys:     newKeyMap(),
	}
	if opts.Authenticated {
		m.view = WelcomeView
	}
	m.auth = newAuthForm(m.tr())
	m.form = newBookForm(m.tr())
	m.search = textinput.New()
	m.search.Placeholder = m.tr()["list.search"]
	return m
}

// tr returns the string table for the session's language.
func (m *Model) tr() Translations {
	return T(m.session.Language)
}

// Init focuses the first form field and starts the cursor blink.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.listReady {
			m.bookList.SetSize(msg.Width-4, msg.Height-10)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.view {
		case SignupView:
			return m.handleSignupKeys(msg)
		case LoginView:
			return m.handleLoginKeys(msg)
		case LanguageView:
			return m.handleLanguageKeys(msg)
		case WelcomeView:
			return m.handleWelcomeKeys(msg)
		case MenuView:
			return m.handleMenuKeys(msg)
		case TrackerHomeView:
			return m.handleTrackerHomeKeys(msg)
		case AddBookView:
			return m.handleAddBookKeys(msg)
		case ListBooksView:
			return m.handleListBooksKeys(msg)
		case EditBookView:
			return m.handleEditBookKeys(msg)
		}
	}

	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case SignupView:
		return m.renderSignup()
	case LoginView:
		return m.renderLogin()
	case LanguageView:
		return m.renderLanguage()
	case WelcomeView:
		return m.renderWelcome()
	case MenuView:
		return m.renderMenu()
	case TrackerHomeView:
		return m.renderTrackerHome()
	case AddBookView:
		return m.renderAddBook()
	case ListBooksView:
		return m.renderListBooks()
	case EditBookView:
		return m.renderEditBook()
	default:
		return ""
	}
}

// setView transitions to v, clearing inline messages and the menu cursor.
// Validation errors never call this; they stay on the current view.
func (m *Model) setView(v ViewState) {
	m.view = v
	m.okMsg = ""
	m.errMsg = ""
	m.menuIdx = 0
}

// loadBooks refreshes the current user's records from the repository.
func (m *Model) loadBooks() {
	m.mine = m.books.ListForUser(m.session.Username)
}

// applyFilter re-runs the three list predicates and rebuilds the visible list.
func (m *Model) applyFilter() tea.Cmd {
	filtered := repositories.Filter(m.mine, m.search.Value(), statusFilters[m.statusIdx], m.favOnly)
	items := make([]list.Item, len(filtered))
	for i, b := range filtered {
		items[i] = bookItem{book: b}
	}

	if !m.listReady {
		delegate := list.NewDefaultDelegate()
		m.bookList = list.New(items, delegate, m.width-4, m.height-10)
		m.bookList.Title = m.tr()["list.title"]
		m.bookList.SetShowHelp(false)
		m.bookList.SetFilteringEnabled(false)
		m.listReady = true
		return nil
	}
	return m.bookList.SetItems(items)
}

// selectedBook returns the highlighted record, if any.
func (m *Model) selectedBook() (models.Book, bool) {
	item := m.bookList.SelectedItem()
	if item == nil {
		return models.Book{}, false
	}
	bi, ok := item.(bookItem)
	if !ok {
		return models.Book{}, false
	}
	return bi.book, true
}
