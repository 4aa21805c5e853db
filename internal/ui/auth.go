package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"shelfmate/internal/models"
)

// authForm holds the two credential inputs shared by signup and login, plus
// the login-only remember toggle as a third focusable row.
type authForm struct {
	username textinput.Model
	password textinput.Model
	focus    int
	remember bool
}

func newAuthForm(t Translations) authForm {
	u := textinput.New()
	u.Placeholder = t["login.username"]
	u.Focus()

	p := textinput.New()
	p.Placeholder = t["login.password"]
	p.EchoMode = textinput.EchoPassword

	return authForm{username: u, password: p}
}

func (f *authForm) reset() {
	f.username.SetValue("")
	f.password.SetValue("")
	f.remember = false
	f.setFocus(0)
}

// setFocus moves focus to row i (0 username, 1 password, 2 remember).
func (f *authForm) setFocus(i int) {
	f.focus = i
	f.username.Blur()
	f.password.Blur()
	switch i {
	case 0:
		f.username.Focus()
	case 1:
		f.password.Focus()
	}
}

func (f *authForm) cycle(delta, rows int) {
	f.setFocus(((f.focus+delta)%rows + rows) % rows)
}

// updateFocused forwards msg to whichever input owns the focus.
func (f *authForm) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case 0:
		f.username, cmd = f.username.Update(msg)
	case 1:
		f.password, cmd = f.password.Update(msg)
	}
	return cmd
}

func (m *Model) handleSignupKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.auth.reset()
		m.setView(LoginView)
		return m, nil
	case "tab", "down":
		m.auth.cycle(1, 2)
		return m, nil
	case "shift+tab", "up":
		m.auth.cycle(-1, 2)
		return m, nil
	case "enter":
		if err := m.creds.Register(m.auth.username.Value(), m.auth.password.Value()); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.auth.reset()
		m.setView(LoginView)
		m.okMsg = m.tr()["signup.success"]
		return m, nil
	}

	return m, m.auth.updateFocused(msg)
}

func (m *Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+n":
		m.auth.reset()
		m.setView(SignupView)
		return m, nil
	case "tab", "down":
		m.auth.cycle(1, 3)
		return m, nil
	case "shift+tab", "up":
		m.auth.cycle(-1, 3)
		return m, nil
	case " ":
		if m.auth.focus == 2 {
			m.auth.remember = !m.auth.remember
			return m, nil
		}
	case "enter":
		return m, m.submitLogin()
	}

	return m, m.auth.updateFocused(msg)
}

// submitLogin authenticates and, on success, persists the remember-me config
// and advances to language selection. Errors stay inline on the login view.
func (m *Model) submitLogin() tea.Cmd {
	username := m.auth.username.Value()
	ok, err := m.creds.Authenticate(username, m.auth.password.Value())
	if err != nil {
		m.errMsg = err.Error()
		return nil
	}
	if !ok {
		m.errMsg = m.tr()["login.error"]
		return nil
	}

	sess, err := m.sessions.Login(username, m.auth.remember, m.session.Language)
	if err != nil {
		m.errMsg = err.Error()
		return nil
	}
	m.session = sess
	m.auth.reset()
	m.setView(LanguageView)
	return nil
}

func (m *Model) handleLanguageKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "down", "left", "right", "tab":
		m.menuIdx = 1 - m.menuIdx
		return m, nil
	case "1":
		m.chooseLanguage(models.LangEnglish)
		return m, nil
	case "2":
		m.chooseLanguage(models.LangHindi)
		return m, nil
	case "enter":
		if m.menuIdx == 0 {
			m.chooseLanguage(models.LangEnglish)
		} else {
			m.chooseLanguage(models.LangHindi)
		}
		return m, nil
	}
	return m, nil
}

// chooseLanguage switches the in-memory session language and rebuilds the
// localized form placeholders. The choice is persisted on the next login,
// not immediately.
func (m *Model) chooseLanguage(lang models.Language) {
	m.session.Language = lang
	m.logger.Info("language selected", "lang", lang)
	m.auth = newAuthForm(m.tr())
	m.form = newBookForm(m.tr())
	m.search.Placeholder = m.tr()["list.search"]
	if m.listReady {
		m.bookList.Title = m.tr()["list.title"]
	}
	m.setView(WelcomeView)
}

func (m *Model) handleWelcomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		m.setView(MenuView)
	}
	return m, nil
}

func (m *Model) renderSignup() string {
	t := m.tr()
	var b strings.Builder
	b.WriteString(styles.title.Render(t["signup.title"]))
	b.WriteString("\n\n")
	b.WriteString(t["signup.username"] + "\n" + m.auth.username.View() + "\n\n")
	b.WriteString(t["signup.password"] + "\n" + m.auth.password.View() + "\n")
	b.WriteString(m.renderMessages())

	helpKeys := []key.Binding{m.keys.enter, m.keys.back, m.keys.quit}
	b.WriteString("\n" + m.help.ShortHelpView(helpKeys))
	return b.String()
}

func (m *Model) renderLogin() string {
	t := m.tr()
	var b strings.Builder
	b.WriteString(styles.title.Render(t["login.title"]))
	b.WriteString("\n\n")
	b.WriteString(t["login.username"] + "\n" + m.auth.username.View() + "\n\n")
	b.WriteString(t["login.password"] + "\n" + m.auth.password.View() + "\n\n")
	b.WriteString(renderCheckbox(t["login.remember"], m.auth.remember, m.auth.focus == 2))
	b.WriteString("\n")
	b.WriteString(m.renderMessages())

	signupKey := key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", m.tr()["login.signup"]))
	helpKeys := []key.Binding{m.keys.enter, signupKey, m.keys.quit}
	b.WriteString("\n" + m.help.ShortHelpView(helpKeys))
	return b.String()
}

func (m *Model) renderLanguage() string {
	t := m.tr()
	options := []string{string(models.LangEnglish), "हिन्दी"}
	var b strings.Builder
	b.WriteString(styles.title.Render(t["language.title"]))
	b.WriteString("\n\n")
	b.WriteString(renderMenuOptions(options, m.menuIdx))
	b.WriteString(m.renderMessages())

	helpKeys := []key.Binding{m.keys.up, m.keys.down, m.keys.enter, m.keys.quit}
	b.WriteString("\n" + m.help.ShortHelpView(helpKeys))
	return b.String()
}

func (m *Model) renderWelcome() string {
	t := m.tr()
	var b strings.Builder
	b.WriteString(styles.title.Render(fmt.Sprintf(t["welcome.title"], m.session.Username)))
	b.WriteString("\n\n" + t["welcome.body"] + "\n\n")
	b.WriteString(styles.ok.Render("▶ " + t["welcome.continue"]))
	b.WriteString("\n")

	helpKeys := []key.Binding{m.keys.enter, m.keys.quit}
	b.WriteString("\n" + m.help.ShortHelpView(helpKeys))
	return b.String()
}

// renderMessages renders the inline error/success lines shared by all views.
func (m *Model) renderMessages() string {
	var b strings.Builder
	if m.errMsg != "" {
		b.WriteString("\n" + styles.err.Render(m.errMsg) + "\n")
	}
	if m.okMsg != "" {
		b.WriteString("\n" + styles.ok.Render(m.okMsg) + "\n")
	}
	return b.String()
}

func renderCheckbox(label string, checked, focused bool) string {
	box := "[ ]"
	if checked {
		box = "[x]"
	}
	line := box + " " + label
	if focused {
		return styles.warn.Render("> " + line)
	}
	return "  " + line
}
