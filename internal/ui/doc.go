// Package ui implements the interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI is a finite state machine over named screens:
//  1. [LoginView] / [SignupView] : Account entry points
//  2. [LanguageView] : Pick the display language (English / Hindi)
//  3. [WelcomeView] : Post-login greeting
//  4. [MenuView] : Main menu (tracker / logout)
//  5. [TrackerHomeView] : Tracker sub-menu (add / list / back)
//  6. [AddBookView] : New entry form
//  7. [ListBooksView] : Filterable book list with edit and delete
//  8. [EditBookView] : In-place edit form, returning to the list
//
// The [Model] implements bubbletea's standard Init/Update/View pattern. Each
// view owns its own input validation and requests its own transition; errors
// render inline on the current view and never transition. Every user action
// is a synchronous request/response cycle; there are no background commands.
//
// Keyboard navigation uses tab/shift+tab between form fields, enter to
// submit, esc to go back and ctrl+c to quit, with contextual help displayed
// via charmbracelet/bubbles/help.
package ui
