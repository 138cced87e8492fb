package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayanmanna123/sessionwatch/internal/session"
)

// state represents the different states of the TUI.
type state int

const (
	stateList state = iota
	stateDetail
	stateHelp
)

// Model holds the current state of the UI: the session list, the selection,
// and the instant the last tick delivered. Verdicts are recomputed from these
// on every render, never stored.
type Model struct {
	State        state
	Selected     int
	Sessions     []session.Session
	Now          time.Time
	Loc          *time.Location
	Loaded       bool
	ErrorMessage string
	Keys         KeyMap
	Help         help.Model

	version  string
	returnTo state
}

// InitialModel returns the initial model for the TUI. Session instants are
// resolved in loc; pass nil for the system zone.
func InitialModel(loc *time.Location) Model {
	if loc == nil {
		loc = time.Local
	}
	return Model{
		State: stateList,
		Loc:   loc,
		Now:   time.Now().In(loc),
		Keys:  DefaultKeys(),
		Help:  NewHelpModel(),
	}
}

// SetVersion sets the version string shown in the help view.
func (m *Model) SetVersion(v string) {
	m.version = v
}

// CurrentSession returns the selected session, or nil when the list is empty.
func (m Model) CurrentSession() *session.Session {
	if m.Selected < 0 || m.Selected >= len(m.Sessions) {
		return nil
	}
	return &m.Sessions[m.Selected]
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := Update(msg, m)
	return newModel, cmd
}

// View implements tea.Model
func (m Model) View() string {
	return View(m)
}
