package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayanmanna123/sessionwatch/internal/session"
)

// tickMsg drives the one-second countdown while a detail view is open.
type tickMsg time.Time

// sessionsMsg carries a freshly loaded session list and the instant it was
// loaded at. The refresh monitor in main sends one per list cadence.
type sessionsMsg struct {
	sessions []session.Session
	now      time.Time
}

// loadErrMsg reports a failed refresh; the previous list stays on screen.
type loadErrMsg struct {
	err error
}

// SessionsLoaded builds the message the refresh monitor sends after a
// successful load.
func SessionsLoaded(sessions []session.Session, now time.Time) tea.Msg {
	return sessionsMsg{sessions: sessions, now: now}
}

// LoadFailed builds the message the refresh monitor sends when a load fails.
func LoadFailed(err error) tea.Msg {
	return loadErrMsg{err: err}
}

// Update handles messages and updates the model accordingly.
func Update(msg tea.Msg, m Model) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionsMsg:
		m.Sessions = msg.sessions
		m.Now = msg.now.In(m.Loc)
		m.Loaded = true
		m.ErrorMessage = ""
		if m.Selected >= len(m.Sessions) {
			m.Selected = len(m.Sessions) - 1
		}
		if m.Selected < 0 {
			m.Selected = 0
		}
		return m, nil

	case loadErrMsg:
		m.ErrorMessage = msg.err.Error()
		return m, nil

	case tickMsg:
		// The countdown timer belongs to the detail view; once the view is
		// gone the chain of tick commands ends here.
		if m.State != stateDetail {
			return m, nil
		}
		m.Now = time.Time(msg).In(m.Loc)
		return m, tick()

	case tea.KeyMsg:
		return handleKey(msg, m)
	}

	return m, nil
}

func handleKey(msg tea.KeyMsg, m Model) (Model, tea.Cmd) {
	switch m.State {
	case stateList:
		switch {
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.Keys.ToggleHelp):
			m.returnTo = stateList
			m.State = stateHelp
			return m, nil
		case key.Matches(msg, m.Keys.Up):
			if m.Selected > 0 {
				m.Selected--
			}
			return m, nil
		case key.Matches(msg, m.Keys.Down):
			if m.Selected < len(m.Sessions)-1 {
				m.Selected++
			}
			return m, nil
		case key.Matches(msg, m.Keys.Select):
			if len(m.Sessions) == 0 {
				return m, nil
			}
			m.State = stateDetail
			m.Now = time.Now().In(m.Loc)
			return m, tick()
		}

	case stateDetail:
		switch {
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.Keys.Back):
			m.State = stateList
			return m, nil
		case key.Matches(msg, m.Keys.ToggleHelp):
			m.returnTo = stateDetail
			m.State = stateHelp
			return m, nil
		}

	case stateHelp:
		switch {
		case key.Matches(msg, m.Keys.Quit), key.Matches(msg, m.Keys.Back), key.Matches(msg, m.Keys.ToggleHelp):
			m.State = m.returnTo
			if m.State == stateDetail {
				return m, tick()
			}
			return m, nil
		}
	}

	return m, nil
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
