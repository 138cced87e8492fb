package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/ayanmanna123/sessionwatch/internal/session"
)

// View renders the current state of the model to a string.
func View(m Model) string {
	switch m.State {
	case stateList:
		return listView(m)
	case stateDetail:
		return detailView(m)
	case stateHelp:
		return HelpView(m.version)
	}
	return ""
}

func listView(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render("Mentoring Sessions"))
	b.WriteString("\n\n")

	if !m.Loaded {
		b.WriteString(Current.Unselected.Render("Waiting for session data..."))
		b.WriteString("\n")
	} else if len(m.Sessions) == 0 {
		b.WriteString(Current.Unselected.Render("No sessions scheduled"))
		b.WriteString("\n")
	} else {
		stats := session.CountStats(m.Sessions, m.Now)
		b.WriteString(Current.Help.Render(fmt.Sprintf(
			"%d upcoming • %d expired • %d completed • %d cancelled",
			stats.Upcoming, stats.Expired, stats.Completed, stats.Cancelled)))
		b.WriteString("\n\n")

		for i := range m.Sessions {
			s := &m.Sessions[i]
			v := session.Evaluate(s, m.Now)

			var line strings.Builder
			if i == m.Selected {
				line.WriteString(Current.Selected.Render("> "))
			} else {
				line.WriteString(Current.Unselected.Render("  "))
			}
			line.WriteString(badge(s, m.Now))
			line.WriteString(" ")

			label := sessionLabel(s)
			if i == m.Selected {
				line.WriteString(Current.Selected.Render(label))
			} else {
				line.WriteString(Current.Unselected.Render(label))
			}

			line.WriteString(Current.Help.Render(v.Message))
			if v.CanJoin {
				line.WriteString(Current.Join.Render("[join]"))
			}

			b.WriteString(line.String() + "\n")
		}
	}

	if m.ErrorMessage != "" {
		b.WriteString("\n" + Current.Error.Render(m.ErrorMessage))
	}

	b.WriteString("\n" + Current.Help.Render(m.Help.View(m.Keys.ForState(m.State))))
	return b.String()
}

func detailView(m Model) string {
	s := m.CurrentSession()
	if s == nil {
		return listView(m)
	}
	v := session.Evaluate(s, m.Now)

	var b strings.Builder
	b.WriteString(Current.Title.Render(sessionLabel(s)))
	b.WriteString("\n\n")

	b.WriteString(Current.Unselected.Render(fmt.Sprintf("%s at %s • %dm", s.Date, s.Time, s.Duration)))
	b.WriteString("\n")
	b.WriteString(" " + badge(s, m.Now))
	b.WriteString("\n\n")

	b.WriteString(Current.Countdown.Render(v.Message))
	b.WriteString("\n")

	if precise := preciseCountdown(s, v, m.Now); precise != "" {
		b.WriteString(Current.Unselected.Render(precise))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if v.CanJoin {
		b.WriteString(Current.Join.Render("Join is open"))
	} else {
		b.WriteString(Current.Help.Render("Join is locked"))
	}
	b.WriteString("\n")

	if m.ErrorMessage != "" {
		b.WriteString("\n" + Current.Error.Render(m.ErrorMessage))
	}

	b.WriteString("\n" + Current.Help.Render(m.Help.View(m.Keys.ForState(m.State))))
	return b.String()
}

// preciseCountdown renders a minute:second counter near the window edges,
// where the one-second detail cadence is worth showing.
func preciseCountdown(s *session.Session, v session.Verdict, now time.Time) string {
	if !v.DiffKnown {
		return ""
	}
	start, err := session.ParseInstant(s.Date, s.Time, now.Location())
	if err != nil {
		return ""
	}

	if v.InProgress {
		left := start.Add(time.Duration(s.Duration) * time.Minute).Sub(now)
		return fmt.Sprintf("%d:%02d remaining", int(left.Minutes()), int(left.Seconds())%60)
	}
	if v.StartingSoon {
		until := start.Sub(now)
		return fmt.Sprintf("%d:%02d until start", int(until.Minutes()), int(until.Seconds())%60)
	}
	return ""
}

// badge renders the status tag, overlaying "expired" on scheduled sessions
// whose window has fully passed.
func badge(s *session.Session, now time.Time) string {
	if session.IsExpired(s, now) {
		return Current.BadgeExpired.Render("[expired]")
	}
	switch s.Status {
	case session.StatusConfirmed:
		return Current.BadgeConfirmed.Render("[confirmed]")
	case session.StatusPending:
		return Current.BadgePending.Render("[pending]")
	case session.StatusCompleted:
		return Current.BadgeCompleted.Render("[completed]")
	case session.StatusCancelled:
		return Current.BadgeCancelled.Render("[cancelled]")
	default:
		return Current.BadgeCompleted.Render("[" + string(s.Status) + "]")
	}
}

func sessionLabel(s *session.Session) string {
	label := s.Topic
	if label == "" {
		label = s.ID
	}
	if s.Mentor != "" {
		label += " with " + s.Mentor
	}
	return label
}

// HelpView renders the static help screen; it doubles as the flag usage text.
func HelpView(version string) string {
	help := `Session Watch

Usage:
  sessionwatch [flags]

Flags:
  -s, --source string    Backend base URL or snapshot file with session data
  -r, --refresh string   List refresh cadence (e.g., "60", "90s"; default 60s)
  -z, --tz string        IANA time zone for session times (default local)
  -v, --version          Show version information
  -h, --help             Show help message

Examples:
  sessionwatch -s https://api.collablearn.example       # Watch the live backend
  sessionwatch -s sessions.json -r 30                   # Watch a snapshot, 30s refresh
  sessionwatch -s sessions.json -z Asia/Kolkata         # Resolve times in a fixed zone

Navigation:
  ↑/k, ↓/j  : Move selection
  Enter      : Open session detail (1s countdown)
  Esc        : Back to the list
  h/?        : Toggle this help
  q          : Quit

Press 'q' or 'Esc' to close help`

	if version != "" {
		help += "\n\nVersion: " + version
	}
	return Current.Help.Render(help)
}
