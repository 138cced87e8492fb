package session

import (
	"strings"
	"time"
)

// IsExpired reports whether the session's whole scheduled window has passed
// without the backend marking it completed or cancelled. Completed and
// cancelled sessions have their own terminal state and are never expired.
//
// A session is expired once now is strictly more than Duration minutes past
// the scheduled start, the same cut-off at which it stops being joinable.
// When the precise instant cannot be parsed, only calendar dates are
// compared: same-day or future sessions are kept as not expired so a parse
// error cannot hide a session that may still be live.
func IsExpired(s *Session, now time.Time) bool {
	if s == nil {
		return false
	}
	switch s.Status {
	case StatusCompleted, StatusCancelled:
		return false
	}

	if v := Evaluate(s, now); v.DiffKnown {
		return v.DiffMinutes < -s.Duration
	}

	datePart := strings.TrimSpace(s.Date)
	if i := strings.IndexByte(datePart, 'T'); i >= 0 {
		datePart = datePart[:i]
	}
	day, err := time.ParseInLocation("2006-01-02", datePart, now.Location())
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return day.Before(today)
}

// Stats aggregates a session list for dashboard badges.
type Stats struct {
	Upcoming  int
	Expired   int
	Completed int
	Cancelled int
}

// CountStats classifies every session in one pass. Pending and confirmed
// sessions land in Upcoming or Expired depending on whether their window has
// passed; terminal states are counted as themselves.
func CountStats(sessions []Session, now time.Time) Stats {
	var st Stats
	for i := range sessions {
		s := &sessions[i]
		switch s.Status {
		case StatusCompleted:
			st.Completed++
		case StatusCancelled:
			st.Cancelled++
		default:
			if IsExpired(s, now) {
				st.Expired++
			} else {
				st.Upcoming++
			}
		}
	}
	return st
}
