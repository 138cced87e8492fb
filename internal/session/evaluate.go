package session

import (
	"fmt"
	"math"
	"time"
)

// JoinEarlyWindow is how many minutes before the scheduled start a confirmed
// session opens for joining.
const JoinEarlyWindow = 5

// Verdict is the result of evaluating one session at one instant. It is
// recomputed on every tick and never cached; two calls with the same inputs
// return identical verdicts.
type Verdict struct {
	CanJoin bool
	Message string

	// TimeLeftMinutes counts down to the scheduled start, then holds the
	// minutes remaining in the session window (negative once the window has
	// fully elapsed). Only meaningful when TimeLeftKnown is set.
	TimeLeftMinutes int
	TimeLeftKnown   bool

	// DiffMinutes is the raw floor of minutes until the scheduled start
	// (negative after it). Expiry classification keys off this value.
	DiffMinutes int
	DiffKnown   bool

	StartingSoon bool
	InProgress   bool
	Pending      bool
	ExpiredLike  bool
}

// Evaluate computes the joinability verdict for s at the given instant. It
// never panics or returns an error; unusable input degrades to a disabled
// verdict with a human-readable message.
func Evaluate(s *Session, now time.Time) (v Verdict) {
	defer func() {
		if r := recover(); r != nil {
			v = Verdict{Message: "Error"}
		}
	}()

	if s == nil {
		return Verdict{Message: "No session data"}
	}

	start, err := ParseInstant(s.Date, s.Time, now.Location())
	if err != nil {
		return Verdict{Message: "Invalid time"}
	}

	// Floor rather than truncate so a partially elapsed minute counts as
	// elapsed, matching "minutes until" semantics on both sides of zero.
	diff := int(math.Floor(start.Sub(now).Minutes()))

	switch s.Status {
	case StatusCancelled:
		return Verdict{Message: "Cancelled", ExpiredLike: true, DiffMinutes: diff, DiffKnown: true}
	case StatusCompleted:
		return Verdict{Message: "Completed", DiffMinutes: diff, DiffKnown: true}
	case StatusPending, StatusConfirmed:
		return evaluateScheduled(s, diff)
	default:
		return Verdict{Message: "Status: " + string(s.Status), DiffMinutes: diff, DiffKnown: true}
	}
}

// evaluateScheduled handles the pending/confirmed states, where timing decides
// everything. Pending sessions are never joinable; confirmation is a hard gate.
func evaluateScheduled(s *Session, diff int) Verdict {
	v := Verdict{
		DiffMinutes:  diff,
		DiffKnown:    true,
		Pending:      s.Status == StatusPending,
		StartingSoon: diff > 0 && diff <= JoinEarlyWindow,
		InProgress:   diff <= 0 && diff >= -s.Duration,
	}
	v.CanJoin = s.Status == StatusConfirmed && diff <= JoinEarlyWindow && diff >= -s.Duration

	switch {
	case v.CanJoin && diff > 0:
		v.Message = fmt.Sprintf("Starts in %dm", diff)
		v.TimeLeftMinutes, v.TimeLeftKnown = diff, true
	case v.CanJoin:
		elapsed := -diff
		v.Message = fmt.Sprintf("In progress (%dm)", elapsed)
		v.TimeLeftMinutes, v.TimeLeftKnown = s.Duration-elapsed, true
	case diff > 0:
		v.Message = "Starts in " + FormatSpan(diff)
		if v.Pending {
			v.Message = "Pending - " + v.Message
		}
		v.TimeLeftMinutes, v.TimeLeftKnown = diff, true
	default:
		elapsed := -diff
		v.Message = "Started " + FormatSpan(elapsed) + " ago"
		v.TimeLeftMinutes, v.TimeLeftKnown = s.Duration-elapsed, true
		v.ExpiredLike = diff < -s.Duration
	}
	return v
}
