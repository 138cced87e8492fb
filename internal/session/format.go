package session

import "fmt"

// FormatSpan renders a minute count with the largest sensible units:
// days+hours above a day, hours+minutes above an hour, plain minutes below.
// The same tiers are used for "starts in" and "ended ... ago" phrasing.
func FormatSpan(minutes int) string {
	if minutes < 0 {
		minutes = -minutes
	}
	switch {
	case minutes >= 1440:
		return fmt.Sprintf("%dd%dh", minutes/1440, (minutes%1440)/60)
	case minutes >= 60:
		return fmt.Sprintf("%dh%dm", minutes/60, minutes%60)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
