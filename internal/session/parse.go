package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidSessionTime is returned when a session's date/time fields cannot
// be resolved to a real calendar instant.
var ErrInvalidSessionTime = errors.New("invalid session time")

// ParseInstant resolves a session's date and time fields into one absolute
// instant in loc. The date may carry an ISO "T..." suffix, which is ignored.
// Supported time formats:
// - 24-hour: "HH:mm" or "HH:mm:ss" (e.g., "14:00", "09:45:00")
// - 12-hour: "hh:mm AM/PM" (e.g., "2:00 PM", "09:45 am")
func ParseInstant(sessionDate, sessionTime string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	datePart := strings.TrimSpace(sessionDate)
	if i := strings.IndexByte(datePart, 'T'); i >= 0 {
		datePart = datePart[:i]
	}

	timePart, err := normalizeTime(strings.TrimSpace(sessionTime))
	if err != nil {
		return time.Time{}, err
	}

	stamp := datePart + "T" + timePart
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.ParseInLocation(layout, stamp, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q %q", ErrInvalidSessionTime, sessionDate, sessionTime)
}

// normalizeTime rewrites a 12-hour "hh:mm AM/PM" string into zero-padded
// 24-hour "HH:MM:00". Strings without an AM/PM token pass through unchanged.
func normalizeTime(s string) (string, error) {
	upper := strings.ToUpper(s)
	if !strings.Contains(upper, "AM") && !strings.Contains(upper, "PM") {
		return s, nil
	}

	tokens := strings.Fields(s)
	if len(tokens) != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidSessionTime, s)
	}
	period := strings.ToUpper(tokens[1])
	if period != "AM" && period != "PM" {
		return "", fmt.Errorf("%w: %q", ErrInvalidSessionTime, s)
	}

	parts := strings.Split(tokens[0], ":")
	if len(parts) < 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidSessionTime, s)
	}
	hour, err1 := strconv.Atoi(parts[0])
	minute, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidSessionTime, s)
	}

	switch {
	case period == "PM" && hour != 12:
		hour += 12
	case period == "AM" && hour == 12:
		hour = 0
	}

	return fmt.Sprintf("%02d:%02d:00", hour, minute), nil
}
