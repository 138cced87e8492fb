package util

import (
	"fmt"
	"strconv"
	"time"
)

// ParseInterval parses a refresh cadence. Bare integers are seconds; anything
// else must be a valid duration string such as "90s" or "2m".
func ParseInterval(input string) (time.Duration, error) {
	if seconds, err := strconv.Atoi(input); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}

	interval, err := time.ParseDuration(input)
	if err != nil {
		return 0, fmt.Errorf("invalid interval format: %s", input)
	}
	return interval, nil
}
