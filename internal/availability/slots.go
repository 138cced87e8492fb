// Package availability derives bookable mentoring slots from a mentor's open
// window and groups them for day-by-day display.
package availability

import (
	"sort"
	"time"
)

// Slot is a half-open bookable interval [Start, End).
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DayGroup holds all slots that start on one calendar day, ordered by start.
type DayGroup struct {
	Day   time.Time
	Slots []Slot
}

// Generate returns the slots of length duration, advancing by step, that fit
// inside [windowStart, windowEnd) without overlapping any busy interval.
// Slots starting before now are skipped. All times are expected to share one
// location.
func Generate(windowStart, windowEnd time.Time, duration, step time.Duration, busy []Slot, now time.Time) []Slot {
	if duration <= 0 || step <= 0 {
		return nil
	}
	if !windowEnd.After(windowStart) {
		return nil
	}

	var slots []Slot
	for t := windowStart; !t.Add(duration).After(windowEnd); t = t.Add(step) {
		if t.Before(now) {
			continue
		}
		if overlapsAny(t, t.Add(duration), busy) {
			continue
		}
		slots = append(slots, Slot{Start: t, End: t.Add(duration)})
	}
	return slots
}

func overlapsAny(start, end time.Time, busy []Slot) bool {
	for _, b := range busy {
		// [start,end) overlaps [b.Start,b.End) iff start < b.End && b.Start < end.
		if start.Before(b.End) && b.Start.Before(end) {
			return true
		}
	}
	return false
}

// GroupByDay orders slots by start time and buckets them per calendar day.
// Groups come back in day order with Day normalized to midnight.
func GroupByDay(slots []Slot) []DayGroup {
	if len(slots) == 0 {
		return nil
	}

	ordered := make([]Slot, len(slots))
	copy(ordered, slots)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Start.Before(ordered[j].Start)
	})

	var groups []DayGroup
	for _, s := range ordered {
		day := midnight(s.Start)
		if len(groups) == 0 || !groups[len(groups)-1].Day.Equal(day) {
			groups = append(groups, DayGroup{Day: day})
		}
		last := &groups[len(groups)-1]
		last.Slots = append(last.Slots, s)
	}
	return groups
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
