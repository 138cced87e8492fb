package session

import (
	"errors"
	"testing"
	"time"
)

func TestParseInstant(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		timeStr   string
		wantHour  int
		wantMin   int
		wantError bool
	}{
		// 24-hour format
		{
			name:     "24h with seconds",
			date:     "2025-06-01",
			timeStr:  "14:00:00",
			wantHour: 14,
			wantMin:  0,
		},
		{
			name:     "24h without seconds",
			date:     "2025-06-01",
			timeStr:  "09:45",
			wantHour: 9,
			wantMin:  45,
		},
		{
			name:     "24h midnight",
			date:     "2025-06-01",
			timeStr:  "00:00",
			wantHour: 0,
			wantMin:  0,
		},

		// 12-hour format
		{
			name:     "12h PM afternoon",
			date:     "2025-06-01",
			timeStr:  "2:00 PM",
			wantHour: 14,
			wantMin:  0,
		},
		{
			name:     "12h AM morning",
			date:     "2025-06-01",
			timeStr:  "09:00 AM",
			wantHour: 9,
			wantMin:  0,
		},
		{
			name:     "12h midnight",
			date:     "2025-06-01",
			timeStr:  "12:00 AM",
			wantHour: 0,
			wantMin:  0,
		},
		{
			name:     "12h noon",
			date:     "2025-06-01",
			timeStr:  "12:00 PM",
			wantHour: 12,
			wantMin:  0,
		},
		{
			name:     "12h lowercase period",
			date:     "2025-06-01",
			timeStr:  "9:45 pm",
			wantHour: 21,
			wantMin:  45,
		},

		// ISO datetime in the date field: time portion is ignored
		{
			name:     "ISO date with T suffix",
			date:     "2025-06-01T00:00:00.000Z",
			timeStr:  "10:30",
			wantHour: 10,
			wantMin:  30,
		},

		// Error cases
		{
			name:      "hours out of range",
			date:      "2025-06-01",
			timeStr:   "25:99",
			wantError: true,
		},
		{
			name:      "empty time",
			date:      "2025-06-01",
			timeStr:   "",
			wantError: true,
		},
		{
			name:      "period without minutes",
			date:      "2025-06-01",
			timeStr:   "9 PM",
			wantError: true,
		},
		{
			name:      "too many tokens",
			date:      "2025-06-01",
			timeStr:   "9:00 PM UTC",
			wantError: true,
		},
		{
			name:      "garbage date",
			date:      "not-a-date",
			timeStr:   "10:00",
			wantError: true,
		},
		{
			name:      "impossible calendar day",
			date:      "2025-02-30",
			timeStr:   "10:00",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInstant(tt.date, tt.timeStr, time.UTC)

			if tt.wantError {
				if err == nil {
					t.Errorf("ParseInstant(%q, %q) expected error but got none", tt.date, tt.timeStr)
				} else if !errors.Is(err, ErrInvalidSessionTime) {
					t.Errorf("ParseInstant(%q, %q) error = %v, want ErrInvalidSessionTime", tt.date, tt.timeStr, err)
				}
				return
			}

			if err != nil {
				t.Errorf("ParseInstant(%q, %q) unexpected error: %v", tt.date, tt.timeStr, err)
				return
			}
			if got.Hour() != tt.wantHour || got.Minute() != tt.wantMin {
				t.Errorf("ParseInstant(%q, %q) got %02d:%02d, want %02d:%02d",
					tt.date, tt.timeStr, got.Hour(), got.Minute(), tt.wantHour, tt.wantMin)
			}
			if got.Year() != 2025 || got.Month() != time.June || got.Day() != 1 {
				t.Errorf("ParseInstant(%q, %q) got date %v, want 2025-06-01", tt.date, tt.timeStr, got)
			}
		})
	}
}

func TestParseInstantMatchesManual24h(t *testing.T) {
	// "2:00 PM" on date D must resolve to the same instant as D"T14:00:00".
	pairs := []struct {
		twelve     string
		twentyFour string
	}{
		{"2:00 PM", "14:00:00"},
		{"12:00 AM", "00:00:00"},
		{"12:00 PM", "12:00:00"},
		{"11:59 PM", "23:59:00"},
		{"1:05 AM", "01:05:00"},
	}

	for _, p := range pairs {
		a, err := ParseInstant("2025-06-01", p.twelve, time.UTC)
		if err != nil {
			t.Fatalf("ParseInstant 12h %q: %v", p.twelve, err)
		}
		b, err := ParseInstant("2025-06-01", p.twentyFour, time.UTC)
		if err != nil {
			t.Fatalf("ParseInstant 24h %q: %v", p.twentyFour, err)
		}
		if !a.Equal(b) {
			t.Errorf("%q parsed to %v, want %v (from %q)", p.twelve, a, b, p.twentyFour)
		}
	}
}
