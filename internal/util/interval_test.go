package util

import (
	"testing"
	"time"
)

func TestParseInterval(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  time.Duration
		wantError bool
	}{
		{
			name:     "bare integer means seconds",
			input:    "60",
			expected: 60 * time.Second,
		},
		{
			name:     "single second",
			input:    "1",
			expected: time.Second,
		},
		{
			name:     "duration string - seconds",
			input:    "90s",
			expected: 90 * time.Second,
		},
		{
			name:     "duration string - minutes",
			input:    "2m",
			expected: 2 * time.Minute,
		},
		{
			name:     "duration string - mixed",
			input:    "1m30s",
			expected: time.Minute + 30*time.Second,
		},
		{
			name:      "invalid format - letters",
			input:     "abc",
			wantError: true,
		},
		{
			name:      "empty string",
			input:     "",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInterval(tt.input)

			if tt.wantError {
				if err == nil {
					t.Errorf("ParseInterval(%q) expected error but got none", tt.input)
				}
				return
			}

			if err != nil {
				t.Errorf("ParseInterval(%q) unexpected error: %v", tt.input, err)
				return
			}
			if got != tt.expected {
				t.Errorf("ParseInterval(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
