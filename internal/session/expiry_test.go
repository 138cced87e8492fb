package session

import (
	"testing"
	"time"
)

func TestIsExpired(t *testing.T) {
	tests := []struct {
		name    string
		session *Session
		now     time.Time
		want    bool
	}{
		{
			name:    "nil session",
			session: nil,
			now:     at(12, 0),
			want:    false,
		},
		{
			name:    "upcoming confirmed",
			session: confirmedAt("09:00", 60),
			now:     at(8, 0),
			want:    false,
		},
		{
			name:    "in progress",
			session: confirmedAt("09:00", 60),
			now:     at(9, 30),
			want:    false,
		},
		{
			name:    "exactly at window end",
			session: confirmedAt("09:00", 60),
			now:     at(10, 0),
			want:    false,
		},
		{
			name:    "one minute past window end",
			session: confirmedAt("09:00", 60),
			now:     at(10, 1),
			want:    true,
		},
		{
			name: "pending past its window",
			session: &Session{
				Date: "2025-06-01", Time: "09:00", Duration: 30, Status: StatusPending,
			},
			now:  at(11, 0),
			want: true,
		},
		{
			name: "completed never expired",
			session: &Session{
				Date: "2025-06-01", Time: "09:00", Duration: 60, Status: StatusCompleted,
			},
			now:  time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "cancelled never expired",
			session: &Session{
				Date: "2025-06-01", Time: "09:00", Duration: 60, Status: StatusCancelled,
			},
			now:  time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			want: false,
		},

		// Unparseable time falls back to date-only comparison.
		{
			name: "bad time same day",
			session: &Session{
				Date: "2025-06-01", Time: "garbage", Duration: 60, Status: StatusConfirmed,
			},
			now:  at(23, 0),
			want: false,
		},
		{
			name: "bad time past day",
			session: &Session{
				Date: "2025-05-31", Time: "garbage", Duration: 60, Status: StatusConfirmed,
			},
			now:  at(0, 30),
			want: true,
		},
		{
			name: "bad time future day",
			session: &Session{
				Date: "2025-06-02", Time: "garbage", Duration: 60, Status: StatusConfirmed,
			},
			now:  at(23, 0),
			want: false,
		},
		{
			name: "bad time and bad date",
			session: &Session{
				Date: "whenever", Time: "garbage", Duration: 60, Status: StatusConfirmed,
			},
			now:  at(12, 0),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsExpired(tt.session, tt.now); got != tt.want {
				t.Errorf("IsExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCountStats(t *testing.T) {
	sessions := []Session{
		{Date: "2025-06-01", Time: "09:00", Duration: 60, Status: StatusConfirmed}, // upcoming
		{Date: "2025-06-01", Time: "15:00", Duration: 30, Status: StatusPending},   // upcoming
		{Date: "2025-05-28", Time: "09:00", Duration: 60, Status: StatusConfirmed}, // expired
		{Date: "2025-05-28", Time: "garbage", Duration: 60, Status: StatusPending}, // expired via date fallback
		{Date: "2025-05-20", Time: "09:00", Duration: 60, Status: StatusCompleted},
		{Date: "2025-06-03", Time: "09:00", Duration: 60, Status: StatusCancelled},
	}
	now := at(8, 0)

	got := CountStats(sessions, now)
	want := Stats{Upcoming: 2, Expired: 2, Completed: 1, Cancelled: 1}
	if got != want {
		t.Errorf("CountStats() = %+v, want %+v", got, want)
	}
}

func TestCountStatsEmpty(t *testing.T) {
	if got := CountStats(nil, at(8, 0)); got != (Stats{}) {
		t.Errorf("CountStats(nil) = %+v, want zero stats", got)
	}
}
