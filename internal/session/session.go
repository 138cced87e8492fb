// Package session implements the timing and lifecycle rules for mentoring
// sessions: resolving the backend's date/time fields to an instant, deciding
// whether a session can currently be joined, and classifying expiry.
package session

// Status is a session's lifecycle state as delivered by the booking backend.
// Transitions are driven by the backend; this package only reads the value.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Session is one scheduled mentoring appointment, in the shape the booking
// API returns it. Date may be a plain "YYYY-MM-DD" or a full ISO datetime;
// Time may be 24-hour "HH:mm" or 12-hour "hh:mm AM/PM".
type Session struct {
	ID       string `json:"id"`
	Mentor   string `json:"mentor,omitempty"`
	Topic    string `json:"topic,omitempty"`
	Date     string `json:"sessionDate"`
	Time     string `json:"sessionTime"`
	Duration int    `json:"duration"` // minutes, > 0
	Status   Status `json:"status"`
}
