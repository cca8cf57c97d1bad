package model

import "time"

type SessionStatus string

const (
	SessionStatusConfirmed SessionStatus = "confirmed"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"
)

// ValidSessionStatus reports whether s is one of the known statuses.
func ValidSessionStatus(s SessionStatus) bool {
	switch s {
	case SessionStatusConfirmed, SessionStatusCompleted, SessionStatusCancelled:
		return true
	}
	return false
}

// Session is a booked interview tied to the slot it claimed.
// ScheduledTime is copied from the slot at booking time, not a live reference.
type Session struct {
	ID             string        `json:"session_id"`
	CandidateName  string        `json:"candidate_name"`
	CandidateEmail string        `json:"candidate_email"`
	CandidatePhone string        `json:"candidate_phone"`
	ScheduledTime  time.Time     `json:"scheduled_time"`
	Status         SessionStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	ReminderSent   bool          `json:"reminder_sent"`
	Notes          string        `json:"notes"`
}

// FormattedTime renders the scheduled instant for humans.
func (s *Session) FormattedTime() string {
	return FormatSlotTime(s.ScheduledTime)
}
