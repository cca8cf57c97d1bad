package model

import "time"

// Slot is a fixed one-hour bookable interview interval.
type Slot struct {
	ID          string    `json:"slot_id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	IsAvailable bool      `json:"is_available"`
	SessionID   *string   `json:"session_id"` // set iff the slot is claimed
	CreatedAt   time.Time `json:"created_at"`
}

// FormattedStart renders the start instant for humans, e.g.
// "Monday, June 02 at 09:00 AM".
func (s *Slot) FormattedStart() string {
	return FormatSlotTime(s.StartTime)
}

// FormatSlotTime is the canonical human rendering of schedule instants.
func FormatSlotTime(t time.Time) string {
	return t.Format("Monday, January 02 at 03:04 PM")
}
