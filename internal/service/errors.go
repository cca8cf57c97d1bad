package service

import "errors"

var (
	// ErrSlotUnavailable means the requested slot is missing or already claimed.
	// Recoverable: the caller should re-offer the current slot list.
	ErrSlotUnavailable = errors.New("slot is not available")

	// ErrNoSlotsAvailable means no available slot exists after "now".
	ErrNoSlotsAvailable = errors.New("no available slots found")

	// ErrSessionNotFound means no session with the given id is in a state
	// the operation can act on.
	ErrSessionNotFound = errors.New("session not found")
)
