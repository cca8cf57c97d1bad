package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MohamedREDA-24/AI-interview-agent/internal/model"
)

// DefaultCandidateName substitutes a blank candidate name instead of
// rejecting the booking.
const DefaultCandidateName = "Unknown Candidate"

// BookingRequest carries everything needed to book an interview session.
// SlotID is optional: when empty the engine picks the earliest available
// slot after now.
type BookingRequest struct {
	CandidateName  string `json:"candidate_name"`
	CandidateEmail string `json:"candidate_email"`
	CandidatePhone string `json:"candidate_phone"`
	SlotID         string `json:"slot_id"`
	Notes          string `json:"notes"`
}

// BookingService claims a slot and creates a session as one atomic unit.
type BookingService struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
}

func NewBookingService(store Store, logger *zap.Logger) *BookingService {
	return &BookingService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// BookSession books an interview session and returns the new session id.
// Exactly one slot transitions available→claimed and exactly one session row
// is created with status confirmed; a failure in either leaves both stores
// untouched. A requested slot that is missing or claimed fails with
// ErrSlotUnavailable; an exhausted pool fails with ErrNoSlotsAvailable.
func (s *BookingService) BookSession(ctx context.Context, req BookingRequest) (string, error) {
	name := strings.TrimSpace(req.CandidateName)
	if name == "" {
		name = DefaultCandidateName
	}

	sessionID := uuid.NewString()
	var claimed *model.Slot

	err := s.store.InTx(ctx, func(slots SlotStore, sessions SessionStore) error {
		var err error
		if req.SlotID != "" {
			claimed, err = s.claimRequested(ctx, slots, req.SlotID, sessionID)
		} else {
			claimed, err = s.claimEarliest(ctx, slots, sessionID)
		}
		if err != nil {
			return err
		}

		return sessions.Create(ctx, &model.Session{
			ID:             sessionID,
			CandidateName:  name,
			CandidateEmail: req.CandidateEmail,
			CandidatePhone: req.CandidatePhone,
			ScheduledTime:  claimed.StartTime,
			Status:         model.SessionStatusConfirmed,
			Notes:          req.Notes,
		})
	})
	if err != nil {
		return "", err
	}

	s.logger.Info("Session booked",
		zap.String("session_id", sessionID),
		zap.String("slot_id", claimed.ID),
		zap.String("candidate", name),
		zap.Time("scheduled_time", claimed.StartTime),
	)

	return sessionID, nil
}

// claimRequested claims a caller-chosen slot. The conditional update is the
// race guard: losing it to a concurrent booking surfaces as zero affected rows.
func (s *BookingService) claimRequested(ctx context.Context, slots SlotStore, slotID, sessionID string) (*model.Slot, error) {
	slot, err := slots.GetByID(ctx, slotID)
	if err != nil {
		return nil, err
	}
	if slot == nil || !slot.IsAvailable {
		return nil, ErrSlotUnavailable
	}

	affected, err := slots.Claim(ctx, slotID, sessionID)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrSlotUnavailable
	}

	return slot, nil
}

// claimEarliest claims the earliest available slot after now.
func (s *BookingService) claimEarliest(ctx context.Context, slots SlotStore, sessionID string) (*model.Slot, error) {
	slot, err := slots.NextAvailable(ctx, s.now())
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, ErrNoSlotsAvailable
	}

	affected, err := slots.Claim(ctx, slot.ID, sessionID)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// The row was locked by NextAvailable, so a lost claim here means
		// the store broke the lock contract.
		return nil, ErrSlotUnavailable
	}

	return slot, nil
}
