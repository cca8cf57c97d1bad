package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/MohamedREDA-24/AI-interview-agent/internal/model"
)

// SessionService drives the session state machine and answers session
// queries. Transitions start from confirmed; completed and cancelled are
// terminal, so a second transition on the same session reports
// ErrSessionNotFound just like an unknown id.
type SessionService struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
}

func NewSessionService(store Store, logger *zap.Logger) *SessionService {
	return &SessionService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// CancelSession transitions a confirmed session to cancelled and releases
// its slot back to the pool, both inside one atomic unit.
func (s *SessionService) CancelSession(ctx context.Context, sessionID string) error {
	err := s.store.InTx(ctx, func(slots SlotStore, sessions SessionStore) error {
		affected, err := sessions.UpdateStatus(ctx, sessionID, model.SessionStatusConfirmed, model.SessionStatusCancelled)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrSessionNotFound
		}

		return slots.Release(ctx, sessionID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Session cancelled", zap.String("session_id", sessionID))
	return nil
}

// CompleteSession transitions a confirmed session to completed. The slot
// stays claimed: a completed interview has used up its hour.
func (s *SessionService) CompleteSession(ctx context.Context, sessionID string) error {
	affected, err := s.store.Sessions().UpdateStatus(ctx, sessionID, model.SessionStatusConfirmed, model.SessionStatusCompleted)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSessionNotFound
	}

	s.logger.Info("Session completed", zap.String("session_id", sessionID))
	return nil
}

// GetSessionDetails returns the full session record.
func (s *SessionService) GetSessionDetails(ctx context.Context, sessionID string) (*model.Session, error) {
	session, err := s.store.Sessions().GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session details: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	return session, nil
}

// ListSessions returns all sessions ordered by scheduled time. A non-nil
// status narrows the list to that status.
func (s *SessionService) ListSessions(ctx context.Context, status *model.SessionStatus) ([]*model.Session, error) {
	sessions, err := s.store.Sessions().List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	return sessions, nil
}

// ListUpcomingSessions returns confirmed sessions scheduled strictly inside
// the next hoursAhead hours, ordered by scheduled time.
func (s *SessionService) ListUpcomingSessions(ctx context.Context, hoursAhead int) ([]*model.Session, error) {
	now := s.now()
	to := now.Add(time.Duration(hoursAhead) * time.Hour)

	sessions, err := s.store.Sessions().ListUpcoming(ctx, now, to)
	if err != nil {
		return nil, fmt.Errorf("list upcoming sessions: %w", err)
	}

	return sessions, nil
}
