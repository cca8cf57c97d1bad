package service

import (
	"context"
	"time"

	"github.com/MohamedREDA-24/AI-interview-agent/internal/model"
)

// SlotStore persists bookable slots.
type SlotStore interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, slot *model.Slot) error
	GetByID(ctx context.Context, id string) (*model.Slot, error)
	ListAvailable(ctx context.Context, from, to time.Time) ([]*model.Slot, error)
	// NextAvailable returns the earliest available slot starting after the
	// given instant, or nil if none exists. Inside InTx the returned row is
	// held exclusively until the transaction ends.
	NextAvailable(ctx context.Context, after time.Time) (*model.Slot, error)
	// Claim conditionally marks a slot unavailable for a session. A zero
	// affected-row count means the slot was missing or already claimed.
	Claim(ctx context.Context, slotID, sessionID string) (int64, error)
	Release(ctx context.Context, sessionID string) error
}

// SessionStore persists interview sessions.
type SessionStore interface {
	Create(ctx context.Context, session *model.Session) error
	GetByID(ctx context.Context, id string) (*model.Session, error)
	// UpdateStatus transitions a session between statuses. A zero
	// affected-row count means no session with that id is in the from state.
	UpdateStatus(ctx context.Context, id string, from, to model.SessionStatus) (int64, error)
	List(ctx context.Context, status *model.SessionStatus) ([]*model.Session, error)
	ListUpcoming(ctx context.Context, from, to time.Time) ([]*model.Session, error)
}

// Store is the storage dependency injected into the services. InTx gives the
// caller both stores bound to one atomic unit: every statement inside fn
// either commits together or not at all.
type Store interface {
	Slots() SlotStore
	Sessions() SessionStore
	InTx(ctx context.Context, fn func(slots SlotStore, sessions SessionStore) error) error
}
