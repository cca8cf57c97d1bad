package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MohamedREDA-24/AI-interview-agent/internal/model"
)

// memStore is an in-memory Store double. InTx holds the write lock for the
// whole function and restores a snapshot on error, which gives the same
// per-operation mutual exclusion and all-or-nothing semantics the pg store
// gets from transactions.
type memStore struct {
	mu       sync.Mutex
	slots    map[string]model.Slot
	sessions map[string]model.Session

	// injected faults for atomicity tests
	slotCreateErr    error
	sessionCreateErr error
}

var _ Store = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{
		slots:    make(map[string]model.Slot),
		sessions: make(map[string]model.Session),
	}
}

func (m *memStore) Slots() SlotStore { return &memSlotStore{store: m, locking: true} }

func (m *memStore) Sessions() SessionStore { return &memSessionStore{store: m, locking: true} }

func (m *memStore) InTx(_ context.Context, fn func(slots SlotStore, sessions SessionStore) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	slotSnap := make(map[string]model.Slot, len(m.slots))
	for k, v := range m.slots {
		slotSnap[k] = v
	}
	sessionSnap := make(map[string]model.Session, len(m.sessions))
	for k, v := range m.sessions {
		sessionSnap[k] = v
	}

	err := fn(&memSlotStore{store: m}, &memSessionStore{store: m})
	if err != nil {
		m.slots = slotSnap
		m.sessions = sessionSnap
	}
	return err
}

// memSlotStore locks per call when used outside a transaction.
type memSlotStore struct {
	store   *memStore
	locking bool
}

func (s *memSlotStore) acquire() func() {
	if !s.locking {
		return func() {}
	}
	s.store.mu.Lock()
	return s.store.mu.Unlock
}

func (s *memSlotStore) Count(context.Context) (int64, error) {
	defer s.acquire()()
	return int64(len(s.store.slots)), nil
}

func (s *memSlotStore) Create(_ context.Context, slot *model.Slot) error {
	defer s.acquire()()
	if s.store.slotCreateErr != nil {
		return s.store.slotCreateErr
	}
	if slot.CreatedAt.IsZero() {
		slot.CreatedAt = time.Now()
	}
	s.store.slots[slot.ID] = *slot
	return nil
}

func (s *memSlotStore) GetByID(_ context.Context, id string) (*model.Slot, error) {
	defer s.acquire()()
	slot, ok := s.store.slots[id]
	if !ok {
		return nil, nil
	}
	return &slot, nil
}

func (s *memSlotStore) ListAvailable(_ context.Context, from, to time.Time) ([]*model.Slot, error) {
	defer s.acquire()()
	var out []*model.Slot
	for _, slot := range s.store.slots {
		if slot.IsAvailable && slot.StartTime.After(from) && slot.StartTime.Before(to) {
			copied := slot
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (s *memSlotStore) NextAvailable(_ context.Context, after time.Time) (*model.Slot, error) {
	defer s.acquire()()
	var best *model.Slot
	for _, slot := range s.store.slots {
		if !slot.IsAvailable || !slot.StartTime.After(after) {
			continue
		}
		if best == nil || slot.StartTime.Before(best.StartTime) {
			copied := slot
			best = &copied
		}
	}
	return best, nil
}

func (s *memSlotStore) Claim(_ context.Context, slotID, sessionID string) (int64, error) {
	defer s.acquire()()
	slot, ok := s.store.slots[slotID]
	if !ok || !slot.IsAvailable {
		return 0, nil
	}
	slot.IsAvailable = false
	slot.SessionID = &sessionID
	s.store.slots[slotID] = slot
	return 1, nil
}

func (s *memSlotStore) Release(_ context.Context, sessionID string) error {
	defer s.acquire()()
	for id, slot := range s.store.slots {
		if slot.SessionID != nil && *slot.SessionID == sessionID {
			slot.IsAvailable = true
			slot.SessionID = nil
			s.store.slots[id] = slot
		}
	}
	return nil
}

type memSessionStore struct {
	store   *memStore
	locking bool
}

func (s *memSessionStore) acquire() func() {
	if !s.locking {
		return func() {}
	}
	s.store.mu.Lock()
	return s.store.mu.Unlock
}

func (s *memSessionStore) Create(_ context.Context, session *model.Session) error {
	defer s.acquire()()
	if s.store.sessionCreateErr != nil {
		return s.store.sessionCreateErr
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	s.store.sessions[session.ID] = *session
	return nil
}

func (s *memSessionStore) GetByID(_ context.Context, id string) (*model.Session, error) {
	defer s.acquire()()
	session, ok := s.store.sessions[id]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

func (s *memSessionStore) UpdateStatus(_ context.Context, id string, from, to model.SessionStatus) (int64, error) {
	defer s.acquire()()
	session, ok := s.store.sessions[id]
	if !ok || session.Status != from {
		return 0, nil
	}
	session.Status = to
	s.store.sessions[id] = session
	return 1, nil
}

func (s *memSessionStore) List(_ context.Context, status *model.SessionStatus) ([]*model.Session, error) {
	defer s.acquire()()
	var out []*model.Session
	for _, session := range s.store.sessions {
		if status != nil && session.Status != *status {
			continue
		}
		copied := session
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledTime.Before(out[j].ScheduledTime) })
	return out, nil
}

func (s *memSessionStore) ListUpcoming(_ context.Context, from, to time.Time) ([]*model.Session, error) {
	defer s.acquire()()
	var out []*model.Session
	for _, session := range s.store.sessions {
		if session.Status != model.SessionStatusConfirmed {
			continue
		}
		if session.ScheduledTime.After(from) && session.ScheduledTime.Before(to) {
			copied := session
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledTime.Before(out[j].ScheduledTime) })
	return out, nil
}
