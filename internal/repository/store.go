package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MohamedREDA-24/AI-interview-agent/internal/service"
)

// Store bundles the repositories behind the service storage contract and
// owns the transactional boundary.
type Store struct {
	pool     *pgxpool.Pool
	slots    *SlotRepository
	sessions *SessionRepository
}

var _ service.Store = (*Store)(nil)

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		pool:     pool,
		slots:    NewSlotRepository(pool),
		sessions: NewSessionRepository(pool),
	}
}

func (s *Store) Slots() service.SlotStore { return s.slots }

func (s *Store) Sessions() service.SessionStore { return s.sessions }

// InTx runs fn with repositories bound to a single transaction. The
// transaction commits only if fn returns nil; any error rolls everything
// back, so a claimed slot can never outlive a failed session insert.
func (s *Store) InTx(ctx context.Context, fn func(slots service.SlotStore, sessions service.SessionStore) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(s.slots.WithTx(tx), s.sessions.WithTx(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
