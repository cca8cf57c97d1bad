package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MohamedREDA-24/AI-interview-agent/internal/model"
	"github.com/MohamedREDA-24/AI-interview-agent/internal/repository/base"
)

type SlotRepository struct {
	db base.Querier
}

func NewSlotRepository(pool *pgxpool.Pool) *SlotRepository {
	return &SlotRepository{db: pool}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *SlotRepository) WithTx(tx pgx.Tx) *SlotRepository {
	return &SlotRepository{db: tx}
}

// Count returns the total number of slot rows.
func (r *SlotRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM slots`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count slots: %w", err)
	}
	return count, nil
}

// Create inserts a new slot.
func (r *SlotRepository) Create(ctx context.Context, slot *model.Slot) error {
	query := `
		INSERT INTO slots (slot_id, start_time, end_time, is_available)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := r.db.QueryRow(
		ctx, query,
		slot.ID,
		slot.StartTime,
		slot.EndTime,
		slot.IsAvailable,
	).Scan(&slot.CreatedAt)

	if err != nil {
		return fmt.Errorf("create slot: %w", err)
	}

	return nil
}

// GetByID returns a slot by id, or nil if it does not exist.
func (r *SlotRepository) GetByID(ctx context.Context, id string) (*model.Slot, error) {
	query := `
		SELECT slot_id, start_time, end_time, is_available, session_id, created_at
		FROM slots
		WHERE slot_id = $1
	`

	var slot model.Slot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&slot.ID,
		&slot.StartTime,
		&slot.EndTime,
		&slot.IsAvailable,
		&slot.SessionID,
		&slot.CreatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get slot by id: %w", err)
	}

	return &slot, nil
}

// ListAvailable returns available slots whose start falls inside (from, to).
func (r *SlotRepository) ListAvailable(ctx context.Context, from, to time.Time) ([]*model.Slot, error) {
	query := `
		SELECT slot_id, start_time, end_time, is_available, session_id, created_at
		FROM slots
		WHERE is_available = TRUE
		  AND start_time > $1
		  AND start_time < $2
		ORDER BY start_time
	`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list available slots: %w", err)
	}
	defer rows.Close()

	var slots []*model.Slot
	for rows.Next() {
		var slot model.Slot
		err := rows.Scan(
			&slot.ID,
			&slot.StartTime,
			&slot.EndTime,
			&slot.IsAvailable,
			&slot.SessionID,
			&slot.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		slots = append(slots, &slot)
	}

	return slots, rows.Err()
}

// NextAvailable returns the earliest available slot starting after the given
// instant. The row is locked (FOR UPDATE SKIP LOCKED), so this is meant to run
// inside a transaction that will claim it.
func (r *SlotRepository) NextAvailable(ctx context.Context, after time.Time) (*model.Slot, error) {
	query := `
		SELECT slot_id, start_time, end_time, is_available, session_id, created_at
		FROM slots
		WHERE is_available = TRUE
		  AND start_time > $1
		ORDER BY start_time
		LIMIT 1
		FOR UPDATE SKIP LOCKED
	`

	var slot model.Slot
	err := r.db.QueryRow(ctx, query, after).Scan(
		&slot.ID,
		&slot.StartTime,
		&slot.EndTime,
		&slot.IsAvailable,
		&slot.SessionID,
		&slot.CreatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("next available slot: %w", err)
	}

	return &slot, nil
}

// Claim marks a slot unavailable and ties it to a session. Returns the number
// of affected rows: 0 means the slot does not exist or is already claimed.
func (r *SlotRepository) Claim(ctx context.Context, slotID, sessionID string) (int64, error) {
	query := `
		UPDATE slots
		SET is_available = FALSE, session_id = $1
		WHERE slot_id = $2 AND is_available = TRUE
	`

	tag, err := r.db.Exec(ctx, query, sessionID, slotID)
	if err != nil {
		return 0, fmt.Errorf("claim slot: %w", err)
	}

	return tag.RowsAffected(), nil
}

// Release frees the slot claimed by a session.
func (r *SlotRepository) Release(ctx context.Context, sessionID string) error {
	query := `
		UPDATE slots
		SET is_available = TRUE, session_id = NULL
		WHERE session_id = $1
	`

	if _, err := r.db.Exec(ctx, query, sessionID); err != nil {
		return fmt.Errorf("release slot: %w", err)
	}

	return nil
}
