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

type SessionRepository struct {
	db base.Querier
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: pool}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *SessionRepository) WithTx(tx pgx.Tx) *SessionRepository {
	return &SessionRepository{db: tx}
}

// Create inserts a new session row.
func (r *SessionRepository) Create(ctx context.Context, session *model.Session) error {
	query := `
		INSERT INTO sessions (session_id, candidate_name, candidate_email, candidate_phone,
		                      scheduled_time, status, reminder_sent, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err := r.db.QueryRow(
		ctx, query,
		session.ID,
		session.CandidateName,
		session.CandidateEmail,
		session.CandidatePhone,
		session.ScheduledTime,
		session.Status,
		session.ReminderSent,
		session.Notes,
	).Scan(&session.CreatedAt)

	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	return nil
}

// GetByID returns a session by id, or nil if it does not exist.
func (r *SessionRepository) GetByID(ctx context.Context, id string) (*model.Session, error) {
	query := `
		SELECT session_id, candidate_name, candidate_email, candidate_phone,
		       scheduled_time, status, created_at, reminder_sent, notes
		FROM sessions
		WHERE session_id = $1
	`

	var session model.Session
	err := r.db.QueryRow(ctx, query, id).Scan(
		&session.ID,
		&session.CandidateName,
		&session.CandidateEmail,
		&session.CandidatePhone,
		&session.ScheduledTime,
		&session.Status,
		&session.CreatedAt,
		&session.ReminderSent,
		&session.Notes,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session by id: %w", err)
	}

	return &session, nil
}

// UpdateStatus moves a session from one status to another. Returns the number
// of affected rows: 0 means no session with the given id is in the from status.
func (r *SessionRepository) UpdateStatus(ctx context.Context, id string, from, to model.SessionStatus) (int64, error) {
	query := `
		UPDATE sessions
		SET status = $1
		WHERE session_id = $2 AND status = $3
	`

	tag, err := r.db.Exec(ctx, query, to, id, from)
	if err != nil {
		return 0, fmt.Errorf("update session status: %w", err)
	}

	return tag.RowsAffected(), nil
}

// List returns all sessions ordered by scheduled time, optionally filtered
// to a single status.
func (r *SessionRepository) List(ctx context.Context, status *model.SessionStatus) ([]*model.Session, error) {
	query := `
		SELECT session_id, candidate_name, candidate_email, candidate_phone,
		       scheduled_time, status, created_at, reminder_sent, notes
		FROM sessions
	`
	var args []any
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY scheduled_time`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// ListUpcoming returns confirmed sessions scheduled inside (from, to).
func (r *SessionRepository) ListUpcoming(ctx context.Context, from, to time.Time) ([]*model.Session, error) {
	query := `
		SELECT session_id, candidate_name, candidate_email, candidate_phone,
		       scheduled_time, status, created_at, reminder_sent, notes
		FROM sessions
		WHERE status = $1
		  AND scheduled_time > $2
		  AND scheduled_time < $3
		ORDER BY scheduled_time
	`

	rows, err := r.db.Query(ctx, query, model.SessionStatusConfirmed, from, to)
	if err != nil {
		return nil, fmt.Errorf("list upcoming sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

func scanSessions(rows pgx.Rows) ([]*model.Session, error) {
	var sessions []*model.Session
	for rows.Next() {
		var session model.Session
		err := rows.Scan(
			&session.ID,
			&session.CandidateName,
			&session.CandidateEmail,
			&session.CandidatePhone,
			&session.ScheduledTime,
			&session.Status,
			&session.CreatedAt,
			&session.ReminderSent,
			&session.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, &session)
	}

	return sessions, rows.Err()
}
