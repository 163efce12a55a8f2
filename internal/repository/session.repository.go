package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type Session struct {
	ID        int64
	SessionID string
	CreatedAt time.Time
}

type SessionRepository interface {
	Create(ctx context.Context, sessionID string) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	EnsureExists(ctx context.Context, sessionID string) error
}

type sessionRepositoryHandler struct {
	Db *sql.DB
}

func NewSessionRepository(db *sql.DB) SessionRepository {
	return sessionRepositoryHandler{
		Db: db,
	}
}

func (h sessionRepositoryHandler) Create(ctx context.Context, sessionID string) error {
	_, err := h.Db.ExecContext(ctx,
		`INSERT INTO users (session_id) VALUES (?)`,
		sessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to create session %s: %w", sessionID, err)
	}
	return nil
}

func (h sessionRepositoryHandler) Get(ctx context.Context, sessionID string) (*Session, error) {
	row := h.Db.QueryRowContext(ctx,
		`SELECT id, session_id, created_at FROM users WHERE session_id = ?`,
		sessionID,
	)

	var s Session
	if err := row.Scan(&s.ID, &s.SessionID, &s.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session %s: %w", sessionID, err)
	}
	return &s, nil
}

// EnsureExists inserts the session if it is not already present. Webhook
// callers arrive with ids we have never seen.
func (h sessionRepositoryHandler) EnsureExists(ctx context.Context, sessionID string) error {
	_, err := h.Db.ExecContext(ctx,
		`INSERT INTO users (session_id) VALUES (?) ON CONFLICT(session_id) DO NOTHING`,
		sessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to ensure session %s: %w", sessionID, err)
	}
	return nil
}
