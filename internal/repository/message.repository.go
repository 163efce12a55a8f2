package repository

import (
	"context"
	"database/sql"
	"fmt"

	"investbuddy/internal/domain"
)

type MessageRepository interface {
	Add(ctx context.Context, sessionID, role, content string) error
	// List returns the most recent messages for a session in
	// chronological order. limit <= 0 means no limit.
	List(ctx context.Context, sessionID string, limit int) ([]domain.StoredMessage, error)
}

type messageRepositoryHandler struct {
	Db *sql.DB
}

func NewMessageRepository(db *sql.DB) MessageRepository {
	return messageRepositoryHandler{
		Db: db,
	}
}

func (h messageRepositoryHandler) Add(ctx context.Context, sessionID, role, content string) error {
	_, err := h.Db.ExecContext(ctx,
		`INSERT INTO conversations (session_id, role, content) VALUES (?, ?, ?)`,
		sessionID, role, content,
	)
	if err != nil {
		return fmt.Errorf("failed to store message for session %s: %w", sessionID, err)
	}
	return nil
}

func (h messageRepositoryHandler) List(ctx context.Context, sessionID string, limit int) ([]domain.StoredMessage, error) {
	query := `SELECT id, session_id, role, content, timestamp
		FROM conversations WHERE session_id = ? ORDER BY id`
	args := []any{sessionID}
	if limit > 0 {
		// take the newest N, then flip back to chronological order
		query = `SELECT id, session_id, role, content, timestamp FROM (
			SELECT id, session_id, role, content, timestamp
			FROM conversations WHERE session_id = ? ORDER BY id DESC LIMIT ?
		) ORDER BY id`
		args = append(args, limit)
	}

	rows, err := h.Db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages for session %s: %w", sessionID, err)
	}
	defer rows.Close()

	out := []domain.StoredMessage{}
	for rows.Next() {
		var m domain.StoredMessage
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Role, &m.Content, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate message rows: %w", err)
	}

	return out, nil
}
