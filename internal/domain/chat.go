package domain

import "time"

// ChatMessage is one turn of a conversation, role is "system", "user" or
// "assistant".
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// StoredMessage is a persisted conversation turn.
type StoredMessage struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
