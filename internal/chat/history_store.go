package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one persisted chat log entry. Rows are immutable once written
// and ordered by timestamp within a session.
type Message struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Mood      *string   `json:"mood,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// PgxPool is the subset of pgxpool.Pool the store uses.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// HistoryStore is the append-only chat log backed by Postgres.
type HistoryStore struct {
	pool PgxPool
}

// NewHistoryStore creates a chat log store.
func NewHistoryStore(pool PgxPool) *HistoryStore {
	if pool == nil {
		panic("chat: pgx pool required")
	}
	return &HistoryStore{pool: pool}
}

// Append writes one message to the session log. mood may be empty for
// assistant turns.
func (s *HistoryStore) Append(ctx context.Context, sessionID, role, content, mood string) error {
	var moodArg *string
	if mood != "" {
		moodArg = &mood
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO chat_messages (session_id, role, content, mood_detected)
		VALUES ($1, $2, $3, $4)
	`, sessionID, role, content, moodArg)
	if err != nil {
		return fmt.Errorf("chat: append message: %w", err)
	}
	return nil
}

// ListRecent returns up to limit messages for a session, oldest first, so the
// slice can be fed straight into the reply generator's context window.
func (s *HistoryStore) ListRecent(ctx context.Context, sessionID string, limit int) ([]Message, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, session_id, role, content, mood_detected, created_at
		FROM (
			SELECT id, session_id, role, content, mood_detected, created_at
			FROM chat_messages
			WHERE session_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2
		) recent
		ORDER BY created_at ASC, id ASC
	`, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("chat: list history: %w", err)
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Role, &m.Content, &m.Mood, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("chat: scan history row: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("chat: iterate history: %w", err)
	}
	return messages, nil
}

// Turns converts stored messages into generator turns.
func Turns(messages []Message) []Turn {
	turns := make([]Turn, 0, len(messages))
	for _, m := range messages {
		turns = append(turns, Turn{Role: m.Role, Content: m.Content})
	}
	return turns
}
