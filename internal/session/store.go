package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/RuthlessG-CYBER/renthub-bot/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Store persists the login state per chat: the opaque backend token and the
// serialized user record. It is not reactive: handlers re-read it on every
// update instead of sharing a live copy.
type Store struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewStore(pool *pgxpool.Pool, logger *zap.Logger) *Store {
	return &Store{pool: pool, logger: logger}
}

// Load reads the session for a chat. Returns nil when absent. A stored user
// record that no longer parses is swallowed and treated as logged out.
func (s *Store) Load(ctx context.Context, chatID int64) (*model.Session, error) {
	query := `
		SELECT chat_id, token, user_data, updated_at
		FROM sessions
		WHERE chat_id = $1
	`

	var (
		sess     model.Session
		userData []byte
	)
	err := s.pool.QueryRow(ctx, query, chatID).Scan(
		&sess.ChatID,
		&sess.Token,
		&userData,
		&sess.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	if err := decodeUser(userData, &sess.User); err != nil {
		s.logger.Debug("Discarding malformed session record",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return nil, nil
	}

	return &sess, nil
}

// Save upserts the session after login or signup.
func (s *Store) Save(ctx context.Context, chatID int64, token string, user *model.User) error {
	userData, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	query := `
		INSERT INTO sessions (chat_id, token, user_data, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (chat_id)
		DO UPDATE SET token = $2, user_data = $3, updated_at = now()
	`

	if _, err := s.pool.Exec(ctx, query, chatID, token, userData); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

// Clear removes both the token and the user record on logout. Clearing a
// chat with no session is a no-op.
func (s *Store) Clear(ctx context.Context, chatID int64) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE chat_id = $1`, chatID); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Active returns every stored session. The notification poller uses this to
// know which chats to check the feed for.
func (s *Store) Active(ctx context.Context) ([]*model.Session, error) {
	query := `
		SELECT chat_id, token, user_data, updated_at
		FROM sessions
		ORDER BY chat_id
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*model.Session
	for rows.Next() {
		var (
			sess     model.Session
			userData []byte
		)
		if err := rows.Scan(&sess.ChatID, &sess.Token, &userData, &sess.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		if err := decodeUser(userData, &sess.User); err != nil {
			// Skip broken records, same policy as Load.
			continue
		}
		sessions = append(sessions, &sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}

	return sessions, nil
}

// decodeUser parses the stored user JSON and rejects records missing the
// backend id, which would make every user-scoped call invalid.
func decodeUser(raw []byte, user *model.User) error {
	if err := json.Unmarshal(raw, user); err != nil {
		return fmt.Errorf("decode user: %w", err)
	}
	if user.ID == "" {
		return fmt.Errorf("decode user: missing id")
	}
	return nil
}
