package chat

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists conversation history across restarts.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens or creates the history database at path.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA busy_timeout = 5000;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("applying %q: %w", pragma, err)
		}
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS chat_turns (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  conversation_id TEXT NOT NULL,
  query TEXT NOT NULL,
  response TEXT NOT NULL,
  intent_type TEXT NOT NULL DEFAULT '',
  created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_chat_turns_conversation
  ON chat_turns (conversation_id, id);
`)
	if err != nil {
		return fmt.Errorf("migrating history schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Append(ctx context.Context, conversationID string, turn Turn) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_turns (conversation_id, query, response, intent_type, created_at)
		 VALUES (?, ?, ?, ?, ?);`,
		conversationID, turn.Query, turn.Response, turn.IntentType, turn.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("appending turn: %w", err)
	}

	// Keep only the newest turns per conversation.
	_, err = s.db.ExecContext(ctx,
		`DELETE FROM chat_turns
		 WHERE conversation_id = ?
		   AND id NOT IN (
		     SELECT id FROM chat_turns
		     WHERE conversation_id = ?
		     ORDER BY id DESC
		     LIMIT ?
		   );`,
		conversationID, conversationID, maxHistoryTurns)
	if err != nil {
		return fmt.Errorf("trimming history: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Recent(ctx context.Context, conversationID string, limit int) ([]Turn, error) {
	if limit <= 0 || limit > maxHistoryTurns {
		limit = maxHistoryTurns
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT query, response, intent_type, created_at FROM (
		   SELECT id, query, response, intent_type, created_at
		   FROM chat_turns
		   WHERE conversation_id = ?
		   ORDER BY id DESC
		   LIMIT ?
		 ) ORDER BY id ASC;`,
		conversationID, limit)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	defer rows.Close() // nolint

	var turns []Turn
	for rows.Next() {
		var t Turn
		if err := rows.Scan(&t.Query, &t.Response, &t.IntentType, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning turn: %w", err)
		}
		turns = append(turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading history rows: %w", err)
	}
	return turns, nil
}

func (s *SQLiteStore) Clear(ctx context.Context, conversationID string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM chat_turns WHERE conversation_id = ?;", conversationID)
	if err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
