package memory

// #region imports
import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// #endregion

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS conversations (
	conversation_id  TEXT PRIMARY KEY,
	state_json       TEXT NOT NULL,
	updated_at       TEXT NOT NULL
);
`

// maxLastSources caps the stored last_sources list.
const maxLastSources = 20

// #endregion

// #region store-struct

// Store persists per-conversation preference state in SQLite.
// Last write wins; no locking across concurrent requests for the same id.
type Store struct {
	db *sql.DB
}

// #endregion

// #region constructor

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion

// #region get

// Get returns the stored state for a conversation. Missing or empty ids
// yield a zero state. The returned value is a structural copy; mutating it
// never affects stored state.
func (s *Store) Get(conversationID string) (State, error) {
	if conversationID == "" {
		return State{}, nil
	}

	var stateJSON string
	err := s.db.QueryRow(
		`SELECT state_json FROM conversations WHERE conversation_id = ?`,
		conversationID,
	).Scan(&stateJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return State{}, nil
	}
	if err != nil {
		return State{}, fmt.Errorf("get state %s: %w", conversationID, err)
	}

	var st State
	if err := json.Unmarshal([]byte(stateJSON), &st); err != nil {
		return State{}, fmt.Errorf("decode state %s: %w", conversationID, err)
	}
	return cloneState(st), nil
}

// #endregion

// #region merge

// Merge applies a patch to the stored state and persists the result.
// Empty conversation ids never persist: Merge returns the zero state.
// Merging an empty patch is a read-modify-write no-op and is safe.
func (s *Store) Merge(conversationID string, patch Patch) (State, error) {
	if conversationID == "" {
		return State{}, nil
	}

	st, err := s.Get(conversationID)
	if err != nil {
		return State{}, err
	}

	if patch.PreferRAGFirst != nil {
		st.PreferRAGFirst = *patch.PreferRAGFirst
	}
	if patch.DocsSourceOfTruth != nil {
		st.DocsSourceOfTruth = *patch.DocsSourceOfTruth
	}
	if patch.LastGoal != nil {
		st.LastGoal = *patch.LastGoal
	}
	if patch.LastSources != nil {
		srcs := patch.LastSources
		if len(srcs) > maxLastSources {
			srcs = srcs[:maxLastSources]
		}
		st.LastSources = append([]string(nil), srcs...)
	}

	if err := s.save(conversationID, st); err != nil {
		return State{}, err
	}
	return cloneState(st), nil
}

// #endregion

// #region record-sources

// RecordRetrievedSources overwrites last_sources with the given list,
// capped at 20 entries. No-op for an empty conversation id.
func (s *Store) RecordRetrievedSources(conversationID string, sources []string) error {
	if conversationID == "" {
		return nil
	}
	_, err := s.Merge(conversationID, Patch{LastSources: sources})
	return err
}

// #endregion

// #region save

func (s *Store) save(conversationID string, st State) error {
	payload, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO conversations (conversation_id, state_json, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(conversation_id) DO UPDATE SET
		   state_json = excluded.state_json,
		   updated_at = excluded.updated_at`,
		conversationID, string(payload), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save state %s: %w", conversationID, err)
	}
	return nil
}

// #endregion

// #region clone

func cloneState(st State) State {
	out := st
	if st.LastSources != nil {
		out.LastSources = append([]string(nil), st.LastSources...)
	}
	return out
}

// #endregion
