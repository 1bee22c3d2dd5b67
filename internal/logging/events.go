package logging

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// #region schema
const eventsSchema = `
CREATE TABLE IF NOT EXISTS tool_events (
	event_id        TEXT PRIMARY KEY,
	conversation_id TEXT,
	tool            TEXT NOT NULL,
	status          TEXT NOT NULL,
	latency_ms      INTEGER NOT NULL,
	meta_json       TEXT,
	created_at      TEXT NOT NULL
);
`

// #endregion schema

// #region event-log
// EventLog records per-call tool outcomes for later inspection.
type EventLog struct {
	db *sql.DB
}

// NewEventLog creates the tool_events table if needed.
func NewEventLog(db *sql.DB) (*EventLog, error) {
	if _, err := db.Exec(eventsSchema); err != nil {
		return nil, fmt.Errorf("migrate tool_events: %w", err)
	}
	return &EventLog{db: db}, nil
}

// Log writes one tool event. A missing EventID gets a fresh uuid, a zero
// CreatedAt gets the current time.
func (l *EventLog) Log(event ToolEvent) error {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	_, err := l.db.Exec(
		`INSERT INTO tool_events (event_id, conversation_id, tool, status, latency_ms, meta_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		event.EventID,
		nullIfEmpty(event.ConversationID),
		event.Tool,
		event.Status,
		event.LatencyMs,
		nullIfEmpty(event.MetaJSON),
		event.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log tool event: %w", err)
	}
	return nil
}

// #endregion event-log

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
