package logging

import "time"

// #region tool-event
// ToolEvent is a single row in the tool_events table.
type ToolEvent struct {
	EventID        string
	ConversationID string
	Tool           string
	Status         string // "ok" | "error" | "skipped"
	LatencyMs      int64
	MetaJSON       string
	CreatedAt      time.Time
}

// #endregion tool-event
