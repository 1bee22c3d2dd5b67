package runner

// #region trace-entry

// TraceEntry records one attempted tool call, in execution order.
// Failed calls carry an "ERROR: ..." summary instead of being dropped.
type TraceEntry struct {
	Tool          string         `json:"tool"`
	Input         map[string]any `json:"input"`
	OutputSummary string         `json:"output_summary"`
	ElapsedMs     int64          `json:"elapsed_ms"`
}

// #endregion trace-entry

// #region run-result

// RunResult is the complete outcome of one agent run.
type RunResult struct {
	Answer    string       `json:"answer"`
	Trace     []TraceEntry `json:"trace"`
	Citations []string     `json:"citations"`
	Plan      []string     `json:"plan"`
}

// #endregion run-result
