package eval

// #region case
// Case is one golden evaluation scenario.
type Case struct {
	Name              string
	Message           string
	ExpectTool        string
	CitationsRequired bool
}

// #endregion case

// #region results
// CaseResult is the outcome of a single case.
type CaseResult struct {
	Test         string   `json:"test"`
	ExpectedTool string   `json:"expected_tool"`
	ToolsUsed    []string `json:"tools_used"`
	LatencyMs    int64    `json:"latency_ms"`
	Pass         bool     `json:"pass"`
}

// Report aggregates a full evaluation run.
type Report struct {
	Total    int          `json:"total"`
	Passed   int          `json:"passed"`
	Accuracy float64      `json:"accuracy"`
	Results  []CaseResult `json:"results"`
}

// #endregion results
