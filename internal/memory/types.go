package memory

// #region state

// State is the per-conversation preference state. The schema is closed:
// these four keys are the ones routing and bookkeeping consume.
type State struct {
	PreferRAGFirst    bool     `json:"prefer_rag_first,omitempty"`
	DocsSourceOfTruth bool     `json:"docs_source_of_truth,omitempty"`
	LastGoal          string   `json:"last_goal,omitempty"`
	LastSources       []string `json:"last_sources,omitempty"`
}

// #endregion

// #region patch

// Patch is a partial state update. Nil fields are left untouched by Merge;
// non-nil fields overwrite the stored value.
type Patch struct {
	PreferRAGFirst    *bool
	DocsSourceOfTruth *bool
	LastGoal          *string
	LastSources       []string
}

// IsZero reports whether the patch carries no changes.
func (p Patch) IsZero() bool {
	return p.PreferRAGFirst == nil && p.DocsSourceOfTruth == nil &&
		p.LastGoal == nil && p.LastSources == nil
}

// #endregion
