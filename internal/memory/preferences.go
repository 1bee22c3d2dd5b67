package memory

// #region imports
import (
	"strings"
)

// #endregion

// #region extract

// ExtractPreferences derives a state patch from a raw user message.
// Rules run in fixed order and each sets its keys independently; negation
// rules run last, so a message carrying both an affirmative and a negating
// docs phrase ends up with the negation. This keeps the outcome
// deterministic without trying to resolve contradictory messages.
func ExtractPreferences(message string) Patch {
	lower := strings.ToLower(message)

	var patch Patch

	if strings.Contains(lower, "use my docs as source of truth") ||
		strings.Contains(lower, "docs as source of truth") {
		patch.PreferRAGFirst = boolPtr(true)
		patch.DocsSourceOfTruth = boolPtr(true)
	}

	if strings.Contains(lower, "prefer docs first") || strings.Contains(lower, "docs first") {
		patch.PreferRAGFirst = boolPtr(true)
	}

	if strings.Contains(lower, "don't use my docs") || strings.Contains(lower, "do not use my docs") {
		patch.PreferRAGFirst = boolPtr(false)
		patch.DocsSourceOfTruth = boolPtr(false)
	}

	if strings.HasPrefix(lower, "my goal is") || strings.Contains(lower, "my goal:") {
		patch.LastGoal = strPtr(strings.TrimSpace(message))
	}

	return patch
}

// #endregion

// #region helpers

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

// #endregion
