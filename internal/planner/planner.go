package planner

// #region imports
import (
	"regexp"
	"strings"

	"github.com/fidelisnguakaaga20/project-7-multi-tool-agent/internal/memory"
	"github.com/fidelisnguakaaga20/project-7-multi-tool-agent/internal/router"
)

// #endregion

// #region types

// ToolCall is one planned tool invocation. The runner reads it but never
// mutates the planner's output.
type ToolCall struct {
	Tool  router.Tool    `json:"tool"`
	Input map[string]any `json:"input"`
}

// Plan is an ordered list of tool calls plus human-readable rationale lines.
// Order is both execution order and the order plan-derived sections appear
// in the final answer.
type Plan struct {
	Rationale []string   `json:"rationale"`
	Calls     []ToolCall `json:"calls"`
}

// #endregion

// #region constants

// maxCalls caps a single plan regardless of how many heuristics matched.
const maxCalls = 4

// mathAdjacency requires a digit-operator-digit shape before the planner
// trusts an extracted expression. Guards against fragments pulled out of
// non-math text.
var mathAdjacency = regexp.MustCompile(`\d\s*[+\-*/]\s*\d`)

// #endregion

// #region make-plan

// MakePlan builds a multi-tool plan from the message and the conversation's
// current preference state. Steps run in fixed order (RAG, SQL, calculator,
// web) and are not mutually exclusive. A docs-first preference forces the
// RAG step even without document hints.
func MakePlan(message string, st memory.State) Plan {
	msg := strings.TrimSpace(message)

	var rationale []string
	var calls []ToolCall

	// 1) RAG (docs-first rule)
	if router.LooksLikeRAG(msg) || st.PreferRAGFirst {
		rationale = append(rationale, "Check user documents for relevant information (docs-first preference).")
		calls = append(calls, ToolCall{
			Tool:  router.ToolRAG,
			Input: map[string]any{"query": msg, "top_k": 4},
		})
	}

	// 2) SQL
	if router.LooksLikeSQL(msg) {
		rationale = append(rationale, "Query the local database for the requested information.")
		calls = append(calls, ToolCall{
			Tool:  router.ToolSQL,
			Input: map[string]any{"question": msg},
		})
	}

	// 3) Calculator
	if expr := router.ExtractExpression(msg); expr != "" && mathAdjacency.MatchString(expr) {
		rationale = append(rationale, "Compute the requested calculation.")
		calls = append(calls, ToolCall{
			Tool:  router.ToolCalculator,
			Input: map[string]any{"expression": expr},
		})
	}

	// 4) Web
	if router.LooksLikeWeb(msg) {
		rationale = append(rationale, "Search cached web sources for relevant updates.")
		calls = append(calls, ToolCall{
			Tool:  router.ToolWeb,
			Input: map[string]any{"query": msg, "max_results": 5, "mode": "cached"},
		})
	}

	if len(calls) > maxCalls {
		calls = calls[:maxCalls]
	}

	if len(calls) == 0 {
		return Plan{Rationale: []string{"Answer directly without tools."}}
	}

	return Plan{Rationale: rationale, Calls: calls}
}

// #endregion
