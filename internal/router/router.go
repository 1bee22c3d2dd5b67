package router

// #region imports
import (
	"regexp"
	"strings"
)

// #endregion

// #region hints

var calcHints = []string{
	"calculate", "calc", "what is", "solve", "evaluate", "math",
	"+", "-", "*", "/",
}

var ragHints = []string{
	"according to", "in the document", "in the doc", "in my doc",
	"in my docs", "in the pdf", "from the pdf", "from my pdf",
	"in resume", "resume.pdf", "policy", "as stated", "as written",
	"what does the document say", "what does my document say",
}

var sqlHints = []string{
	"sql", "database", "db", "sqlite", "table", "schema",
	"customers", "orders", "tickets", "top", "total", "sum",
	"count", "group by", "join", "revenue", "spent",
}

var webHints = []string{
	"latest", "today", "news", "current", "recent",
	"search web", "web search", "google", "online", "internet",
	"what's new", "what is new",
}

// #endregion

// #region expression-regex

// exprPattern captures the first arithmetic expression in a sentence,
// e.g. "... calculate 12*19. Also show top 3 ..." -> "12*19".
var exprPattern = regexp.MustCompile(
	`\(?\s*\d+(?:\.\d+)?\s*\)?\s*(?:[+\-*/]\s*\(?\s*\d+(?:\.\d+)?\s*\)?\s*)+`,
)

// unsafeChars matches everything outside the calculator's input alphabet.
var unsafeChars = regexp.MustCompile(`[^0-9.+\-*/()\s]`)

// #endregion

// #region classifiers

// LooksLikeRAG reports whether the message hints at a document question.
func LooksLikeRAG(message string) bool {
	return containsAny(strings.ToLower(message), ragHints)
}

// LooksLikeSQL reports whether the message hints at a structured-data question.
func LooksLikeSQL(message string) bool {
	return containsAny(strings.ToLower(message), sqlHints)
}

// LooksLikeWeb reports whether the message asks for fresh web content.
func LooksLikeWeb(message string) bool {
	return containsAny(strings.ToLower(message), webHints)
}

func containsAny(lower string, hints []string) bool {
	for _, h := range hints {
		if strings.Contains(lower, h) {
			return true
		}
	}
	return false
}

// #endregion

// #region extract-expression

// ExtractExpression returns the first arithmetic expression found in the
// message, stripped to the calculator's alphabet. Later expressions in the
// same message are ignored. Returns "" when nothing matches.
func ExtractExpression(message string) string {
	m := exprPattern.FindString(strings.TrimSpace(message))
	if m == "" {
		return ""
	}
	return strings.TrimSpace(unsafeChars.ReplaceAllString(m, ""))
}

// #endregion

// #region clean-web-query

var webQueryPrefix = regexp.MustCompile(`(?i)^(search\s*web|web\s*search|google)\s*[:\-]\s*`)

// CleanWebQuery strips a leading "search web:" / "google:" prefix.
func CleanWebQuery(message string) string {
	return strings.TrimSpace(webQueryPrefix.ReplaceAllString(strings.TrimSpace(message), ""))
}

// #endregion

// #region pick-tool

// PickTool is the single-best-tool classifier for callers that cannot run a
// multi-call plan. Precedence: RAG > web > SQL > calculator. The planner
// does not use this; it keeps its own step order.
func PickTool(message string) (Tool, map[string]any) {
	lower := strings.ToLower(strings.TrimSpace(message))

	if LooksLikeRAG(message) {
		return ToolRAG, map[string]any{"query": message, "top_k": 4}
	}

	if LooksLikeWeb(message) {
		return ToolWeb, map[string]any{"query": CleanWebQuery(message), "max_results": 5, "mode": "cached"}
	}

	if LooksLikeSQL(message) {
		return ToolSQL, map[string]any{"question": message}
	}

	if expr := ExtractExpression(message); expr != "" {
		return ToolCalculator, map[string]any{"expression": expr}
	}

	if containsAny(lower, calcHints) {
		if expr := ExtractExpression(message); expr != "" {
			return ToolCalculator, map[string]any{"expression": expr}
		}
	}

	return ToolNone, nil
}

// #endregion
