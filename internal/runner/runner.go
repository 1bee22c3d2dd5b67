package runner

// #region imports
import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/fidelisnguakaaga20/project-7-multi-tool-agent/internal/calc"
	"github.com/fidelisnguakaaga20/project-7-multi-tool-agent/internal/llm"
	"github.com/fidelisnguakaaga20/project-7-multi-tool-agent/internal/logging"
	"github.com/fidelisnguakaaga20/project-7-multi-tool-agent/internal/memory"
	"github.com/fidelisnguakaaga20/project-7-multi-tool-agent/internal/planner"
	"github.com/fidelisnguakaaga20/project-7-multi-tool-agent/internal/rag"
	"github.com/fidelisnguakaaga20/project-7-multi-tool-agent/internal/router"
	"github.com/fidelisnguakaaga20/project-7-multi-tool-agent/internal/sqltool"
	"github.com/fidelisnguakaaga20/project-7-multi-tool-agent/internal/websearch"
)

// #endregion

// #region collaborators

// DocRetriever looks up document passages by semantic similarity.
type DocRetriever interface {
	Retrieve(ctx context.Context, query string, topK int) ([]rag.Passage, error)
}

// DataQuerier answers natural-language questions against structured data.
type DataQuerier interface {
	Query(ctx context.Context, question string) (sqltool.Result, error)
}

// WebSearcher answers queries from the web cache or a live lookup.
type WebSearcher interface {
	Search(ctx context.Context, query string, maxResults int, mode string) (websearch.Response, error)
}

// #endregion collaborators

// #region runner-struct

// Runner executes a plan against live tool collaborators with per-call
// isolation, builds the trace and citations, and composes the answer.
type Runner struct {
	store     *memory.Store
	docs      DocRetriever
	data      DataQuerier
	web       WebSearcher
	generator llm.Generator
	events    *logging.EventLog
	calculate func(expression string) (float64, error)
}

// Config wires a Runner. Events may be nil to disable tool-event logging.
type Config struct {
	Store     *memory.Store
	Docs      DocRetriever
	Data      DataQuerier
	Web       WebSearcher
	Generator llm.Generator
	Events    *logging.EventLog
}

// New creates a fully wired Runner.
func New(cfg Config) *Runner {
	return &Runner{
		store:     cfg.Store,
		docs:      cfg.Docs,
		data:      cfg.Data,
		web:       cfg.Web,
		generator: cfg.Generator,
		events:    cfg.Events,
		calculate: calc.Evaluate,
	}
}

// #endregion runner-struct

// #region run

// Run handles one message end to end: merge stated preferences, plan,
// execute each call sequentially, then compose the answer. Tool failures
// land in the trace and never abort the remaining calls; only a failed
// fallback generation returns an error.
func (r *Runner) Run(ctx context.Context, message, conversationID string) (RunResult, error) {
	// Stated preferences take effect before planning so they can steer
	// this same request.
	if conversationID != "" {
		if patch := memory.ExtractPreferences(message); !patch.IsZero() {
			if _, err := r.store.Merge(conversationID, patch); err != nil {
				log.Printf("[RUN] preference merge failed: %v", err)
			}
		}
	}

	var st memory.State
	if conversationID != "" {
		s, err := r.store.Get(conversationID)
		if err != nil {
			log.Printf("[RUN] state read failed, using empty state: %v", err)
		} else {
			st = s
		}
	}

	plan := planner.MakePlan(message, st)
	log.Printf("[RUN] plan: %d calls", len(plan.Calls))

	trace := make([]TraceEntry, 0, len(plan.Calls))
	citations := []string{}

	var (
		ragPassages []rag.Passage
		sqlOut      *sqltool.Result
		calcResult  string
		calcRan     bool
		webResults  []websearch.Result
	)

	for _, call := range plan.Calls {
		start := time.Now()
		var summary string
		var callErr error

		switch call.Tool {
		case router.ToolRAG:
			query := inputString(call.Input, "query", message)
			topK := inputInt(call.Input, "top_k", 4)
			passages, err := r.docs.Retrieve(ctx, query, topK)
			if err != nil {
				callErr = err
				break
			}
			ragPassages = passages
			citations = formatCitations(firstN(passages, 3))
			if conversationID != "" {
				sources := make([]string, 0, 10)
				for _, p := range firstN(passages, 10) {
					sources = append(sources, p.Source)
				}
				if err := r.store.RecordRetrievedSources(conversationID, sources); err != nil {
					log.Printf("[RUN] recording sources failed: %v", err)
				}
			}
			summary = fmt.Sprintf("matches=%d", len(passages))

		case router.ToolSQL:
			question := inputString(call.Input, "question", message)
			res, err := r.data.Query(ctx, question)
			if err != nil {
				callErr = err
				break
			}
			sqlOut = &res
			summary = fmt.Sprintf("row_count=%d", res.RowCount)

		case router.ToolCalculator:
			expr := inputString(call.Input, "expression", "")
			if expr == "" {
				expr = router.ExtractExpression(message)
			}
			v, err := r.calculate(expr)
			if err != nil {
				callErr = err
				break
			}
			calcResult = calc.FormatResult(v)
			calcRan = true
			summary = fmt.Sprintf("result=%s", calcResult)

		case router.ToolWeb:
			query := inputString(call.Input, "query", message)
			maxResults := inputInt(call.Input, "max_results", 5)
			mode := inputString(call.Input, "mode", "cached")
			resp, err := r.web.Search(ctx, query, maxResults, mode)
			if err != nil {
				callErr = err
				break
			}
			webResults = resp.Results
			summary = fmt.Sprintf("mode=%s results=%d", resp.Mode, resp.Count)

		default:
			summary = "skipped"
		}

		elapsed := time.Since(start).Milliseconds()
		if callErr != nil {
			summary = "ERROR: " + callErr.Error()
		}
		log.Printf("[RUN] %s: %s (%dms)", call.Tool, summary, elapsed)
		trace = append(trace, TraceEntry{
			Tool:          string(call.Tool),
			Input:         call.Input,
			OutputSummary: summary,
			ElapsedMs:     elapsed,
		})
		r.logEvent(conversationID, string(call.Tool), summary, elapsed, callErr != nil)
	}

	answer := composeAnswer(ragPassages, sqlOut, calcResult, calcRan, webResults)
	if answer == "" {
		text, err := r.generator.Generate(ctx, message)
		if err != nil {
			return RunResult{}, fmt.Errorf("fallback generation: %w", err)
		}
		return RunResult{
			Answer:    text,
			Trace:     trace,
			Citations: []string{},
			Plan:      plan.Rationale,
		}, nil
	}

	return RunResult{
		Answer:    answer,
		Trace:     trace,
		Citations: citations,
		Plan:      plan.Rationale,
	}, nil
}

// #endregion run

// #region compose

// composeAnswer renders sections in a fixed order regardless of call order:
// documents, database, calculation, web. Empty sections are omitted.
func composeAnswer(passages []rag.Passage, sqlOut *sqltool.Result, calcResult string, calcRan bool, webResults []websearch.Result) string {
	var parts []string

	if len(passages) > 0 {
		lines := []string{"From your documents:"}
		for _, p := range firstN(passages, 3) {
			lines = append(lines, fmt.Sprintf("- (%s p%d) %s", p.Source, p.Page, p.Preview))
		}
		parts = append(parts, strings.Join(lines, "\n"))
	}

	if sqlOut != nil {
		lines := []string{"From the database:", "SQL used: " + sqlOut.SQL}
		rows := sqlOut.Rows
		if len(rows) > 5 {
			rows = rows[:5]
		}
		if len(sqlOut.Columns) > 0 && len(rows) > 0 {
			lines = append(lines, strings.Join(sqlOut.Columns, " | "))
			lines = append(lines, strings.Repeat("-", 60))
			for _, row := range rows {
				vals := make([]string, 0, len(sqlOut.Columns))
				for _, col := range sqlOut.Columns {
					vals = append(vals, row[col])
				}
				lines = append(lines, strings.Join(vals, " | "))
			}
		} else {
			lines = append(lines, "No rows returned.")
		}
		parts = append(parts, strings.Join(lines, "\n"))
	}

	if calcRan {
		parts = append(parts, "Calculation result: "+calcResult)
	}

	if len(webResults) > 0 {
		lines := []string{"From web (cached):"}
		for i, res := range webResults {
			if i >= 5 {
				break
			}
			lines = append(lines, fmt.Sprintf("%d. %s\n   %s\n   %s", i+1, res.Title, res.URL, res.Snippet))
		}
		parts = append(parts, strings.Join(lines, "\n"))
	}

	return strings.Join(parts, "\n\n")
}

// #endregion compose

// #region citations

// formatCitations renders passage references. A chunk id that already
// embeds a separator stands alone; otherwise source and chunk id are
// joined. Duplicates are dropped, first occurrence wins.
func formatCitations(passages []rag.Passage) []string {
	cites := []string{}
	seen := make(map[string]bool)
	for _, p := range passages {
		src := strings.TrimSpace(p.Source)
		if src == "" {
			src = "unknown"
		}
		cid := strings.TrimSpace(p.ChunkID)
		if cid == "" {
			cid = "unknown"
		}
		var c string
		if strings.Contains(cid, "#") {
			c = "[" + cid + "]"
		} else {
			c = "[" + src + "#" + cid + "]"
		}
		if !seen[c] {
			seen[c] = true
			cites = append(cites, c)
		}
	}
	return cites
}

// #endregion citations

// #region helpers

func (r *Runner) logEvent(conversationID, tool, summary string, elapsedMs int64, failed bool) {
	if r.events == nil {
		return
	}
	status := "ok"
	switch {
	case failed:
		status = "error"
	case summary == "skipped":
		status = "skipped"
	}
	meta, _ := json.Marshal(map[string]string{"summary": summary})
	if err := r.events.Log(logging.ToolEvent{
		ConversationID: conversationID,
		Tool:           tool,
		Status:         status,
		LatencyMs:      elapsedMs,
		MetaJSON:       string(meta),
	}); err != nil {
		log.Printf("[RUN] event log failed: %v", err)
	}
}

func firstN(passages []rag.Passage, n int) []rag.Passage {
	if len(passages) > n {
		return passages[:n]
	}
	return passages
}

func inputString(input map[string]any, key, fallback string) string {
	if v, ok := input[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func inputInt(input map[string]any, key string, fallback int) int {
	switch v := input[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return fallback
}

// #endregion helpers
