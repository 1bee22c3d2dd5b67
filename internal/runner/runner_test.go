package runner

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/fidelisnguakaaga20/project-7-multi-tool-agent/internal/logging"
	"github.com/fidelisnguakaaga20/project-7-multi-tool-agent/internal/memory"
	"github.com/fidelisnguakaaga20/project-7-multi-tool-agent/internal/rag"
	"github.com/fidelisnguakaaga20/project-7-multi-tool-agent/internal/sqltool"
	"github.com/fidelisnguakaaga20/project-7-multi-tool-agent/internal/websearch"
)

// #region fakes

type fakeDocs struct {
	passages []rag.Passage
	err      error
	calls    int
}

func (f *fakeDocs) Retrieve(ctx context.Context, query string, topK int) ([]rag.Passage, error) {
	f.calls++
	return f.passages, f.err
}

type fakeData struct {
	res   sqltool.Result
	err   error
	calls int
}

func (f *fakeData) Query(ctx context.Context, question string) (sqltool.Result, error) {
	f.calls++
	return f.res, f.err
}

type fakeWeb struct {
	resp  websearch.Response
	err   error
	calls int
}

func (f *fakeWeb) Search(ctx context.Context, query string, maxResults int, mode string) (websearch.Response, error) {
	f.calls++
	return f.resp, f.err
}

type fakeGen struct {
	text  string
	err   error
	calls int
}

func (f *fakeGen) Generate(ctx context.Context, message string) (string, error) {
	f.calls++
	return f.text, f.err
}

func newTestStore(t *testing.T) *memory.Store {
	t.Helper()
	store, err := memory.NewStore(filepath.Join(t.TempDir(), "memory.db"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestRunner(t *testing.T, docs *fakeDocs, data *fakeData, web *fakeWeb, gen *fakeGen) (*Runner, *memory.Store) {
	t.Helper()
	store := newTestStore(t)
	r := New(Config{
		Store:     store,
		Docs:      docs,
		Data:      data,
		Web:       web,
		Generator: gen,
	})
	return r, store
}

// #endregion fakes

// #region fallback-tests

func TestRun_NoToolsFallsBackToGenerator(t *testing.T) {
	gen := &fakeGen{text: "Hello! How can I help?"}
	r, _ := newTestRunner(t, &fakeDocs{}, &fakeData{}, &fakeWeb{}, gen)

	res, err := r.Run(context.Background(), "hello there", "")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Answer != "Hello! How can I help?" {
		t.Errorf("expected generator answer, got %q", res.Answer)
	}
	if len(res.Trace) != 0 {
		t.Errorf("expected empty trace, got %d entries", len(res.Trace))
	}
	if len(res.Citations) != 0 {
		t.Errorf("expected empty citations, got %v", res.Citations)
	}
	if len(res.Plan) != 1 || res.Plan[0] != "Answer directly without tools." {
		t.Errorf("unexpected plan %v", res.Plan)
	}
	if gen.calls != 1 {
		t.Errorf("expected 1 generator call, got %d", gen.calls)
	}
}

func TestRun_FallbackFailureIsFatal(t *testing.T) {
	gen := &fakeGen{err: errors.New("sidecar unavailable")}
	r, _ := newTestRunner(t, &fakeDocs{}, &fakeData{}, &fakeWeb{}, gen)

	if _, err := r.Run(context.Background(), "hello there", ""); err == nil {
		t.Fatal("expected error when fallback generation fails")
	}
}

func TestRun_FallbackKeepsTrace(t *testing.T) {
	data := &fakeData{err: errors.New("no template matched")}
	gen := &fakeGen{text: "fallback text"}
	r, _ := newTestRunner(t, &fakeDocs{}, data, &fakeWeb{}, gen)

	res, err := r.Run(context.Background(), "top customers", "")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Answer != "fallback text" {
		t.Errorf("expected fallback answer, got %q", res.Answer)
	}
	if len(res.Trace) != 1 {
		t.Fatalf("expected 1 trace entry, got %d", len(res.Trace))
	}
	if !strings.HasPrefix(res.Trace[0].OutputSummary, "ERROR:") {
		t.Errorf("expected ERROR summary, got %q", res.Trace[0].OutputSummary)
	}
	if len(res.Citations) != 0 {
		t.Errorf("expected empty citations on fallback, got %v", res.Citations)
	}
}

// #endregion fallback-tests

// #region calculator-tests

func TestRun_Calculator(t *testing.T) {
	r, _ := newTestRunner(t, &fakeDocs{}, &fakeData{}, &fakeWeb{}, &fakeGen{text: "unused"})

	res, err := r.Run(context.Background(), "calculate 19*23", "")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(res.Trace) != 1 {
		t.Fatalf("expected exactly 1 trace entry, got %d", len(res.Trace))
	}
	if res.Trace[0].Tool != "calculator" {
		t.Errorf("expected calculator entry, got %q", res.Trace[0].Tool)
	}
	if res.Trace[0].OutputSummary != "result=437" {
		t.Errorf("unexpected summary %q", res.Trace[0].OutputSummary)
	}
	if !strings.Contains(res.Answer, "437") {
		t.Errorf("expected 437 in answer, got %q", res.Answer)
	}
	if !strings.Contains(res.Answer, "Calculation result:") {
		t.Errorf("expected calculation section, got %q", res.Answer)
	}
}

// #endregion calculator-tests

// #region sql-tests

func TestRun_SQLSection(t *testing.T) {
	data := &fakeData{res: sqltool.Result{
		SQL:     "SELECT c.id, c.name, COUNT(o.id) AS total_orders FROM customers c JOIN orders o ON o.customer_id = c.id GROUP BY c.id, c.name ORDER BY total_orders DESC LIMIT 3",
		Columns: []string{"id", "name", "total_orders"},
		Rows: []map[string]string{
			{"id": "1", "name": "Ada Okoye", "total_orders": "2"},
			{"id": "2", "name": "Marie Dubois", "total_orders": "2"},
			{"id": "3", "name": "Kenji Sato", "total_orders": "2"},
		},
		RowCount: 3,
	}}
	r, _ := newTestRunner(t, &fakeDocs{}, data, &fakeWeb{}, &fakeGen{})

	res, err := r.Run(context.Background(), "Show top 3 customers by total orders", "")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(res.Trace) != 1 || res.Trace[0].Tool != "sql" {
		t.Fatalf("expected single sql trace entry, got %+v", res.Trace)
	}
	if res.Trace[0].OutputSummary != "row_count=3" {
		t.Errorf("unexpected summary %q", res.Trace[0].OutputSummary)
	}
	if !strings.Contains(res.Answer, "From the database:") {
		t.Errorf("missing database header in %q", res.Answer)
	}
	if !strings.Contains(res.Answer, "SQL used: SELECT") {
		t.Errorf("missing echoed query in %q", res.Answer)
	}
	if !strings.Contains(res.Answer, "id | name | total_orders") {
		t.Errorf("missing column header in %q", res.Answer)
	}
	if !strings.Contains(res.Answer, "1 | Ada Okoye | 2") {
		t.Errorf("missing data row in %q", res.Answer)
	}
}

func TestRun_SQLNoRows(t *testing.T) {
	data := &fakeData{res: sqltool.Result{
		SQL:     "SELECT status, COUNT(*) AS total FROM tickets GROUP BY status ORDER BY total DESC LIMIT 50",
		Columns: []string{"status", "total"},
	}}
	r, _ := newTestRunner(t, &fakeDocs{}, data, &fakeWeb{}, &fakeGen{})

	res, err := r.Run(context.Background(), "tickets by status", "")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(res.Answer, "No rows returned.") {
		t.Errorf("expected empty-result marker in %q", res.Answer)
	}
}

// #endregion sql-tests

// #region rag-tests

func TestRun_RAGCitationsAndSources(t *testing.T) {
	docs := &fakeDocs{passages: []rag.Passage{
		{ChunkID: "notes.md#c0", Source: "notes.md", Page: 1, Preview: "Refunds are issued within 14 days."},
		{ChunkID: "notes.md#c0", Source: "notes.md", Page: 1, Preview: "Refunds are issued within 14 days."},
		{ChunkID: "c7", Source: "policy.pdf", Page: 2, Preview: "Policy text."},
		{ChunkID: "notes.md#c2", Source: "notes.md", Page: 3, Preview: "Not cited, beyond the first three."},
	}}
	r, store := newTestRunner(t, docs, &fakeData{}, &fakeWeb{}, &fakeGen{})

	res, err := r.Run(context.Background(), "What does the document say about refunds?", "conv-rag")
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := []string{"[notes.md#c0]", "[policy.pdf#c7]"}
	if len(res.Citations) != len(want) {
		t.Fatalf("expected %d citations, got %v", len(want), res.Citations)
	}
	for i, c := range want {
		if res.Citations[i] != c {
			t.Errorf("citation %d: expected %q, got %q", i, c, res.Citations[i])
		}
	}

	if !strings.Contains(res.Answer, "From your documents:") {
		t.Errorf("missing documents header in %q", res.Answer)
	}
	if !strings.Contains(res.Answer, "- (notes.md p1) Refunds are issued within 14 days.") {
		t.Errorf("missing passage line in %q", res.Answer)
	}
	if strings.Contains(res.Answer, "beyond the first three") {
		t.Errorf("fourth passage should not be rendered: %q", res.Answer)
	}

	st, err := store.Get("conv-rag")
	if err != nil {
		t.Fatalf("get state: %v", err)
	}
	if len(st.LastSources) != 4 {
		t.Fatalf("expected 4 persisted sources, got %v", st.LastSources)
	}
	if st.LastSources[0] != "notes.md" || st.LastSources[2] != "policy.pdf" {
		t.Errorf("unexpected sources %v", st.LastSources)
	}
}

func TestRun_PreferenceCarryover(t *testing.T) {
	docs := &fakeDocs{passages: []rag.Passage{
		{ChunkID: "notes.md#c0", Source: "notes.md", Page: 1, Preview: "Something."},
	}}
	r, _ := newTestRunner(t, docs, &fakeData{}, &fakeWeb{}, &fakeGen{text: "ok"})

	if _, err := r.Run(context.Background(), "Please use docs first", "conv-pref"); err != nil {
		t.Fatalf("first run: %v", err)
	}

	// unrelated follow-up with no document keywords still leads with rag
	res, err := r.Run(context.Background(), "tell me something nice", "conv-pref")
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(res.Trace) == 0 || res.Trace[0].Tool != "rag" {
		t.Fatalf("expected rag as first call, got %+v", res.Trace)
	}
}

// #endregion rag-tests

// #region web-tests

func TestRun_WebCached(t *testing.T) {
	web := &fakeWeb{resp: websearch.Response{
		Mode: "cached",
		Results: []websearch.Result{
			{Title: "OpenAI Update", URL: "https://example.com/a", Snippet: "New release."},
			{Title: "Another Story", URL: "https://example.com/b", Snippet: "More news."},
		},
		Count: 2,
	}}
	r, _ := newTestRunner(t, &fakeDocs{}, &fakeData{}, web, &fakeGen{})

	res, err := r.Run(context.Background(), "latest news about OpenAI", "")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(res.Trace) != 1 || res.Trace[0].Tool != "web" {
		t.Fatalf("expected single web trace entry, got %+v", res.Trace)
	}
	if mode, _ := res.Trace[0].Input["mode"].(string); mode != "cached" {
		t.Errorf("expected cached mode input, got %v", res.Trace[0].Input["mode"])
	}
	if res.Trace[0].OutputSummary != "mode=cached results=2" {
		t.Errorf("unexpected summary %q", res.Trace[0].OutputSummary)
	}
	if !strings.Contains(res.Answer, "From web (cached):") {
		t.Errorf("missing web header in %q", res.Answer)
	}
	if !strings.Contains(res.Answer, "1. OpenAI Update") {
		t.Errorf("missing numbered entry in %q", res.Answer)
	}
}

// #endregion web-tests

// #region isolation-tests

func TestRun_ErrorIsolation(t *testing.T) {
	data := &fakeData{err: errors.New("no template matched")}
	web := &fakeWeb{resp: websearch.Response{
		Mode:    "cached",
		Results: []websearch.Result{{Title: "Story", URL: "https://example.com", Snippet: "Text."}},
		Count:   1,
	}}
	r, _ := newTestRunner(t, &fakeDocs{}, data, web, &fakeGen{})

	// matches both the sql and web heuristics
	res, err := r.Run(context.Background(), "top customers in the latest news", "")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(res.Trace) != 2 {
		t.Fatalf("expected 2 trace entries, got %d", len(res.Trace))
	}
	if !strings.HasPrefix(res.Trace[0].OutputSummary, "ERROR:") {
		t.Errorf("expected first entry to fail, got %q", res.Trace[0].OutputSummary)
	}
	if res.Trace[1].OutputSummary != "mode=cached results=1" {
		t.Errorf("expected web call to continue, got %q", res.Trace[1].OutputSummary)
	}
	if !strings.Contains(res.Answer, "From web (cached):") {
		t.Errorf("expected web section despite sql failure, got %q", res.Answer)
	}
	if strings.Contains(res.Answer, "From the database:") {
		t.Errorf("failed sql call must not render a section: %q", res.Answer)
	}
}

// #endregion isolation-tests

// #region event-log-tests

func TestRun_LogsToolEvents(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	events, err := logging.NewEventLog(db)
	if err != nil {
		t.Fatalf("new event log: %v", err)
	}

	store := newTestStore(t)
	r := New(Config{
		Store:     store,
		Docs:      &fakeDocs{},
		Data:      &fakeData{err: errors.New("boom")},
		Web:       &fakeWeb{},
		Generator: &fakeGen{text: "ok"},
		Events:    events,
	})

	if _, err := r.Run(context.Background(), "top customers", "conv-ev"); err != nil {
		t.Fatalf("run: %v", err)
	}

	var tool, status string
	if err := db.QueryRow("SELECT tool, status FROM tool_events").Scan(&tool, &status); err != nil {
		t.Fatalf("query events: %v", err)
	}
	if tool != "sql" {
		t.Errorf("expected sql event, got %q", tool)
	}
	if status != "error" {
		t.Errorf("expected error status, got %q", status)
	}
}

// #endregion event-log-tests

// #region citation-tests

func TestFormatCitations_DedupPreservesOrder(t *testing.T) {
	passages := []rag.Passage{
		{ChunkID: "a#c0", Source: "a"},
		{ChunkID: "b#c1", Source: "b"},
		{ChunkID: "a#c0", Source: "a"},
		{ChunkID: "c2", Source: "notes.md"},
	}
	got := formatCitations(passages)
	want := []string{"[a#c0]", "[b#c1]", "[notes.md#c2]"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("citation %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatCitations_UnknownFallbacks(t *testing.T) {
	got := formatCitations([]rag.Passage{{}})
	if len(got) != 1 || got[0] != "[unknown#unknown]" {
		t.Errorf("expected [unknown#unknown], got %v", got)
	}
}

// #endregion citation-tests
