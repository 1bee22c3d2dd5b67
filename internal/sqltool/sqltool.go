package sqltool

// #region imports
import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	_ "modernc.org/sqlite"
)

// #endregion

// #region guard

// blockedKeywords rejects anything that could mutate the database even
// inside an otherwise SELECT-shaped statement.
var blockedKeywords = regexp.MustCompile(`(?i)\b(drop|delete|update|insert|alter|create|attach|detach|pragma|vacuum|replace)\b`)

var hasLimit = regexp.MustCompile(`(?i)\blimit\b`)

// defaultLimit is appended to statements that carry no LIMIT of their own.
const defaultLimit = 50

// Guard validates a statement for read-only execution and enforces a LIMIT.
// Returns the normalized statement or an error.
func Guard(raw string) (string, error) {
	stmt := strings.Join(strings.Fields(raw), " ")

	if !strings.HasPrefix(strings.ToLower(stmt), "select") {
		return "", fmt.Errorf("only SELECT queries are allowed")
	}
	if strings.Contains(stmt, ";") {
		return "", fmt.Errorf("semicolons are not allowed")
	}
	if blockedKeywords.MatchString(stmt) {
		return "", fmt.Errorf("dangerous keyword detected")
	}
	if !hasLimit.MatchString(stmt) {
		stmt = fmt.Sprintf("%s LIMIT %d", stmt, defaultLimit)
	}
	return stmt, nil
}

// #endregion

// #region result

// Result is the structured output of a query.
type Result struct {
	SQL      string
	Columns  []string
	Rows     []map[string]string
	RowCount int
}

// #endregion

// #region tool

// Tool executes read-only SELECT queries against the sample database.
type Tool struct {
	db *sql.DB
}

// New opens the sample database read-only access layer.
func New(dbPath string) (*Tool, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return &Tool{db: db}, nil
}

// NewWithDB wraps an existing connection (tests, shared handles).
func NewWithDB(db *sql.DB) *Tool {
	return &Tool{db: db}
}

// Close closes the underlying database connection.
func (t *Tool) Close() error {
	return t.db.Close()
}

// #endregion

// #region query

// Query translates a natural-language question into one of the known SQL
// templates and executes it. Returns ErrNoTemplate when no template applies.
func (t *Tool) Query(ctx context.Context, question string) (Result, error) {
	stmt, err := TemplateFor(question)
	if err != nil {
		return Result{}, err
	}
	return t.Exec(ctx, stmt)
}

// Exec runs a raw SELECT through the guard and returns its rows with all
// values rendered as strings.
func (t *Tool) Exec(ctx context.Context, raw string) (Result, error) {
	stmt, err := Guard(raw)
	if err != nil {
		return Result{}, err
	}

	rows, err := t.db.QueryContext(ctx, stmt)
	if err != nil {
		return Result{}, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return Result{}, fmt.Errorf("columns: %w", err)
	}

	res := Result{SQL: stmt, Columns: cols}
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return Result{}, fmt.Errorf("scan row: %w", err)
		}
		row := make(map[string]string, len(cols))
		for i, c := range cols {
			row[c] = renderValue(vals[i])
		}
		res.Rows = append(res.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return Result{}, err
	}

	res.RowCount = len(res.Rows)
	return res, nil
}

// #endregion

// #region schema-text

// SchemaText returns a compact one-line-per-table schema description.
func (t *Tool) SchemaText(ctx context.Context) (string, error) {
	rows, err := t.db.QueryContext(ctx,
		`SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' ORDER BY name`,
	)
	if err != nil {
		return "", fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return "", err
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return "", err
	}

	var lines []string
	for _, tbl := range tables {
		cols, err := t.tableColumns(ctx, tbl)
		if err != nil {
			return "", err
		}
		lines = append(lines, fmt.Sprintf("%s(%s)", tbl, strings.Join(cols, ", ")))
	}
	return strings.Join(lines, "\n"), nil
}

func (t *Tool) tableColumns(ctx context.Context, table string) ([]string, error) {
	rows, err := t.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, fmt.Errorf("table info %s: %w", table, err)
	}
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pk int
		var dflt sql.NullString
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return nil, err
		}
		cols = append(cols, fmt.Sprintf("%s %s", name, ctype))
	}
	return cols, rows.Err()
}

// #endregion

// #region render-value

func renderValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(x)
	case float64:
		// keep integral REALs short: 250 rather than 250.000000
		if x == float64(int64(x)) {
			return fmt.Sprintf("%d", int64(x))
		}
		return fmt.Sprintf("%g", x)
	default:
		return fmt.Sprint(x)
	}
}

// #endregion
