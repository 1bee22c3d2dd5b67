package rag

// #region imports
import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	_ "modernc.org/sqlite"
)

// #endregion

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS doc_chunks (
	chunk_id   TEXT PRIMARY KEY,
	source     TEXT NOT NULL,
	page       INTEGER NOT NULL DEFAULT 0,
	text       TEXT NOT NULL,
	embedding  BLOB NOT NULL
);
`

// previewLen is the passage preview cutoff in characters.
const previewLen = 220

// #endregion

// #region passage

// Passage is one retrieved chunk with its similarity distance.
type Passage struct {
	ChunkID  string
	Source   string
	Page     int
	Distance float32
	Text     string
	Preview  string
}

// #endregion

// #region store-struct

// Store holds document chunks and their embeddings in SQLite and answers
// nearest-neighbor queries by brute-force cosine scan. Fine for the corpus
// sizes this runs against; a dedicated vector backend slots in behind the
// same interface.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion

// #region upsert

// Upsert indexes chunks, embedding each and replacing any existing chunk
// with the same id.
func (s *Store) Upsert(ctx context.Context, chunks []Chunk) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, ch := range chunks {
		emb := Embed(ch.Text)
		_, err := tx.ExecContext(ctx,
			`INSERT INTO doc_chunks (chunk_id, source, page, text, embedding)
			 VALUES (?, ?, ?, ?, ?)
			 ON CONFLICT(chunk_id) DO UPDATE SET
			   source = excluded.source,
			   page = excluded.page,
			   text = excluded.text,
			   embedding = excluded.embedding`,
			ch.ChunkID, ch.Source, ch.Page, ch.Text, encodeVector(emb),
		)
		if err != nil {
			return fmt.Errorf("upsert chunk %s: %w", ch.ChunkID, err)
		}
	}

	return tx.Commit()
}

// #endregion

// #region retrieve

// Retrieve returns the topK closest passages to the query, nearest first.
func (s *Store) Retrieve(ctx context.Context, query string, topK int) ([]Passage, error) {
	qEmb := Embed(query)

	rows, err := s.db.QueryContext(ctx,
		`SELECT chunk_id, source, page, text, embedding FROM doc_chunks`,
	)
	if err != nil {
		return nil, fmt.Errorf("scan chunks: %w", err)
	}
	defer rows.Close()

	var passages []Passage
	for rows.Next() {
		var p Passage
		var blob []byte
		if err := rows.Scan(&p.ChunkID, &p.Source, &p.Page, &p.Text, &blob); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		p.Distance = cosineDistance(qEmb, decodeVector(blob))
		p.Preview = preview(p.Text)
		passages = append(passages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(passages, func(i, j int) bool {
		return passages[i].Distance < passages[j].Distance
	})
	if topK > 0 && len(passages) > topK {
		passages = passages[:topK]
	}
	return passages, nil
}

// #endregion

// #region count

// Count returns the number of indexed chunks.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM doc_chunks`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count chunks: %w", err)
	}
	return n, nil
}

// #endregion

// #region preview

func preview(text string) string {
	if len(text) <= previewLen {
		return text
	}
	return text[:previewLen] + "..."
}

// #endregion
