package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fidelisnguakaaga20/project-7-multi-tool-agent/internal/rag"
)

// #region main
func main() {
	ragPath := envOr("RAG_DB", "rag_index.db")
	docsDir := envOr("DOCS_DIR", "docs")
	if len(os.Args) > 1 {
		docsDir = os.Args[1]
	}

	store, err := rag.NewStore(ragPath)
	if err != nil {
		log.Fatalf("failed to open rag index: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	files := 0
	chunks := 0

	err = filepath.WalkDir(docsDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".txt" && ext != ".md" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		cs := rag.ChunkText(string(data), filepath.Base(path), 1)
		if len(cs) == 0 {
			return nil
		}
		if err := store.Upsert(ctx, cs); err != nil {
			return err
		}
		log.Printf("[INGEST] %s: %d chunks", filepath.Base(path), len(cs))
		files++
		chunks += len(cs)
		return nil
	})
	if err != nil {
		log.Fatalf("ingest failed: %v", err)
	}

	total, err := store.Count(ctx)
	if err != nil {
		log.Fatalf("failed to count chunks: %v", err)
	}
	fmt.Printf("Ingested %d files (%d chunks) into %s, %d chunks total.\n", files, chunks, ragPath, total)
}

// #endregion main

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
