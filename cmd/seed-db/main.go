package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "modernc.org/sqlite"

	"github.com/fidelisnguakaaga20/project-7-multi-tool-agent/internal/sqltool"
)

// #region main
func main() {
	dbPath := envOr("SAMPLE_DB", "sample.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		log.Fatalf("failed to open %s: %v", dbPath, err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := sqltool.Seed(ctx, db); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	schema, err := sqltool.NewWithDB(db).SchemaText(ctx)
	if err != nil {
		log.Fatalf("failed to read schema: %v", err)
	}

	fmt.Printf("Seeded %s\n", dbPath)
	fmt.Println(schema)
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
