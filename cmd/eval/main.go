package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/fidelisnguakaaga20/project-7-multi-tool-agent/internal/eval"
	"github.com/fidelisnguakaaga20/project-7-multi-tool-agent/internal/llm"
	"github.com/fidelisnguakaaga20/project-7-multi-tool-agent/internal/memory"
	"github.com/fidelisnguakaaga20/project-7-multi-tool-agent/internal/rag"
	"github.com/fidelisnguakaaga20/project-7-multi-tool-agent/internal/runner"
	"github.com/fidelisnguakaaga20/project-7-multi-tool-agent/internal/sqltool"
	"github.com/fidelisnguakaaga20/project-7-multi-tool-agent/internal/websearch"
)

// #region main
func main() {
	memPath := envOr("AGENT_DB", "agent_memory.db")
	ragPath := envOr("RAG_DB", "rag_index.db")
	samplePath := envOr("SAMPLE_DB", "sample.db")
	sidecarAddr := envOr("SIDECAR_ADDR", "localhost:50051")

	store, err := memory.NewStore(memPath)
	if err != nil {
		log.Fatalf("failed to open memory store: %v", err)
	}
	defer store.Close()

	ragStore, err := rag.NewStore(ragPath)
	if err != nil {
		log.Fatalf("failed to open rag index: %v", err)
	}
	defer ragStore.Close()

	sqlTool, err := sqltool.New(samplePath)
	if err != nil {
		log.Fatalf("failed to open sample db: %v", err)
	}
	defer sqlTool.Close()

	generator, closeGen, err := llm.FromEnv(sidecarAddr)
	if err != nil {
		log.Fatalf("failed to set up generator: %v", err)
	}
	defer closeGen()

	var live websearch.LiveSearcher
	if ls, ok := generator.(websearch.LiveSearcher); ok {
		live = ls
	}
	webTool := websearch.New(websearch.DefaultConfig(), live)

	r := runner.New(runner.Config{
		Store:     store,
		Docs:      ragStore,
		Data:      sqlTool,
		Web:       webTool,
		Generator: generator,
	})

	report := eval.NewHarness(r).Run(context.Background(), eval.DefaultCases())

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("failed to render report: %v", err)
	}
	fmt.Println(string(out))

	if report.Passed < report.Total {
		os.Exit(1)
	}
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
