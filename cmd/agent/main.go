package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fidelisnguakaaga20/project-7-multi-tool-agent/internal/llm"
	"github.com/fidelisnguakaaga20/project-7-multi-tool-agent/internal/logging"
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

	// live web search rides the same sidecar connection when available
	var live websearch.LiveSearcher
	if ls, ok := generator.(websearch.LiveSearcher); ok {
		live = ls
	}
	webTool := websearch.New(websearch.DefaultConfig(), live)

	events, err := logging.NewEventLog(store.DB())
	if err != nil {
		log.Fatalf("failed to set up event log: %v", err)
	}

	r := runner.New(runner.Config{
		Store:     store,
		Docs:      ragStore,
		Data:      sqlTool,
		Web:       webTool,
		Generator: generator,
		Events:    events,
	})

	conversationID := "cli-" + uuid.NewString()

	fmt.Println("Multi-tool agent ready.")
	fmt.Printf("  Memory: %s | RAG: %s | SQL: %s\n", memPath, ragPath, samplePath)
	fmt.Printf("  Conversation: %s\n", conversationID)
	fmt.Println("Type a message (or 'quit' to exit):")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}
		if message == "quit" || message == "exit" {
			break
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		res, err := r.Run(ctx, message, conversationID)
		cancel()
		if err != nil {
			log.Printf("run error: %v", err)
			continue
		}

		fmt.Printf("\n%s\n\n", res.Answer)
		if len(res.Citations) > 0 {
			fmt.Printf("Citations: %s\n", strings.Join(res.Citations, " "))
		}
		for _, line := range res.Plan {
			fmt.Printf("Plan: %s\n", line)
		}
		for _, entry := range res.Trace {
			fmt.Printf("Trace: %s %s (%dms)\n", entry.Tool, entry.OutputSummary, entry.ElapsedMs)
		}
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
