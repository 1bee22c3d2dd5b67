package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fidelisnguakaaga20/project-7-multi-tool-agent/internal/sidecar"
)

// #region types

// Result holds a single search result.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// Response is the structured outcome of one search.
type Response struct {
	Query   string
	Mode    string
	Results []Result
	Count   int
}

// Config holds web search parameters.
type Config struct {
	CachePath  string
	MaxResults int
}

// LiveSearcher performs a live lookup through the sidecar. A nil searcher
// disables live mode.
type LiveSearcher interface {
	WebSearch(ctx context.Context, query string, maxResults int) ([]sidecar.WebResult, error)
}

// #endregion types

// #region config

// DefaultConfig returns default web search configuration.
// Reads from env vars: WEB_CACHE, WEB_SEARCH_MAX_RESULTS.
func DefaultConfig() Config {
	cfg := Config{
		CachePath:  "web_cache.json",
		MaxResults: 5,
	}
	if v := os.Getenv("WEB_CACHE"); v != "" {
		cfg.CachePath = v
	}
	if v := os.Getenv("WEB_SEARCH_MAX_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxResults = n
		}
	}
	return cfg
}

// #endregion config

// #region tool

// Tool answers queries cache-first, with an optional live fallback.
type Tool struct {
	cfg  Config
	live LiveSearcher
}

// New creates a Tool. live may be nil; live and auto modes then return
// empty results on a cache miss instead of failing.
func New(cfg Config, live LiveSearcher) *Tool {
	return &Tool{cfg: cfg, live: live}
}

// Search runs a query in the given mode (cached, live, or auto).
// Auto tries the cache first and falls through to live on a miss.
func (t *Tool) Search(ctx context.Context, query string, maxResults int, mode string) (Response, error) {
	query = strings.TrimSpace(query)
	if maxResults <= 0 {
		maxResults = t.cfg.MaxResults
	}
	mode = strings.ToLower(strings.TrimSpace(mode))
	if mode == "" {
		mode = "cached"
	}

	var results []Result
	usedMode := mode

	if mode == "cached" || mode == "auto" {
		cached, err := t.cachedSearch(query, maxResults)
		if err != nil {
			return Response{}, err
		}
		results = cached
		usedMode = "cached"
	}

	if len(results) == 0 && (mode == "live" || mode == "auto") && t.live != nil {
		found, err := t.live.WebSearch(ctx, query, maxResults)
		if err != nil {
			return Response{}, err
		}
		for _, r := range found {
			results = append(results, Result{Title: r.Title, URL: r.URL, Snippet: r.Snippet})
		}
		usedMode = "live"
	}

	return Response{
		Query:   query,
		Mode:    usedMode,
		Results: results,
		Count:   len(results),
	}, nil
}

// #endregion tool

// #region cache

func (t *Tool) cachedSearch(query string, maxResults int) ([]Result, error) {
	cache, err := t.loadCache()
	if err != nil {
		return nil, err
	}
	qn := normalizeQuery(query)

	// direct hit before fuzzy containment
	if items, ok := cache[qn]; ok {
		return clip(items, maxResults), nil
	}
	for key, items := range cache {
		if strings.Contains(qn, key) || strings.Contains(key, qn) {
			return clip(items, maxResults), nil
		}
	}
	return nil, nil
}

func (t *Tool) loadCache() (map[string][]Result, error) {
	data, err := os.ReadFile(t.cfg.CachePath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cache %s: %w", t.cfg.CachePath, err)
	}
	var cache map[string][]Result
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, fmt.Errorf("parse cache %s: %w", t.cfg.CachePath, err)
	}
	return cache, nil
}

func normalizeQuery(q string) string {
	return strings.Join(strings.Fields(strings.ToLower(q)), " ")
}

func clip(items []Result, n int) []Result {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// #endregion cache
