package router

import (
	"testing"
)

func TestClassifiers(t *testing.T) {
	tests := []struct {
		name    string
		message string
		rag     bool
		sql     bool
		web     bool
	}{
		{"rag-according-to", "According to my documents, what is my summary?", true, false, false},
		{"rag-resume", "What does resume.pdf say about my skills?", true, false, false},
		{"rag-policy", "What is the refund policy?", true, false, false},
		{"sql-top-customers", "Show top 3 customers by total orders", false, true, false},
		{"sql-revenue", "What was the revenue last quarter?", false, true, false},
		{"web-latest", "latest news about OpenAI", false, false, true},
		{"web-today", "what happened today?", false, false, true},
		{"plain", "hello there", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LooksLikeRAG(tt.message); got != tt.rag {
				t.Errorf("rag: got %v, want %v", got, tt.rag)
			}
			if got := LooksLikeSQL(tt.message); got != tt.sql {
				t.Errorf("sql: got %v, want %v", got, tt.sql)
			}
			if got := LooksLikeWeb(tt.message); got != tt.web {
				t.Errorf("web: got %v, want %v", got, tt.web)
			}
		})
	}
}

func TestExtractExpression(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"bare", "19*23", "19*23"},
		{"embedded", "please calculate 12*19 for me", "12*19"},
		{"spaces", "what is 10 + 5 / 2", "10 + 5 / 2"},
		{"parens", "solve (3+4)*9", "(3+4)*9"},
		{"decimals", "calculate 1.5*2.5", "1.5*2.5"},
		{"first-only", "calculate 12*19. Also 7+7 please", "12*19"},
		{"none", "hello there", ""},
		{"lone-number", "I have 42 apples", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractExpression(tt.message); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCleanWebQuery(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"search-web", "search web: golang release", "golang release"},
		{"google", "google - weather in Lagos", "weather in Lagos"},
		{"no-prefix", "latest news about OpenAI", "latest news about OpenAI"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanWebQuery(tt.message); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPickTool_Precedence(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Tool
	}{
		// RAG beats everything
		{"rag-over-web", "according to my docs, what is the latest plan?", ToolRAG},
		// Web beats SQL
		{"web-over-sql", "latest revenue numbers online", ToolWeb},
		// SQL beats calculator
		{"sql-over-calc", "show top 3 customers, and 2+2", ToolSQL},
		{"calc-expression", "calculate 19*23", ToolCalculator},
		{"none", "hello there", ToolNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := PickTool(tt.message)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPickTool_Inputs(t *testing.T) {
	tool, input := PickTool("search web: golang 1.25")
	if tool != ToolWeb {
		t.Fatalf("tool: got %q, want web", tool)
	}
	if input["query"] != "golang 1.25" {
		t.Errorf("query: got %q, want cleaned prefix", input["query"])
	}
	if input["mode"] != "cached" {
		t.Errorf("mode: got %q, want cached", input["mode"])
	}

	tool, input = PickTool("calculate 19*23")
	if tool != ToolCalculator {
		t.Fatalf("tool: got %q, want calculator", tool)
	}
	if input["expression"] != "19*23" {
		t.Errorf("expression: got %q, want 19*23", input["expression"])
	}
}
