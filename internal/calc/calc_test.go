package calc

import (
	"errors"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want float64
	}{
		{"multiply", "19*23", 437},
		{"precedence", "10 + 5 / 2", 12.5},
		{"parentheses", "(10+2)*3", 36},
		{"nested", "((1+2)*(3+4))", 21},
		{"unary-minus", "-4 + 10", 6},
		{"decimals", "1.5*2.5", 3.75},
		{"spaces", "  2 +  2 ", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.expr)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluate_Rejects(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"letters", "2+2; import os"},
		{"empty", "   "},
		{"dangling-operator", "2+"},
		{"unclosed-paren", "(1+2"},
		{"double-dot", "1..2+3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Evaluate(tt.expr); err == nil {
				t.Errorf("expected error for %q", tt.expr)
			}
		})
	}
}

func TestEvaluate_InvalidCharsTyped(t *testing.T) {
	_, err := Evaluate("2^3")
	if !errors.Is(err, ErrInvalidExpression) {
		t.Errorf("expected ErrInvalidExpression, got %v", err)
	}
}

func TestEvaluate_DivisionByZero(t *testing.T) {
	if _, err := Evaluate("1/0"); err == nil {
		t.Error("expected division by zero error")
	}
}

func TestFormatResult(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want string
	}{
		{"integral", 437, "437"},
		{"integral-from-division", 4.0, "4"},
		{"fractional", 12.5, "12.5"},
		{"negative", -6, "-6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatResult(tt.v); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
