package intent

import (
	"context"
	"errors"
	"testing"

	"github.com/styloai/stylo-backend/models"
)

type stubLLM struct {
	response string
	err      error
	prompts  []string
}

func (s *stubLLM) GenerateText(ctx context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.response, s.err
}

func TestParseExtractsFields(t *testing.T) {
	llm := &stubLLM{response: `{"clothing_type": "hoodie", "color": "red", "brand": "Nike", "style": "casual", "gender": "unisex", "search_query": "red Nike hoodie", "additional_details": "none"}`}
	parser := NewParser(llm)

	parsed, usedFallback := parser.Parse(context.Background(), "red Nike hoodie")
	if usedFallback {
		t.Fatal("expected a clean parse, got fallback")
	}
	if parsed.ClothingType != "hoodie" || parsed.Color != "red" || parsed.Brand != "Nike" {
		t.Fatalf("unexpected intent: %+v", parsed)
	}
	if parsed.SearchQuery != "red Nike hoodie" {
		t.Fatalf("unexpected search query %q", parsed.SearchQuery)
	}
	if len(llm.prompts) != 1 {
		t.Fatalf("expected a single attempt, got %d", len(llm.prompts))
	}
}

func TestParseStripsCodeFence(t *testing.T) {
	llm := &stubLLM{response: "```json\n{\"clothing_type\": \"suit\", \"search_query\": \"navy blue suit\"}\n```"}
	parser := NewParser(llm)

	parsed, usedFallback := parser.Parse(context.Background(), "navy blue suit")
	if usedFallback {
		t.Fatal("expected a clean parse, got fallback")
	}
	if parsed.ClothingType != "suit" {
		t.Fatalf("unexpected clothing type %q", parsed.ClothingType)
	}
}

func TestParseMalformedResponseFallsBack(t *testing.T) {
	llm := &stubLLM{response: "I cannot help with that."}
	parser := NewParser(llm)

	userText := "something unusual"
	parsed, usedFallback := parser.Parse(context.Background(), userText)
	if !usedFallback {
		t.Fatal("expected fallback for a non-JSON response")
	}
	if parsed != models.DefaultIntent(userText) {
		t.Fatalf("expected canonical default intent, got %+v", parsed)
	}
	if parsed.SearchQuery != userText {
		t.Fatalf("fallback search query must be the verbatim input, got %q", parsed.SearchQuery)
	}
}

func TestParseModelErrorFallsBack(t *testing.T) {
	llm := &stubLLM{err: errors.New("provider outage")}
	parser := NewParser(llm)

	parsed, usedFallback := parser.Parse(context.Background(), "blue shirt")
	if !usedFallback {
		t.Fatal("expected fallback when the model call fails")
	}
	if parsed != models.DefaultIntent("blue shirt") {
		t.Fatalf("expected canonical default intent, got %+v", parsed)
	}
}

func TestParseFillsEmptySearchQuery(t *testing.T) {
	llm := &stubLLM{response: `{"clothing_type": "shirt", "search_query": ""}`}
	parser := NewParser(llm)

	parsed, _ := parser.Parse(context.Background(), "blue shirt")
	if parsed.SearchQuery != "blue shirt" {
		t.Fatalf("empty search query must fall back to the input, got %q", parsed.SearchQuery)
	}
}

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"fenced", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced with language", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"padded", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripCodeFence(tc.in); got != tc.want {
				t.Fatalf("StripCodeFence(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
