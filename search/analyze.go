package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/styloai/stylo-backend/models"
)

// TextGenerator is the slice of the Gemini client used for brand analysis.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// AnalyzeBrands asks the language model for a shopping-focused summary of
// the brands behind a result set. CLI-only convenience; errors propagate so
// the caller can print them.
func AnalyzeBrands(ctx context.Context, llm TextGenerator, query string, products []models.ProductInfo) (string, error) {
	if len(products) == 0 {
		return "No products found to analyze.", nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Search Query: %q\n\nProducts Found (%d items):\n\n", query, len(products))
	for i, product := range products {
		fmt.Fprintf(&sb, "%d. Brand: %s\n", i+1, product.Brand)
		fmt.Fprintf(&sb, "   Product Link: %s\n", product.ProductLink)
		fmt.Fprintf(&sb, "   Image URL: %s\n\n", product.ImageURL)
	}

	prompt := fmt.Sprintf(`You are a fashion and shopping assistant. Analyze these clothing brands from Google Shopping and provide:

1. A brief overview of the brands found
2. Quality/reputation insights about these brands
3. Which brands are best known for quality vs budget options
4. Top 3 brand recommendations for this search query
5. Any shopping tips about these brands

%s

Please provide a helpful, concise analysis focused on the brands.`, sb.String())

	summary, err := llm.GenerateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("error generating summary: %v", err)
	}
	return summary, nil
}
