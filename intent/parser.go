package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/styloai/stylo-backend/models"
)

// TextGenerator is the slice of the Gemini client the parser needs.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Parser turns a natural-language clothing request into a SearchIntent. It
// never fails: any problem talking to the model or decoding its answer falls
// back to the canonical default intent built from the raw input.
type Parser struct {
	llm TextGenerator
}

func NewParser(llm TextGenerator) *Parser {
	return &Parser{llm: llm}
}

const parsingPromptTemplate = `You are a fashion shopping assistant. Analyze this user's request and extract the key search terms for finding clothing items. You are allowed to infer from sentiment which key search terms would be relevant, but user specified key information is always to be prioritized.

User's Request: "%s"

Extract and return a JSON object with these SPECIFIC fields:
1. "clothing_type" - CRITICAL: The specific type of clothing (e.g., "shirt", "dress", "tuxedo", "sneakers", "suit", "jacket")
2. "color" - CRITICAL: The specific color mentioned (e.g., "blue", "red", "black", "navy blue", "white") - if no color mentioned, use "any"
3. "brand" - CRITICAL: Any specific brand mentioned (e.g., "Nike", "Gucci", "Gap", "H&M") - if no brand mentioned, use "any"
4. "style" - The style or occasion (e.g., "formal", "casual", "athletic", "business")
5. "gender" - Target gender if mentioned ("men", "women", "unisex", or "not specified")
6. "search_query" - The best complete search term for Google Shopping combining the above (2-5 words)
7. "additional_details" - Any other important context

IMPORTANT: Extract brand, color, and clothing_type as SEPARATE fields. These will be used for filtering.

You are allowed to infer "clothing_type", "color", "brand", "style", "gender" and "search_query" from the sentiment of the prompt and general logic (e.g. if the user says "I want an outfit that makes me look like James Bond", you might infer a tailored suit, an Omega watch and such).

Examples:
Input: "I am looking for an outfit for a formal event for men. Like a tuxedo"
Output: {"clothing_type": "tuxedo", "color": "black", "brand": "any", "style": "formal", "gender": "men", "search_query": "men's black tuxedo", "additional_details": "formal event"}

Input: "I need a casual blue shirt for work"
Output: {"clothing_type": "shirt", "color": "blue", "brand": "any", "style": "business casual", "gender": "not specified", "search_query": "blue dress shirt", "additional_details": "work appropriate"}

Input: "red Nike hoodie"
Output: {"clothing_type": "hoodie", "color": "red", "brand": "Nike", "style": "casual", "gender": "unisex", "search_query": "red Nike hoodie", "additional_details": "none"}

Input: "navy blue suit"
Output: {"clothing_type": "suit", "color": "navy blue", "brand": "any", "style": "formal", "gender": "not specified", "search_query": "navy blue suit", "additional_details": "none"}

Input: "Gucci black leather jacket"
Output: {"clothing_type": "jacket", "color": "black", "brand": "Gucci", "style": "luxury", "gender": "unisex", "search_query": "Gucci black leather jacket", "additional_details": "leather material"}

Now analyze the user's request and provide ONLY the JSON object, no other text.`

// Parse extracts a SearchIntent from userText. The second return value is
// true when the canonical default intent was substituted because the model
// call or JSON decoding failed. Single attempt, no retry.
func (p *Parser) Parse(ctx context.Context, userText string) (models.SearchIntent, bool) {
	prompt := fmt.Sprintf(parsingPromptTemplate, userText)

	raw, err := p.llm.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("[Intent Parser] model call failed, using default intent: %v", err)
		return models.DefaultIntent(userText), true
	}

	var parsed models.SearchIntent
	if err := json.Unmarshal([]byte(StripCodeFence(raw)), &parsed); err != nil {
		log.Printf("[Intent Parser] could not decode model response, using default intent: %v", err)
		return models.DefaultIntent(userText), true
	}

	if strings.TrimSpace(parsed.SearchQuery) == "" {
		parsed.SearchQuery = userText
	}
	return parsed, false
}

// StripCodeFence removes a surrounding Markdown code fence (with an optional
// "json" language tag) from a model response.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "```"); idx >= 0 {
		s = s[:idx]
	}
	s = strings.TrimPrefix(strings.TrimSpace(s), "json")
	return strings.TrimSpace(s)
}
