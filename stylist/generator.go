package stylist

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/styloai/stylo-backend/models"
)

// IntentParser is satisfied by intent.Parser.
type IntentParser interface {
	Parse(ctx context.Context, userText string) (models.SearchIntent, bool)
}

// ProductSearcher is satisfied by search.Client.
type ProductSearcher interface {
	Search(ctx context.Context, query string, maxResults int) []models.ProductInfo
}

// Generator orchestrates one outfit-generation request: resolve the subject
// photo, parse intent, search products, then run the synthesis jobs strictly
// sequentially, tolerating per-item failures.
type Generator struct {
	parser   IntentParser
	searcher ProductSearcher
	synth    *Synthesizer
	resolver *Resolver
}

// GenerateRequest is one outfit-generation request.
type GenerateRequest struct {
	Prompt         string
	ReferenceImage string
	MaxResults     int
}

// GenerateResult aggregates a batch. LatestKey is the first success in
// submission order, regardless of which job finished writing last.
type GenerateResult struct {
	Intent         models.SearchIntent
	IntentFallback bool
	Products       []models.ProductInfo
	GeneratedKeys  []string
	Failures       []string
	LatestKey      string
	Timestamp      string
}

func NewGenerator(parser IntentParser, searcher ProductSearcher, synth *Synthesizer, resolver *Resolver) *Generator {
	return &Generator{
		parser:   parser,
		searcher: searcher,
		synth:    synth,
		resolver: resolver,
	}
}

// GenerateOutfit runs the full pipeline. The reference is resolved before
// any external call so a missing photo is reported without spending a single
// search or synthesis request. Terminal failures are ErrNoReference,
// ErrReferenceNotFound, ErrNoProducts and ErrAllGenerationsFailed.
func (g *Generator) GenerateOutfit(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	subjectPath, err := g.resolver.Resolve(req.ReferenceImage)
	if err != nil {
		return GenerateResult{}, err
	}

	parsed, usedFallback := g.parser.Parse(ctx, req.Prompt)
	log.Printf("[Generator] parsed query: %q (fallback=%v)", parsed.SearchQuery, usedFallback)

	products := g.searcher.Search(ctx, parsed.SearchQuery, req.MaxResults)
	if len(products) == 0 {
		return GenerateResult{}, ErrNoProducts
	}

	result := GenerateResult{
		Intent:         parsed,
		IntentFallback: usedFallback,
		Products:       products,
		Timestamp:      time.Now().Format("20060102_150405"),
	}

	for i, product := range products {
		log.Printf("[Generator] generating image %d/%d (%s)", i+1, len(products), product.Brand)

		key := outfitKey(result.Timestamp, i, product.Brand)
		outcome := g.synth.Synthesize(ctx, subjectPath, product.ImageURL, key, &products[i])
		if outcome.Success {
			result.GeneratedKeys = append(result.GeneratedKeys, outcome.Key)
		} else {
			log.Printf("[Generator] generation %d failed: %s", i+1, outcome.Message)
			result.Failures = append(result.Failures, outcome.Message)
		}
	}

	if len(result.GeneratedKeys) == 0 {
		return result, ErrAllGenerationsFailed
	}

	result.LatestKey = result.GeneratedKeys[0]
	return result, nil
}

// TryOn synthesizes a single caller-supplied product against the resolved
// reference and returns the stored key.
func (g *Generator) TryOn(ctx context.Context, product models.ProductInfo, referenceImage string) (string, error) {
	subjectPath, err := g.resolver.Resolve(referenceImage)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("tryon_%s_%s.png", time.Now().Format("20060102_150405"), sanitizeBrand(product.Brand))
	outcome := g.synth.Synthesize(ctx, subjectPath, product.ImageURL, key, &product)
	if !outcome.Success {
		if outcome.Text != "" {
			return "", fmt.Errorf("%s: %s", outcome.Message, outcome.Text)
		}
		return "", fmt.Errorf("%s", outcome.Message)
	}
	return outcome.Key, nil
}

// SearchOnly parses the prompt and returns products without any synthesis.
func (g *Generator) SearchOnly(ctx context.Context, prompt string, maxResults int) (models.SearchIntent, bool, []models.ProductInfo) {
	parsed, usedFallback := g.parser.Parse(ctx, prompt)
	products := g.searcher.Search(ctx, parsed.SearchQuery, maxResults)
	return parsed, usedFallback, products
}

// outfitKey builds "outfit_<ts>_<n>_<brand>.png". Two products with the same
// brand generated in the same second at the same index would collide; the
// sequence index keeps same-batch keys unique.
func outfitKey(timestamp string, index int, brand string) string {
	return fmt.Sprintf("outfit_%s_%d_%s.png", timestamp, index+1, sanitizeBrand(brand))
}

func sanitizeBrand(brand string) string {
	if brand == "" {
		brand = "Unknown"
	}
	return strings.ReplaceAll(brand, " ", "_")
}
