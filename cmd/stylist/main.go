package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/styloai/stylo-backend/config"
	"github.com/styloai/stylo-backend/gemini"
	"github.com/styloai/stylo-backend/intent"
	"github.com/styloai/stylo-backend/models"
	"github.com/styloai/stylo-backend/search"
	"github.com/styloai/stylo-backend/store"
	"github.com/styloai/stylo-backend/stylist"
)

// Standalone runner for the outfit pipeline: search products for a prompt,
// optionally generate visualizations against a local reference photo.
func main() {
	reference := flag.String("reference", "", "path to a reference photo; generation is skipped when empty")
	maxResults := flag.Int("max-results", 2, "maximum number of products to search")
	noParse := flag.Bool("no-parse", false, "skip AI parsing and use the query directly")
	withImages := flag.Bool("with-images", false, "also search Google Images for additional product photos")
	analyze := flag.Bool("analyze", false, "ask the model for a brand analysis of the results")
	flag.Parse()

	query := strings.Join(flag.Args(), " ")
	if strings.TrimSpace(query) == "" {
		fmt.Println("Usage: stylist [flags] <natural language query>")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println(`  stylist "I need a casual blue shirt for work"`)
		fmt.Println(`  stylist -reference me.png -max-results 5 "red Nike hoodie"`)
		flag.PrintDefaults()
		os.Exit(1)
	}

	config.LoadConfig()
	ctx := context.Background()

	geminiClient, err := gemini.NewClient(ctx, config.GeminiAPIKey, config.GeminiTextModel, config.GeminiImageModel)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}
	defer geminiClient.Close()

	serpClient := search.NewClient(config.SerpAPIKey, search.WithBaseURL(config.SerpAPIBaseURL))

	searchQuery := query
	if !*noParse {
		parsed, usedFallback := intent.NewParser(geminiClient).Parse(ctx, query)
		searchQuery = parsed.SearchQuery
		fmt.Printf("Parsed search: %q (clothing_type=%s, color=%s, brand=%s, fallback=%v)\n",
			parsed.SearchQuery, parsed.ClothingType, parsed.Color, parsed.Brand, usedFallback)
	}

	products := serpClient.Search(ctx, searchQuery, *maxResults)
	if len(products) == 0 {
		fmt.Println("No products found. Try a different search query.")
		os.Exit(1)
	}

	for i, product := range products {
		fmt.Printf("%d. Brand: %s\n", i+1, product.Brand)
		fmt.Printf("   Product Link: %s\n", product.ProductLink)
		fmt.Printf("   Image URL: %s\n", product.ImageURL)
	}

	if *withImages {
		printImageResults(serpClient.SearchImages(ctx, searchQuery, *maxResults))
	}

	if *analyze {
		summary, err := search.AnalyzeBrands(ctx, geminiClient, searchQuery, products)
		if err != nil {
			log.Printf("Brand analysis failed: %v", err)
		} else {
			fmt.Println()
			fmt.Println(summary)
		}
	}

	if *reference == "" {
		return
	}
	if _, err := os.Stat(*reference); err != nil {
		log.Fatalf("Reference image not found: %s", *reference)
	}

	images := store.New(config.OutputImageDir)
	synthesizer := stylist.NewSynthesizer(geminiClient, images)

	timestamp := time.Now().Format("20060102_150405")
	var generated []string
	for i, product := range products {
		fmt.Printf("[%d/%d] Generating outfit with %s...\n", i+1, len(products), product.Brand)

		key := fmt.Sprintf("outfit_%s_%d_%s.png", timestamp, i+1, strings.ReplaceAll(product.Brand, " ", "_"))
		outcome := synthesizer.Synthesize(ctx, *reference, product.ImageURL, key, &products[i])
		if outcome.Success {
			generated = append(generated, outcome.Key)
			fmt.Println("   done")
		} else {
			fmt.Printf("   failed: %s\n", outcome.Message)
		}
	}

	fmt.Printf("\nProducts found: %d\n", len(products))
	fmt.Printf("Outfits generated: %d/%d\n", len(generated), len(products))
	for _, key := range generated {
		fmt.Printf("  - %s\n", key)
	}
}

func printImageResults(images []models.ImageResult) {
	if len(images) == 0 {
		fmt.Println("No additional image results.")
		return
	}
	fmt.Println("\nAdditional product images:")
	for i, img := range images {
		fmt.Printf("%d. %s\n", i+1, img.Title)
		fmt.Printf("   Original: %s\n", img.Original)
		fmt.Printf("   Thumbnail: %s\n", img.Thumbnail)
		fmt.Printf("   Source: %s\n", img.Source)
	}
}
