package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/styloai/stylo-backend/api"
	"github.com/styloai/stylo-backend/config"
	"github.com/styloai/stylo-backend/gemini"
	"github.com/styloai/stylo-backend/intent"
	"github.com/styloai/stylo-backend/search"
	"github.com/styloai/stylo-backend/store"
	"github.com/styloai/stylo-backend/stylist"
	"github.com/styloai/stylo-backend/utils"
)

func main() {
	config.LoadConfig()

	ctx := context.Background()

	// One authenticated client per external provider, shared by every request.
	geminiClient, err := gemini.NewClient(ctx, config.GeminiAPIKey, config.GeminiTextModel, config.GeminiImageModel)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}
	defer geminiClient.Close()

	serpClient := search.NewClient(config.SerpAPIKey, search.WithBaseURL(config.SerpAPIBaseURL))

	var storeOpts []store.Option
	if config.AWSBucketName != "" {
		mirror, err := store.NewS3Mirror(ctx, config.AWSRegion, config.AWSBucketName)
		if err != nil {
			log.Printf("S3 mirror disabled: %v", err)
		} else {
			storeOpts = append(storeOpts, store.WithMirror(mirror))
		}
	}
	images := store.New(config.OutputImageDir, storeOpts...)

	parser := intent.NewParser(geminiClient)
	resolver := stylist.NewResolver(images.Dir(), config.ReferenceImagePath)
	synthesizer := stylist.NewSynthesizer(geminiClient, images)
	generator := stylist.NewGenerator(parser, serpClient, synthesizer, resolver)
	normalizer := stylist.NewNormalizer(geminiClient, images, config.StyleExemplarPath)

	handlers := api.NewHandlers(generator, normalizer, images)

	// CORS Middleware
	corsMiddleware := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next(w, r)
		}
	}

	http.HandleFunc("/", corsMiddleware(handlers.RootHandler))
	http.HandleFunc("/health", corsMiddleware(handlers.HealthHandler))
	http.HandleFunc("/api/generate-outfit", corsMiddleware(handlers.GenerateOutfitHandler))
	http.HandleFunc("/api/search-products", corsMiddleware(handlers.SearchProductsHandler))
	http.HandleFunc("/api/generate-tryon", corsMiddleware(handlers.TryOnHandler))
	http.HandleFunc("/api/generate-reference", corsMiddleware(handlers.GenerateReferenceHandler))
	http.HandleFunc("/api/image/", corsMiddleware(handlers.ImageHandler))
	http.HandleFunc("/api/images", corsMiddleware(handlers.ListImagesHandler))

	port := config.Port
	fmt.Printf("Server starting on port %s...\n", port)
	fmt.Printf("Generated images directory: %s\n", config.OutputImageDir)
	if err := http.ListenAndServe(":"+port, utils.LatencyMiddleware(http.DefaultServeMux)); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
