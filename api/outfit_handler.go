package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/styloai/stylo-backend/models"
	"github.com/styloai/stylo-backend/stylist"
	"github.com/styloai/stylo-backend/utils"
)

// GenerateOutfitRequest represents the request body for outfit generation
type GenerateOutfitRequest struct {
	Prompt         string `json:"prompt"`
	ReferenceImage string `json:"reference_image,omitempty"`
	MaxResults     int    `json:"max_results,omitempty"`
}

// GenerateOutfitResponse mirrors the frontend contract: parsed intent
// fields, the product list, the generated keys and the "latest" key.
type GenerateOutfitResponse struct {
	Success         bool                 `json:"success"`
	Message         string               `json:"message"`
	UserQuery       string               `json:"user_query"`
	ParsedQuery     string               `json:"parsed_query"`
	ClothingType    string               `json:"clothing_type,omitempty"`
	Color           string               `json:"color,omitempty"`
	Brand           string               `json:"brand,omitempty"`
	Style           string               `json:"style,omitempty"`
	Gender          string               `json:"gender,omitempty"`
	IntentFallback  bool                 `json:"intent_fallback"`
	Products        []models.ProductInfo `json:"products"`
	GeneratedImages []string             `json:"generated_images"`
	Timestamp       string               `json:"timestamp"`
	LatestImage     string               `json:"latest_image"`
}

// GenerateOutfitHandler handles the full text-to-visualization pipeline
func (h *Handlers) GenerateOutfitHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Generate Outfit API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req GenerateOutfitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Prompt) == "" {
		utils.RespondError(w, &logMessageBuilder, "prompt is required", http.StatusBadRequest)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Processing request: %s", req.Prompt))

	// The synthesis batch can take minutes; don't tie it to the inbound
	// request context.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	result, err := h.generator.GenerateOutfit(ctx, stylist.GenerateRequest{
		Prompt:         req.Prompt,
		ReferenceImage: req.ReferenceImage,
		MaxResults:     clampMaxResults(req.MaxResults),
	})
	if err != nil {
		respondPipelineError(w, &logMessageBuilder, err)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Generated %d/%d images", len(result.GeneratedKeys), len(result.Products)))

	utils.RespondJSON(w, http.StatusOK, GenerateOutfitResponse{
		Success:         true,
		Message:         fmt.Sprintf("Successfully generated %d outfit visualization(s)", len(result.GeneratedKeys)),
		UserQuery:       req.Prompt,
		ParsedQuery:     result.Intent.SearchQuery,
		ClothingType:    result.Intent.ClothingType,
		Color:           result.Intent.Color,
		Brand:           result.Intent.Brand,
		Style:           result.Intent.Style,
		Gender:          result.Intent.Gender,
		IntentFallback:  result.IntentFallback,
		Products:        result.Products,
		GeneratedImages: result.GeneratedKeys,
		Timestamp:       result.Timestamp,
		LatestImage:     result.LatestKey,
	})
}

// respondPipelineError maps the pipeline's terminal failures to distinct,
// user-actionable responses; anything unexpected becomes a 500 with the
// captured message.
func respondPipelineError(w http.ResponseWriter, logger *strings.Builder, err error) {
	switch {
	case errors.Is(err, stylist.ErrNoReference):
		utils.RespondError(w, logger, "No reference image available. Please upload a photo first via /api/generate-reference.", http.StatusBadRequest)
	case errors.Is(err, stylist.ErrReferenceNotFound):
		utils.RespondError(w, logger, "Reference image not found. It may have been lost after a server restart. Please re-upload your photo.", http.StatusBadRequest)
	case errors.Is(err, stylist.ErrNoProducts):
		utils.RespondError(w, logger, "No products found for the given query", http.StatusNotFound)
	case errors.Is(err, stylist.ErrAllGenerationsFailed):
		utils.RespondError(w, logger, "Failed to generate any outfit visualizations", http.StatusInternalServerError)
	default:
		utils.RespondError(w, logger, fmt.Sprintf("Error processing request: %v", err), http.StatusInternalServerError)
	}
}
