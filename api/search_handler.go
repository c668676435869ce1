package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/styloai/stylo-backend/models"
	"github.com/styloai/stylo-backend/utils"
)

// SearchProductsRequest represents the request body for product search
type SearchProductsRequest struct {
	Prompt     string `json:"prompt"`
	MaxResults int    `json:"max_results,omitempty"`
}

// SearchProductsResponse carries the parsed intent and the product list; no
// synthesis is performed on this path.
type SearchProductsResponse struct {
	Success        bool                 `json:"success"`
	UserQuery      string               `json:"user_query"`
	ParsedQuery    string               `json:"parsed_query"`
	ClothingType   string               `json:"clothing_type,omitempty"`
	Color          string               `json:"color,omitempty"`
	Brand          string               `json:"brand,omitempty"`
	Style          string               `json:"style,omitempty"`
	Gender         string               `json:"gender,omitempty"`
	IntentFallback bool                 `json:"intent_fallback"`
	Products       []models.ProductInfo `json:"products"`
	Total          int                  `json:"total"`
}

// SearchProductsHandler parses the prompt and searches products without
// generating any images
func (h *Handlers) SearchProductsHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Search Products API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SearchProductsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Prompt) == "" {
		utils.RespondError(w, &logMessageBuilder, "prompt is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	parsed, usedFallback, products := h.generator.SearchOnly(ctx, req.Prompt, clampMaxResults(req.MaxResults))
	if products == nil {
		products = []models.ProductInfo{}
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Found %d products for %q", len(products), parsed.SearchQuery))

	utils.RespondJSON(w, http.StatusOK, SearchProductsResponse{
		Success:        true,
		UserQuery:      req.Prompt,
		ParsedQuery:    parsed.SearchQuery,
		ClothingType:   parsed.ClothingType,
		Color:          parsed.Color,
		Brand:          parsed.Brand,
		Style:          parsed.Style,
		Gender:         parsed.Gender,
		IntentFallback: usedFallback,
		Products:       products,
		Total:          len(products),
	})
}
