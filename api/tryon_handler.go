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

// TryOnRequest represents the request body for single-product try-on
type TryOnRequest struct {
	Product        models.ProductInfo `json:"product"`
	ReferenceImage string             `json:"reference_image,omitempty"`
}

// TryOnResponse carries the single generated image key
type TryOnResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	GeneratedImage string `json:"generated_image"`
}

// TryOnHandler handles the virtual try-on request for one caller-supplied product
func (h *Handlers) TryOnHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Virtual Try-On API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req TryOnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.Product.ImageURL == "" || req.Product.ImageURL == "N/A" {
		utils.RespondError(w, &logMessageBuilder, "product.image_url is required", http.StatusBadRequest)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Try-On Request: Brand=%s", req.Product.Brand))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	key, err := h.generator.TryOn(ctx, req.Product, req.ReferenceImage)
	if err != nil {
		respondPipelineError(w, &logMessageBuilder, err)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Generated: %s", key))

	utils.RespondJSON(w, http.StatusOK, TryOnResponse{
		Success:        true,
		Message:        fmt.Sprintf("Image saved to %s", key),
		GeneratedImage: key,
	})
}
