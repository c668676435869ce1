package api

import (
	"net/http"

	"github.com/styloai/stylo-backend/utils"
)

const serviceVersion = "1.0.0"

// HealthHandler is the liveness probe
func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "Stylo Backend",
		"version": serviceVersion,
	})
}

// RootHandler lists the available endpoints
func (h *Handlers) RootHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		utils.RespondError(w, nil, "Not found", http.StatusNotFound)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"service":     "Stylo Backend",
		"version":     serviceVersion,
		"status":      "online",
		"description": "Virtual Outfit Generator - Natural language to outfit visualizations",
		"endpoints": map[string]string{
			"POST /api/generate-outfit":    "Generate outfit visualizations from natural language",
			"POST /api/search-products":    "Parse a prompt and search products without generating images",
			"POST /api/generate-tryon":     "Generate a try-on image for a single product",
			"POST /api/generate-reference": "Convert user photo to clean reference image",
			"GET /api/image/{filename}":    "Retrieve a generated outfit image",
			"GET /api/images":              "List all generated images",
			"DELETE /api/image/{filename}": "Delete a generated image",
			"GET /health":                  "Health check endpoint",
		},
	})
}
