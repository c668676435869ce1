package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/styloai/stylo-backend/store"
	"github.com/styloai/stylo-backend/utils"
)

// ListImagesResponse mirrors the gallery contract
type ListImagesResponse struct {
	Total  int      `json:"total"`
	Images []string `json:"images"`
}

// ImageHandler serves GET and DELETE on /api/image/{filename}
func (h *Handlers) ImageHandler(w http.ResponseWriter, r *http.Request) {
	filename := strings.TrimPrefix(r.URL.Path, "/api/image/")
	if filename == "" {
		utils.RespondError(w, nil, "image filename is required", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.getImage(w, filename)
	case http.MethodDelete:
		h.deleteImage(w, filename)
	default:
		utils.RespondError(w, nil, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handlers) getImage(w http.ResponseWriter, filename string) {
	data, err := h.images.Get(filename)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondError(w, nil, "Image not found", http.StatusNotFound)
		} else {
			utils.RespondError(w, nil, fmt.Sprintf("Failed to read image: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", store.ContentType(filename))
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		fmt.Printf("Error writing image response: %v\n", err)
	}
}

func (h *Handlers) deleteImage(w http.ResponseWriter, filename string) {
	if err := h.images.Delete(filename); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondError(w, nil, "Image not found", http.StatusNotFound)
		} else {
			utils.RespondError(w, nil, fmt.Sprintf("Failed to delete image: %v", err), http.StatusInternalServerError)
		}
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Deleted %s", filename),
	})
}

// ListImagesHandler returns all stored image keys, most recent first
func (h *Handlers) ListImagesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondError(w, nil, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	keys, err := h.images.List()
	if err != nil {
		utils.RespondError(w, nil, fmt.Sprintf("Failed to list images: %v", err), http.StatusInternalServerError)
		return
	}

	utils.RespondJSON(w, http.StatusOK, ListImagesResponse{
		Total:  len(keys),
		Images: keys,
	})
}
