package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/styloai/stylo-backend/stylist"
	"github.com/styloai/stylo-backend/utils"
)

const maxUploadSize = 32 << 20 // 32 MB

// GenerateReferenceResponse carries the stored key of the normalized photo
type GenerateReferenceResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	ReferenceImage string `json:"reference_image"`
	Timestamp      string `json:"timestamp"`
}

// GenerateReferenceHandler converts an uploaded photo into a clean, canonical
// reference image usable as a future synthesis subject
func (h *Handlers) GenerateReferenceHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Generate Reference API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid multipart form: %v", err), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contents, err := io.ReadAll(file)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Failed to read upload: %v", err), http.StatusBadRequest)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Uploaded: %s (%d bytes)", header.Filename, len(contents)))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	key, err := h.normalizer.Normalize(ctx, contents, header.Filename)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, stylist.ErrInvalidUpload) {
			status = http.StatusBadRequest
		}
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Error generating reference image: %v", err), status)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Reference image saved: %s", key))

	utils.RespondJSON(w, http.StatusOK, GenerateReferenceResponse{
		Success:        true,
		Message:        "Reference image generated successfully",
		ReferenceImage: key,
		Timestamp:      time.Now().Format("20060102_150405"),
	})
}
