package stylist

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/styloai/stylo-backend/gemini"
	"github.com/styloai/stylo-backend/store"
)

// Normalizer converts a raw uploaded photo into a canonical reference image
// suitable as a future synthesis subject. When the configured style exemplar
// exists on disk it is included as a second reference so the provider can
// match the exact target pose; otherwise the single-image background-cleanup
// instruction set is used. Never both.
type Normalizer struct {
	llm          ImageSynthesizer
	images       *store.Store
	exemplarPath string
}

func NewNormalizer(llm ImageSynthesizer, images *store.Store, exemplarPath string) *Normalizer {
	return &Normalizer{
		llm:          llm,
		images:       images,
		exemplarPath: exemplarPath,
	}
}

// Normalize decodes the upload, runs one synthesis call, and stores the
// first inline image of the response under a timestamped key derived from
// the upload's filename. Returns the stored key.
func (n *Normalizer) Normalize(ctx context.Context, upload []byte, filenameHint string) (string, error) {
	if len(upload) == 0 {
		return "", fmt.Errorf("%w: uploaded file is empty", ErrInvalidUpload)
	}
	mime := http.DetectContentType(upload)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrInvalidUpload, mime)
	}

	parts := []gemini.ImagePart{{MIMEType: mime, Data: upload}}
	prompt := referenceBackgroundOnlyPrompt

	if exemplar, err := os.ReadFile(n.exemplarPath); err == nil {
		prompt = referenceWithExemplarPrompt
		parts = append(parts, gemini.ImagePart{MIMEType: detectImageMIME(exemplar), Data: exemplar})
	} else {
		log.Printf("[Normalizer] no style exemplar at %s, proceeding without it", n.exemplarPath)
	}

	result, err := n.llm.SynthesizeImage(ctx, prompt, parts...)
	if err != nil {
		return "", fmt.Errorf("failed to generate reference image: %v", err)
	}
	if result.Image == nil {
		if result.Text != "" {
			return "", fmt.Errorf("no image data returned from Gemini: %s", result.Text)
		}
		return "", fmt.Errorf("no image data returned from Gemini")
	}

	key := referenceKey(time.Now(), filenameHint)
	return n.images.Put(ctx, key, result.Image)
}

// referenceKey builds "reference_<ts>_<upload-name>" with spaces replaced.
// The hint is reduced to its base filename so upload names cannot carry
// directory components into the store.
func referenceKey(now time.Time, filenameHint string) string {
	name := strings.ReplaceAll(filepath.Base(filenameHint), " ", "_")
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "upload.png"
	}
	return fmt.Sprintf("reference_%s_%s", now.Format("20060102_150405"), name)
}
