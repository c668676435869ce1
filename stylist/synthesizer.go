package stylist

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/styloai/stylo-backend/gemini"
	"github.com/styloai/stylo-backend/models"
	"github.com/styloai/stylo-backend/store"
)

const garmentFetchTimeout = 10 * time.Second

// ImageSynthesizer is the slice of the Gemini client the synthesizer needs.
type ImageSynthesizer interface {
	SynthesizeImage(ctx context.Context, prompt string, images ...gemini.ImagePart) (gemini.SynthesisResult, error)
}

// Synthesizer turns one subject photo plus one garment reference into a
// stored composite image. Each call is a single provider round trip with no
// retry; a failure aborts only the job at hand.
type Synthesizer struct {
	llm        ImageSynthesizer
	images     *store.Store
	httpClient *http.Client
}

// Outcome reports one synthesis job. Message is human-readable; Text carries
// whatever the model said when it declined to return an image.
type Outcome struct {
	Success bool
	Message string
	Text    string
	Key     string
}

func NewSynthesizer(llm ImageSynthesizer, images *store.Store) *Synthesizer {
	return &Synthesizer{
		llm:        llm,
		images:     images,
		httpClient: &http.Client{Timeout: garmentFetchTimeout},
	}
}

// Synthesize runs one garment-swap job: load the subject from disk, obtain
// the garment image (HTTP fetch or local read), submit both with the
// replacement prompt, and store the first inline image of the response under
// outputKey. Product metadata, when present, is embedded in the prompt.
func (s *Synthesizer) Synthesize(ctx context.Context, subjectPath, garmentRef, outputKey string, product *models.ProductInfo) Outcome {
	subject, err := os.ReadFile(subjectPath)
	if err != nil {
		return Outcome{Message: fmt.Sprintf("failed to load reference image: %v", err)}
	}

	garment, err := s.fetchGarmentImage(ctx, garmentRef)
	if err != nil {
		return Outcome{Message: fmt.Sprintf("failed to load clothing image: %v", err)}
	}

	prompt := buildGarmentSwapPrompt(product)

	result, err := s.llm.SynthesizeImage(ctx, prompt,
		gemini.ImagePart{MIMEType: detectImageMIME(subject), Data: subject},
		gemini.ImagePart{MIMEType: detectImageMIME(garment), Data: garment},
	)
	if err != nil {
		return Outcome{Message: fmt.Sprintf("image generation failed: %v", err)}
	}

	if result.Image == nil {
		return Outcome{
			Message: "no image data returned",
			Text:    result.Text,
		}
	}

	key, err := s.images.Put(ctx, outputKey, result.Image)
	if err != nil {
		return Outcome{Message: fmt.Sprintf("failed to save generated image: %v", err)}
	}

	return Outcome{
		Success: true,
		Message: fmt.Sprintf("image saved to %s", key),
		Text:    result.Text,
		Key:     key,
	}
}

// fetchGarmentImage downloads the garment when the reference is an HTTP(S)
// URL and reads it from disk otherwise. The download is the only external
// call in the pipeline with its own timeout.
func (s *Synthesizer) fetchGarmentImage(ctx context.Context, garmentRef string) ([]byte, error) {
	if !strings.HasPrefix(garmentRef, "http") {
		return os.ReadFile(garmentRef)
	}

	log.Printf("[Synthesizer] downloading clothing image from %s", garmentRef)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, garmentRef, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch image, status: %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// detectImageMIME sniffs the content type, defaulting to JPEG when the
// sniffer reports something that is not an image at all.
func detectImageMIME(data []byte) string {
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "image/jpeg"
	}
	return mime
}
