package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client wraps the Gemini SDK behind the two operations the pipeline needs:
// plain text generation (intent parsing, brand analysis) and multimodal image
// synthesis. One Client is constructed at process start and shared by every
// request; it holds the only authenticated channel to the provider.
type Client struct {
	genai      *genai.Client
	textModel  string
	imageModel string
}

// ImagePart is an inline image attached to a synthesis request.
type ImagePart struct {
	MIMEType string
	Data     []byte
}

// SynthesisResult carries the first inline image of a response plus any text
// parts accumulated before it. Text is kept for diagnostics when no image
// comes back.
type SynthesisResult struct {
	Image    []byte
	MIMEType string
	Text     string
}

// NewClient creates the shared Gemini client.
func NewClient(ctx context.Context, apiKey, textModel, imageModel string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %v", err)
	}

	return &Client{
		genai:      client,
		textModel:  textModel,
		imageModel: imageModel,
	}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.genai.Close()
}

// GenerateText sends a single text prompt to the text model and returns the
// concatenated text parts of the first candidate.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	model := c.genai.GenerativeModel(c.textModel)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %v", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no content generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}

// SynthesizeImage submits the prompt and attached images to the image model
// in one call. The first inline image part of the response wins; any later
// image parts are ignored. Text parts seen before the image are accumulated
// so callers can report what the model said when it returned no image.
func (c *Client) SynthesizeImage(ctx context.Context, prompt string, images ...ImagePart) (SynthesisResult, error) {
	model := c.genai.GenerativeModel(c.imageModel)

	parts := []genai.Part{genai.Text(prompt)}
	for _, img := range images {
		parts = append(parts, genai.Blob{MIMEType: img.MIMEType, Data: img.Data})
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return SynthesisResult{}, fmt.Errorf("failed to generate content: %v", err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return SynthesisResult{}, fmt.Errorf("model returned no candidates")
	}

	var result SynthesisResult
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		switch p := part.(type) {
		case genai.Text:
			sb.WriteString(string(p))
		case genai.Blob:
			result.Image = p.Data
			result.MIMEType = p.MIMEType
		}
		if result.Image != nil {
			break
		}
	}
	result.Text = sb.String()
	return result, nil
}
