package stylist

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/styloai/stylo-backend/gemini"
	"github.com/styloai/stylo-backend/store"
)

// capturingSynth records the prompt and image parts of each call.
type capturingSynth struct {
	result  gemini.SynthesisResult
	err     error
	prompt  string
	nImages int
}

func (s *capturingSynth) SynthesizeImage(ctx context.Context, prompt string, images ...gemini.ImagePart) (gemini.SynthesisResult, error) {
	s.prompt = prompt
	s.nImages = len(images)
	return s.result, s.err
}

func TestNormalizeWithoutExemplar(t *testing.T) {
	synth := &capturingSynth{result: gemini.SynthesisResult{Image: []byte("clean"), MIMEType: "image/png"}}
	images := store.New(t.TempDir())
	normalizer := NewNormalizer(synth, images, filepath.Join(t.TempDir(), "missing_exemplar.png"))

	key, err := normalizer.Normalize(context.Background(), pngHeader, "my photo.png")
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if !strings.HasPrefix(key, "reference_") || !strings.HasSuffix(key, "_my_photo.png") {
		t.Fatalf("unexpected key %q", key)
	}
	if synth.nImages != 1 {
		t.Fatalf("without exemplar exactly one image must be sent, got %d", synth.nImages)
	}
	if !strings.Contains(synth.prompt, "Only the background changes") {
		t.Fatalf("expected the background-only instruction set, got: %s", synth.prompt)
	}
	if _, err := images.Get(key); err != nil {
		t.Fatalf("normalized image missing from store: %v", err)
	}
}

func TestNormalizeWithExemplar(t *testing.T) {
	exemplar := filepath.Join(t.TempDir(), "exemplar.png")
	writeFile(t, exemplar, pngHeader)

	synth := &capturingSynth{result: gemini.SynthesisResult{Image: []byte("clean"), MIMEType: "image/png"}}
	normalizer := NewNormalizer(synth, store.New(t.TempDir()), exemplar)

	if _, err := normalizer.Normalize(context.Background(), pngHeader, "me.jpg"); err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if synth.nImages != 2 {
		t.Fatalf("with exemplar exactly two images must be sent, got %d", synth.nImages)
	}
	if !strings.Contains(synth.prompt, "STYLE REFERENCE") {
		t.Fatalf("expected the pose-matching instruction set, got: %s", synth.prompt)
	}
}

func TestNormalizeRejectsNonImageUpload(t *testing.T) {
	synth := &capturingSynth{}
	normalizer := NewNormalizer(synth, store.New(t.TempDir()), "")

	if _, err := normalizer.Normalize(context.Background(), []byte("plain text payload"), "notes.txt"); !errors.Is(err, ErrInvalidUpload) {
		t.Fatalf("expected ErrInvalidUpload, got %v", err)
	}
	if _, err := normalizer.Normalize(context.Background(), nil, "empty.png"); !errors.Is(err, ErrInvalidUpload) {
		t.Fatalf("expected ErrInvalidUpload for empty upload, got %v", err)
	}
}

func TestNormalizeNoImageInResponse(t *testing.T) {
	synth := &capturingSynth{result: gemini.SynthesisResult{Text: "cannot comply"}}
	normalizer := NewNormalizer(synth, store.New(t.TempDir()), "")

	_, err := normalizer.Normalize(context.Background(), pngHeader, "me.png")
	if err == nil || !strings.Contains(err.Error(), "cannot comply") {
		t.Fatalf("expected diagnostic text in the error, got %v", err)
	}
}

func TestReferenceKeyStripsDirectoriesAndSpaces(t *testing.T) {
	now := time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC)

	key := referenceKey(now, "../uploads/my summer photo.jpg")
	if key != "reference_20250102_150405_my_summer_photo.jpg" {
		t.Fatalf("unexpected key %q", key)
	}
	if key := referenceKey(now, ""); key != "reference_20250102_150405_upload.png" {
		t.Fatalf("unexpected key for empty hint %q", key)
	}
}
