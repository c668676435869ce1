package stylist

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestResolveExplicitName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "me.png"), []byte("x"))

	resolver := NewResolver(dir, "")
	path, err := resolver.Resolve("me.png")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if path != filepath.Join(dir, "me.png") {
		t.Fatalf("unexpected path %q", path)
	}
}

func TestResolveStripsDirectoryComponents(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "passwd"), []byte("x"))

	// A secret outside the output dir must be unreachable even though the
	// traversal-shaped name points straight at it.
	outside := filepath.Join(filepath.Dir(dir), "secret.png")
	writeFile(t, outside, []byte("secret"))

	resolver := NewResolver(dir, "")

	path, err := resolver.Resolve("../../etc/passwd")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if path != filepath.Join(dir, "passwd") {
		t.Fatalf("traversal was not stripped, resolved to %q", path)
	}

	if _, err := resolver.Resolve("../secret.png"); !errors.Is(err, ErrReferenceNotFound) {
		t.Fatalf("expected ErrReferenceNotFound for name outside the store, got %v", err)
	}
}

func TestResolveFallbackPath(t *testing.T) {
	dir := t.TempDir()
	fallback := filepath.Join(t.TempDir(), "default.png")
	writeFile(t, fallback, []byte("x"))

	resolver := NewResolver(dir, fallback)
	path, err := resolver.Resolve("")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if path != fallback {
		t.Fatalf("expected fallback path, got %q", path)
	}
}

func TestResolveNoReferenceAvailable(t *testing.T) {
	resolver := NewResolver(t.TempDir(), "")
	if _, err := resolver.Resolve(""); !errors.Is(err, ErrNoReference) {
		t.Fatalf("expected ErrNoReference, got %v", err)
	}

	// A configured fallback that does not exist on disk means "never had a
	// reference", not "lost it".
	resolver = NewResolver(t.TempDir(), "/nonexistent/default.png")
	if _, err := resolver.Resolve(""); !errors.Is(err, ErrNoReference) {
		t.Fatalf("expected ErrNoReference for missing fallback, got %v", err)
	}
}

func TestResolveExplicitNameMissingFromDisk(t *testing.T) {
	resolver := NewResolver(t.TempDir(), "")
	if _, err := resolver.Resolve("wiped.png"); !errors.Is(err, ErrReferenceNotFound) {
		t.Fatalf("expected ErrReferenceNotFound, got %v", err)
	}
}
