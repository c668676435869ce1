package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotFound is returned when the named image does not exist in the store.
var ErrNotFound = errors.New("image not found")

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// Mirror receives a best-effort copy of every stored image. Failures are
// logged, never surfaced: the local directory stays the source of truth.
type Mirror interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
}

// Store is the flat, filename-keyed image store. Keys are opaque filenames;
// the directory listing is the only index. Filenames embed a second-
// granularity timestamp, so two same-second writes of the same key overwrite
// each other; that race is accepted for the single-user-session design.
type Store struct {
	dir    string
	mirror Mirror
}

// Option customizes the store.
type Option func(*Store)

// WithMirror attaches a mirror target (e.g. S3 on ephemeral deployments).
func WithMirror(m Mirror) Option {
	return func(s *Store) {
		s.mirror = m
	}
}

// New creates a store rooted at dir. The directory itself is created lazily
// on first write.
func New(dir string, opts ...Option) *Store {
	s := &Store{dir: dir}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the backing directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Path resolves a key to its on-disk path. The key is reduced to its base
// filename first so a crafted key can never escape the store directory.
func (s *Store) Path(key string) string {
	return filepath.Join(s.dir, filepath.Base(key))
}

// Put writes image bytes under key (write-once by convention) and returns
// the key actually used. The store directory is created if missing.
func (s *Store) Put(ctx context.Context, key string, data []byte) (string, error) {
	key = filepath.Base(key)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create image directory: %v", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, key), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %v", err)
	}

	if s.mirror != nil {
		if err := s.mirror.Upload(ctx, key, data, ContentType(key)); err != nil {
			log.Printf("[Content Store] mirror upload failed for %s: %v", key, err)
		}
	}
	return key, nil
}

// Get returns the raw bytes stored under key, untransformed.
func (s *Store) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// List returns the keys of all stored images with a recognized extension,
// sorted descending. Keys start with a timestamp, so descending lexical
// order approximates most-recent-first.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			keys = append(keys, entry.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys, nil
}

// Delete removes exactly the named entry.
func (s *Store) Delete(key string) error {
	path := s.Path(key)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return os.Remove(path)
}

// ContentType maps a key's extension to its MIME type.
func ContentType(key string) string {
	switch strings.ToLower(filepath.Ext(key)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	default:
		return "application/octet-stream"
	}
}
