package stylist

import (
	"os"
	"path/filepath"
)

// Resolver decides which photo is the synthesis subject. Explicit names are
// reduced to their base filename and looked up inside the output-image
// directory only; a name like "../../etc/passwd" resolves to "passwd" under
// the store directory and simply fails to exist.
type Resolver struct {
	outputDir    string
	fallbackPath string
}

func NewResolver(outputDir, fallbackPath string) *Resolver {
	return &Resolver{outputDir: outputDir, fallbackPath: fallbackPath}
}

// Resolve returns the validated subject path. Resolution order: explicit
// name inside the output directory, then the configured static fallback,
// else ErrNoReference. Existence is re-checked after selection so a wiped
// disk reports ErrReferenceNotFound instead.
func (r *Resolver) Resolve(explicitName string) (string, error) {
	var path string
	switch {
	case explicitName != "":
		path = filepath.Join(r.outputDir, filepath.Base(explicitName))
	case r.fallbackPath != "" && fileExists(r.fallbackPath):
		path = r.fallbackPath
	default:
		return "", ErrNoReference
	}

	if !fileExists(path) {
		return "", ErrReferenceNotFound
	}
	return path, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
