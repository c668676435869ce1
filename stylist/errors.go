package stylist

import "errors"

// Request-fatal conditions. Component-local failures (intent fallback,
// per-item synthesis failures) are absorbed inside the pipeline and never
// surface as errors; these four do, each carrying a distinct user-actionable
// meaning at the HTTP boundary.
var (
	// ErrNoReference: no explicit reference was named and no static
	// fallback is configured. The user has never uploaded a photo.
	ErrNoReference = errors.New("no reference image available")

	// ErrReferenceNotFound: a reference was selected but is gone from
	// disk, typically after an ephemeral-storage restart. The user should
	// re-upload rather than upload for the first time.
	ErrReferenceNotFound = errors.New("reference image not found")

	// ErrNoProducts: the shopping search produced zero candidates.
	ErrNoProducts = errors.New("no products found for the given query")

	// ErrAllGenerationsFailed: every synthesis job in the batch failed.
	ErrAllGenerationsFailed = errors.New("failed to generate any outfit visualizations")

	// ErrInvalidUpload: the uploaded bytes are not an image.
	ErrInvalidUpload = errors.New("uploaded file is not an image")
)
