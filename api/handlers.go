package api

import (
	"github.com/styloai/stylo-backend/store"
	"github.com/styloai/stylo-backend/stylist"
)

const defaultMaxResults = 2

// Handlers carries the pipeline components into the route layer. Everything
// here is constructed once in main and shared across requests.
type Handlers struct {
	generator  *stylist.Generator
	normalizer *stylist.Normalizer
	images     *store.Store
}

func NewHandlers(generator *stylist.Generator, normalizer *stylist.Normalizer, images *store.Store) *Handlers {
	return &Handlers{
		generator:  generator,
		normalizer: normalizer,
		images:     images,
	}
}

// clampMaxResults applies the route-layer validation the pipeline relies on:
// max_results is always a positive integer by the time search sees it.
func clampMaxResults(n int) int {
	if n <= 0 {
		return defaultMaxResults
	}
	return n
}
