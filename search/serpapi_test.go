package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func shoppingPayload(items ...map[string]string) map[string]interface{} {
	results := make([]interface{}, 0, len(items))
	for _, item := range items {
		results = append(results, item)
	}
	return map[string]interface{}{"shopping_results": results}
}

func TestSearchNormalizesResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("engine"); got != "google_shopping" {
			t.Fatalf("unexpected engine %q", got)
		}
		if got := r.URL.Query().Get("q"); got != "red Nike hoodie" {
			t.Fatalf("unexpected query %q", got)
		}
		payload := shoppingPayload(
			map[string]string{"source": "Nike", "thumbnail": "https://img/1.jpg", "product_link": "https://shop/1"},
			map[string]string{"thumbnail": "https://img/2.jpg"},
		)
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			t.Fatalf("encode response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))
	products := client.Search(context.Background(), "red Nike hoodie", 5)

	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].Brand != "Nike" || products[0].ImageURL != "https://img/1.jpg" || products[0].ProductLink != "https://shop/1" {
		t.Fatalf("unexpected first product: %+v", products[0])
	}
	if products[1].Brand != "Unknown" {
		t.Fatalf("missing source must default to Unknown, got %q", products[1].Brand)
	}
	if products[1].ProductLink != "N/A" {
		t.Fatalf("missing link must default to N/A, got %q", products[1].ProductLink)
	}
}

func TestSearchTruncatesToMaxResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var items []map[string]string
		for i := 0; i < 5; i++ {
			items = append(items, map[string]string{
				"source":       fmt.Sprintf("Brand%d", i),
				"thumbnail":    fmt.Sprintf("https://img/%d.jpg", i),
				"product_link": fmt.Sprintf("https://shop/%d", i),
			})
		}
		if err := json.NewEncoder(w).Encode(shoppingPayload(items...)); err != nil {
			t.Fatalf("encode response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))
	products := client.Search(context.Background(), "blue shirt", 2)

	if len(products) != 2 {
		t.Fatalf("expected exactly 2 products from 5 provider results, got %d", len(products))
	}
}

func TestSearchProviderErrorReturnsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))
	if products := client.Search(context.Background(), "anything", 3); len(products) != 0 {
		t.Fatalf("provider failure must yield an empty result, got %d products", len(products))
	}
}

func TestSearchMalformedResponseReturnsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json at all")
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))
	if products := client.Search(context.Background(), "anything", 3); len(products) != 0 {
		t.Fatalf("malformed response must yield an empty result, got %d products", len(products))
	}
}

func TestSearchEnrichesMissingThumbnailFromProductPage(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><meta property="og:image" content="https://cdn/product.jpg"></head><body></body></html>`)
	}))
	defer page.Close()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := shoppingPayload(map[string]string{"source": "Zara", "product_link": page.URL})
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			t.Fatalf("encode response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))
	products := client.Search(context.Background(), "jacket", 1)

	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	if products[0].ImageURL != "https://cdn/product.jpg" {
		t.Fatalf("expected og:image enrichment, got %q", products[0].ImageURL)
	}
}

func TestSearchEnrichmentFailureKeepsSentinel(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer page.Close()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := shoppingPayload(map[string]string{"source": "Zara", "product_link": page.URL})
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			t.Fatalf("encode response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))
	products := client.Search(context.Background(), "jacket", 1)

	if len(products) != 1 || products[0].ImageURL != "N/A" {
		t.Fatalf("failed enrichment must keep N/A sentinel, got %+v", products)
	}
}

func TestSearchImages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("engine"); got != "google_images" {
			t.Fatalf("unexpected engine %q", got)
		}
		payload := map[string]interface{}{
			"images_results": []interface{}{
				map[string]string{"title": "Red hoodie", "original": "https://cdn/full.jpg"},
			},
		}
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			t.Fatalf("encode response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))
	images := client.SearchImages(context.Background(), "red hoodie", 3)

	if len(images) != 1 {
		t.Fatalf("expected 1 image, got %d", len(images))
	}
	if images[0].Title != "Red hoodie" || images[0].Original != "https://cdn/full.jpg" {
		t.Fatalf("unexpected image result: %+v", images[0])
	}
	if images[0].Link != "N/A" || images[0].Source != "N/A" {
		t.Fatalf("missing fields must default to N/A, got %+v", images[0])
	}
}
