package search

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const browserUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// lookupProductImage fetches a product page and extracts its og:image meta
// tag. Used only when the shopping result carried no thumbnail; any failure
// falls back to the "N/A" sentinel.
func (c *Client) lookupProductImage(ctx context.Context, productLink string) string {
	if !strings.HasPrefix(productLink, "http") {
		return "N/A"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, productLink, nil)
	if err != nil {
		return "N/A"
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[Product Search] product page fetch failed: %v", err)
		return "N/A"
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "N/A"
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "N/A"
	}

	if img, ok := doc.Find(`meta[property="og:image"]`).Attr("content"); ok && img != "" {
		return img
	}
	return "N/A"
}
