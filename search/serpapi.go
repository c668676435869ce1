package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/styloai/stylo-backend/models"
)

const defaultBaseURL = "https://serpapi.com/search.json"

// Client queries SerpAPI's Google Shopping and Google Images engines and
// normalizes the results. Provider failures never propagate out of Search:
// callers get an empty slice and the cause shows up only in the log, so "no
// products" reads the same whether the provider failed or matched nothing.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option customizes the client.
type Option func(*Client)

// WithBaseURL overrides the SerpAPI endpoint (used by tests).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient constructs a SerpAPI client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type shoppingItem struct {
	Source      string `json:"source"`
	Thumbnail   string `json:"thumbnail"`
	ProductLink string `json:"product_link"`
}

type shoppingResponse struct {
	ShoppingResults []shoppingItem `json:"shopping_results"`
}

type imageItem struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Original  string `json:"original"`
	Thumbnail string `json:"thumbnail"`
	Source    string `json:"source"`
}

type imagesResponse struct {
	ImagesResults []imageItem `json:"images_results"`
}

// Search runs one Google Shopping query and returns at most maxResults
// normalized products. The provider may return fewer or more entries; extras
// are discarded. Missing fields get the documented sentinels.
func (c *Client) Search(ctx context.Context, query string, maxResults int) []models.ProductInfo {
	log.Printf("[Product Search] searching Google Shopping for %q", query)

	var decoded shoppingResponse
	if err := c.doSearch(ctx, "google_shopping", query, maxResults, &decoded); err != nil {
		log.Printf("[Product Search] SerpAPI search failed: %v", err)
		return nil
	}

	items := decoded.ShoppingResults
	if len(items) > maxResults {
		items = items[:maxResults]
	}

	products := make([]models.ProductInfo, 0, len(items))
	for _, item := range items {
		product := models.ProductInfo{
			Brand:       item.Source,
			ImageURL:    item.Thumbnail,
			ProductLink: item.ProductLink,
		}
		if product.Brand == "" {
			product.Brand = "Unknown"
		}
		if product.ProductLink == "" {
			product.ProductLink = "N/A"
		}
		if product.ImageURL == "" {
			product.ImageURL = c.lookupProductImage(ctx, product.ProductLink)
		}
		products = append(products, product)
	}

	log.Printf("[Product Search] found %d products", len(products))
	return products
}

// SearchImages runs one Google Images query, used by the CLI to surface
// higher quality product photos than the shopping thumbnails.
func (c *Client) SearchImages(ctx context.Context, query string, maxResults int) []models.ImageResult {
	log.Printf("[Product Search] searching Google Images for %q", query)

	var decoded imagesResponse
	if err := c.doSearch(ctx, "google_images", query, maxResults, &decoded); err != nil {
		log.Printf("[Product Search] Google Images search failed: %v", err)
		return nil
	}

	items := decoded.ImagesResults
	if len(items) > maxResults {
		items = items[:maxResults]
	}

	images := make([]models.ImageResult, 0, len(items))
	for _, item := range items {
		images = append(images, models.ImageResult{
			Title:     orNA(item.Title),
			Link:      orNA(item.Link),
			Original:  orNA(item.Original),
			Thumbnail: orNA(item.Thumbnail),
			Source:    orNA(item.Source),
		})
	}
	return images
}

func (c *Client) doSearch(ctx context.Context, engine, query string, maxResults int, out interface{}) error {
	params := url.Values{}
	params.Set("engine", engine)
	params.Set("q", query)
	params.Set("api_key", c.apiKey)
	params.Set("num", strconv.Itoa(maxResults))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("serpapi returned status %d: %s", resp.StatusCode, string(body))
	}

	return json.Unmarshal(body, out)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
