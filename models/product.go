package models

// ProductInfo is a normalized shopping result. Missing provider fields are
// substituted at the adapter boundary so downstream code never sees empties.
type ProductInfo struct {
	Brand       string `json:"brand"`
	ImageURL    string `json:"image_url"`
	ProductLink string `json:"product_link"`
}

// ImageResult is a single Google Images hit, used by the standalone CLI to
// surface higher-quality product photos alongside shopping results.
type ImageResult struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Original  string `json:"original"`
	Thumbnail string `json:"thumbnail"`
	Source    string `json:"source"`
}
