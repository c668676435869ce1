package models

// SearchIntent is the structured interpretation of a free-text clothing
// request. SearchQuery is always populated; the other fields may carry the
// "any" / "not specified" defaults when the request leaves them open.
type SearchIntent struct {
	ClothingType      string `json:"clothing_type"`
	Color             string `json:"color"`
	Brand             string `json:"brand"`
	Style             string `json:"style"`
	Gender            string `json:"gender"`
	SearchQuery       string `json:"search_query"`
	AdditionalDetails string `json:"additional_details"`
}

// DefaultIntent returns the canonical fallback intent used whenever parsing
// fails. SearchQuery carries the user's verbatim input so the search still
// runs on something meaningful.
func DefaultIntent(userText string) SearchIntent {
	return SearchIntent{
		ClothingType:      "clothing",
		Color:             "any",
		Brand:             "any",
		Style:             "general",
		Gender:            "not specified",
		SearchQuery:       userText,
		AdditionalDetails: "none",
	}
}
