package tavily

import "encoding/json"

// searchRequestBody is the JSON body of POST /search.
type searchRequestBody struct {
	Query             string   `json:"query"`
	SearchDepth       string   `json:"search_depth"`
	IncludeAnswer     bool     `json:"include_answer"`
	IncludeDomains    []string `json:"include_domains,omitempty"`
	MaxResults        int      `json:"max_results"`
	IncludeRawContent bool     `json:"include_raw_content"`
}

// TavilyResponse represents the top-level response from the Tavily search API.
type TavilyResponse struct {
	Query   string         `json:"query"`
	Answer  *string        `json:"answer"`
	Results []TavilyResult `json:"results"`
}

// TavilyResult represents a single search hit.
type TavilyResult struct {
	Title      string  `json:"title"`
	URL        string  `json:"url"`
	Content    string  `json:"content"`
	RawContent *string `json:"raw_content"`
	Score      float64 `json:"score"`

	// Sources is not part of the documented schema; entries may be strings or objects.
	Sources []json.RawMessage `json:"sources"`

	Source  string `json:"source"`
	Address string `json:"address"`
}
