package domain

import "context"

//go:generate mockgen -source=search.go -destination=search_mock.go -package=domain

// SearchDepth controls how thoroughly the search API crawls for an answer.
type SearchDepth string

// Supported search depths.
const (
	SearchDepthBasic    SearchDepth = "basic"
	SearchDepthAdvanced SearchDepth = "advanced"
)

// SearchClient is the narrow boundary to an external text-search API.
// Implementations issue exactly one request per Search call.
type SearchClient interface {
	// Name returns the unique identifier for this client (e.g., "tavily")
	Name() string

	// Search runs a single query and returns the ordered raw results.
	Search(ctx context.Context, req SearchRequest) (*SearchResponse, error)
}

// SearchRequest holds the parameters for a single text search.
type SearchRequest struct {
	// Query is the composite query text
	Query string

	// Depth is the crawl depth
	Depth SearchDepth

	// MaxResults caps the number of returned records
	MaxResults int

	// IncludeAnswer asks the API for a summary answer
	IncludeAnswer bool

	// IncludeRawContent asks the API to return page content
	IncludeRawContent bool

	// IncludeDomains restricts results to these domains
	IncludeDomains []string
}

// SearchResult is one raw record returned by the search API.
type SearchResult struct {
	Title      string
	URL        string
	Content    string
	RawContent string
	Score      float64

	// Sources lists independent references corroborating this result
	Sources []string

	// Source is the provenance tag of the record
	Source string

	// Address is set when the API reports a street address
	Address string
}

// SearchResponse is the ordered output of a single search.
type SearchResponse struct {
	Answer  string
	Results []SearchResult
}

// IsUsable reports whether a record has any text to normalize.
func (r SearchResult) IsUsable() bool {
	return r.Title != "" || r.Content != ""
}
