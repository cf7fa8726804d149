package tavily

import (
	"encoding/json"
	"strings"

	"github.com/trip-planner/travel-planner/internal/domain"
)

// normalize converts a Tavily response to the domain search response.
// Record order is preserved.
func normalize(resp TavilyResponse) *domain.SearchResponse {
	results := make([]domain.SearchResult, 0, len(resp.Results))
	for _, r := range resp.Results {
		results = append(results, normalizeResult(r))
	}

	out := &domain.SearchResponse{Results: results}
	if resp.Answer != nil {
		out.Answer = *resp.Answer
	}
	return out
}

// normalizeResult converts a single Tavily hit to a domain SearchResult.
func normalizeResult(r TavilyResult) domain.SearchResult {
	out := domain.SearchResult{
		Title:   strings.TrimSpace(r.Title),
		URL:     r.URL,
		Content: r.Content,
		Score:   r.Score,
		Sources: sourceIDs(r.Sources),
		Source:  r.Source,
		Address: strings.TrimSpace(r.Address),
	}
	if r.RawContent != nil {
		out.RawContent = *r.RawContent
	}
	if out.Source == "" {
		out.Source = ProviderName
	}
	return out
}

// sourceIDs flattens source entries to identifiers. String entries are kept
// as-is; any other JSON value is kept as its compact text.
func sourceIDs(raw []json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	ids := make([]string, 0, len(raw))
	for _, item := range raw {
		trimmed := strings.TrimSpace(string(item))
		if trimmed == "" || trimmed == "null" {
			continue
		}
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			if s != "" {
				ids = append(ids, s)
			}
			continue
		}
		ids = append(ids, trimmed)
	}
	return ids
}
