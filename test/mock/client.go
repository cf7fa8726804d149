// Package mock provides test doubles for the travel planner.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/trip-planner/travel-planner/internal/domain"
)

// SearchClient is a configurable mock implementation of domain.SearchClient.
// It supports configurable delays, errors, and responses for testing
// timeouts and failure mapping.
type SearchClient struct {
	name     string
	response *domain.SearchResponse
	err      error
	delay    time.Duration
	requests []domain.SearchRequest
	mu       sync.Mutex
}

// NewSearchClient creates a new mock client with the given name.
// The client is configured using the builder pattern methods.
func NewSearchClient(name string) *SearchClient {
	return &SearchClient{name: name}
}

// WithResults configures the client to return the given results.
func (c *SearchClient) WithResults(results ...domain.SearchResult) *SearchClient {
	c.response = &domain.SearchResponse{Results: results}
	return c
}

// WithResponse configures the client to return the given response as-is.
func (c *SearchClient) WithResponse(resp *domain.SearchResponse) *SearchClient {
	c.response = resp
	return c
}

// WithError configures the client to return the given error.
func (c *SearchClient) WithError(err error) *SearchClient {
	c.err = err
	return c
}

// WithDelay configures the client to wait the given duration before responding.
// This is useful for testing timeout behavior.
func (c *SearchClient) WithDelay(d time.Duration) *SearchClient {
	c.delay = d
	return c
}

// Name returns the client's provider name.
func (c *SearchClient) Name() string {
	return c.name
}

// Search implements domain.SearchClient.Search.
// A context that ends during the delay is reported the way a real
// transport reports it: as a SearchAPIError wrapping the context error.
func (c *SearchClient) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	c.mu.Lock()
	c.requests = append(c.requests, req)
	c.mu.Unlock()

	if c.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, domain.NewSearchAPIError("", fmt.Errorf("request failed: %w", ctx.Err()))
		case <-time.After(c.delay):
		}
	}

	if c.err != nil {
		return nil, c.err
	}
	return c.response, nil
}

// CallCount returns the number of times Search was called.
func (c *SearchClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.requests)
}

// LastRequest returns the most recent request, or false if Search was never called.
func (c *SearchClient) LastRequest() (domain.SearchRequest, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.requests) == 0 {
		return domain.SearchRequest{}, false
	}
	return c.requests[len(c.requests)-1], true
}

// Reset clears the recorded requests.
func (c *SearchClient) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests = nil
}

// Ensure SearchClient implements domain.SearchClient at compile time.
var _ domain.SearchClient = (*SearchClient)(nil)

// SampleAttractionResults returns search results that normalize into attractions
// of distinct categories with descending ratings.
func SampleAttractionResults(destination string) []domain.SearchResult {
	return []domain.SearchResult{
		{
			Title:   destination + " City Museum - TripAdvisor",
			URL:     "https://www.tripadvisor.com/museum",
			Content: "Art gallery with rotating exhibitions. Rated 4.3/5. Plan 2-3 hours.",
			Sources: []string{"tripadvisor", "lonelyplanet"},
		},
		{
			Title:   destination + " Old Town Cathedral",
			URL:     "https://www.lonelyplanet.com/cathedral",
			Content: "Gothic cathedral, free entry. 4.8/5. Best time to visit is april to june.",
		},
		{
			Title:   destination + " Botanical Garden",
			URL:     "https://www.timeout.com/garden",
			Content: "A quiet park in the city center.",
		},
	}
}

// SampleHotelResults returns search results that normalize into hotels.
func SampleHotelResults(destination string) []domain.SearchResult {
	return []domain.SearchResult{
		{
			Title:   "Grand " + destination + " Hotel - Booking.com",
			URL:     "https://www.booking.com/grand",
			Content: "Rooms from $320 per night. Spa, pool and free wifi. Rated 4.6/5.",
		},
		{
			Title:   destination + " Budget Inn - Hotels.com",
			URL:     "https://www.hotels.com/inn",
			Content: "Simple rooms with breakfast included. 3.9/5",
		},
	}
}
