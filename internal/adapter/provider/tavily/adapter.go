// Package tavily implements domain.SearchClient on top of the Tavily search API.
package tavily

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/trip-planner/travel-planner/internal/domain"
)

// ProviderName is the unique identifier for the Tavily search provider.
const ProviderName = domain.SourceTavily

// DefaultBaseURL is the public Tavily API endpoint.
const DefaultBaseURL = "https://api.tavily.com"

// DefaultTimeout bounds a single search round trip.
const DefaultTimeout = 30 * time.Second

// maxErrorBody caps how much of a failed response body is quoted in errors.
const maxErrorBody = 512

// ErrMissingAPIKey is returned by NewAdapter when no usable API key is given.
var ErrMissingAPIKey = errors.New("tavily API key is required")

// Adapter issues search requests to Tavily.
type Adapter struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     zerolog.Logger
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(a *Adapter) {
		if baseURL != "" {
			a.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(a *Adapter) {
		if c != nil {
			a.httpClient = c
		}
	}
}

// WithTimeout sets the round-trip timeout. A client given with WithHTTPClient
// is copied, never modified.
func WithTimeout(d time.Duration) Option {
	return func(a *Adapter) {
		if d > 0 {
			a.timeout = d
		}
	}
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Adapter) {
		a.logger = l
	}
}

// NewAdapter creates a Tavily adapter. A blank or whitespace-only key is rejected.
func NewAdapter(apiKey string, opts ...Option) (*Adapter, error) {
	key := strings.TrimSpace(apiKey)
	if key == "" {
		return nil, ErrMissingAPIKey
	}

	a := &Adapter{
		apiKey:     key,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.timeout > 0 && a.httpClient.Timeout != a.timeout {
		c := *a.httpClient
		c.Timeout = a.timeout
		a.httpClient = &c
	}
	return a, nil
}

// Name returns the provider name.
func (a *Adapter) Name() string {
	return ProviderName
}

// Search sends one POST /search request and returns the normalized results.
//
// Transport failures and non-2xx statuses are returned as SearchAPIError;
// a body that cannot be decoded is returned as UnexpectedSearchError.
func (a *Adapter) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	body, err := json.Marshal(searchRequestBody{
		Query:             req.Query,
		SearchDepth:       string(req.Depth),
		IncludeAnswer:     req.IncludeAnswer,
		IncludeDomains:    req.IncludeDomains,
		MaxResults:        req.MaxResults,
		IncludeRawContent: req.IncludeRawContent,
	})
	if err != nil {
		return nil, domain.NewUnexpectedSearchError("", fmt.Errorf("encoding request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, domain.NewSearchAPIError("", fmt.Errorf("creating request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+a.apiKey)

	start := time.Now()
	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		a.logger.Debug().Err(err).Dur("duration", time.Since(start)).Msg("search request failed")
		return nil, domain.NewSearchAPIError("", fmt.Errorf("request failed: %w", err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	a.logger.Debug().
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Int("max_results", req.MaxResults).
		Msg("search request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, domain.NewSearchAPIError("", fmt.Errorf("tavily returned status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(excerpt))))
	}

	var tr TavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, domain.NewSearchAPIError("", fmt.Errorf("reading response: %w", ctxErr))
		}
		return nil, domain.NewUnexpectedSearchError("", fmt.Errorf("failed to parse response: %w", err))
	}

	return normalize(tr), nil
}

// Ensure Adapter implements domain.SearchClient at compile time.
var _ domain.SearchClient = (*Adapter)(nil)
