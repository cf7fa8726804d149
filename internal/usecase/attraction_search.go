package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/trip-planner/travel-planner/internal/domain"
	"github.com/trip-planner/travel-planner/internal/infrastructure/timeutil"
)

const subjectAttractions = "attractions"

// attractionDomains restricts attraction searches to travel guide sites.
var attractionDomains = []string{
	"tripadvisor.com",
	"lonelyplanet.com",
	"wikitravel.org",
	"timeout.com",
	"viator.com",
	"fodors.com",
	"roughguides.com",
}

// AttractionSearchUseCase defines the interface for attraction search operations.
type AttractionSearchUseCase interface {
	// Search issues one composite query for the trip's destination and returns
	// attractions ranked by popularity.
	Search(ctx context.Context, prefs domain.TripPreferences, opts AttractionSearchOptions) (*domain.AttractionSearchResponse, error)
}

// Option configures a search use case.
type Option func(*searchDeps)

type searchDeps struct {
	clock  timeutil.Clock
	logger zerolog.Logger
}

// WithClock sets the clock used to measure search time.
func WithClock(c timeutil.Clock) Option {
	return func(d *searchDeps) {
		if c != nil {
			d.clock = c
		}
	}
}

// WithLogger sets the logger used for per-record debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(d *searchDeps) {
		d.logger = l
	}
}

func newSearchDeps(opts []Option) searchDeps {
	d := searchDeps{
		clock:  timeutil.NewRealClock(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

type attractionSearchUseCase struct {
	client domain.SearchClient
	searchDeps
}

// NewAttractionSearchUseCase creates an AttractionSearchUseCase backed by client.
func NewAttractionSearchUseCase(client domain.SearchClient, opts ...Option) AttractionSearchUseCase {
	return &attractionSearchUseCase{
		client:     client,
		searchDeps: newSearchDeps(opts),
	}
}

// Search implements AttractionSearchUseCase.Search.
func (uc *attractionSearchUseCase) Search(ctx context.Context, prefs domain.TripPreferences, opts AttractionSearchOptions) (*domain.AttractionSearchResponse, error) {
	sw := timeutil.StartStopwatch(uc.clock)

	destination := strings.TrimSpace(prefs.Destination)
	if destination == "" {
		return nil, domain.NewEmptyDestinationError(subjectAttractions)
	}

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxAttractions
	}

	query := BuildAttractionQuery(destination, prefs.Interests, opts.Categories)

	resp, err := uc.client.Search(ctx, domain.SearchRequest{
		Query:             query,
		Depth:             domain.SearchDepthAdvanced,
		MaxResults:        maxResults,
		IncludeAnswer:     true,
		IncludeRawContent: true,
		IncludeDomains:    attractionDomains,
	})
	if err != nil {
		return nil, classifySearchError(err, subjectAttractions)
	}
	if resp == nil || len(resp.Results) == 0 {
		return nil, domain.NewNoResultsError(subjectAttractions)
	}

	attractions := make([]domain.Attraction, 0, len(resp.Results))
	skipped := 0
	for i, r := range resp.Results {
		a, ok := uc.normalize(r)
		if !ok {
			skipped++
			uc.logger.Debug().Int("index", i).Str("url", r.URL).Msg("skipping unusable attraction record")
			continue
		}
		attractions = append(attractions, a)
	}

	if len(attractions) == 0 {
		return nil, domain.NewNoResultsError(subjectAttractions)
	}

	sorted := SortAttractions(attractions)

	return &domain.AttractionSearchResponse{
		Destination: destination,
		Query:       query,
		Answer:      resp.Answer,
		Attractions: sorted,
		Metadata: domain.SearchMetadata{
			TotalResults:   len(sorted),
			SkippedResults: skipped,
			SearchTimeMs:   sw.ElapsedMs(),
			Provider:       uc.client.Name(),
		},
	}, nil
}

// normalize converts one raw record. A record without text, or one whose
// normalization panics, is reported as not ok.
func (uc *attractionSearchUseCase) normalize(r domain.SearchResult) (a domain.Attraction, ok bool) {
	if !r.IsUsable() {
		return domain.Attraction{}, false
	}

	defer func() {
		if rec := recover(); rec != nil {
			uc.logger.Debug().Str("url", r.URL).Interface("panic", rec).Msg("attraction normalization panicked")
			a, ok = domain.Attraction{}, false
		}
	}()

	return NormalizeAttraction(r), true
}

// NormalizeAttraction converts one raw search record into an Attraction.
func NormalizeAttraction(r domain.SearchResult) domain.Attraction {
	rating := ExtractRating(r.Content)
	name := TitleName(r.Title)

	a := domain.Attraction{
		Name:            name,
		Description:     r.Content,
		Category:        InferCategory(name, r.Content),
		Rating:          rating,
		PriceLevel:      ExtractPriceLevel(r.Content),
		Website:         r.URL,
		Images:          []string{},
		Source:          sourceOrDefault(r.Source),
		PopularityScore: PopularityScore(rating, len(r.Sources)),
		BestTimeToVisit: ExtractBestTimeToVisit(r.Content),
		VisitDuration:   ExtractVisitDuration(r.Content),
	}
	if r.Address != "" {
		addr := r.Address
		a.Address = &addr
	}
	return a
}

// BuildAttractionQuery composes the query parts for a destination and joins them with " | ".
func BuildAttractionQuery(destination string, interests, categories []string) string {
	parts := []string{
		"top attractions in " + destination,
		"best places to visit in " + destination,
	}

	if len(interests) > 0 {
		parts = append(parts, fmt.Sprintf("%s in %s", strings.Join(interests, " "), destination))
	}

	for _, c := range categories {
		parts = append(parts, fmt.Sprintf("best %s in %s", c, destination))
	}

	return strings.Join(parts, " | ")
}

// classifySearchError keeps the search error taxonomy intact for the given subject.
// Errors outside the taxonomy are wrapped as SearchAPIError.
func classifySearchError(err error, subject string) error {
	if domain.IsSearchError(err) {
		return domain.WithSubject(err, subject)
	}
	return domain.NewSearchAPIError(subject, err)
}

func sourceOrDefault(source string) string {
	if source == "" {
		return domain.SourceTavily
	}
	return source
}

// Ensure attractionSearchUseCase implements AttractionSearchUseCase at compile time.
var _ AttractionSearchUseCase = (*attractionSearchUseCase)(nil)
