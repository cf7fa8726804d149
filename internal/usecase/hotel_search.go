package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/trip-planner/travel-planner/internal/domain"
	"github.com/trip-planner/travel-planner/internal/infrastructure/timeutil"
)

const subjectHotels = "hotels"

// hotelDomains restricts hotel searches to booking sites.
var hotelDomains = []string{
	"booking.com",
	"hotels.com",
	"expedia.com",
	"tripadvisor.com",
	"agoda.com",
	"hotel.com",
}

// priceRegex matches a dollar amount such as "$120" or "$89.99".
var priceRegex = regexp.MustCompile(`\$(\d+(?:\.\d{2})?)`)

// amenityKeywords maps amenity tags to the phrases that indicate them.
// Keywords match on word boundaries so that "ac" does not match "beach".
var amenityKeywords = []amenityRule{
	amenity("wifi", "wifi", "wireless internet", "free wifi"),
	amenity("pool", "pool", "swimming pool", "indoor pool", "outdoor pool"),
	amenity("gym", "gym", "fitness center", "workout room"),
	amenity("restaurant", "restaurant", "dining", "breakfast", "room service"),
	amenity("spa", "spa", "massage", "wellness center"),
	amenity("parking", "parking", "free parking", "valet parking"),
	amenity("bar", "bar", "lounge", "pub"),
	amenity("conference", "conference room", "meeting room", "business center"),
	amenity("laundry", "laundry", "dry cleaning", "washing machine"),
	amenity("air_conditioning", "air conditioning", "ac", "climate control"),
	amenity("elevator", "elevator", "lift"),
	amenity("accessibility", "wheelchair accessible", "disabled access"),
	amenity("pet_friendly", "pet friendly", "pets allowed"),
	amenity("shuttle", "shuttle", "airport shuttle", "free shuttle"),
	amenity("kitchen", "kitchen", "kitchenette", "cooking facilities"),
}

type amenityRule struct {
	amenity  string
	patterns []*regexp.Regexp
}

func amenity(name string, keywords ...string) amenityRule {
	patterns := make([]*regexp.Regexp, len(keywords))
	for i, kw := range keywords {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
	}
	return amenityRule{amenity: name, patterns: patterns}
}

// HotelSearchUseCase defines the interface for hotel search operations.
type HotelSearchUseCase interface {
	// Search queries hotels for the trip's destination, dates and price range
	// and returns them ranked by rating.
	Search(ctx context.Context, prefs domain.TripPreferences, opts HotelSearchOptions) (*domain.HotelSearchResponse, error)
}

type hotelSearchUseCase struct {
	client domain.SearchClient
	searchDeps
}

// NewHotelSearchUseCase creates a HotelSearchUseCase backed by client.
func NewHotelSearchUseCase(client domain.SearchClient, opts ...Option) HotelSearchUseCase {
	return &hotelSearchUseCase{
		client:     client,
		searchDeps: newSearchDeps(opts),
	}
}

// Search implements HotelSearchUseCase.Search.
func (uc *hotelSearchUseCase) Search(ctx context.Context, prefs domain.TripPreferences, opts HotelSearchOptions) (*domain.HotelSearchResponse, error) {
	sw := timeutil.StartStopwatch(uc.clock)

	destination := strings.TrimSpace(prefs.Destination)
	if destination == "" {
		return nil, domain.NewEmptyDestinationError(subjectHotels)
	}

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxHotels
	}

	prefs.Destination = destination
	query := BuildHotelQuery(prefs)

	resp, err := uc.client.Search(ctx, domain.SearchRequest{
		Query:             query,
		Depth:             domain.SearchDepthAdvanced,
		MaxResults:        maxResults,
		IncludeAnswer:     true,
		IncludeRawContent: true,
		IncludeDomains:    hotelDomains,
	})
	if err != nil {
		return nil, classifySearchError(err, subjectHotels)
	}
	if resp == nil || len(resp.Results) == 0 {
		return nil, domain.NewNoResultsError(subjectHotels)
	}

	hotels := make([]domain.Hotel, 0, len(resp.Results))
	skipped := 0
	for i, r := range resp.Results {
		if !r.IsUsable() {
			skipped++
			uc.logger.Debug().Int("index", i).Str("url", r.URL).Msg("skipping unusable hotel record")
			continue
		}
		hotels = append(hotels, NormalizeHotel(r))
	}

	if len(hotels) == 0 {
		return nil, domain.NewNoResultsError(subjectHotels)
	}

	sorted := SortHotels(hotels)

	return &domain.HotelSearchResponse{
		Destination: destination,
		Query:       query,
		Answer:      resp.Answer,
		Hotels:      sorted,
		Metadata: domain.SearchMetadata{
			TotalResults:   len(sorted),
			SkippedResults: skipped,
			SearchTimeMs:   sw.ElapsedMs(),
			Provider:       uc.client.Name(),
		},
	}, nil
}

// PriceRange derives the nightly price band from travel style and total budget.
func PriceRange(travelStyle string, budget float64) (minPrice, maxPrice float64) {
	switch strings.ToLower(travelStyle) {
	case "luxury":
		return budget * 0.4, budget * 0.6
	case "moderate":
		return budget * 0.2, budget * 0.4
	default:
		return 0, budget * 0.2
	}
}

// BuildHotelQuery composes the hotel query for a trip.
func BuildHotelQuery(prefs domain.TripPreferences) string {
	minPrice, maxPrice := PriceRange(prefs.TravelStyle, prefs.Budget)
	return fmt.Sprintf("hotels in %s from %s to %s %s style price range $%.0f-$%.0f",
		prefs.Destination,
		prefs.StartDate.Format(domain.DateLayout),
		prefs.EndDate.Format(domain.DateLayout),
		prefs.TravelStyle,
		minPrice,
		maxPrice,
	)
}

// ExtractPrice returns the first dollar amount in text.
func ExtractPrice(text string) *float64 {
	m := priceRegex.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &v
}

// ExtractAmenities returns the amenity tags mentioned in text, in table order.
func ExtractAmenities(text string) []string {
	lower := strings.ToLower(text)
	amenities := []string{}
	for _, entry := range amenityKeywords {
		for _, p := range entry.patterns {
			if p.MatchString(lower) {
				amenities = append(amenities, entry.amenity)
				break
			}
		}
	}
	return amenities
}

// NormalizeHotel converts one raw search record into a Hotel.
func NormalizeHotel(r domain.SearchResult) domain.Hotel {
	h := domain.Hotel{
		Name:          TitleName(r.Title),
		PricePerNight: ExtractPrice(r.Content),
		Rating:        ExtractRating(r.Content),
		Amenities:     ExtractAmenities(r.Content),
		BookingURL:    r.URL,
		Images:        []string{},
		Description:   r.Content,
		Source:        sourceOrDefault(r.Source),
	}
	if r.Address != "" {
		addr := r.Address
		h.Address = &addr
	}
	return h
}

// Ensure hotelSearchUseCase implements HotelSearchUseCase at compile time.
var _ HotelSearchUseCase = (*hotelSearchUseCase)(nil)
