package usecase

// Default result caps.
const (
	DefaultMaxAttractions = 10
	DefaultMaxHotels      = 5

	// MaxResultsLimit is the largest result cap a search may request.
	MaxResultsLimit = 20
)

// AttractionSearchOptions contains optional parameters for an attraction search.
type AttractionSearchOptions struct {
	// MaxResults caps the number of results requested (default: 10)
	MaxResults int

	// Categories adds a "best <category> in <destination>" query part per entry
	Categories []string
}

// HotelSearchOptions contains optional parameters for a hotel search.
type HotelSearchOptions struct {
	// MaxResults caps the number of results requested (default: 5)
	MaxResults int
}

// DefaultAttractionSearchOptions returns AttractionSearchOptions with sensible defaults.
func DefaultAttractionSearchOptions() AttractionSearchOptions {
	return AttractionSearchOptions{MaxResults: DefaultMaxAttractions}
}

// DefaultHotelSearchOptions returns HotelSearchOptions with sensible defaults.
func DefaultHotelSearchOptions() HotelSearchOptions {
	return HotelSearchOptions{MaxResults: DefaultMaxHotels}
}
