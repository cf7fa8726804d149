package domain

// Category classifies an attraction by what kind of place it is.
type Category string

// Attraction categories. CategoryOther is used when no keyword matches.
const (
	CategoryMuseum         Category = "museum"
	CategoryLandmark       Category = "landmark"
	CategoryPark           Category = "park"
	CategoryRestaurant     Category = "restaurant"
	CategoryShopping       Category = "shopping"
	CategoryEntertainment  Category = "entertainment"
	CategoryReligious      Category = "religious"
	CategoryHistorical     Category = "historical"
	CategoryOutdoor        Category = "outdoor"
	CategoryNightlife      Category = "nightlife"
	CategoryTransportation Category = "transportation"
	CategoryEducation      Category = "education"
	CategoryOther          Category = "other"
)

// PriceLevel is a coarse cost indicator.
type PriceLevel string

// Price levels from cheapest to most expensive.
const (
	PriceFree      PriceLevel = "free"
	PriceBudget    PriceLevel = "$"
	PriceModerate  PriceLevel = "$$"
	PriceExpensive PriceLevel = "$$$"
	PriceLuxury    PriceLevel = "$$$$"
)

// SourceTavily is the provenance tag for records from the Tavily search API.
const SourceTavily = "tavily"

// Attraction is a single point-of-interest candidate derived from one search result.
type Attraction struct {
	// Name is the result title up to the first " - " separator
	Name string `json:"name"`

	// Description is the raw result body
	Description string `json:"description"`

	// Category is inferred from keywords in the title and description
	Category Category `json:"category"`

	// Rating is the first "<n>/5" rating mentioned, in [0, 5]
	Rating *float64 `json:"rating,omitempty"`

	// PriceLevel is inferred from price phrases in the description
	PriceLevel *PriceLevel `json:"price_level,omitempty"`

	OpeningHours *string `json:"opening_hours,omitempty"`
	Address      *string `json:"address,omitempty"`

	// Website is the URL of the result page
	Website string `json:"website,omitempty"`

	Images []string `json:"images"`

	// Source identifies where the record came from
	Source string `json:"source"`

	// PopularityScore combines rating and corroborating sources; higher ranks first
	PopularityScore float64 `json:"popularity_score"`

	// BestTimeToVisit is a window such as "april to june"
	BestTimeToVisit *string `json:"best_time_to_visit,omitempty"`

	// VisitDuration is a typical visit length such as "2 hours"
	VisitDuration *string `json:"visit_duration,omitempty"`
}

// AttractionSearchResponse is the ranked result of an attraction search.
type AttractionSearchResponse struct {
	Destination string         `json:"destination"`
	Query       string         `json:"query"`
	Answer      string         `json:"answer,omitempty"`
	Attractions []Attraction   `json:"attractions"`
	Metadata    SearchMetadata `json:"metadata"`
}

// SearchMetadata contains information about a search execution.
type SearchMetadata struct {
	// TotalResults is the number of records returned to the caller
	TotalResults int `json:"total_results"`

	// SkippedResults is the number of raw records dropped as unusable
	SkippedResults int `json:"skipped_results"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms"`

	// Provider is the search client that served the request
	Provider string `json:"provider"`
}
