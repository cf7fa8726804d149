package http

import "time"

// These types mirror domain types with examples so that swag can generate
// readable documentation. Handlers never construct them.

// SwaggerTripPreferences represents validated trip preferences.
// @Description Validated, normalized trip preferences
type SwaggerTripPreferences struct {
	Destination              string    `json:"destination" example:"Paris"`
	StartDate                time.Time `json:"start_date" example:"2025-10-01T00:00:00Z"`
	EndDate                  time.Time `json:"end_date" example:"2025-10-10T00:00:00Z"`
	Budget                   float64   `json:"budget" example:"1500"`
	TravelStyle              string    `json:"travel_style" example:"luxury"`
	Interests                []string  `json:"interests" example:"culture,food"`
	AccommodationPreference  string    `json:"accommodation_preference" example:"hotel"`
	TransportationPreference string    `json:"transportation_preference" example:"public"`
	DietaryRestrictions      []string  `json:"dietary_restrictions,omitempty" example:"vegetarian"`
	SpecialRequirements      string    `json:"special_requirements,omitempty" example:"wheelchair access"`
}

// SwaggerSearchMetadata contains metadata about the search execution.
// @Description Metadata about the search execution
type SwaggerSearchMetadata struct {
	// TotalResults is the number of records returned
	TotalResults int `json:"total_results" example:"8"`

	// SkippedResults is the number of raw records dropped as unusable
	SkippedResults int `json:"skipped_results" example:"1"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms" example:"1840"`

	// Provider is the search client that served the request
	Provider string `json:"provider" example:"tavily"`
}

// SwaggerAttraction represents a single attraction.
// @Description Attraction derived from one search result
type SwaggerAttraction struct {
	Name            string   `json:"name" example:"Louvre Museum"`
	Description     string   `json:"description" example:"The world's most-visited museum. Rated 4.7/5."`
	Category        string   `json:"category" example:"museum" enums:"museum,landmark,park,restaurant,shopping,entertainment,religious,historical,outdoor,nightlife,transportation,education,other"`
	Rating          float64  `json:"rating,omitempty" example:"4.7"`
	PriceLevel      string   `json:"price_level,omitempty" example:"$$" enums:"free,$,$$,$$$,$$$$"`
	OpeningHours    string   `json:"opening_hours,omitempty"`
	Address         string   `json:"address,omitempty" example:"Rue de Rivoli, 75001 Paris"`
	Website         string   `json:"website,omitempty" example:"https://www.tripadvisor.com/Attraction_Review-Louvre"`
	Images          []string `json:"images"`
	Source          string   `json:"source" example:"tavily"`
	PopularityScore float64  `json:"popularity_score" example:"3.73"`
	BestTimeToVisit string   `json:"best_time_to_visit,omitempty" example:"october to march"`
	VisitDuration   string   `json:"visit_duration,omitempty" example:"3 hours"`
}

// SwaggerAttractionSearchResponse represents the attraction search response.
// @Description Attractions ranked by popularity
type SwaggerAttractionSearchResponse struct {
	Destination string                `json:"destination" example:"Paris"`
	Query       string                `json:"query" example:"top attractions in Paris | best places to visit in Paris"`
	Answer      string                `json:"answer,omitempty"`
	Attractions []SwaggerAttraction   `json:"attractions"`
	Metadata    SwaggerSearchMetadata `json:"metadata"`
}

// SwaggerHotel represents a single hotel.
// @Description Hotel derived from one search result
type SwaggerHotel struct {
	Name          string   `json:"name" example:"Hotel Lutetia"`
	Address       string   `json:"address,omitempty"`
	PricePerNight float64  `json:"price_per_night,omitempty" example:"450"`
	Rating        float64  `json:"rating,omitempty" example:"4.2"`
	Amenities     []string `json:"amenities" example:"wifi,spa,bar"`
	BookingURL    string   `json:"booking_url,omitempty" example:"https://www.booking.com/hotel/fr/lutetia.html"`
	Images        []string `json:"images"`
	Description   string   `json:"description"`
	Source        string   `json:"source" example:"tavily"`
}

// SwaggerHotelSearchResponse represents the hotel search response.
// @Description Hotels ranked by rating
type SwaggerHotelSearchResponse struct {
	Destination string                `json:"destination" example:"Paris"`
	Query       string                `json:"query" example:"hotels in Paris from 2025-10-01 to 2025-10-10 luxury style price range $600-$900"`
	Answer      string                `json:"answer,omitempty"`
	Hotels      []SwaggerHotel        `json:"hotels"`
	Metadata    SwaggerSearchMetadata `json:"metadata"`
}
