package domain

// Hotel is a lodging candidate derived from one search result.
type Hotel struct {
	Name          string   `json:"name"`
	Address       *string  `json:"address,omitempty"`
	PricePerNight *float64 `json:"price_per_night,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	Amenities     []string `json:"amenities"`
	RoomType      *string  `json:"room_type,omitempty"`
	BookingURL    string   `json:"booking_url,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	Images        []string `json:"images"`
	Description   string   `json:"description"`
	Source        string   `json:"source"`
}

// HotelSearchResponse is the ranked result of a hotel search.
type HotelSearchResponse struct {
	Destination string         `json:"destination"`
	Query       string         `json:"query"`
	Answer      string         `json:"answer,omitempty"`
	Hotels      []Hotel        `json:"hotels"`
	Metadata    SearchMetadata `json:"metadata"`
}
