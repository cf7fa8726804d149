package http

import (
	"github.com/trip-planner/travel-planner/internal/usecase"
)

// ToAttractionSearchOptions converts request fields to usecase.AttractionSearchOptions.
// A zero max_results falls back to defaultMax.
func ToAttractionSearchOptions(req *SearchAttractionsRequest, defaultMax int) usecase.AttractionSearchOptions {
	maxResults := req.MaxResults
	if maxResults == 0 {
		maxResults = defaultMax
	}

	var categories []string
	if len(req.Categories) > 0 {
		categories = make([]string, len(req.Categories))
		copy(categories, req.Categories)
	}

	return usecase.AttractionSearchOptions{
		MaxResults: maxResults,
		Categories: categories,
	}
}

// ToHotelSearchOptions converts request fields to usecase.HotelSearchOptions.
func ToHotelSearchOptions(req *SearchHotelsRequest, defaultMax int) usecase.HotelSearchOptions {
	maxResults := req.MaxResults
	if maxResults == 0 {
		maxResults = defaultMax
	}
	return usecase.HotelSearchOptions{MaxResults: maxResults}
}
