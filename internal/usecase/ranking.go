// Package usecase provides the business logic for attraction and hotel searches.
package usecase

import (
	"math"
	"sort"

	"github.com/trip-planner/travel-planner/internal/domain"
)

// Popularity score weights.
// A perfect 5/5 rating contributes up to ratingWeight; corroborating sources
// contribute sourceWeight each, capped at maxSourceScore.
const (
	ratingWeight   = 10.0 / 3.0
	sourceWeight   = 0.2
	maxSourceScore = 1.5
)

// PopularityScore combines a stated rating and the number of corroborating sources.
//
//	Score = (rating / 5 × 10/3) + min(sources × 0.2, 1.5)
//
// The score never decreases when either the rating or the source count grows.
// A result with no rating and no sources scores 0.
func PopularityScore(rating *float64, sourceCount int) float64 {
	var score float64

	if rating != nil && *rating > 0 {
		score += *rating / 5.0 * ratingWeight
	}

	if sourceCount > 0 {
		score += math.Min(float64(sourceCount)*sourceWeight, maxSourceScore)
	}

	return score
}

// SortAttractions orders attractions by popularity score, highest first.
// Uses stable sorting so equal scores keep their original relative order.
// Does NOT mutate the input slice.
func SortAttractions(attractions []domain.Attraction) []domain.Attraction {
	result := make([]domain.Attraction, len(attractions))
	copy(result, attractions)

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].PopularityScore > result[j].PopularityScore
	})

	return result
}

// SortHotels orders hotels by rating, highest first; a missing rating counts as 0.
// Uses stable sorting and does NOT mutate the input slice.
func SortHotels(hotels []domain.Hotel) []domain.Hotel {
	result := make([]domain.Hotel, len(hotels))
	copy(result, hotels)

	sort.SliceStable(result, func(i, j int) bool {
		return ratingOrZero(result[i].Rating) > ratingOrZero(result[j].Rating)
	})

	return result
}

func ratingOrZero(r *float64) float64 {
	if r == nil {
		return 0
	}
	return *r
}
