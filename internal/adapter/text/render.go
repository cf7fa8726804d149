// Package text renders search results and trip preferences as plain text
// for terminals and the text response format.
package text

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/trip-planner/travel-planner/internal/domain"
)

// PreviewWidth is the maximum length, in characters and display columns, of a description preview.
const PreviewWidth = 200

// Messages for empty result lists.
const (
	NoAttractionsMessage = "No attractions found matching your criteria."
	NoHotelsMessage      = "No hotels found matching your criteria."
)

// RenderAttractions groups attractions by category in first-appearance order
// and numbers them within each group.
func RenderAttractions(attractions []domain.Attraction) string {
	if len(attractions) == 0 {
		return NoAttractionsMessage
	}

	var order []domain.Category
	groups := make(map[domain.Category][]domain.Attraction)
	for _, a := range attractions {
		if _, seen := groups[a.Category]; !seen {
			order = append(order, a.Category)
		}
		groups[a.Category] = append(groups[a.Category], a)
	}

	lines := []string{"Found the following attractions:\n"}
	for _, category := range order {
		lines = append(lines, "\n"+strings.ToUpper(string(category))+":")
		for i, a := range groups[category] {
			lines = append(lines, fmt.Sprintf("\n%d. %s", i+1, a.Name))
			if a.Rating != nil {
				lines = append(lines, "   Rating: "+formatRating(*a.Rating)+"/5.0")
			}
			if a.PriceLevel != nil {
				lines = append(lines, "   Price Level: "+string(*a.PriceLevel))
			}
			if a.VisitDuration != nil {
				lines = append(lines, "   Visit Duration: "+*a.VisitDuration)
			}
			if a.Website != "" {
				lines = append(lines, "   Website: "+a.Website)
			}
			lines = append(lines, "   Description: "+Preview(a.Description)+"...")
		}
	}

	return strings.Join(lines, "\n")
}

// RenderHotels renders a numbered hotel list.
func RenderHotels(hotels []domain.Hotel) string {
	if len(hotels) == 0 {
		return NoHotelsMessage
	}

	lines := []string{"Found the following hotels:\n"}
	for i, h := range hotels {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, h.Name))
		if h.PricePerNight != nil {
			lines = append(lines, fmt.Sprintf("   Price per night: $%.2f", *h.PricePerNight))
		}
		if h.Rating != nil {
			lines = append(lines, "   Rating: "+formatRating(*h.Rating)+"/5.0")
		}
		if len(h.Amenities) > 0 {
			lines = append(lines, "   Amenities: "+strings.Join(h.Amenities, ", "))
		}
		if h.BookingURL != "" {
			lines = append(lines, "   Booking URL: "+h.BookingURL)
		}
		lines = append(lines, "   Source: "+h.Source)
		lines = append(lines, "   Description: "+Preview(h.Description)+"...\n")
	}

	return strings.Join(lines, "\n")
}

// RenderTripPreferences summarizes validated preferences.
func RenderTripPreferences(p domain.TripPreferences) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Trip to %s\n", p.Destination)
	fmt.Fprintf(&b, "  Dates: %s to %s (%d days)\n",
		p.StartDate.Format(domain.DateLayout), p.EndDate.Format(domain.DateLayout), p.DurationDays())
	fmt.Fprintf(&b, "  Budget: $%.2f\n", p.Budget)
	fmt.Fprintf(&b, "  Travel style: %s\n", p.TravelStyle)
	if len(p.Interests) > 0 {
		fmt.Fprintf(&b, "  Interests: %s\n", strings.Join(p.Interests, ", "))
	}
	fmt.Fprintf(&b, "  Accommodation: %s\n", p.AccommodationPreference)
	fmt.Fprintf(&b, "  Transportation: %s\n", p.TransportationPreference)
	if len(p.DietaryRestrictions) > 0 {
		fmt.Fprintf(&b, "  Dietary restrictions: %s\n", strings.Join(p.DietaryRestrictions, ", "))
	}
	if p.SpecialRequirements != nil && *p.SpecialRequirements != "" {
		fmt.Fprintf(&b, "  Special requirements: %s\n", *p.SpecialRequirements)
	}

	return b.String()
}

// Preview flattens a description onto one line and truncates it to at most
// PreviewWidth characters and PreviewWidth display columns.
func Preview(description string) string {
	flat := strings.TrimSpace(strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(description))
	if runes := []rune(flat); len(runes) > PreviewWidth {
		flat = string(runes[:PreviewWidth])
	}
	return strings.TrimSpace(runewidth.Truncate(flat, PreviewWidth, ""))
}

// formatRating prints whole ratings with one decimal ("4.0") and others as-is ("4.25").
func formatRating(r float64) string {
	if r == float64(int64(r)) {
		return strconv.FormatFloat(r, 'f', 1, 64)
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
