package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/trip-planner/travel-planner/internal/domain"
)

// categoryKeywords maps categories to the keywords that identify them.
// Order matters: the first category with a matching keyword wins.
var categoryKeywords = []struct {
	category domain.Category
	keywords []string
}{
	{domain.CategoryMuseum, []string{"museum", "gallery", "exhibition", "art center", "cultural center"}},
	{domain.CategoryLandmark, []string{"landmark", "monument", "tower", "palace", "castle", "bridge", "statue"}},
	{domain.CategoryPark, []string{"park", "garden", "nature reserve", "botanical garden", "zoo", "aquarium"}},
	{domain.CategoryRestaurant, []string{"restaurant", "cafe", "dining", "food market", "culinary", "bistro"}},
	{domain.CategoryShopping, []string{"mall", "market", "shopping center", "boutique", "souvenir", "bazaar"}},
	{domain.CategoryEntertainment, []string{"theater", "cinema", "amusement park", "concert hall", "stadium"}},
	{domain.CategoryReligious, []string{"temple", "church", "mosque", "cathedral", "shrine", "monastery"}},
	{domain.CategoryHistorical, []string{"ruins", "historical site", "ancient", "archaeological", "heritage"}},
	{domain.CategoryOutdoor, []string{"beach", "mountain", "hiking", "viewpoint", "scenic spot", "trail"}},
	{domain.CategoryNightlife, []string{"bar", "club", "night market", "entertainment district"}},
	{domain.CategoryTransportation, []string{"station", "port", "airport", "terminal", "hub"}},
	{domain.CategoryEducation, []string{"university", "library", "school", "institute", "academy"}},
}

// ratingRegex matches "<number>/5" ratings such as "4.5/5" or "4 / 5".
var ratingRegex = regexp.MustCompile(`(\d+(?:\.\d)?)\s*/\s*5`)

// pricePatterns are checked in order against lowercased text; most specific first.
var pricePatterns = []struct {
	pattern *regexp.Regexp
	level   domain.PriceLevel
}{
	{regexp.MustCompile(`\${3,}\s*expensive`), domain.PriceLuxury},
	{regexp.MustCompile(`\$\$\s*expensive`), domain.PriceLuxury},
	{regexp.MustCompile(`\$\$\s*moderate`), domain.PriceExpensive},
	{regexp.MustCompile(`\$\s*cheap`), domain.PriceModerate},
	{regexp.MustCompile(`\bfree\b`), domain.PriceFree},
}

// durationPatterns are checked in order; the first number is reported with the unit.
var durationPatterns = []struct {
	pattern *regexp.Regexp
	unit    string
}{
	{regexp.MustCompile(`(\d+)\s*-\s*(\d+)\s*hours?`), "hours"},
	{regexp.MustCompile(`(\d+)\s*hours?`), "hours"},
	{regexp.MustCompile(`(\d+)\s*-\s*(\d+)\s*days?`), "days"},
	{regexp.MustCompile(`(\d+)\s*days?`), "days"},
}

// bestTimePatterns capture a "<word> to <word>" window after a timing phrase.
var bestTimePatterns = []*regexp.Regexp{
	regexp.MustCompile(`best time to visit.*?(\w+ to \w+)`),
	regexp.MustCompile(`peak season.*?(\w+ to \w+)`),
	regexp.MustCompile(`recommended time.*?(\w+ to \w+)`),
	regexp.MustCompile(`ideal time.*?(\w+ to \w+)`),
}

// InferCategory classifies a result by keywords in its title and content.
// Matching is a case-insensitive substring test; no match yields CategoryOther.
func InferCategory(title, content string) domain.Category {
	title = strings.ToLower(title)
	content = strings.ToLower(content)

	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(content, kw) || strings.Contains(title, kw) {
				return entry.category
			}
		}
	}
	return domain.CategoryOther
}

// ExtractRating returns the first "<n>/5" rating in text.
// Ratings outside [0, 5] are treated as absent.
func ExtractRating(text string) *float64 {
	m := ratingRegex.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil || v < 0 || v > 5 {
		return nil
	}
	return &v
}

// ExtractPriceLevel returns the price level of the first matching price phrase.
func ExtractPriceLevel(text string) *domain.PriceLevel {
	lower := strings.ToLower(text)
	for _, p := range pricePatterns {
		if p.pattern.MatchString(lower) {
			level := p.level
			return &level
		}
	}
	return nil
}

// ExtractVisitDuration returns a typical visit length such as "2 hours" or "3 days".
// Ranges report their lower bound.
func ExtractVisitDuration(text string) *string {
	lower := strings.ToLower(text)
	for _, p := range durationPatterns {
		if m := p.pattern.FindStringSubmatch(lower); m != nil {
			d := m[1] + " " + p.unit
			return &d
		}
	}
	return nil
}

// ExtractBestTimeToVisit returns the first timing window mentioned, e.g. "april to june".
func ExtractBestTimeToVisit(text string) *string {
	lower := strings.ToLower(text)
	for _, p := range bestTimePatterns {
		if m := p.FindStringSubmatch(lower); m != nil {
			window := m[1]
			return &window
		}
	}
	return nil
}

// TitleName strips site suffixes such as " - Tripadvisor" from a result title.
func TitleName(title string) string {
	name, _, _ := strings.Cut(title, " - ")
	return name
}
