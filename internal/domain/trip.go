// Package domain contains the core business entities and rules for the travel planner.
// These entities are provider-agnostic and form the foundation upon which all other components are built.
package domain

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DateLayout is the calendar date format accepted for trip dates.
const DateLayout = "2006-01-02"

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// BudgetInput holds a budget as the caller supplied it: a JSON/YAML number
// or a numeric string. Parsing is deferred to validation.
type BudgetInput string

// UnmarshalJSON accepts a JSON string or any other JSON literal.
func (b *BudgetInput) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*b = BudgetInput(s)
		return nil
	}
	*b = BudgetInput(strings.TrimSpace(string(data)))
	return nil
}

// UnmarshalYAML keeps the scalar text as written.
func (b *BudgetInput) UnmarshalYAML(node *yaml.Node) error {
	*b = BudgetInput(node.Value)
	return nil
}

// TripInput is the raw, unvalidated trip request.
// Required fields are pointers so that an absent field can be told apart from an empty one.
type TripInput struct {
	// Destination is the city or country to visit (e.g., "Paris")
	Destination *string `json:"destination" yaml:"destination"`

	// StartDate is the first day of the trip in YYYY-MM-DD format
	StartDate *string `json:"start_date" yaml:"start_date"`

	// EndDate is the last day of the trip in YYYY-MM-DD format
	EndDate *string `json:"end_date" yaml:"end_date"`

	// Budget is the total trip budget, as a number or numeric string
	Budget *BudgetInput `json:"budget" yaml:"budget" swaggertype:"string" example:"1500"`

	// TravelStyle is free text such as "budget", "moderate" or "luxury"
	TravelStyle *string `json:"travel_style" yaml:"travel_style"`

	// Interests are free-form tags such as "culture" or "food"
	Interests *[]string `json:"interests" yaml:"interests"`

	// AccommodationPreference is free text such as "hotel" or "hostel"
	AccommodationPreference *string `json:"accommodation_preference" yaml:"accommodation_preference"`

	// TransportationPreference is free text such as "public" or "mixed"
	TransportationPreference *string `json:"transportation_preference" yaml:"transportation_preference"`

	// DietaryRestrictions is optional
	DietaryRestrictions []string `json:"dietary_restrictions,omitempty" yaml:"dietary_restrictions"`

	// SpecialRequirements is optional
	SpecialRequirements *string `json:"special_requirements,omitempty" yaml:"special_requirements"`
}

// TripPreferences is the validated, normalized record of a user's travel constraints.
// It is built once by ValidateTripInput and treated as read-only afterwards.
type TripPreferences struct {
	Destination              string    `json:"destination"`
	StartDate                time.Time `json:"start_date"`
	EndDate                  time.Time `json:"end_date"`
	Budget                   float64   `json:"budget"`
	TravelStyle              string    `json:"travel_style"`
	Interests                []string  `json:"interests"`
	AccommodationPreference  string    `json:"accommodation_preference"`
	TransportationPreference string    `json:"transportation_preference"`
	DietaryRestrictions      []string  `json:"dietary_restrictions,omitempty"`
	SpecialRequirements      *string   `json:"special_requirements,omitempty"`
}

// DurationDays returns the number of days between the start and end dates.
func (p TripPreferences) DurationDays() int {
	return int(p.EndDate.Sub(p.StartDate).Hours() / 24)
}

// ValidateTripInput checks raw trip input and builds TripPreferences.
// On failure it returns a *ValidationError and a zero TripPreferences.
func ValidateTripInput(in TripInput) (TripPreferences, error) {
	if err := checkRequired(in); err != nil {
		return TripPreferences{}, err
	}

	start, err := parseDate("start_date", *in.StartDate)
	if err != nil {
		return TripPreferences{}, err
	}
	end, err := parseDate("end_date", *in.EndDate)
	if err != nil {
		return TripPreferences{}, err
	}
	if !start.Before(end) {
		return TripPreferences{}, NewInvalidDateRangeError()
	}

	budget, err := parseBudget(string(*in.Budget))
	if err != nil {
		return TripPreferences{}, err
	}

	prefs := TripPreferences{
		Destination:              *in.Destination,
		StartDate:                start,
		EndDate:                  end,
		Budget:                   budget,
		TravelStyle:              *in.TravelStyle,
		Interests:                copyStrings(*in.Interests),
		AccommodationPreference:  *in.AccommodationPreference,
		TransportationPreference: *in.TransportationPreference,
		DietaryRestrictions:      copyStrings(in.DietaryRestrictions),
	}
	if prefs.Interests == nil {
		prefs.Interests = []string{}
	}
	if in.SpecialRequirements != nil {
		req := *in.SpecialRequirements
		prefs.SpecialRequirements = &req
	}

	return prefs, nil
}

// checkRequired reports the first absent required field, in declaration order.
func checkRequired(in TripInput) error {
	switch {
	case in.Destination == nil || strings.TrimSpace(*in.Destination) == "":
		return NewMissingFieldError("destination")
	case in.StartDate == nil:
		return NewMissingFieldError("start_date")
	case in.EndDate == nil:
		return NewMissingFieldError("end_date")
	case in.Budget == nil:
		return NewMissingFieldError("budget")
	case in.TravelStyle == nil:
		return NewMissingFieldError("travel_style")
	case in.Interests == nil:
		return NewMissingFieldError("interests")
	case in.AccommodationPreference == nil:
		return NewMissingFieldError("accommodation_preference")
	case in.TransportationPreference == nil:
		return NewMissingFieldError("transportation_preference")
	}
	return nil
}

// parseDate parses a YYYY-MM-DD date; invalid calendar dates are format errors.
func parseDate(field, value string) (time.Time, error) {
	if !dateRegex.MatchString(value) {
		return time.Time{}, NewInvalidDateFormatError(field, value)
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, NewInvalidDateFormatError(field, value)
	}
	return t, nil
}

// parseBudget converts budget text to a finite, strictly positive float.
func parseBudget(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, NewInvalidBudgetError(raw)
	}
	return v, nil
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
