package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func strPtr(s string) *string { return &s }

func budgetPtr(s string) *BudgetInput {
	b := BudgetInput(s)
	return &b
}

// validInput returns a complete TripInput for Paris.
func validInput() TripInput {
	interests := []string{"culture", "food"}
	return TripInput{
		Destination:              strPtr("Paris"),
		StartDate:                strPtr("2025-10-01"),
		EndDate:                  strPtr("2025-10-10"),
		Budget:                   budgetPtr("1500"),
		TravelStyle:              strPtr("luxury"),
		Interests:                &interests,
		AccommodationPreference:  strPtr("hotel"),
		TransportationPreference: strPtr("public"),
	}
}

func TestValidateTripInput_Success(t *testing.T) {
	prefs, err := ValidateTripInput(validInput())
	require.NoError(t, err)

	assert.Equal(t, "Paris", prefs.Destination)
	assert.Equal(t, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), prefs.StartDate)
	assert.Equal(t, time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC), prefs.EndDate)
	assert.Equal(t, 1500.0, prefs.Budget)
	assert.Equal(t, "luxury", prefs.TravelStyle)
	assert.Equal(t, []string{"culture", "food"}, prefs.Interests)
	assert.Equal(t, "hotel", prefs.AccommodationPreference)
	assert.Equal(t, "public", prefs.TransportationPreference)
	assert.Nil(t, prefs.DietaryRestrictions)
	assert.Nil(t, prefs.SpecialRequirements)
	assert.Equal(t, 9, prefs.DurationDays())
}

func TestValidateTripInput_OptionalFieldsPassThrough(t *testing.T) {
	in := validInput()
	in.DietaryRestrictions = []string{"vegan"}
	in.SpecialRequirements = strPtr("wheelchair access")

	prefs, err := ValidateTripInput(in)
	require.NoError(t, err)

	assert.Equal(t, []string{"vegan"}, prefs.DietaryRestrictions)
	require.NotNil(t, prefs.SpecialRequirements)
	assert.Equal(t, "wheelchair access", *prefs.SpecialRequirements)
}

func TestValidateTripInput_DoesNotAliasInput(t *testing.T) {
	in := validInput()
	prefs, err := ValidateTripInput(in)
	require.NoError(t, err)

	(*in.Interests)[0] = "changed"
	assert.Equal(t, "culture", prefs.Interests[0])
}

func TestValidateTripInput_MissingField(t *testing.T) {
	tests := []struct {
		name  string
		clear func(*TripInput)
		field string
	}{
		{"destination", func(in *TripInput) { in.Destination = nil }, "destination"},
		{"blank destination", func(in *TripInput) { in.Destination = strPtr("  ") }, "destination"},
		{"start_date", func(in *TripInput) { in.StartDate = nil }, "start_date"},
		{"end_date", func(in *TripInput) { in.EndDate = nil }, "end_date"},
		{"budget", func(in *TripInput) { in.Budget = nil }, "budget"},
		{"travel_style", func(in *TripInput) { in.TravelStyle = nil }, "travel_style"},
		{"interests", func(in *TripInput) { in.Interests = nil }, "interests"},
		{"accommodation_preference", func(in *TripInput) { in.AccommodationPreference = nil }, "accommodation_preference"},
		{"transportation_preference", func(in *TripInput) { in.TransportationPreference = nil }, "transportation_preference"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.clear(&in)

			prefs, err := ValidateTripInput(in)
			require.Error(t, err)
			assert.Equal(t, TripPreferences{}, prefs)
			assert.True(t, IsMissingField(err))
			assert.True(t, IsValidationError(err))

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.field, vErr.Field)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidateTripInput_EmptyInterestsArePresent(t *testing.T) {
	in := validInput()
	empty := []string{}
	in.Interests = &empty

	prefs, err := ValidateTripInput(in)
	require.NoError(t, err)
	assert.NotNil(t, prefs.Interests)
	assert.Empty(t, prefs.Interests)
}

func TestValidateTripInput_InvalidDateFormat(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		endDate   string
		field     string
	}{
		{"slashes", "2025/10/01", "2025-10-10", "start_date"},
		{"short year", "25-10-01", "2025-10-10", "start_date"},
		{"not a calendar date", "2025-02-30", "2025-10-10", "start_date"},
		{"bad end date", "2025-10-01", "October 10", "end_date"},
		{"empty end date", "2025-10-01", "", "end_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			in.StartDate = strPtr(tt.startDate)
			in.EndDate = strPtr(tt.endDate)

			_, err := ValidateTripInput(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDateFormat))

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestValidateTripInput_InvalidDateRange(t *testing.T) {
	tests := []struct {
		name    string
		endDate string
	}{
		{"end before start", "2025-09-01"},
		{"same day", "2025-10-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			in.EndDate = strPtr(tt.endDate)

			_, err := ValidateTripInput(in)
			require.Error(t, err)
			assert.True(t, IsInvalidDateRange(err))
		})
	}
}

func TestValidateTripInput_Budget(t *testing.T) {
	tests := []struct {
		name    string
		budget  string
		want    float64
		wantErr bool
	}{
		{"integer string", "1500", 1500, false},
		{"decimal", "99.5", 99.5, false},
		{"padded", " 200 ", 200, false},
		{"zero", "0", 0, true},
		{"negative", "-10", 0, true},
		{"non-numeric", "lots", 0, true},
		{"empty", "", 0, true},
		{"nan", "NaN", 0, true},
		{"infinity", "Inf", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			in.Budget = budgetPtr(tt.budget)

			prefs, err := ValidateTripInput(in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsInvalidBudget(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, prefs.Budget)
		})
	}
}

func TestTripInput_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantBudget float64
		wantErr    error
	}{
		{
			name: "budget as string",
			body: `{"destination":"Paris","start_date":"2025-10-01","end_date":"2025-10-10","budget":"1500",
				"travel_style":"luxury","interests":["culture","food"],"accommodation_preference":"hotel",
				"transportation_preference":"public"}`,
			wantBudget: 1500,
		},
		{
			name: "budget as number",
			body: `{"destination":"Paris","start_date":"2025-10-01","end_date":"2025-10-10","budget":2000.5,
				"travel_style":"moderate","interests":[],"accommodation_preference":"hotel",
				"transportation_preference":"mixed"}`,
			wantBudget: 2000.5,
		},
		{
			name: "budget as boolean",
			body: `{"destination":"Paris","start_date":"2025-10-01","end_date":"2025-10-10","budget":true,
				"travel_style":"moderate","interests":[],"accommodation_preference":"hotel",
				"transportation_preference":"mixed"}`,
			wantErr: ErrInvalidBudget,
		},
		{
			name: "null field is missing",
			body: `{"destination":"Paris","start_date":"2025-10-01","end_date":"2025-10-10","budget":null,
				"travel_style":"moderate","interests":[],"accommodation_preference":"hotel",
				"transportation_preference":"mixed"}`,
			wantErr: ErrMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in TripInput
			require.NoError(t, json.Unmarshal([]byte(tt.body), &in))

			prefs, err := ValidateTripInput(in)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBudget, prefs.Budget)
		})
	}
}

func TestTripInput_UnmarshalYAML(t *testing.T) {
	doc := `
destination: Kyoto
start_date: "2025-04-01"
end_date: "2025-04-08"
budget: 3000
travel_style: moderate
interests: [temples, food]
accommodation_preference: hotel
transportation_preference: public
dietary_restrictions: [vegetarian]
`
	var in TripInput
	require.NoError(t, yaml.Unmarshal([]byte(doc), &in))

	prefs, err := ValidateTripInput(in)
	require.NoError(t, err)
	assert.Equal(t, "Kyoto", prefs.Destination)
	assert.Equal(t, 3000.0, prefs.Budget)
	assert.Equal(t, []string{"vegetarian"}, prefs.DietaryRestrictions)
	assert.Equal(t, 7, prefs.DurationDays())
}
