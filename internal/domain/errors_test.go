package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	tests := []struct {
		name      string
		err       *ValidationError
		wantKind  error
		wantField string
		wantError string
	}{
		{
			name:      "missing field",
			err:       NewMissingFieldError("budget"),
			wantKind:  ErrMissingField,
			wantField: "budget",
			wantError: "budget: missing required field: budget",
		},
		{
			name:      "invalid date format",
			err:       NewInvalidDateFormatError("start_date", "01/10/2025"),
			wantKind:  ErrInvalidDateFormat,
			wantField: "start_date",
			wantError: `start_date: date must be in YYYY-MM-DD format, got "01/10/2025"`,
		},
		{
			name:      "invalid date range",
			err:       NewInvalidDateRangeError(),
			wantKind:  ErrInvalidDateRange,
			wantField: "end_date",
			wantError: "end_date: end date must be after start date",
		},
		{
			name:      "invalid budget",
			err:       NewInvalidBudgetError("-5"),
			wantKind:  ErrInvalidBudget,
			wantField: "budget",
			wantError: `budget: budget must be a positive number, got "-5"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantError, tt.err.Error())
			assert.Equal(t, tt.wantField, tt.err.Field)
			assert.True(t, errors.Is(tt.err, tt.wantKind))
			assert.True(t, errors.Is(tt.err, ErrInvalidTripPreferences))
			assert.False(t, errors.Is(tt.err, ErrSearchFailed))
		})
	}
}

func TestSearchError(t *testing.T) {
	cause := errors.New("connection refused")

	tests := []struct {
		name         string
		err          *SearchError
		wantKind     error
		wantContains []string
		wantCause    error
	}{
		{
			name:         "empty destination",
			err:          NewEmptyDestinationError("attractions"),
			wantKind:     ErrEmptyDestination,
			wantContains: []string{"attractions", "destination is required"},
		},
		{
			name:         "api error wraps cause",
			err:          NewSearchAPIError("attractions", cause),
			wantKind:     ErrSearchAPI,
			wantContains: []string{"search API request failed", "connection refused"},
			wantCause:    cause,
		},
		{
			name:         "no results",
			err:          NewNoResultsError("hotels"),
			wantKind:     ErrNoResults,
			wantContains: []string{"hotels search", "no results found"},
		},
		{
			name:         "unexpected wraps cause",
			err:          NewUnexpectedSearchError("", context.DeadlineExceeded),
			wantKind:     ErrUnexpectedSearch,
			wantContains: []string{"unexpected search error", "deadline exceeded"},
			wantCause:    context.DeadlineExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, want := range tt.wantContains {
				assert.Contains(t, tt.err.Error(), want)
			}
			assert.True(t, errors.Is(tt.err, tt.wantKind))
			assert.True(t, errors.Is(tt.err, ErrSearchFailed))
			assert.False(t, errors.Is(tt.err, ErrInvalidTripPreferences))
			if tt.wantCause != nil {
				assert.True(t, errors.Is(tt.err, tt.wantCause))
			}
		})
	}
}

func TestWithSubject(t *testing.T) {
	t.Run("fills empty subject", func(t *testing.T) {
		err := WithSubject(NewSearchAPIError("", errors.New("boom")), "hotels")
		var se *SearchError
		assert.True(t, errors.As(err, &se))
		assert.Equal(t, "hotels", se.Subject)
		assert.True(t, IsSearchAPI(err))
	})

	t.Run("keeps existing subject", func(t *testing.T) {
		err := WithSubject(NewNoResultsError("attractions"), "hotels")
		var se *SearchError
		assert.True(t, errors.As(err, &se))
		assert.Equal(t, "attractions", se.Subject)
	})

	t.Run("leaves other errors alone", func(t *testing.T) {
		plain := errors.New("plain")
		assert.Equal(t, plain, WithSubject(plain, "hotels"))
	})
}

func TestErrorCheckers(t *testing.T) {
	tests := []struct {
		name       string
		checkFunc  func(error) bool
		err        error
		wantResult bool
	}{
		{"IsMissingField with constructor", IsMissingField, NewMissingFieldError("x"), true},
		{"IsMissingField with budget error", IsMissingField, NewInvalidBudgetError("x"), false},
		{"IsInvalidDateRange", IsInvalidDateRange, NewInvalidDateRangeError(), true},
		{"IsInvalidBudget", IsInvalidBudget, NewInvalidBudgetError("0"), true},
		{"IsNoResults", IsNoResults, NewNoResultsError("attractions"), true},
		{"IsNoResults with api error", IsNoResults, NewSearchAPIError("attractions", nil), false},
		{"IsSearchAPI", IsSearchAPI, NewSearchAPIError("attractions", errors.New("x")), true},
		{"IsValidationError with search error", IsValidationError, NewNoResultsError(""), false},
		{"IsSearchError", IsSearchError, NewUnexpectedSearchError("hotels", nil), true},
		{"IsSearchError with plain error", IsSearchError, errors.New("plain"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantResult, tt.checkFunc(tt.err))
		})
	}
}
