package domain

import (
	"errors"
	"fmt"
)

// Trip preference validation errors.
var (
	// ErrInvalidTripPreferences is matched by every validation failure.
	ErrInvalidTripPreferences = errors.New("invalid trip preferences")

	// ErrMissingField indicates a required input field was absent.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidDateFormat indicates a date was not in YYYY-MM-DD format.
	ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")

	// ErrInvalidDateRange indicates the end date is not after the start date.
	ErrInvalidDateRange = errors.New("end date must be after start date")

	// ErrInvalidBudget indicates a non-numeric or non-positive budget.
	ErrInvalidBudget = errors.New("budget must be a positive number")
)

// Search errors.
var (
	// ErrSearchFailed is matched by every search failure.
	ErrSearchFailed = errors.New("search failed")

	// ErrEmptyDestination indicates a search was invoked without a destination.
	ErrEmptyDestination = errors.New("destination is required")

	// ErrSearchAPI indicates the external search API request failed.
	ErrSearchAPI = errors.New("search API request failed")

	// ErrNoResults indicates the search API succeeded but returned nothing usable.
	ErrNoResults = errors.New("no results found")

	// ErrUnexpectedSearch indicates a data-shape anomaly while handling a search.
	ErrUnexpectedSearch = errors.New("unexpected search error")
)

// ValidationError describes why raw trip input was rejected.
// Kind is one of the validation sentinels above.
type ValidationError struct {
	Kind    error
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap exposes the kind so errors.Is matches the sentinel.
func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// Is reports whether target is the umbrella validation sentinel.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidTripPreferences
}

// NewMissingFieldError creates a ValidationError for an absent required field.
func NewMissingFieldError(field string) *ValidationError {
	return &ValidationError{
		Kind:    ErrMissingField,
		Field:   field,
		Message: "missing required field: " + field,
	}
}

// NewInvalidDateFormatError creates a ValidationError for a malformed date.
func NewInvalidDateFormatError(field, value string) *ValidationError {
	return &ValidationError{
		Kind:    ErrInvalidDateFormat,
		Field:   field,
		Message: fmt.Sprintf("date must be in YYYY-MM-DD format, got %q", value),
	}
}

// NewInvalidDateRangeError creates a ValidationError for start >= end.
func NewInvalidDateRangeError() *ValidationError {
	return &ValidationError{
		Kind:    ErrInvalidDateRange,
		Field:   "end_date",
		Message: ErrInvalidDateRange.Error(),
	}
}

// NewInvalidBudgetError creates a ValidationError for an unusable budget.
func NewInvalidBudgetError(value string) *ValidationError {
	return &ValidationError{
		Kind:    ErrInvalidBudget,
		Field:   "budget",
		Message: fmt.Sprintf("budget must be a positive number, got %q", value),
	}
}

// SearchError is returned by attraction and hotel searches.
// Subject names what was searched ("attractions", "hotels").
type SearchError struct {
	Kind    error
	Subject string
	Err     error
}

// Error implements the error interface.
func (e *SearchError) Error() string {
	msg := e.Kind.Error()
	if e.Subject != "" {
		msg = e.Subject + " search: " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the underlying cause.
func (e *SearchError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Is reports whether target is the umbrella search sentinel.
func (e *SearchError) Is(target error) bool {
	return target == ErrSearchFailed
}

// NewEmptyDestinationError creates a SearchError for a missing destination.
func NewEmptyDestinationError(subject string) *SearchError {
	return &SearchError{Kind: ErrEmptyDestination, Subject: subject}
}

// NewSearchAPIError wraps a transport or HTTP failure.
func NewSearchAPIError(subject string, err error) *SearchError {
	return &SearchError{Kind: ErrSearchAPI, Subject: subject, Err: err}
}

// NewNoResultsError creates a SearchError for an empty result set.
func NewNoResultsError(subject string) *SearchError {
	return &SearchError{Kind: ErrNoResults, Subject: subject}
}

// NewUnexpectedSearchError wraps a parsing or data-shape failure.
func NewUnexpectedSearchError(subject string, err error) *SearchError {
	return &SearchError{Kind: ErrUnexpectedSearch, Subject: subject, Err: err}
}

// WithSubject returns a copy of err carrying subject when err is a SearchError
// without one. Other errors are returned unchanged.
func WithSubject(err error, subject string) error {
	var se *SearchError
	if errors.As(err, &se) && se.Subject == "" {
		cp := *se
		cp.Subject = subject
		return &cp
	}
	return err
}

// IsValidationError checks if the error is any trip preference validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidTripPreferences)
}

// IsMissingField checks if the error is a missing field error.
func IsMissingField(err error) bool {
	return errors.Is(err, ErrMissingField)
}

// IsInvalidDateRange checks if the error is an invalid date range error.
func IsInvalidDateRange(err error) bool {
	return errors.Is(err, ErrInvalidDateRange)
}

// IsInvalidBudget checks if the error is an invalid budget error.
func IsInvalidBudget(err error) bool {
	return errors.Is(err, ErrInvalidBudget)
}

// IsNoResults checks if the error is a no results error.
func IsNoResults(err error) bool {
	return errors.Is(err, ErrNoResults)
}

// IsSearchAPI checks if the error is a search API error.
func IsSearchAPI(err error) bool {
	return errors.Is(err, ErrSearchAPI)
}

// IsSearchError checks if the error is any attraction or hotel search error.
func IsSearchError(err error) bool {
	return errors.Is(err, ErrSearchFailed)
}
