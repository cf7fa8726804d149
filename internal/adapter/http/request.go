// Package http provides the HTTP handler layer for the travel planner API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"fmt"
	"strings"

	"github.com/trip-planner/travel-planner/internal/domain"
	"github.com/trip-planner/travel-planner/internal/usecase"
)

// Response formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// SearchAttractionsRequest represents the request body for attraction search.
type SearchAttractionsRequest struct {
	// Trip is the raw trip input; it is validated before searching
	Trip domain.TripInput `json:"trip"`

	// MaxResults caps the number of results (0 = server default, max 20)
	MaxResults int `json:"max_results,omitempty" example:"10"`

	// Categories adds one "best <category> in <destination>" query part each
	Categories []string `json:"categories,omitempty" example:"museum,park"`

	// Format is the response format: json (default) or text
	Format string `json:"format,omitempty" example:"json"`
}

// SearchHotelsRequest represents the request body for hotel search.
type SearchHotelsRequest struct {
	// Trip is the raw trip input; it is validated before searching
	Trip domain.TripInput `json:"trip"`

	// MaxResults caps the number of results (0 = server default, max 20)
	MaxResults int `json:"max_results,omitempty" example:"5"`

	// Format is the response format: json (default) or text
	Format string `json:"format,omitempty" example:"json"`
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate checks the request envelope. Trip fields are validated separately
// by domain.ValidateTripInput.
func (r *SearchAttractionsRequest) Validate() error {
	errs := &ValidationErrors{}

	validateMaxResults(r.MaxResults, errs)
	r.Format = validateFormat(r.Format, errs)

	for i, c := range r.Categories {
		trimmed := strings.TrimSpace(c)
		if trimmed == "" {
			errs.Add(fmt.Sprintf("categories[%d]", i), "category must not be blank")
			continue
		}
		r.Categories[i] = trimmed
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate checks the request envelope.
func (r *SearchHotelsRequest) Validate() error {
	errs := &ValidationErrors{}

	validateMaxResults(r.MaxResults, errs)
	r.Format = validateFormat(r.Format, errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func validateMaxResults(n int, errs *ValidationErrors) {
	if n < 0 {
		errs.Add("max_results", "max_results must not be negative")
		return
	}
	if n > usecase.MaxResultsLimit {
		errs.Add("max_results", fmt.Sprintf("max_results cannot exceed %d", usecase.MaxResultsLimit))
	}
}

// validateFormat returns the normalized format.
func validateFormat(format string, errs *ValidationErrors) string {
	f := strings.ToLower(strings.TrimSpace(format))
	switch f {
	case "", FormatJSON:
		return FormatJSON
	case FormatText:
		return FormatText
	default:
		errs.Add("format", "format must be one of: json, text")
		return f
	}
}
