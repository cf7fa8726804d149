// Package response provides standardized HTTP response builders for the travel planner API.
// Every error response has the same ErrorDetail shape.
package response

// ErrorDetail contains structured error information.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code" example:"invalid_budget"`

	// Message is a human-readable error message
	Message string `json:"message" example:"budget: budget must be a positive number, got \"-5\""`

	// Details contains field-specific error details (for validation errors)
	Details map[string]string `json:"details,omitempty"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest    = "invalid_request"
	CodeValidationError   = "validation_error"
	CodeMissingField      = "missing_field"
	CodeInvalidDateFormat = "invalid_date_format"
	CodeInvalidDateRange  = "invalid_date_range"
	CodeInvalidBudget     = "invalid_budget"
	CodeEmptyDestination  = "empty_destination"
	CodeNoResults         = "no_results"
	CodeSearchAPIError    = "search_api_error"
	CodeTimeout           = "timeout"
	CodeInternalError     = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequestBody = "Failed to parse request body"
	MsgValidationFailed   = "Request validation failed"
	MsgEmptyDestination   = "Destination is required"
	MsgSearchAPIError     = "The search service request failed"
	MsgTimeout            = "Request timed out"
	MsgRequestCancelled   = "Request was cancelled"
	MsgInternalError      = "An unexpected error occurred"
)
