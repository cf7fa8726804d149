package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/trip-planner/travel-planner/internal/adapter/http/middleware"
	"github.com/trip-planner/travel-planner/internal/adapter/http/response"
	"github.com/trip-planner/travel-planner/internal/adapter/text"
	"github.com/trip-planner/travel-planner/internal/domain"
	"github.com/trip-planner/travel-planner/internal/usecase"
)

// HandlerConfig contains configuration options for the handler.
type HandlerConfig struct {
	// MaxAttractions is used when a request omits max_results
	MaxAttractions int

	// MaxHotels is used when a request omits max_results
	MaxHotels int

	// Logger receives failure logs when no request-scoped logger is available
	Logger zerolog.Logger
}

// DefaultHandlerConfig returns the default handler configuration.
func DefaultHandlerConfig() HandlerConfig {
	return HandlerConfig{
		MaxAttractions: usecase.DefaultMaxAttractions,
		MaxHotels:      usecase.DefaultMaxHotels,
		Logger:         zerolog.Nop(),
	}
}

// TripHandler handles HTTP requests for trip validation and searches.
type TripHandler struct {
	attractions usecase.AttractionSearchUseCase
	hotels      usecase.HotelSearchUseCase
	cfg         HandlerConfig
}

// NewTripHandler creates a new TripHandler with the given use cases.
// If config is nil, defaults are used.
func NewTripHandler(attractions usecase.AttractionSearchUseCase, hotels usecase.HotelSearchUseCase, config *HandlerConfig) *TripHandler {
	cfg := DefaultHandlerConfig()
	if config != nil {
		if config.MaxAttractions > 0 {
			cfg.MaxAttractions = config.MaxAttractions
		}
		if config.MaxHotels > 0 {
			cfg.MaxHotels = config.MaxHotels
		}
		cfg.Logger = config.Logger
	}

	return &TripHandler{
		attractions: attractions,
		hotels:      hotels,
		cfg:         cfg,
	}
}

// ValidateTrip handles POST /api/v1/trips/validate
//
// @Summary Validate trip preferences
// @Description Validate raw trip input and return the normalized preferences
// @Tags trips
// @Accept json
// @Produce json
// @Param request body domain.TripInput true "Trip input"
// @Success 200 {object} SwaggerTripPreferences
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/trips/validate [post]
func (h *TripHandler) ValidateTrip(c echo.Context) error {
	var in domain.TripInput
	if err := c.Bind(&in); err != nil {
		return response.InvalidRequestBody(c)
	}

	prefs, err := domain.ValidateTripInput(in)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, prefs)
}

// SearchAttractions handles POST /api/v1/attractions/search
//
// @Summary Search for attractions
// @Description Validate the trip and return attractions ranked by popularity
// @Tags attractions
// @Accept json
// @Produce json,plain
// @Param request body SearchAttractionsRequest true "Trip and search options"
// @Success 200 {object} SwaggerAttractionSearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "No results"
// @Failure 502 {object} response.ErrorDetail "Search API error"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/attractions/search [post]
func (h *TripHandler) SearchAttractions(c echo.Context) error {
	var req SearchAttractionsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	prefs, err := domain.ValidateTripInput(req.Trip)
	if err != nil {
		return h.handleError(c, err)
	}

	result, err := h.attractions.Search(c.Request().Context(), prefs, ToAttractionSearchOptions(&req, h.cfg.MaxAttractions))
	if err != nil {
		return h.handleError(c, err)
	}

	if req.Format == FormatText {
		return response.Text(c, text.RenderAttractions(result.Attractions))
	}
	return response.OK(c, result)
}

// SearchHotels handles POST /api/v1/hotels/search
//
// @Summary Search for hotels
// @Description Validate the trip and return hotels in its price range ranked by rating
// @Tags hotels
// @Accept json
// @Produce json,plain
// @Param request body SearchHotelsRequest true "Trip and search options"
// @Success 200 {object} SwaggerHotelSearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "No results"
// @Failure 502 {object} response.ErrorDetail "Search API error"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/hotels/search [post]
func (h *TripHandler) SearchHotels(c echo.Context) error {
	var req SearchHotelsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	prefs, err := domain.ValidateTripInput(req.Trip)
	if err != nil {
		return h.handleError(c, err)
	}

	result, err := h.hotels.Search(c.Request().Context(), prefs, ToHotelSearchOptions(&req, h.cfg.MaxHotels))
	if err != nil {
		return h.handleError(c, err)
	}

	if req.Format == FormatText {
		return response.Text(c, text.RenderHotels(result.Hotels))
	}
	return response.OK(c, result)
}

// Health handles GET /health
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *TripHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles request envelope errors and returns a 400 response.
func (h *TripHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to HTTP responses.
func (h *TripHandler) handleError(c echo.Context, err error) error {
	log := middleware.Logger(c, h.cfg.Logger)

	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return response.TripValidationError(c, validationCode(vErr), vErr.Field, vErr.Error())
	}

	switch {
	case errors.Is(err, domain.ErrEmptyDestination):
		return response.EmptyDestination(c)

	case errors.Is(err, domain.ErrNoResults):
		log.Info().Err(err).Msg("search returned no results")
		return response.NoResults(c, err.Error())

	case errors.Is(err, context.DeadlineExceeded):
		log.Warn().Err(err).Msg("search timed out")
		return response.GatewayTimeout(c)

	case errors.Is(err, context.Canceled):
		log.Warn().Err(err).Msg("search cancelled")
		return response.RequestCancelled(c)

	case errors.Is(err, domain.ErrSearchAPI):
		log.Error().Err(err).Msg("search API request failed")
		return response.BadGateway(c)
	}

	log.Error().Err(err).Msg("unexpected search error")
	return response.InternalServerError(c)
}

// validationCode returns the API error code for a trip validation failure.
func validationCode(err *domain.ValidationError) string {
	switch {
	case errors.Is(err, domain.ErrMissingField):
		return response.CodeMissingField
	case errors.Is(err, domain.ErrInvalidDateFormat):
		return response.CodeInvalidDateFormat
	case errors.Is(err, domain.ErrInvalidDateRange):
		return response.CodeInvalidDateRange
	case errors.Is(err, domain.ErrInvalidBudget):
		return response.CodeInvalidBudget
	default:
		return response.CodeValidationError
	}
}
