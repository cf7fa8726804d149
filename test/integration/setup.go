// Package integration provides helpers and integration tests for the travel planner.
// Integration tests verify that components work together correctly, including
// HTTP handlers, middleware, use cases, the Tavily adapter and mock clients.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	httpAdapter "github.com/trip-planner/travel-planner/internal/adapter/http"
	"github.com/trip-planner/travel-planner/internal/adapter/http/middleware"
	"github.com/trip-planner/travel-planner/internal/adapter/http/response"
	"github.com/trip-planner/travel-planner/internal/adapter/provider/tavily"
	"github.com/trip-planner/travel-planner/internal/domain"
	"github.com/trip-planner/travel-planner/internal/usecase"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.TripHandler
}

// NewTestServer creates a test server whose searches go through client.
// The full middleware chain is installed, as in cmd/server.
func NewTestServer(client domain.SearchClient) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	log := zerolog.Nop()
	middleware.Setup(e, log)

	handler := httpAdapter.NewTripHandler(
		usecase.NewAttractionSearchUseCase(client),
		usecase.NewHotelSearchUseCase(client),
		&httpAdapter.HandlerConfig{Logger: log},
	)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// NewTavilyServer starts a fake Tavily endpoint that serves body with status
// and returns an adapter pointed at it.
func NewTavilyServer(t *testing.T, status int, body []byte) *tavily.Adapter {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)

	client, err := tavily.NewAdapter("tvly-integration", tavily.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("Failed to create tavily adapter: %v", err)
	}
	return client
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	switch b := req.Body.(type) {
	case nil:
		bodyReader = bytes.NewReader(nil)
	case string:
		bodyReader = bytes.NewReader([]byte(b))
	default:
		bodyBytes, _ := json.Marshal(b)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Post sends body to path as JSON.
func (ts *TestServer) Post(path string, body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: path, Body: body})
}

// AttractionsRequest posts an attraction search.
func (ts *TestServer) AttractionsRequest(body interface{}) Response {
	return ts.Post("/api/v1/attractions/search", body)
}

// HotelsRequest posts a hotel search.
func (ts *TestServer) HotelsRequest(body interface{}) Response {
	return ts.Post("/api/v1/hotels/search", body)
}

// ValidateRequest posts a raw trip for validation.
func (ts *TestServer) ValidateRequest(trip interface{}) Response {
	return ts.Post("/api/v1/trips/validate", trip)
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseAttractions parses the response body as an AttractionSearchResponse.
func (r *Response) ParseAttractions() (*domain.AttractionSearchResponse, error) {
	var resp domain.AttractionSearchResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseHotels parses the response body as a HotelSearchResponse.
func (r *Response) ParseHotels() (*domain.HotelSearchResponse, error) {
	var resp domain.HotelSearchResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body as an ErrorDetail.
func (r *Response) ParseError() (*response.ErrorDetail, error) {
	var detail response.ErrorDetail
	if err := json.Unmarshal(r.Body, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// TripBody returns a valid raw trip for the destination as a JSON-ready map.
// Callers may mutate the result.
func TripBody(destination string) map[string]interface{} {
	return map[string]interface{}{
		"destination":               destination,
		"start_date":                "2025-10-01",
		"end_date":                  "2025-10-10",
		"budget":                    1500,
		"travel_style":              "luxury",
		"interests":                 []string{"culture", "food"},
		"accommodation_preference":  "hotel",
		"transportation_preference": "public",
	}
}

// SearchBody wraps a trip in a search request body.
func SearchBody(trip map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{"trip": trip}
}
