package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-planner/travel-planner/internal/domain"
)

const tripYAML = `destination: Lisbon
start_date: 2025-05-01
end_date: 2025-05-06
budget: 1200
travel_style: moderate
interests: [food, history]
accommodation_preference: hotel
transportation_preference: public
`

// writeFile writes content to a file in a temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// run executes the planner with args and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("TAVILY_API_KEY", "")
	t.Setenv("PLANNER_API_KEY", "")

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

// tavilyServer serves a fixed search response and counts requests.
func tavilyServer(t *testing.T, body string) (*httptest.Server, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "Bearer tvly-cli", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestValidate(t *testing.T) {
	prefs := writeFile(t, "trip.yaml", tripYAML)

	out, _, err := run(t, "validate", "--prefs", prefs)
	require.NoError(t, err)

	assert.Contains(t, out, "Lisbon")
	assert.Contains(t, out, "2025-05-01")
	assert.Contains(t, out, "food, history")
}

func TestValidate_JSONFile(t *testing.T) {
	prefs := writeFile(t, "trip.json", `{
		"destination": "Kyoto", "start_date": "2025-04-01", "end_date": "2025-04-08",
		"budget": "3000", "travel_style": "luxury", "interests": ["temples"],
		"accommodation_preference": "ryokan", "transportation_preference": "rail"
	}`)

	out, _, err := run(t, "validate", "--prefs", prefs)
	require.NoError(t, err)
	assert.Contains(t, out, "Kyoto")
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantKind error
	}{
		{
			name:     "missing interests",
			content:  "destination: Lisbon\nstart_date: 2025-05-01\nend_date: 2025-05-06\nbudget: 100\ntravel_style: x\naccommodation_preference: x\ntransportation_preference: x\n",
			wantKind: domain.ErrMissingField,
		},
		{
			name:     "reversed dates",
			content:  "destination: Lisbon\nstart_date: 2025-05-06\nend_date: 2025-05-01\nbudget: 100\ntravel_style: x\ninterests: []\naccommodation_preference: x\ntransportation_preference: x\n",
			wantKind: domain.ErrInvalidDateRange,
		},
		{
			name:     "zero budget",
			content:  "destination: Lisbon\nstart_date: 2025-05-01\nend_date: 2025-05-06\nbudget: 0\ntravel_style: x\ninterests: []\naccommodation_preference: x\ntransportation_preference: x\n",
			wantKind: domain.ErrInvalidBudget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := writeFile(t, "trip.yaml", tt.content)

			_, stderr, err := run(t, "validate", "--prefs", prefs)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantKind)
			assert.Contains(t, stderr, "Error:")
		})
	}
}

func TestValidate_MissingPrefsFlag(t *testing.T) {
	_, _, err := run(t, "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--prefs is required")
}

func TestAttractions_Text(t *testing.T) {
	srv, calls := tavilyServer(t, `{"results": [
		{"title": "Belem Tower - Lonely Planet", "url": "https://lonelyplanet.com/belem", "content": "A historic fortress. Rated 4.6/5."},
		{"title": "Time Out Market", "url": "https://timeout.com/market", "content": "Food hall and restaurant stalls."}
	]}`)
	prefs := writeFile(t, "trip.yaml", tripYAML)

	out, _, err := run(t, "attractions", "--prefs", prefs, "--api-key", "tvly-cli", "--base-url", srv.URL, "--category", "museum")
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
	assert.Contains(t, out, "Found the following attractions:")
	assert.Contains(t, out, "1. Belem Tower")
	assert.Contains(t, out, "Rating: 4.6/5.0")
	assert.Contains(t, out, "RESTAURANT:")
}

func TestHotels_JSON(t *testing.T) {
	srv, _ := tavilyServer(t, `{"answer": "Plenty of choice.", "results": [
		{"title": "Memmo Alfama - Booking.com", "url": "https://booking.com/memmo", "content": "Rooms from $180. Rooftop pool and free wifi. 4.5/5"}
	]}`)
	prefs := writeFile(t, "trip.yaml", tripYAML)
	t.Setenv("PLANNER_API_KEY", "")
	t.Setenv("TAVILY_API_KEY", "tvly-cli")

	var stdout bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"hotels", "--prefs", prefs, "--json", "--base-url", srv.URL})
	require.NoError(t, cmd.Execute())

	var resp domain.HotelSearchResponse
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &resp))
	require.Len(t, resp.Hotels, 1)
	assert.Equal(t, "Memmo Alfama", resp.Hotels[0].Name)
	assert.Equal(t, []string{"wifi", "pool"}, resp.Hotels[0].Amenities)
	assert.Equal(t, "Plenty of choice.", resp.Answer)
}

func TestSearch_ConfigFile(t *testing.T) {
	srv, calls := tavilyServer(t, `{"results": [{"title": "Sintra", "url": "https://viator.com/sintra", "content": "Palaces and park."}]}`)
	prefs := writeFile(t, "trip.yaml", tripYAML)
	cfg := writeFile(t, "planner.yaml", "api_key: tvly-cli\nbase_url: "+srv.URL+"\n")

	out, _, err := run(t, "attractions", "--config", cfg, "--prefs", prefs)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
	assert.Contains(t, out, "Sintra")
}

func TestSearch_Errors(t *testing.T) {
	prefs := writeFile(t, "trip.yaml", tripYAML)

	t.Run("missing api key", func(t *testing.T) {
		_, _, err := run(t, "hotels", "--prefs", prefs)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TAVILY_API_KEY")
	})

	t.Run("max results out of range", func(t *testing.T) {
		_, _, err := run(t, "attractions", "--prefs", prefs, "--api-key", "k", "--max-results", "21")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--max-results")
	})

	t.Run("no results", func(t *testing.T) {
		srv, _ := tavilyServer(t, `{"results": []}`)
		_, _, err := run(t, "hotels", "--prefs", prefs, "--api-key", "tvly-cli", "--base-url", srv.URL)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNoResults)
	})

	t.Run("missing config file", func(t *testing.T) {
		_, _, err := run(t, "validate", "--prefs", prefs, "--config", filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config")
	})
}
