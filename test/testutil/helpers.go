// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/trip-planner/travel-planner/internal/domain"
)

// LoadTestData loads a file from the test/testdata directory.
func LoadTestData(t *testing.T, filename string) []byte {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// Navigate to project root (testutil is in test/testutil)
	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	path := filepath.Join(projectRoot, "test", "testdata", filename)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return data
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(domain.DateLayout, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// TripInput returns a complete, valid raw trip input for the destination.
func TripInput(destination string) domain.TripInput {
	budget := domain.BudgetInput("1500")
	return domain.TripInput{
		Destination:              Ptr(destination),
		StartDate:                Ptr("2025-10-01"),
		EndDate:                  Ptr("2025-10-10"),
		Budget:                   &budget,
		TravelStyle:              Ptr("luxury"),
		Interests:                Ptr([]string{"culture", "food"}),
		AccommodationPreference:  Ptr("hotel"),
		TransportationPreference: Ptr("public"),
	}
}

// TripPreferences returns validated preferences for the destination.
// It fails the test if TripInput(destination) does not validate.
func TripPreferences(t *testing.T, destination string) domain.TripPreferences {
	t.Helper()
	prefs, err := domain.ValidateTripInput(TripInput(destination))
	if err != nil {
		t.Fatalf("Failed to build trip preferences: %v", err)
	}
	return prefs
}
