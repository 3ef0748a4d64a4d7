// Package testutil provides shared test infrastructure for the venue simulator.
// It holds the golden vector types and assertion helpers used by the sim
// package tests and the packages built on top of it.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenVectors represents the structure of testdata/goldenvectors.json.
type GoldenVectors struct {
	Generator []GoldenChain    `json:"generator"`
	Venue     []GoldenScenario `json:"venue"`
}

// GoldenChain is the expected sample sequence starting from Seed.
type GoldenChain struct {
	Seed    uint32         `json:"seed"`
	Samples []GoldenSample `json:"samples"`
}

// GoldenSample is one expected generator draw.
type GoldenSample struct {
	EightDigit    uint32  `json:"eight_digit"`
	LeadingDigits string  `json:"leading_digits"`
	MappedValue   float64 `json:"mapped_value"`
}

// GoldenScenario is one flow model evaluation with its expected outputs.
type GoldenScenario struct {
	Name       string           `json:"name"`
	Parameters GoldenParameters `json:"parameters"`
	Metrics    GoldenMetrics    `json:"metrics"`
	Hours      []GoldenHour     `json:"hours"`
}

// GoldenParameters mirrors the venue parameters. Kept separate from the sim
// types so the dataset does not move when those grow fields.
type GoldenParameters struct {
	MaxCapacity         int      `json:"max_capacity"`
	OpenHours           int      `json:"open_hours"`
	GuestComfort        float64  `json:"guest_comfort"`
	GuestSatisfaction   float64  `json:"guest_satisfaction"`
	VenueAttractiveness float64  `json:"venue_attractiveness"`
	WeekdayModifier     float64  `json:"weekday_modifier"`
	AvgDrinkPrice       float64  `json:"avg_drink_price"`
	TurnoverPerHour     float64  `json:"turnover_per_hour"`
	DrinkSalesOverride  *float64 `json:"drink_sales_override"`
}

// GoldenMetrics represents the expected derived estimates.
type GoldenMetrics struct {
	// Exact match (integers)
	WeekdayClients       int `json:"weekday_clients"`
	TotalNewCustomers    int `json:"total_new_customers"`
	TotalUniqueCustomers int `json:"total_unique_customers"`

	// Two-decimal currency values
	DrinkSalesPerCustomer       float64 `json:"drink_sales_per_customer"`
	EstimatedHourlyDrinkRevenue float64 `json:"estimated_hourly_drink_revenue"`
	TotalIncome                 float64 `json:"total_income"`
}

// GoldenHour is one expected row of the hourly breakdown.
type GoldenHour struct {
	Hour      int `json:"hour"`
	Present   int `json:"present"`
	Leaving   int `json:"leaving"`
	Arriving  int `json:"arriving"`
	Remaining int `json:"remaining"`
}

// LoadGoldenVectors loads the golden vectors from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenVectors(t *testing.T) *GoldenVectors {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldenvectors.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden vectors: %v", err)
	}

	var vectors GoldenVectors
	if err := json.Unmarshal(data, &vectors); err != nil {
		t.Fatalf("Failed to parse golden vectors: %v", err)
	}
	if len(vectors.Generator) == 0 || len(vectors.Venue) == 0 {
		t.Fatal("golden vectors file is missing generator or venue cases")
	}

	return &vectors
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
