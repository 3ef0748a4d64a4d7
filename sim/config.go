package sim

import "fmt"

// Default venue parameters, used when reference data does not provide a
// numeric value.
const (
	DefaultMaxCapacity         = 50
	DefaultOpenHours           = 6
	DefaultGuestComfort        = 1.0
	DefaultGuestSatisfaction   = 1.0
	DefaultVenueAttractiveness = 1.0
	DefaultWeekdayModifier     = 0.5
	DefaultAvgDrinkPrice       = 6.5
	DefaultTurnoverPerHour     = 0.2
)

// MaxOpenHours bounds open_hours in Validate: one year of hours.
const MaxOpenHours = 24 * 365

// VenueParameters groups the tunable inputs of the venue flow model.
type VenueParameters struct {
	MaxCapacity         int     `json:"max_capacity"`         // headcount ceiling (must be > 0)
	OpenHours           int     `json:"open_hours"`           // hours simulated by the turnover loop
	GuestComfort        float64 `json:"guest_comfort"`        // multiplier on weekday demand and drink spend
	GuestSatisfaction   float64 `json:"guest_satisfaction"`   // multiplier on theoretical weekend demand
	VenueAttractiveness float64 `json:"venue_attractiveness"` // multiplier on theoretical weekend demand
	WeekdayModifier     float64 `json:"weekday_modifier"`     // weekday share of weekend demand
	AvgDrinkPrice       float64 `json:"avg_drink_price"`
	TurnoverPerHour     float64 `json:"turnover_per_hour"` // fraction of present guests replaced per hour

	// DrinkSalesOverride, when set, replaces the computed drink sales per customer.
	DrinkSalesOverride *float64 `json:"drink_sales_override,omitempty"`
}

// DefaultVenueParameters returns the built-in defaults.
func DefaultVenueParameters() VenueParameters {
	return VenueParameters{
		MaxCapacity:         DefaultMaxCapacity,
		OpenHours:           DefaultOpenHours,
		GuestComfort:        DefaultGuestComfort,
		GuestSatisfaction:   DefaultGuestSatisfaction,
		VenueAttractiveness: DefaultVenueAttractiveness,
		WeekdayModifier:     DefaultWeekdayModifier,
		AvgDrinkPrice:       DefaultAvgDrinkPrice,
		TurnoverPerHour:     DefaultTurnoverPerHour,
	}
}

// WithDrinkSalesOverride returns a copy of p carrying an explicit drink sales
// per customer value.
func (p VenueParameters) WithDrinkSalesOverride(v float64) VenueParameters {
	p.DrinkSalesOverride = &v
	return p
}

// Validate checks the parameters before they reach the flow model.
// The model itself accepts anything; callers that take user input run this first.
func (p VenueParameters) Validate() error {
	if p.MaxCapacity <= 0 {
		return fmt.Errorf("max_capacity must be positive, got %d", p.MaxCapacity)
	}
	if p.OpenHours < 0 {
		return fmt.Errorf("open_hours must be non-negative, got %d", p.OpenHours)
	}
	if p.OpenHours > MaxOpenHours {
		return fmt.Errorf("open_hours must be at most %d, got %d", MaxOpenHours, p.OpenHours)
	}
	fields := []struct {
		name string
		val  float64
	}{
		{"guest_comfort", p.GuestComfort},
		{"guest_satisfaction", p.GuestSatisfaction},
		{"venue_attractiveness", p.VenueAttractiveness},
		{"weekday_modifier", p.WeekdayModifier},
		{"avg_drink_price", p.AvgDrinkPrice},
		{"turnover_per_hour", p.TurnoverPerHour},
	}
	for _, f := range fields {
		if err := validateFiniteNonNegative(f.name, f.val); err != nil {
			return err
		}
	}
	if p.DrinkSalesOverride != nil {
		if err := validateFiniteNonNegative("drink_sales_override", *p.DrinkSalesOverride); err != nil {
			return err
		}
	}
	return nil
}

func validateFiniteNonNegative(name string, val float64) error {
	if !IsFinite(val) {
		return fmt.Errorf("%s must be a finite number, got %f", name, val)
	}
	if val < 0 {
		return fmt.Errorf("%s must be non-negative, got %f", name, val)
	}
	return nil
}

// GeneratorConfig groups the settings of a generator run.
type GeneratorConfig struct {
	Seed            uint32 // initial seed
	Horizon         int64  // number of ticks to run
	HistoryCapacity int    // rolling window size (0 = HistoryCapacity)
}

// NewGeneratorConfig creates a GeneratorConfig. Zero values are kept as-is.
func NewGeneratorConfig(seed uint32, horizon int64, historyCapacity int) GeneratorConfig {
	return GeneratorConfig{Seed: seed, Horizon: horizon, HistoryCapacity: historyCapacity}
}
