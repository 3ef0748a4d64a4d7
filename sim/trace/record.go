// Package trace provides tick and hour recording for venue simulation runs.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// TickRecord captures a single generator tick.
type TickRecord struct {
	Tick          int64   `json:"tick"`
	Seed          uint32  `json:"seed"` // seed consumed by this tick
	EightDigit    uint32  `json:"eight_digit"`
	LeadingDigits string  `json:"leading_digits"`
	MappedValue   float64 `json:"mapped_value"`
}

// HourRecord captures one hour of the turnover loop.
type HourRecord struct {
	Hour      int `json:"hour"`
	Present   int `json:"present"`   // headcount at the start of the hour
	Leaving   int `json:"leaving"`   // departures this hour
	Arriving  int `json:"arriving"`  // new customers admitted this hour
	Remaining int `json:"remaining"` // headcount after the capacity clamp
	Capacity  int `json:"capacity"`
}

// CapacityLimited reports whether capacity headroom, not departures, capped
// the arrivals of this hour.
func (r HourRecord) CapacityLimited() bool {
	return r.Arriving < r.Leaving
}
