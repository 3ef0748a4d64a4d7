package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalHours           int
	TotalDepartures      int
	TotalArrivals        int
	PeakOccupancy        int
	MinOccupancy         int
	CapacityLimitedHours int // hours where headroom, not departures, capped arrivals

	TotalTicks int
	MinValue   float64
	MaxValue   float64
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{}
	if st == nil {
		return summary
	}

	summary.TotalHours = len(st.Hours)
	for i, h := range st.Hours {
		summary.TotalDepartures += h.Leaving
		summary.TotalArrivals += h.Arriving
		if h.CapacityLimited() {
			summary.CapacityLimitedHours++
		}
		if i == 0 || h.Remaining > summary.PeakOccupancy {
			summary.PeakOccupancy = h.Remaining
		}
		if i == 0 || h.Remaining < summary.MinOccupancy {
			summary.MinOccupancy = h.Remaining
		}
	}

	summary.TotalTicks = len(st.Ticks)
	for i, t := range st.Ticks {
		if i == 0 || t.MappedValue < summary.MinValue {
			summary.MinValue = t.MappedValue
		}
		if i == 0 || t.MappedValue > summary.MaxValue {
			summary.MaxValue = t.MappedValue
		}
	}

	return summary
}
