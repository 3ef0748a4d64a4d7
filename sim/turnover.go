package sim

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/suolenkainen/venue-simulation/sim/trace"
)

// SimulateHourlyTurnover runs the hourly turnover loop and returns the number
// of new customers that arrived over the open period.
//
// Each hour floor(remaining*turnoverPerHour) guests leave; arrivals are capped
// both by the departures and by the headroom under maxCapacity. The headcount
// is clamped to maxCapacity after every hour. openHours <= 0 runs no hours.
// A NaN turnoverPerHour makes the departure count platform-defined (Go's
// float-to-int conversion), so callers taking untrusted input run
// VenueParameters.Validate first.
func SimulateHourlyTurnover(weekdayClients, maxCapacity int, turnoverPerHour float64, openHours int) int {
	return walkTurnover(weekdayClients, maxCapacity, turnoverPerHour, openHours, nil)
}

// HourlyBreakdown runs the same loop as SimulateHourlyTurnover and returns one
// record per simulated hour.
func HourlyBreakdown(weekdayClients, maxCapacity int, turnoverPerHour float64, openHours int) []trace.HourRecord {
	hours := []trace.HourRecord{}
	walkTurnover(weekdayClients, maxCapacity, turnoverPerHour, openHours, func(r trace.HourRecord) {
		hours = append(hours, r)
	})
	return hours
}

func walkTurnover(weekdayClients, maxCapacity int, turnoverPerHour float64, openHours int, visit func(trace.HourRecord)) int {
	remaining := weekdayClients
	totalNew := 0
	for h := 0; h < openHours; h++ {
		present := remaining
		leaving := int(math.Floor(float64(remaining) * turnoverPerHour))
		arriving := min(leaving, max(0, maxCapacity-(remaining-leaving)))
		totalNew += arriving

		remaining = remaining - leaving + arriving
		if remaining > maxCapacity {
			remaining = maxCapacity
		}

		logrus.Debugf("[hour %02d] present=%d leaving=%d arriving=%d remaining=%d",
			h, present, leaving, arriving, remaining)
		if visit != nil {
			visit(trace.HourRecord{
				Hour:      h,
				Present:   present,
				Leaving:   leaving,
				Arriving:  arriving,
				Remaining: remaining,
				Capacity:  maxCapacity,
			})
		}
	}
	return totalNew
}
