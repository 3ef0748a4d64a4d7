package sim

import "github.com/suolenkainen/venue-simulation/sim/trace"

// drinkSpendFactor scales the average drink price into spend per customer.
const drinkSpendFactor = 1.2

// VenueMetrics holds the derived estimates of the venue flow model.
// Recomputed from scratch on every parameter change; it has no lifecycle of its own.
type VenueMetrics struct {
	WeekdayClients              int     `json:"weekday_clients"`
	DrinkSalesPerCustomer       float64 `json:"drink_sales_per_customer"`
	EstimatedHourlyDrinkRevenue float64 `json:"estimated_hourly_drink_revenue"`
	TotalNewCustomers           int     `json:"total_new_customers"`
	TotalUniqueCustomers        int     `json:"total_unique_customers"`
	TotalIncome                 float64 `json:"total_income"`
}

// ComputeWeekdayClients estimates the weekday headcount before turnover:
// the theoretical weekend crowd, scaled by the weekday modifier and comfort.
func ComputeWeekdayClients(p VenueParameters) int {
	theoreticalWeekend := RoundHalfAwayFromZero(float64(p.MaxCapacity) * p.VenueAttractiveness * p.GuestSatisfaction)
	return int(RoundHalfAwayFromZero(theoreticalWeekend * p.WeekdayModifier * p.GuestComfort))
}

// ComputeDrinkSalesPerCustomer returns the override when present, otherwise
// the average drink price scaled by comfort, to two decimals.
func ComputeDrinkSalesPerCustomer(p VenueParameters) float64 {
	if p.DrinkSalesOverride != nil {
		return *p.DrinkSalesOverride
	}
	return Round2(p.AvgDrinkPrice * (drinkSpendFactor * p.GuestComfort))
}

// ComputeHourlyRevenue estimates drink revenue per hour. turnoverPerHour is a
// flat multiplier here, unlike its per-guest departure meaning in the
// turnover loop; both readings are kept.
func ComputeHourlyRevenue(weekdayClients int, drinkSalesPerCustomer, turnoverPerHour float64) float64 {
	return Round2(float64(weekdayClients) * drinkSalesPerCustomer * turnoverPerHour)
}

// ComputeVenueMetrics derives the full metrics record from p.
// Pure: identical parameters give bit-identical results.
func ComputeVenueMetrics(p VenueParameters) VenueMetrics {
	return computeVenueMetrics(p, nil)
}

// SimulateVenue computes the metrics together with the hourly breakdown and,
// when st wants hours, records each hour into st.
func SimulateVenue(p VenueParameters, st *trace.SimulationTrace) *FlowReport {
	hours := []trace.HourRecord{}
	m := computeVenueMetrics(p, func(r trace.HourRecord) {
		hours = append(hours, r)
		if st != nil && st.WantsHours() {
			st.RecordHour(r)
		}
	})
	return &FlowReport{Parameters: p, Metrics: m, Hours: hours}
}

func computeVenueMetrics(p VenueParameters, visit func(trace.HourRecord)) VenueMetrics {
	weekdayClients := ComputeWeekdayClients(p)
	drinkSales := ComputeDrinkSalesPerCustomer(p)
	totalNew := walkTurnover(weekdayClients, p.MaxCapacity, p.TurnoverPerHour, p.OpenHours, visit)
	unique := weekdayClients + totalNew
	return VenueMetrics{
		WeekdayClients:              weekdayClients,
		DrinkSalesPerCustomer:       drinkSales,
		EstimatedHourlyDrinkRevenue: ComputeHourlyRevenue(weekdayClients, drinkSales, p.TurnoverPerHour),
		TotalNewCustomers:           totalNew,
		TotalUniqueCustomers:        unique,
		TotalIncome:                 Round2(float64(unique) * drinkSales),
	}
}
