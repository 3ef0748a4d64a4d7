// Report types for the flow model and the generator, with their printers.

package sim

import (
	"fmt"
	"io"

	"github.com/suolenkainen/venue-simulation/sim/trace"
)

// FlowReport bundles the inputs and outputs of one flow model evaluation.
type FlowReport struct {
	Parameters VenueParameters    `json:"parameters"`
	Metrics    VenueMetrics       `json:"metrics"`
	Hours      []trace.HourRecord `json:"hours"`
}

// SeriesReport summarises a generator run.
type SeriesReport struct {
	InitialSeed uint32        `json:"initial_seed"`
	FinalSeed   uint32        `json:"final_seed"`
	Ticks       int64         `json:"ticks"`
	History     []float64     `json:"history"`
	Summary     SeriesSummary `json:"summary"`
}

// Print writes the derived estimates in the order the venue dashboard lists them.
func (r *FlowReport) Print(w io.Writer) {
	m := r.Metrics
	fmt.Fprintln(w, "=== Derived estimates ===")
	fmt.Fprintf(w, "Weekday clients (estimate)          : %d\n", m.WeekdayClients)
	fmt.Fprintf(w, "Drink sales per customer (estimate) : %.2f\n", m.DrinkSalesPerCustomer)
	fmt.Fprintf(w, "Estimated hourly drink revenue      : %.2f\n", m.EstimatedHourlyDrinkRevenue)
	fmt.Fprintf(w, "Total new customers (open hours)    : %d\n", m.TotalNewCustomers)
	fmt.Fprintf(w, "Total unique customers served       : %d\n", m.TotalUniqueCustomers)
	fmt.Fprintf(w, "Total income (delivered estimate)   : $%.2f\n", m.TotalIncome)
	fmt.Fprintf(w, "Turnover per hour (fraction)        : %g\n", r.Parameters.TurnoverPerHour)
}

// PrintHours writes the hourly breakdown as a table.
func (r *FlowReport) PrintHours(w io.Writer) {
	fmt.Fprintln(w, "=== Hourly turnover ===")
	fmt.Fprintln(w, "hour  present  leaving  arriving  remaining")
	for _, h := range r.Hours {
		fmt.Fprintf(w, "%4d  %7d  %7d  %8d  %9d\n", h.Hour, h.Present, h.Leaving, h.Arriving, h.Remaining)
	}
}

// Print writes the run summary.
func (r *SeriesReport) Print(w io.Writer) {
	s := r.Summary
	fmt.Fprintln(w, "=== Series Summary ===")
	fmt.Fprintf(w, "Initial seed : %08d\n", r.InitialSeed)
	fmt.Fprintf(w, "Final seed   : %08d\n", r.FinalSeed)
	fmt.Fprintf(w, "Ticks        : %d\n", r.Ticks)
	fmt.Fprintf(w, "Window       : %d values\n", s.Count)
	if s.Count > 0 {
		fmt.Fprintf(w, "Mean         : %.4f\n", s.Mean)
		fmt.Fprintf(w, "Std dev      : %.4f\n", s.StdDev)
		fmt.Fprintf(w, "Median       : %.2f\n", s.Median)
		fmt.Fprintf(w, "Min / Max    : %.2f / %.2f\n", s.Min, s.Max)
		fmt.Fprintf(w, "Last         : %.2f\n", s.Last)
	}
}
