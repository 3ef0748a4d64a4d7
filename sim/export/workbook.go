// Package export writes simulation reports to Excel workbooks.
package export

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/suolenkainen/venue-simulation/sim"
)

// Sheet names.
const (
	SheetMetrics = "Metrics"
	SheetHours   = "Hours"
	SheetSeries  = "Series"
)

// Workbook selects the reports to export. Either may be nil; its sheets are
// then left out.
type Workbook struct {
	Flow   *sim.FlowReport
	Series *sim.SeriesReport
}

// Sheets returns the sheet names w produces, in order.
func (w Workbook) Sheets() []string {
	var sheets []string
	if w.Flow != nil {
		sheets = append(sheets, SheetMetrics, SheetHours)
	}
	if w.Series != nil {
		sheets = append(sheets, SheetSeries)
	}
	return sheets
}

// WriteWorkbook saves w as an .xlsx file at path.
func WriteWorkbook(path string, w Workbook) (err error) {
	sheets := w.Sheets()
	if len(sheets) == 0 {
		return errors.New("nothing to export: no flow or series report")
	}

	f := excelize.NewFile()
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	// The default sheet becomes the first one we write.
	if err := f.SetSheetName("Sheet1", sheets[0]); err != nil {
		return fmt.Errorf("renaming default sheet: %w", err)
	}
	for _, name := range sheets[1:] {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("creating sheet %s: %w", name, err)
		}
	}

	if w.Flow != nil {
		if err := writeMetrics(f, w.Flow); err != nil {
			return err
		}
		if err := writeHours(f, w.Flow); err != nil {
			return err
		}
	}
	if w.Series != nil {
		if err := writeSeries(f, w.Series); err != nil {
			return err
		}
	}

	f.SetActiveSheet(0)
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	logrus.Debugf("Successfully wrote workbook '%s' (%v)", path, sheets)
	return nil
}

func writeRows(f *excelize.File, sheet string, col, row int, rows [][]any) error {
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(col, row+i)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("%s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

func writeMetrics(f *excelize.File, r *sim.FlowReport) error {
	p, m := r.Parameters, r.Metrics
	rows := [][]any{
		{"Name", "Value"},
		{"max_capacity", p.MaxCapacity},
		{"open_hours", p.OpenHours},
		{"guest_comfort", p.GuestComfort},
		{"guest_satisfaction", p.GuestSatisfaction},
		{"venue_attractiveness", p.VenueAttractiveness},
		{"weekday_modifier", p.WeekdayModifier},
		{"avg_drink_price", p.AvgDrinkPrice},
		{"turnover_per_hour", p.TurnoverPerHour},
	}
	if p.DrinkSalesOverride != nil {
		rows = append(rows, []any{"drink_sales_override", *p.DrinkSalesOverride})
	}
	rows = append(rows,
		[]any{"weekday_clients", m.WeekdayClients},
		[]any{"drink_sales_per_customer", m.DrinkSalesPerCustomer},
		[]any{"estimated_hourly_drink_revenue", m.EstimatedHourlyDrinkRevenue},
		[]any{"total_new_customers", m.TotalNewCustomers},
		[]any{"total_unique_customers", m.TotalUniqueCustomers},
		[]any{"total_income", m.TotalIncome},
	)
	return writeRows(f, SheetMetrics, 1, 1, rows)
}

func writeHours(f *excelize.File, r *sim.FlowReport) error {
	rows := [][]any{{"Hour", "Present", "Leaving", "Arriving", "Remaining", "Capacity"}}
	for _, h := range r.Hours {
		rows = append(rows, []any{h.Hour, h.Present, h.Leaving, h.Arriving, h.Remaining, h.Capacity})
	}
	return writeRows(f, SheetHours, 1, 1, rows)
}

func writeSeries(f *excelize.File, r *sim.SeriesReport) error {
	rows := [][]any{{"Index", "MappedValue"}}
	for i, v := range r.History {
		rows = append(rows, []any{i, v})
	}
	if err := writeRows(f, SheetSeries, 1, 1, rows); err != nil {
		return err
	}

	s := r.Summary
	summary := [][]any{
		{"Stat", "Value"},
		{"initial_seed", r.InitialSeed},
		{"final_seed", r.FinalSeed},
		{"ticks", r.Ticks},
		{"count", s.Count},
		{"mean", s.Mean},
		{"std_dev", s.StdDev},
		{"median", s.Median},
		{"min", s.Min},
		{"max", s.Max},
		{"last", s.Last},
	}
	return writeRows(f, SheetSeries, 4, 1, summary)
}
