package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/suolenkainen/venue-simulation/sim"
	"github.com/suolenkainen/venue-simulation/sim/export"
	"github.com/suolenkainen/venue-simulation/sim/reference"
)

// Parameter flags shared by flow. Only flags set on the command line
// replace the values resolved from --defaults-filepath.
const (
	flagMaxCapacity         = "max-capacity"
	flagOpenHours           = "open-hours"
	flagGuestComfort        = "guest-comfort"
	flagGuestSatisfaction   = "guest-satisfaction"
	flagVenueAttractiveness = "venue-attractiveness"
	flagWeekdayModifier     = "weekday-modifier"
	flagAvgDrinkPrice       = "avg-drink-price"
	flagTurnoverPerHour     = "turnover-per-hour"
	flagDrinkSales          = "drink-sales-per-customer"
)

var showHours bool // Print the hourly turnover table

// flowCmd evaluates the venue flow model once
var flowCmd = &cobra.Command{
	Use:   "flow",
	Short: "Estimate weekday clients, drink sales and turnover for one venue",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		base, _, err := reference.LoadParameters(defaultsFilePath)
		if err != nil {
			return err
		}
		p, err := venueParametersFromFlags(cmd.Flags(), base)
		if err != nil {
			return err
		}
		if err := p.Validate(); err != nil {
			return err
		}
		logrus.Debugf("Flow parameters: %+v", p)

		report := sim.SimulateVenue(p, nil)
		printFlow(cmd.OutOrStdout(), report, showHours)

		if resultsPath != "" {
			if err := sim.SaveResults(report, resultsPath); err != nil {
				return err
			}
			logrus.Infof("Results written to %s", resultsPath)
		}
		if xlsxPath != "" {
			if err := export.WriteWorkbook(xlsxPath, export.Workbook{Flow: report}); err != nil {
				return err
			}
			logrus.Infof("Workbook written to %s", xlsxPath)
		}
		return nil
	},
}

func printFlow(w io.Writer, report *sim.FlowReport, hours bool) {
	report.Print(w)
	if hours {
		fmt.Fprintln(w)
		report.PrintHours(w)
	}
}

// registerVenueFlags adds one flag per venue parameter to fs.
func registerVenueFlags(fs *pflag.FlagSet) {
	d := sim.DefaultVenueParameters()
	fs.Int(flagMaxCapacity, d.MaxCapacity, "Maximum headcount")
	fs.Int(flagOpenHours, d.OpenHours, "Hours simulated by the turnover loop")
	fs.Float64(flagGuestComfort, d.GuestComfort, "Guest comfort multiplier")
	fs.Float64(flagGuestSatisfaction, d.GuestSatisfaction, "Guest satisfaction multiplier")
	fs.Float64(flagVenueAttractiveness, d.VenueAttractiveness, "Venue attractiveness multiplier")
	fs.Float64(flagWeekdayModifier, d.WeekdayModifier, "Weekday share of weekend demand")
	fs.Float64(flagAvgDrinkPrice, d.AvgDrinkPrice, "Average drink price")
	fs.Float64(flagTurnoverPerHour, d.TurnoverPerHour, "Fraction of present guests replaced per hour")
	fs.Float64(flagDrinkSales, 0, "Use this drink sales per customer instead of the computed value")
}

// venueParametersFromFlags overlays the flags changed on fs onto base.
func venueParametersFromFlags(fs *pflag.FlagSet, base sim.VenueParameters) (sim.VenueParameters, error) {
	p := base
	ints := []struct {
		name string
		dst  *int
	}{
		{flagMaxCapacity, &p.MaxCapacity},
		{flagOpenHours, &p.OpenHours},
	}
	for _, f := range ints {
		if !fs.Changed(f.name) {
			continue
		}
		v, err := fs.GetInt(f.name)
		if err != nil {
			return p, err
		}
		*f.dst = v
	}

	floats := []struct {
		name string
		dst  *float64
	}{
		{flagGuestComfort, &p.GuestComfort},
		{flagGuestSatisfaction, &p.GuestSatisfaction},
		{flagVenueAttractiveness, &p.VenueAttractiveness},
		{flagWeekdayModifier, &p.WeekdayModifier},
		{flagAvgDrinkPrice, &p.AvgDrinkPrice},
		{flagTurnoverPerHour, &p.TurnoverPerHour},
	}
	for _, f := range floats {
		if !fs.Changed(f.name) {
			continue
		}
		v, err := fs.GetFloat64(f.name)
		if err != nil {
			return p, err
		}
		*f.dst = v
	}

	if fs.Changed(flagDrinkSales) {
		v, err := fs.GetFloat64(flagDrinkSales)
		if err != nil {
			return p, err
		}
		p = p.WithDrinkSalesOverride(v)
	}
	return p, nil
}

func init() {
	flowCmd.Flags().StringVar(&defaultsFilePath, "defaults-filepath", "defaults.yaml", "Reference tables supplying parameter values")
	registerVenueFlags(flowCmd.Flags())
	flowCmd.Flags().BoolVar(&showHours, "hours", false, "Print the hourly turnover table")
	flowCmd.Flags().StringVar(&resultsPath, "results-path", "", "Write the flow report as JSON to this file")
	flowCmd.Flags().StringVar(&xlsxPath, "xlsx-path", "", "Write the flow report as an .xlsx workbook to this file")
}
