package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/suolenkainen/venue-simulation/sim"
	"github.com/suolenkainen/venue-simulation/sim/export"
	"github.com/suolenkainen/venue-simulation/sim/trace"
)

var (
	seed            int64         // Initial seed, truncated to 32 bits
	ticks           int64         // Number of ticks to run
	tickInterval    time.Duration // Wall-clock wait between ticks
	historyCapacity int           // Rolling window size
	traceLevel      string        // none, hours, ticks or full
)

// seriesResults is the JSON written by --results-path.
type seriesResults struct {
	Series *sim.SeriesReport   `json:"series"`
	Ticks  []trace.TickRecord  `json:"ticks,omitempty"`
	Trace  *trace.TraceSummary `json:"trace,omitempty"`
}

// runCmd advances the generator and prints every tick
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the self-chaining generator",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !trace.IsValidTraceLevel(traceLevel) {
			return fmt.Errorf("invalid trace level: %s", traceLevel)
		}
		if trace.TraceLevel(traceLevel) == trace.TraceLevelHours {
			return fmt.Errorf("trace level %q records flow hours, which run does not compute; use none, ticks or full", traceLevel)
		}
		if ticks < 0 {
			return fmt.Errorf("--ticks must be non-negative, got %d", ticks)
		}
		if historyCapacity < 0 {
			return fmt.Errorf("--history must be non-negative, got %d", historyCapacity)
		}
		if tickInterval < 0 {
			return fmt.Errorf("--interval must be non-negative, got %s", tickInterval)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cfg := sim.NewGeneratorConfig(sim.SeedFromInt64(seed), ticks, historyCapacity)
		logrus.Infof("Starting series at seed %d, %d ticks, interval %s", cfg.Seed, cfg.Horizon, tickInterval)

		out := cmd.OutOrStdout()
		report, st, err := runSeries(ctx, out, cfg, tickInterval, trace.TraceLevel(traceLevel))
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		report.Print(out)

		results := seriesResults{Series: report}
		if st.WantsTicks() {
			results.Ticks = st.Ticks
			results.Trace = trace.Summarize(st)
			printTraceSummary(out, results.Trace)
		}
		if resultsPath != "" {
			if err := sim.SaveResults(results, resultsPath); err != nil {
				return err
			}
			logrus.Infof("Results written to %s", resultsPath)
		}
		if xlsxPath != "" {
			if err := export.WriteWorkbook(xlsxPath, export.Workbook{Series: report}); err != nil {
				return err
			}
			logrus.Infof("Workbook written to %s", xlsxPath)
		}
		return nil
	},
}

// runSeries runs cfg.Horizon ticks, writing one line per tick to w. A
// cancelled ctx stops the run early; the report still covers the ticks made.
func runSeries(ctx context.Context, w io.Writer, cfg sim.GeneratorConfig, interval time.Duration, level trace.TraceLevel) (*sim.SeriesReport, *trace.SimulationTrace, error) {
	var st *trace.SimulationTrace
	if level != "" && level != trace.TraceLevelNone {
		st = trace.NewSimulationTrace(trace.TraceConfig{Level: level})
	}
	s := sim.NewSimulator(cfg, st)

	inputSeed := cfg.Seed
	s.OnTick = func(tick int64, smp sim.Sample) {
		fmt.Fprintf(w, "%7d  %10d  %s  %s  %6.2f\n", tick, inputSeed, smp.Padded(), smp.LeadingDigits, smp.MappedValue)
		inputSeed = smp.EightDigit
	}
	runErr := s.RunEvery(ctx, interval)

	report, err := s.Report()
	if err != nil {
		return nil, nil, err
	}
	return report, st, runErr
}

func printTraceSummary(w io.Writer, ts *trace.TraceSummary) {
	fmt.Fprintln(w, "=== Trace Summary ===")
	fmt.Fprintf(w, "Ticks recorded : %d\n", ts.TotalTicks)
	if ts.TotalTicks > 0 {
		fmt.Fprintf(w, "Min / Max      : %.2f / %.2f\n", ts.MinValue, ts.MaxValue)
	}
	if ts.TotalHours > 0 {
		fmt.Fprintf(w, "Hours recorded : %d\n", ts.TotalHours)
		fmt.Fprintf(w, "Peak occupancy : %d\n", ts.PeakOccupancy)
		fmt.Fprintf(w, "Capacity-limited hours : %d\n", ts.CapacityLimitedHours)
	}
}

func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 0, "Initial seed (values outside uint32 keep their low 32 bits)")
	runCmd.Flags().Int64Var(&ticks, "ticks", 10, "Number of ticks to run")
	runCmd.Flags().DurationVar(&tickInterval, "interval", 0, "Wait between ticks (0 runs back to back)")
	runCmd.Flags().IntVar(&historyCapacity, "history", sim.HistoryCapacity, "Number of mapped values kept in the rolling window")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", "none", "Trace verbosity (none, ticks, full)")
	runCmd.Flags().StringVar(&resultsPath, "results-path", "", "Write the series report as JSON to this file")
	runCmd.Flags().StringVar(&xlsxPath, "xlsx-path", "", "Write the series report as an .xlsx workbook to this file")
}
