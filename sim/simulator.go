// sim/simulator.go
package sim

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/suolenkainen/venue-simulation/sim/trace"
)

// Simulator drives a SequenceGenerator for a fixed horizon of ticks.
// Each tick is one atomic state transition of the generator; ticks never overlap.
type Simulator struct {
	Clock     int64 // ticks executed so far
	Horizon   int64 // ticks to execute (<= 0 means none)
	Generator *SequenceGenerator
	Trace     *trace.SimulationTrace // optional; nil disables recording
	// OnTick, when set, is called after every tick with the tick index and sample.
	OnTick func(tick int64, s Sample)
}

// NewSimulator creates a Simulator from cfg. st may be nil.
func NewSimulator(cfg GeneratorConfig, st *trace.SimulationTrace) *Simulator {
	return &Simulator{
		Horizon:   cfg.Horizon,
		Generator: NewSequenceGenerator(cfg.Seed, cfg.HistoryCapacity),
		Trace:     st,
	}
}

// Done reports whether the horizon has been reached.
func (sim *Simulator) Done() bool {
	return sim.Clock >= sim.Horizon
}

// Step executes a single tick regardless of the horizon.
func (sim *Simulator) Step() Sample {
	seed := sim.Generator.Seed()
	s := sim.Generator.Advance()
	tick := sim.Clock
	sim.Clock++

	logrus.Debugf("[tick %07d] seed=%d -> %s (%s, %.2f)", tick, seed, s.Padded(), s.LeadingDigits, s.MappedValue)
	if sim.Trace.WantsTicks() {
		sim.Trace.RecordTick(trace.TickRecord{
			Tick:          tick,
			Seed:          seed,
			EightDigit:    s.EightDigit,
			LeadingDigits: s.LeadingDigits,
			MappedValue:   s.MappedValue,
		})
	}
	if sim.OnTick != nil {
		sim.OnTick(tick, s)
	}
	return s
}

// Run executes ticks back to back until the horizon is reached.
func (sim *Simulator) Run() {
	for !sim.Done() {
		sim.Step()
	}
	logrus.Infof("[tick %07d] Simulation ended", sim.Clock)
}

// RunEvery executes one tick immediately and then one per interval until the
// horizon is reached or ctx is cancelled. A non-positive interval behaves like Run.
func (sim *Simulator) RunEvery(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		sim.Run()
		return ctx.Err()
	}
	if sim.Done() {
		return nil
	}
	sim.Step()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for !sim.Done() {
		select {
		case <-ctx.Done():
			logrus.Infof("[tick %07d] Simulation stopped: %v", sim.Clock, ctx.Err())
			return ctx.Err()
		case <-ticker.C:
			sim.Step()
		}
	}
	logrus.Infof("[tick %07d] Simulation ended", sim.Clock)
	return nil
}

// Report builds the SeriesReport of the run so far.
func (sim *Simulator) Report() (*SeriesReport, error) {
	history := sim.Generator.History()
	summary, err := SummarizeSeries(history)
	if err != nil {
		return nil, err
	}
	return &SeriesReport{
		InitialSeed: sim.Generator.InitialSeed(),
		FinalSeed:   sim.Generator.Seed(),
		Ticks:       sim.Clock,
		History:     history,
		Summary:     summary,
	}, nil
}
