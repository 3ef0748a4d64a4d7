package sim

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suolenkainen/venue-simulation/sim/trace"
)

func TestSimulator_Run_StopsAtHorizon(t *testing.T) {
	// GIVEN a simulator with a horizon of 10 ticks
	s := NewSimulator(NewGeneratorConfig(42, 10, 0), nil)

	// WHEN it runs
	s.Run()

	// THEN exactly 10 ticks were executed
	assert.Equal(t, int64(10), s.Clock)
	assert.Equal(t, int64(10), s.Generator.Ticks())
	assert.True(t, s.Done())
	assert.Len(t, s.Generator.History(), 10)
}

func TestSimulator_Run_ZeroHorizon(t *testing.T) {
	s := NewSimulator(NewGeneratorConfig(42, 0, 0), nil)
	s.Run()
	assert.Zero(t, s.Clock)
	assert.Equal(t, uint32(42), s.Generator.Seed())
}

func TestSimulator_TraceRecordsTicks(t *testing.T) {
	st := trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevelTicks})
	s := NewSimulator(NewGeneratorConfig(0, 3, 0), st)
	s.Run()

	require.Len(t, st.Ticks, 3)
	assert.Equal(t, trace.TickRecord{Tick: 0, Seed: 0, EightDigit: 26642920, LeadingDigits: "2664", MappedValue: -0.47}, st.Ticks[0])
	assert.Equal(t, uint32(26642920), st.Ticks[1].Seed)
	assert.Equal(t, uint32(53408136), st.Ticks[2].Seed)
	assert.Empty(t, st.Hours)
}

func TestSimulator_OnTickSeesEverySample(t *testing.T) {
	s := NewSimulator(NewGeneratorConfig(12345678, 5, 0), nil)
	var ticks []int64
	var samples []Sample
	s.OnTick = func(tick int64, smp Sample) {
		ticks = append(ticks, tick)
		samples = append(samples, smp)
	}
	s.Run()

	assert.Equal(t, []int64{0, 1, 2, 3, 4}, ticks)
	require.Len(t, samples, 5)
	assert.Equal(t, "0997", samples[3].LeadingDigits)
}

func TestSimulator_RunEvery_ReachesHorizon(t *testing.T) {
	s := NewSimulator(NewGeneratorConfig(0, 4, 0), nil)
	err := s.RunEvery(context.Background(), time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, int64(4), s.Clock)
}

func TestSimulator_RunEvery_FirstTickIsImmediate(t *testing.T) {
	// GIVEN a long interval and a context that is cancelled on the first tick
	ctx, cancel := context.WithCancel(context.Background())
	s := NewSimulator(NewGeneratorConfig(0, 100, 0), nil)
	s.OnTick = func(int64, Sample) { cancel() }

	// WHEN driven once per hour
	err := s.RunEvery(ctx, time.Hour)

	// THEN one tick ran before the loop observed the cancellation
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int64(1), s.Clock)
}

func TestSimulator_RunEvery_NonPositiveIntervalRunsBackToBack(t *testing.T) {
	s := NewSimulator(NewGeneratorConfig(0, 6, 0), nil)
	require.NoError(t, s.RunEvery(context.Background(), 0))
	assert.Equal(t, int64(6), s.Clock)
	assert.Equal(t, uint32(18787923), s.Generator.Seed())
}

func TestSimulator_Report(t *testing.T) {
	s := NewSimulator(NewGeneratorConfig(0, 4, 3), nil)
	s.Run()

	report, err := s.Report()
	require.NoError(t, err)
	assert.Equal(t, uint32(0), report.InitialSeed)
	assert.Equal(t, uint32(32890973), report.FinalSeed)
	assert.Equal(t, int64(4), report.Ticks)
	assert.Equal(t, []float64{0.07, -0.71, -0.34}, report.History)
	assert.Equal(t, 3, report.Summary.Count)
	assert.Equal(t, -0.34, report.Summary.Last)
}
