package sim

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/suolenkainen/venue-simulation/sim/internal/testutil"
)

// === Mulberry32 Tests ===

func TestAdvance_GoldenChains(t *testing.T) {
	vectors := testutil.LoadGoldenVectors(t)

	for _, chain := range vectors.Generator {
		t.Run(fmt.Sprintf("seed_%d", chain.Seed), func(t *testing.T) {
			seed := chain.Seed
			for i, want := range chain.Samples {
				got, next := Advance(seed)
				assert.Equal(t, want.EightDigit, got.EightDigit, "seed %d draw %d eight digits", chain.Seed, i)
				assert.Equal(t, want.LeadingDigits, got.LeadingDigits, "seed %d draw %d leading digits", chain.Seed, i)
				assert.Equal(t, want.MappedValue, got.MappedValue, "seed %d draw %d mapped value", chain.Seed, i)
				require.Equal(t, got.EightDigit, next, "next seed must be the eight-digit value")
				seed = next
			}
		})
	}
}

func TestMulberry32_SameSeed_SameDraw(t *testing.T) {
	for _, seed := range []uint32{0, 1, 42, 12345678, math.MaxUint32} {
		assert.Equal(t, Mulberry32(seed), Mulberry32(seed), "seed %d", seed)
	}
}

func TestMulberry32_DrawInUnitInterval(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint32().Draw(t, "seed")
		d := Mulberry32(seed)
		if d < 0 || d >= 1 {
			t.Fatalf("Mulberry32(%d) = %v, want [0, 1)", seed, d)
		}
	})
}

func TestSeedFromInt64_KeepsLowBits(t *testing.T) {
	tests := []struct {
		in   int64
		want uint32
	}{
		{0, 0},
		{42, 42},
		{-1, 0xFFFFFFFF},
		{1 << 32, 0},
		{(1 << 32) + 7, 7},
		{math.MaxInt32 + 1, 0x80000000},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SeedFromInt64(tt.in), "SeedFromInt64(%d)", tt.in)
	}

	// -1 and 0xFFFFFFFF are the same seed
	a, _ := Advance(SeedFromInt64(-1))
	b, _ := Advance(math.MaxUint32)
	assert.Equal(t, b, a)
}

// === Sample Tests ===

func TestSampleFromDraw_Boundaries(t *testing.T) {
	tests := []struct {
		name    string
		draw    float64
		eight   uint32
		leading string
		mapped  float64
	}{
		{"zero draw", 0, 0, "0000", -1},
		{"just under one", 0.999999999, 99_999_999, "9999", 1},
		{"midpoint", 0.5, 50_000_000, "5000", 0},
		{"leading zeros kept", 0.0167091, 1_670_910, "0167", -0.97},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := SampleFromDraw(tt.draw)
			assert.Equal(t, tt.eight, s.EightDigit)
			assert.Equal(t, tt.leading, s.LeadingDigits)
			assert.Equal(t, tt.mapped, s.MappedValue)
		})
	}
}

func TestSample_Padded(t *testing.T) {
	assert.Equal(t, "01670910", Sample{EightDigit: 1_670_910}.Padded())
	assert.Equal(t, "00000000", Sample{}.Padded())
	assert.Equal(t, "99999999", Sample{EightDigit: 99_999_999}.Padded())
}

func TestAdvance_SampleInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint32().Draw(t, "seed")
		s, next := Advance(seed)

		if s.EightDigit > 99_999_999 {
			t.Fatalf("eight digits %d out of range", s.EightDigit)
		}
		if next != s.EightDigit {
			t.Fatalf("next seed %d, want %d", next, s.EightDigit)
		}
		if len(s.LeadingDigits) != 4 || s.LeadingDigits != s.Padded()[:4] {
			t.Fatalf("leading digits %q do not prefix %q", s.LeadingDigits, s.Padded())
		}
		if s.MappedValue < -1 || s.MappedValue > 1 {
			t.Fatalf("mapped value %v outside [-1, 1]", s.MappedValue)
		}
		if cents := s.MappedValue * 100; math.Abs(cents-math.Round(cents)) > 1e-9 {
			t.Fatalf("mapped value %v has more than two decimals", s.MappedValue)
		}
	})
}

// === SequenceGenerator Tests ===

func TestSequenceGenerator_MatchesPureChain(t *testing.T) {
	// GIVEN a generator and the free Advance function starting from the same seed
	g := NewSequenceGenerator(42, 0)
	seed := uint32(42)

	// WHEN both are stepped 200 times
	for i := 0; i < 200; i++ {
		want, next := Advance(seed)
		seed = next
		got := g.Advance()

		// THEN each sample is identical
		require.Equal(t, want, got, "tick %d", i)
	}
	assert.Equal(t, seed, g.Seed())
	assert.Equal(t, int64(200), g.Ticks())
	assert.Equal(t, uint32(42), g.InitialSeed())
}

func TestSequenceGenerator_HistoryBoundedAndOrdered(t *testing.T) {
	// GIVEN a generator with the default window
	g := NewSequenceGenerator(0, 0)
	var all []float64

	// WHEN it runs past the window size
	for i := 0; i < HistoryCapacity+30; i++ {
		all = append(all, g.Advance().MappedValue)
	}

	// THEN only the most recent HistoryCapacity values remain, oldest first
	h := g.History()
	require.Len(t, h, HistoryCapacity)
	assert.Equal(t, all[30:], h)
}

func TestSequenceGenerator_ResetReplaysSequence(t *testing.T) {
	g := NewSequenceGenerator(12345678, 10)
	first := []Sample{g.Advance(), g.Advance(), g.Advance()}

	g.Reset()
	assert.Equal(t, uint32(12345678), g.Seed())
	assert.Zero(t, g.Ticks())
	assert.Empty(t, g.History())

	replay := []Sample{g.Advance(), g.Advance(), g.Advance()}
	assert.Equal(t, first, replay)
}

func TestSequenceGenerator_Reseed(t *testing.T) {
	g := NewSequenceGenerator(1, 10)
	g.Advance()

	g.Reseed(0)
	s := g.Advance()
	assert.Equal(t, uint32(26642920), s.EightDigit)
	assert.Equal(t, uint32(0), g.InitialSeed())
	assert.Equal(t, []float64{-0.47}, g.History())
}

func TestSequenceGenerator_State(t *testing.T) {
	g := NewSequenceGenerator(0, 3)
	for i := 0; i < 4; i++ {
		g.Advance()
	}
	st := g.State()
	assert.Equal(t, GeneratorState{
		Seed:        32890973,
		InitialSeed: 0,
		Ticks:       4,
		History:     []float64{0.07, -0.71, -0.34},
	}, st)

	// snapshot does not alias the live window
	st.History[0] = 99
	assert.Equal(t, 0.07, g.History()[0])
}
