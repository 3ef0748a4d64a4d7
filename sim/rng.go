package sim

import (
	"fmt"
	"math"
)

// === Mixing ===

const (
	mixIncrement = 0x6D2B79F5
	drawDivisor  = 4294967296.0 // 2^32

	eightDigitScale = 100_000_000 // draws map to [0, 99_999_999]
	leadingDivisor  = 10_000      // eightDigit / leadingDivisor = first four of eight digits
	leadingMax      = 9999
)

// Mulberry32 mixes seed into a draw in [0, 1).
// The arithmetic is bit-exact 32-bit unsigned wraparound: the second and
// third multiplicands depend on the intermediate state, not only on fixed
// constants. Changing any step breaks every stored golden vector.
func Mulberry32(seed uint32) float64 {
	a := seed + mixIncrement
	t := (a ^ (a >> 15)) * (a | 1)
	t = (t + (t^(t>>7))*(t|61)) ^ t
	return float64(t^(t>>14)) / drawDivisor
}

// SeedFromInt64 coerces a wide integer to a generator seed by keeping its
// low 32 bits (two's complement, so -1 becomes 0xFFFFFFFF).
func SeedFromInt64(v int64) uint32 {
	return uint32(int32(v))
}

// === Sample ===

// Sample is one generator draw as shown on the live chart.
type Sample struct {
	EightDigit    uint32  `json:"eight_digit"`    // [0, 99_999_999]
	LeadingDigits string  `json:"leading_digits"` // first four characters of the padded eight digits
	MappedValue   float64 `json:"mapped_value"`   // [-1, 1], two decimals
}

// Padded returns EightDigit zero-padded to eight characters.
func (s Sample) Padded() string {
	return fmt.Sprintf("%08d", s.EightDigit)
}

// SampleFromDraw maps a draw in [0, 1) to a Sample.
func SampleFromDraw(draw float64) Sample {
	eight := uint32(math.Floor(draw * eightDigitScale))
	lead := eight / leadingDivisor
	mapped := RoundHalfAwayFromZero((float64(lead)/leadingMax*2-1)*100) / 100
	return Sample{
		EightDigit:    eight,
		LeadingDigits: fmt.Sprintf("%04d", lead),
		MappedValue:   mapped,
	}
}

// Advance computes the sample for seed and the seed that follows it.
// The next seed is the sample's own eight-digit value.
func Advance(seed uint32) (Sample, uint32) {
	s := SampleFromDraw(Mulberry32(seed))
	return s, s.EightDigit
}

// === SequenceGenerator ===

// GeneratorState is a snapshot of a SequenceGenerator.
type GeneratorState struct {
	Seed        uint32    `json:"seed"`
	InitialSeed uint32    `json:"initial_seed"`
	Ticks       int64     `json:"ticks"`
	History     []float64 `json:"history"`
}

// SequenceGenerator is a self-chaining deterministic generator with a
// bounded history of mapped values.
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type SequenceGenerator struct {
	seed        uint32
	initialSeed uint32
	ticks       int64
	history     *History
}

// NewSequenceGenerator creates a generator starting at seed. A non-positive
// historyCapacity selects HistoryCapacity.
func NewSequenceGenerator(seed uint32, historyCapacity int) *SequenceGenerator {
	return &SequenceGenerator{
		seed:        seed,
		initialSeed: seed,
		history:     NewHistory(historyCapacity),
	}
}

// Advance draws the next sample, appends its mapped value to the history and
// chains the seed.
func (g *SequenceGenerator) Advance() Sample {
	s, next := Advance(g.seed)
	g.history.Push(s.MappedValue)
	g.seed = next
	g.ticks++
	return s
}

// Seed returns the seed the next Advance will consume.
func (g *SequenceGenerator) Seed() uint32 { return g.seed }

// InitialSeed returns the seed the generator was created or reseeded with.
func (g *SequenceGenerator) InitialSeed() uint32 { return g.initialSeed }

// Ticks returns the number of Advance calls since creation or the last reset.
func (g *SequenceGenerator) Ticks() int64 { return g.ticks }

// History returns the mapped values in the window, oldest first.
func (g *SequenceGenerator) History() []float64 { return g.history.Values() }

// State returns a snapshot of the generator.
func (g *SequenceGenerator) State() GeneratorState {
	return GeneratorState{
		Seed:        g.seed,
		InitialSeed: g.initialSeed,
		Ticks:       g.ticks,
		History:     g.history.Values(),
	}
}

// Reset rewinds the generator to its initial seed and clears the history.
func (g *SequenceGenerator) Reset() {
	g.Reseed(g.initialSeed)
}

// Reseed restarts the chain from seed and clears the history.
func (g *SequenceGenerator) Reseed(seed uint32) {
	g.seed = seed
	g.initialSeed = seed
	g.ticks = 0
	g.history.Reset()
}
