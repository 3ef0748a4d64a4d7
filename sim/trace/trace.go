package trace

// TraceLevel controls what a SimulationTrace collects.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelHours captures every hour of the turnover loop.
	TraceLevelHours TraceLevel = "hours"
	// TraceLevelTicks captures every generator tick.
	TraceLevelTicks TraceLevel = "ticks"
	// TraceLevelFull captures both hours and ticks.
	TraceLevelFull TraceLevel = "full"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:  true,
	TraceLevelHours: true,
	TraceLevelTicks: true,
	TraceLevelFull:  true,
	"":              true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SimulationTrace collects tick and hour records during a run.
type SimulationTrace struct {
	Config TraceConfig
	Ticks  []TickRecord
	Hours  []HourRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config: config,
		Ticks:  make([]TickRecord, 0),
		Hours:  make([]HourRecord, 0),
	}
}

// WantsTicks reports whether tick records should be collected.
// Safe on a nil trace.
func (st *SimulationTrace) WantsTicks() bool {
	if st == nil {
		return false
	}
	return st.Config.Level == TraceLevelTicks || st.Config.Level == TraceLevelFull
}

// WantsHours reports whether hour records should be collected.
// Safe on a nil trace.
func (st *SimulationTrace) WantsHours() bool {
	if st == nil {
		return false
	}
	return st.Config.Level == TraceLevelHours || st.Config.Level == TraceLevelFull
}

// RecordTick appends a tick record.
func (st *SimulationTrace) RecordTick(record TickRecord) {
	st.Ticks = append(st.Ticks, record)
}

// RecordHour appends an hour record.
func (st *SimulationTrace) RecordHour(record HourRecord) {
	st.Hours = append(st.Hours, record)
}
