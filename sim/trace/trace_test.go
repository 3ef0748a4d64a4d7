package trace

import (
	"testing"
)

func TestSimulationTrace_RecordTick_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for ticks
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelTicks})

	// WHEN a tick record is recorded
	st.RecordTick(TickRecord{
		Tick:          0,
		Seed:          0,
		EightDigit:    26642920,
		LeadingDigits: "2664",
		MappedValue:   -0.47,
	})

	// THEN the trace contains one tick record with correct data
	if len(st.Ticks) != 1 {
		t.Fatalf("expected 1 tick, got %d", len(st.Ticks))
	}
	if st.Ticks[0].EightDigit != 26642920 {
		t.Errorf("expected eight digits 26642920, got %d", st.Ticks[0].EightDigit)
	}
	if len(st.Hours) != 0 {
		t.Errorf("expected no hour records, got %d", len(st.Hours))
	}
}

func TestSimulationTrace_RecordHour_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for hours
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelHours})

	// WHEN an hour record is recorded
	st.RecordHour(HourRecord{Hour: 0, Present: 25, Leaving: 5, Arriving: 5, Remaining: 25, Capacity: 50})

	// THEN the trace contains one hour record with correct data
	if len(st.Hours) != 1 {
		t.Fatalf("expected 1 hour, got %d", len(st.Hours))
	}
	if st.Hours[0].Remaining != 25 {
		t.Errorf("expected remaining 25, got %d", st.Hours[0].Remaining)
	}
}

func TestSimulationTrace_MultipleRecords_PreservesOrder(t *testing.T) {
	// GIVEN a trace
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelFull})

	// WHEN multiple records are added
	st.RecordTick(TickRecord{Tick: 0, MappedValue: 0.1})
	st.RecordTick(TickRecord{Tick: 1, MappedValue: 0.2})
	st.RecordHour(HourRecord{Hour: 0})
	st.RecordHour(HourRecord{Hour: 1})

	// THEN order is preserved
	if len(st.Ticks) != 2 || st.Ticks[0].Tick != 0 || st.Ticks[1].Tick != 1 {
		t.Error("tick order not preserved")
	}
	if len(st.Hours) != 2 || st.Hours[0].Hour != 0 || st.Hours[1].Hour != 1 {
		t.Error("hour order not preserved")
	}
}

func TestSimulationTrace_Wants_FollowLevel(t *testing.T) {
	tests := []struct {
		level     TraceLevel
		wantTicks bool
		wantHours bool
	}{
		{TraceLevelNone, false, false},
		{"", false, false},
		{TraceLevelHours, false, true},
		{TraceLevelTicks, true, false},
		{TraceLevelFull, true, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			st := NewSimulationTrace(TraceConfig{Level: tt.level})
			if got := st.WantsTicks(); got != tt.wantTicks {
				t.Errorf("WantsTicks() = %v, want %v", got, tt.wantTicks)
			}
			if got := st.WantsHours(); got != tt.wantHours {
				t.Errorf("WantsHours() = %v, want %v", got, tt.wantHours)
			}
		})
	}
}

func TestSimulationTrace_NilTrace_WantsNothing(t *testing.T) {
	var st *SimulationTrace
	if st.WantsTicks() || st.WantsHours() {
		t.Error("nil trace must not want records")
	}
}

func TestIsValidTraceLevel_ValidLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"none", true},
		{"hours", true},
		{"ticks", true},
		{"full", true},
		{"", true},
		{"decisions", false},
		{"all", false},
		{"NONE", false},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := IsValidTraceLevel(tt.level); got != tt.valid {
				t.Errorf("IsValidTraceLevel(%q) = %v, want %v", tt.level, got, tt.valid)
			}
		})
	}
}

func TestHourRecord_CapacityLimited(t *testing.T) {
	// GIVEN an hour where 8 guests left but only 2 could be admitted
	limited := HourRecord{Leaving: 8, Arriving: 2}
	// AND an hour where every departure was replaced
	free := HourRecord{Leaving: 5, Arriving: 5}

	if !limited.CapacityLimited() {
		t.Error("expected capacity-limited hour")
	}
	if free.CapacityLimited() {
		t.Error("expected hour not limited by capacity")
	}
}
