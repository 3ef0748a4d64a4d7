package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suolenkainen/venue-simulation/sim/internal/testutil"
	"github.com/suolenkainen/venue-simulation/sim/trace"
)

func fromGolden(gp testutil.GoldenParameters) VenueParameters {
	return VenueParameters{
		MaxCapacity:         gp.MaxCapacity,
		OpenHours:           gp.OpenHours,
		GuestComfort:        gp.GuestComfort,
		GuestSatisfaction:   gp.GuestSatisfaction,
		VenueAttractiveness: gp.VenueAttractiveness,
		WeekdayModifier:     gp.WeekdayModifier,
		AvgDrinkPrice:       gp.AvgDrinkPrice,
		TurnoverPerHour:     gp.TurnoverPerHour,
		DrinkSalesOverride:  gp.DrinkSalesOverride,
	}
}

func TestComputeVenueMetrics_GoldenScenarios(t *testing.T) {
	vectors := testutil.LoadGoldenVectors(t)

	for _, sc := range vectors.Venue {
		t.Run(sc.Name, func(t *testing.T) {
			got := ComputeVenueMetrics(fromGolden(sc.Parameters))
			want := sc.Metrics

			// Integer metrics: exact
			assert.Equal(t, want.WeekdayClients, got.WeekdayClients, "weekday clients")
			assert.Equal(t, want.TotalNewCustomers, got.TotalNewCustomers, "total new customers")
			assert.Equal(t, want.TotalUniqueCustomers, got.TotalUniqueCustomers, "total unique customers")

			// Currency metrics: two decimals
			testutil.AssertFloat64Equal(t, "drink sales per customer", want.DrinkSalesPerCustomer, got.DrinkSalesPerCustomer, 1e-9)
			testutil.AssertFloat64Equal(t, "hourly drink revenue", want.EstimatedHourlyDrinkRevenue, got.EstimatedHourlyDrinkRevenue, 1e-9)
			testutil.AssertFloat64Equal(t, "total income", want.TotalIncome, got.TotalIncome, 1e-9)
		})
	}
}

func TestSimulateVenue_GoldenHours(t *testing.T) {
	vectors := testutil.LoadGoldenVectors(t)

	for _, sc := range vectors.Venue {
		t.Run(sc.Name, func(t *testing.T) {
			report := SimulateVenue(fromGolden(sc.Parameters), nil)
			require.Len(t, report.Hours, len(sc.Hours))
			for i, want := range sc.Hours {
				got := report.Hours[i]
				assert.Equal(t, want.Hour, got.Hour)
				assert.Equal(t, want.Present, got.Present, "hour %d present", i)
				assert.Equal(t, want.Leaving, got.Leaving, "hour %d leaving", i)
				assert.Equal(t, want.Arriving, got.Arriving, "hour %d arriving", i)
				assert.Equal(t, want.Remaining, got.Remaining, "hour %d remaining", i)
				assert.Equal(t, sc.Parameters.MaxCapacity, got.Capacity)
			}
		})
	}
}

func TestComputeVenueMetrics_Defaults(t *testing.T) {
	// GIVEN the built-in defaults
	p := DefaultVenueParameters()

	// WHEN the metrics are computed
	m := ComputeVenueMetrics(p)

	// THEN weekday demand is half the 50-guest weekend crowd
	assert.Equal(t, 25, m.WeekdayClients)
	// AND drink sales are 6.5 * 1.2
	assert.Equal(t, 7.8, m.DrinkSalesPerCustomer)
	assert.Equal(t, 39.0, m.EstimatedHourlyDrinkRevenue)
	// AND five guests are replaced in each of the six hours
	assert.Equal(t, 30, m.TotalNewCustomers)
	assert.Equal(t, 55, m.TotalUniqueCustomers)
	assert.Equal(t, 429.0, m.TotalIncome)
}

func TestComputeVenueMetrics_Idempotent(t *testing.T) {
	p := DefaultVenueParameters()
	p.GuestComfort = 1.1
	p.AvgDrinkPrice = 7.25
	assert.Equal(t, ComputeVenueMetrics(p), ComputeVenueMetrics(p))
}

func TestComputeVenueMetrics_UniqueIsWeekdayPlusNew(t *testing.T) {
	vectors := testutil.LoadGoldenVectors(t)
	for _, sc := range vectors.Venue {
		m := ComputeVenueMetrics(fromGolden(sc.Parameters))
		assert.Equal(t, m.WeekdayClients+m.TotalNewCustomers, m.TotalUniqueCustomers, sc.Name)
	}
}

func TestComputeDrinkSalesPerCustomer_OverrideWins(t *testing.T) {
	p := DefaultVenueParameters().WithDrinkSalesOverride(3.333)
	// override is used verbatim, without rounding
	assert.Equal(t, 3.333, ComputeDrinkSalesPerCustomer(p))

	zero := DefaultVenueParameters().WithDrinkSalesOverride(0)
	assert.Equal(t, 0.0, ComputeDrinkSalesPerCustomer(zero))
	assert.Equal(t, 0.0, ComputeVenueMetrics(zero).TotalIncome)
}

func TestComputeHourlyRevenue(t *testing.T) {
	assert.Equal(t, 39.0, ComputeHourlyRevenue(25, 7.8, 0.2))
	assert.Equal(t, 190.92, ComputeHourlyRevenue(57, 9.57, 0.35))
	assert.Equal(t, 0.0, ComputeHourlyRevenue(0, 7.8, 0.2))
}

func TestSimulateVenue_RecordsHoursWhenTraced(t *testing.T) {
	// GIVEN a trace that wants hour records
	st := trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevelHours})

	// WHEN the default venue is simulated
	report := SimulateVenue(DefaultVenueParameters(), st)

	// THEN the trace holds the same six hours as the report
	require.Len(t, st.Hours, 6)
	assert.Equal(t, report.Hours, st.Hours)
	assert.Equal(t, ComputeVenueMetrics(DefaultVenueParameters()), report.Metrics)
}

func TestSimulateVenue_TickOnlyTraceGetsNoHours(t *testing.T) {
	st := trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevelTicks})
	report := SimulateVenue(DefaultVenueParameters(), st)
	assert.Len(t, report.Hours, 6)
	assert.Empty(t, st.Hours)
}
