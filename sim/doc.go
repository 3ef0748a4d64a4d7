// Package sim provides the venue simulation core.
//
// # Reading Guide
//
// The package holds two independent components:
//   - rng.go / history.go: SequenceGenerator, a self-chaining Mulberry32
//     generator that yields one Sample per tick and keeps a bounded rolling
//     History of mapped values for plotting.
//   - venue.go / turnover.go: the venue flow model, a set of pure functions
//     that turn VenueParameters into VenueMetrics, including the hour-by-hour
//     capacity-constrained turnover loop.
//
// simulator.go drives a generator for a horizon of ticks, either back to back
// or on a wall-clock interval. metrics.go and metrics_utils.go hold the report
// types and their printing/saving helpers.
//
// # Sub-packages
//   - sim/trace/: tick and hour records (pure data, no dependency on sim/)
//   - sim/reference/: YAML reference dataset and parameter resolution
//   - sim/export/: Excel workbook export of reports
//
// # Determinism
//
// Nothing in this package reads the wall clock or shares state between
// components. Given the same seed and the same sequence of calls, every
// output is bit-identical across runs and platforms.
package sim
