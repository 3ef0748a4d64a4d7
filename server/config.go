package server

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/suolenkainen/venue-simulation/sim"
	"github.com/suolenkainen/venue-simulation/sim/reference"
)

// Environment variables read by ApplyEnv.
const (
	EnvAddr         = "VENUE_SIM_ADDR"
	EnvTickInterval = "VENUE_SIM_TICK_INTERVAL"
	EnvHistory      = "VENUE_SIM_HISTORY"
	EnvMaxSessions  = "VENUE_SIM_MAX_SESSIONS"
)

// Defaults for the server settings.
const (
	DefaultAddr         = ":8080"
	DefaultTickInterval = time.Second
	DefaultMaxSessions  = 1000
)

// Config holds the server settings.
type Config struct {
	Addr            string
	TickInterval    time.Duration // default stream interval
	HistoryCapacity int           // window size of new sessions
	MaxSessions     int           // live sessions allowed at once

	// Defaults is the parameter set POST /api/venue/metrics overlays.
	Defaults sim.VenueParameters
	// Reference, when set, is served at GET /api/venue/reference.
	Reference *reference.Dataset
	// OriginPatterns lists extra hosts allowed to open a stream.
	OriginPatterns []string
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Addr:            DefaultAddr,
		TickInterval:    DefaultTickInterval,
		HistoryCapacity: sim.HistoryCapacity,
		MaxSessions:     DefaultMaxSessions,
		Defaults:        sim.DefaultVenueParameters(),
	}
}

// LoadEnvFile loads variables from a .env file into the process environment
// without overriding ones already set. An empty path tries ./.env and
// ignores its absence; an explicit path must exist.
func LoadEnvFile(path string) error {
	if path == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays the VENUE_SIM_* variables found by lookup onto c.
// Pass os.LookupEnv for the process environment.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvAddr); ok && v != "" {
		c.Addr = v
	}
	if v, ok := lookup(EnvTickInterval); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTickInterval, err)
		}
		c.TickInterval = d
	}
	if v, ok := lookup(EnvHistory); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvHistory, err)
		}
		c.HistoryCapacity = n
	}
	if v, ok := lookup(EnvMaxSessions); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxSessions, err)
		}
		c.MaxSessions = n
	}
	return nil
}

// Validate checks the settings before the server starts.
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", c.TickInterval)
	}
	if c.HistoryCapacity <= 0 {
		return fmt.Errorf("history capacity must be positive, got %d", c.HistoryCapacity)
	}
	if c.MaxSessions <= 0 {
		return fmt.Errorf("max sessions must be positive, got %d", c.MaxSessions)
	}
	if err := c.Defaults.Validate(); err != nil {
		return fmt.Errorf("default parameters: %w", err)
	}
	return nil
}
