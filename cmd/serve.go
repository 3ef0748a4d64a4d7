package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/suolenkainen/venue-simulation/server"
	"github.com/suolenkainen/venue-simulation/sim/reference"
)

var (
	serveAddr      string        // Listen address
	serveInterval  time.Duration // Default stream interval
	serveHistory   int           // Window size of new sessions
	maxSessions    int           // Live sessions allowed at once
	envFile        string        // .env file to load before reading VENUE_SIM_*
	allowedOrigins []string      // Extra websocket origins
)

// serveCmd runs the HTTP API until interrupted
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the flow model and live generator sessions over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := serverConfig(cmd.Flags(), os.LookupEnv)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.New(cfg).Run(ctx)
	},
}

// serverConfig resolves the server settings. Precedence, lowest first:
// built-in defaults, the env file, the process environment, changed flags.
func serverConfig(fs *pflag.FlagSet, lookup func(string) (string, bool)) (server.Config, error) {
	if err := server.LoadEnvFile(envFile); err != nil {
		return server.Config{}, err
	}
	cfg := server.DefaultConfig()
	if err := cfg.ApplyEnv(lookup); err != nil {
		return cfg, err
	}
	if fs.Changed("addr") {
		cfg.Addr = serveAddr
	}
	if fs.Changed("tick-interval") {
		cfg.TickInterval = serveInterval
	}
	if fs.Changed("history") {
		cfg.HistoryCapacity = serveHistory
	}
	if fs.Changed("max-sessions") {
		cfg.MaxSessions = maxSessions
	}
	cfg.OriginPatterns = allowedOrigins

	params, ds, err := reference.LoadParameters(defaultsFilePath)
	if err != nil {
		return cfg, err
	}
	cfg.Defaults = params
	cfg.Reference = ds

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	logrus.Infof("Server config: addr=%s tick-interval=%s history=%d max-sessions=%d",
		cfg.Addr, cfg.TickInterval, cfg.HistoryCapacity, cfg.MaxSessions)
	return cfg, nil
}

func registerServeFlags(fs *pflag.FlagSet) {
	fs.StringVar(&serveAddr, "addr", server.DefaultAddr, "Listen address (env "+server.EnvAddr+")")
	fs.DurationVar(&serveInterval, "tick-interval", server.DefaultTickInterval, "Default stream interval (env "+server.EnvTickInterval+")")
	fs.IntVar(&serveHistory, "history", server.DefaultConfig().HistoryCapacity, "Window size of new sessions (env "+server.EnvHistory+")")
	fs.IntVar(&maxSessions, "max-sessions", server.DefaultMaxSessions, "Live sessions allowed at once (env "+server.EnvMaxSessions+")")
	fs.StringVar(&envFile, "env-file", "", "Load environment variables from this file (default: .env if present)")
	fs.StringVar(&defaultsFilePath, "defaults-filepath", "defaults.yaml", "Reference tables supplying the default parameters")
	fs.StringSliceVar(&allowedOrigins, "allowed-origin", nil, "Extra origin patterns allowed to open a stream (repeatable)")
}

func init() {
	registerServeFlags(serveCmd.Flags())
}
