package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel         string // Log verbosity level
	defaultsFilePath string // Reference tables (defaults.yaml)
	resultsPath      string // JSON results output
	xlsxPath         string // Workbook output
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:           "venue-sim",
	Short:         "Venue flow estimates and a self-chaining Mulberry32 series",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
		return nil
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(flowCmd)
	rootCmd.AddCommand(referenceCmd)
	rootCmd.AddCommand(serveCmd)
}
