package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suolenkainen/venue-simulation/sim/reference"
)

var categories []string // Tables to list; empty lists all

// referenceCmd lists the venue reference tables
var referenceCmd = &cobra.Command{
	Use:   "reference",
	Short: "List the venue reference tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cats, err := parseCategories(categories)
		if err != nil {
			return err
		}
		ds, err := reference.LoadDataset(defaultsFilePath)
		if err != nil {
			return err
		}
		return ds.Print(cmd.OutOrStdout(), cats...)
	},
}

func parseCategories(names []string) ([]reference.Category, error) {
	cats := make([]reference.Category, 0, len(names))
	for _, n := range names {
		if !reference.IsValidCategory(n) {
			return nil, fmt.Errorf("unknown category %q (valid: %v)", n, reference.Categories)
		}
		cats = append(cats, reference.Category(n))
	}
	return cats, nil
}

func init() {
	referenceCmd.Flags().StringVar(&defaultsFilePath, "defaults-filepath", "defaults.yaml", "Reference tables to list")
	referenceCmd.Flags().StringSliceVar(&categories, "category", nil, "Only list these tables (repeatable)")
}
