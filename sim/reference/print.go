package reference

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Print writes the information block and the given tables (all tables when
// none are named). Empty tables are skipped.
func (d *Dataset) Print(w io.Writer, categories ...Category) error {
	if len(categories) == 0 {
		categories = Categories
	}
	fmt.Fprintln(w, "=== Venue ===")
	fmt.Fprintf(w, "Name     : %s\n", orNotSet(d.Information.RestaurantName))
	fmt.Fprintf(w, "Location : %s\n", orNotSet(d.Information.Location))

	for _, c := range categories {
		rows := d.Rows(c)
		if len(rows) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n=== %s ===\n", c)
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ATTRIBUTE\tVARIABLE\tVALUE\tUNIT\tRANGE\tUPGRADEABLE")
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				r.Attribute, r.Variable, r.Value, r.Unit, r.Range, r.Upgradeable)
		}
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("writing %s: %w", c, err)
		}
	}
	return nil
}

func orNotSet(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
