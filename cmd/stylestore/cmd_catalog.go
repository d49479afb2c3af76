package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/stylestore/app/catalog"
)

// stylestore catalog:list — print the seeded product catalog.
var catalogListCmd = &cobra.Command{
	Use:   "catalog:list",
	Short: "List the products in the seeded catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := catalog.Default()

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE")
		fmt.Fprintln(w, "--\t----\t--------\t-----")
		for _, p := range c.All() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\n", p.ID, p.Name, p.Category, p.Price)
		}
		return w.Flush()
	},
}
