package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/stylestore/config"
	"github.com/shashiranjanraj/stylestore/internal/server"
	"github.com/shashiranjanraj/stylestore/pkg/kvstore"
)

// stylestore serve — start the HTTP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the storefront API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

// stylestore route:list — print all registered routes.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		r, err := server.Build(kvstore.NewMemory())
		if err != nil {
			return err
		}

		names := r.Names()
		if len(names) == 0 {
			fmt.Println("No named routes registered.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "NAME\tPATH")
		fmt.Fprintln(w, "----\t----")
		for _, name := range names {
			path, _ := r.Path(name)
			fmt.Fprintf(w, "%s\t%s\n", name, path)
		}
		return w.Flush()
	},
}
