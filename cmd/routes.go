package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zenmed-health/zenmed/internal/routes"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the page route table",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PATH\tPAGE\tTITLE\tFRAME")
		for _, r := range routes.Table() {
			frame := "-"
			if r.InFrame {
				frame = "dashboard"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Path, r.Page, r.Title, frame)
		}
		fmt.Fprintf(w, "*\t%s\t%s\t-\n", routes.NotFound.Page, routes.NotFound.Title)
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
