package main

import (
	"fmt"
	"text/tabwriter"

	"debank_client/pkg/debank"

	"github.com/spf13/cobra"
)

var endpointsCmd = &cobra.Command{
	Use:   "endpoints",
	Short: "List the available API operations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "GROUP\tOPERATION\tMETHOD\tPATH\tPAYLOAD")
		for _, ep := range debank.Endpoints() {
			if ep.Placeholder {
				continue
			}
			name := ep.Name
			if name == "" {
				name = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", ep.Group, name, ep.Method, ep.Path, ep.Style)
		}
		return w.Flush()
	},
}
