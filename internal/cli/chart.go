package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/flight-delay-dashboard/internal/charts"
)

func newChartCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "chart <id>",
		Short: "Print one chart's aggregate",
		Long: `Compute a dashboard chart from the dataset and print its data.

Chart ids:
  ` + strings.Join(chartIDs(), "\n  "),
		Example: `  flightctl chart top_routes --airline AA
  flightctl chart delay_distribution --hour 18 -o json`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return chartIDs(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.filterFrom(cmd)
			if err != nil {
				return err
			}
			svc, err := a.chartService(cmd.Context())
			if err != nil {
				return err
			}
			spec, err := svc.Get(args[0], f)
			if err != nil {
				return err
			}
			return writeSpec(cmd.OutOrStdout(), spec, format)
		},
	}

	addFilterFlags(cmd)
	cmd.Flags().StringVarP(&format, "output", "o", formatTable, "output format: table, json, yaml")
	_ = cmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{formatTable, formatJSON, formatYAML}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func chartIDs() []string {
	defs := charts.Catalog()
	ids := make([]string, len(defs))
	for i, d := range defs {
		ids[i] = d.ID
	}
	return ids
}
