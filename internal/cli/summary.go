package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/couchcryptid/flight-delay-dashboard/internal/charts"
)

func newSummaryCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print row counts, reference coverage and the delay summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := a.loadTable(cmd.Context())
			if err != nil {
				return err
			}
			sum := charts.BuildSummary(data)

			w := cmd.OutOrStdout()
			switch format {
			case formatTable:
				writeSummary(w, sum)
				return nil
			case formatJSON:
				return writeJSON(w, sum)
			case formatYAML:
				return writeYAML(w, sum)
			default:
				return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", formatTable, "output format: table, json, yaml")
	return cmd
}

func writeSummary(w io.Writer, sum charts.Summary) {
	p := message.NewPrinter(language.English)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Dataset")
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})

	t.AppendRows([]table.Row{
		{"Flights", p.Sprintf("%d", sum.Flights)},
		{"Cancelled", p.Sprintf("%d (%.2f%%)", sum.Cancelled, percent(sum.Cancelled, sum.Flights))},
		{"Airlines", p.Sprintf("%d", sum.Airlines)},
		{"Airports", p.Sprintf("%d", sum.Airports)},
		{"Mappable airports", p.Sprintf("%d", sum.Mappable)},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"Unresolved airline codes", p.Sprintf("%d", sum.UnresolvedAirlines)},
		{"Unresolved airport codes", p.Sprintf("%d", sum.UnresolvedAirports)},
		{"Airport codes without coordinates", p.Sprintf("%d", sum.UnmappableAirports)},
		{"Flights without a route", p.Sprintf("%d", sum.FlightsWithoutRoute)},
	})
	t.AppendSeparator()
	d := sum.DepartureDelay
	t.AppendRows([]table.Row{
		{"Delayed departures measured", p.Sprintf("%d", d.Count)},
		{"Mean departure delay (min)", p.Sprintf("%.1f", d.Mean)},
		{"Median departure delay (min)", p.Sprintf("%.1f", d.Median)},
		{"Delay quartiles (min)", p.Sprintf("%.1f / %.1f", d.Q1, d.Q3)},
	})
	t.Render()

	fmt.Fprintf(w, "Loaded at %s\n", sum.LoadedAt.Format("2006-01-02 15:04:05 MST"))
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}
