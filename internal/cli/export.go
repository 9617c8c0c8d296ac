package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/flight-delay-dashboard/internal/export"
)

func newExportCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every chart to one spreadsheet, one sheet per chart",
		Example: `  flightctl export --out dashboard.xlsx
  flightctl export --out ua.xlsx --airline UA --hour 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := a.filterFrom(cmd)
			if err != nil {
				return err
			}
			svc, err := a.chartService(cmd.Context())
			if err != nil {
				return err
			}
			specs, err := svc.All(f)
			if err != nil {
				return err
			}

			file, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			if err := export.WriteWorkbook(file, specs); err != nil {
				file.Close()
				return fmt.Errorf("write %s: %w", out, err)
			}
			if err := file.Close(); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}

			a.logger.Info("workbook written", "path", out, "sheets", len(specs))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d charts to %s\n", len(specs), out)
			return nil
		},
	}

	addFilterFlags(cmd)
	cmd.Flags().StringVar(&out, "out", "dashboard.xlsx", "output workbook path")
	return cmd
}
