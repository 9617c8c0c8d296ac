package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/flight-delay-dashboard/internal/dataset"
)

func newSampleCmd(a *app) *cobra.Command {
	opts := dataset.SampleOptions{}

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write a synthetic dataset for local development",
		Long: `Write flights, airlines and airports files with the source column
layout into the configured data directory. The same seed always produces the
same files.`,
		Example: `  flightctl sample --data-dir ./data --flights 50000`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			paths := dataset.PathsFromConfig(a.cfg)
			if err := dataset.WriteSample(paths, opts); err != nil {
				return err
			}
			a.logger.Info("sample dataset written", "flights", opts.Flights, "seed", opts.Seed, "data_dir", a.cfg.DataDir)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d flights to %s\n", opts.Flights, paths.Flights)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Flights, "flights", 10000, "number of flights to generate")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 42, "random seed")
	return cmd
}
