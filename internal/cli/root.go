// Package cli implements flightctl, the offline companion to the dashboard:
// it validates the dataset, prints or exports chart aggregates, and writes a
// synthetic sample dataset for local development.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/couchcryptid/flight-delay-dashboard/internal/charts"
	"github.com/couchcryptid/flight-delay-dashboard/internal/config"
	"github.com/couchcryptid/flight-delay-dashboard/internal/dataset"
	"github.com/couchcryptid/flight-delay-dashboard/internal/domain"
	"github.com/couchcryptid/flight-delay-dashboard/internal/observability"
)

// errValidationFailed is returned after the report has been printed, so
// Execute only needs to set the exit code.
var errValidationFailed = errors.New("validation failed")

// app carries the settings resolved before any subcommand runs.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewRootCmd builds the flightctl command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "flightctl",
		Short: "Inspect, validate and export the flight delay dataset",
		Long: `flightctl works on the same dataset files and configuration as the
dashboard service. Settings come from defaults, CONFIG_FILE, environment
variables and finally the flags below.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			cfg, err := config.LoadWithFlags(cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = observability.NewLoggerTo(cmd.ErrOrStderr(), cfg)
			a.metrics = observability.NewMetricsWith(prometheus.NewRegistry())
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "YAML config file (overrides CONFIG_FILE)")
	pf.String("data-dir", "", "directory holding the dataset files")
	pf.String("flights-file", "", "flights CSV, relative to --data-dir")
	pf.String("airlines-file", "", "airlines CSV, relative to --data-dir")
	pf.String("airports-file", "", "airports CSV, relative to --data-dir")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log format: json, text")

	root.AddCommand(
		newValidateCmd(a),
		newChartCmd(a),
		newExportCmd(a),
		newSummaryCmd(a),
		newSampleCmd(a),
	)
	return root
}

// Execute runs flightctl with the process arguments and returns its exit code.
func Execute() int {
	return run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errValidationFailed) {
			fmt.Fprintln(stderr, "Error:", err)
		}
		return 1
	}
	return 0
}

func (a *app) loadTable(ctx context.Context) (*domain.Table, error) {
	return dataset.NewLoader(a.logger, a.metrics).Load(ctx, dataset.PathsFromConfig(a.cfg))
}

// chartService loads the dataset and attaches it to an uncached service.
func (a *app) chartService(ctx context.Context) (*charts.Service, error) {
	table, err := a.loadTable(ctx)
	if err != nil {
		return nil, err
	}
	svc := charts.NewService(a.logger, a.metrics, 0)
	svc.Attach(table)
	return svc, nil
}

// addFilterFlags registers --airline and --hour, defaulting the hour to the
// configured DEFAULT_HOUR when the flag is left unset.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("airline", "", "airline IATA code for overview charts (empty = all)")
	cmd.Flags().Int("hour", -1, "scheduled departure hour 0-23 for delay charts (default DEFAULT_HOUR)")
}

func (a *app) filterFrom(cmd *cobra.Command) (charts.Filter, error) {
	airline, err := cmd.Flags().GetString("airline")
	if err != nil {
		return charts.Filter{}, err
	}
	hour, err := cmd.Flags().GetInt("hour")
	if err != nil {
		return charts.Filter{}, err
	}
	if !cmd.Flags().Changed("hour") {
		hour = a.cfg.DefaultHour
	}
	return charts.Filter{Airline: normalizeAirline(airline), Hour: hour}, nil
}
