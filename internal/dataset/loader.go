package dataset

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/couchcryptid/flight-delay-dashboard/internal/config"
	"github.com/couchcryptid/flight-delay-dashboard/internal/domain"
	"github.com/couchcryptid/flight-delay-dashboard/internal/observability"
)

// Paths locates the three input files.
type Paths struct {
	Flights  string
	Airlines string
	Airports string
}

// PathsFromConfig resolves the input files configured for the process.
func PathsFromConfig(cfg *config.Config) Paths {
	return Paths{
		Flights:  cfg.FlightsPath(),
		Airlines: cfg.AirlinesPath(),
		Airports: cfg.AirportsPath(),
	}
}

// Loader reads and enriches the dataset. It runs once at startup.
type Loader struct {
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewLoader creates a Loader that reports through logger and metrics.
func NewLoader(logger *slog.Logger, metrics *observability.Metrics) *Loader {
	return &Loader{logger: logger, metrics: metrics}
}

// Load reads the three files concurrently, builds the reference resolver and
// returns the enriched table. Any missing file, missing column or malformed
// value fails the whole load; nothing partial is returned.
func (l *Loader) Load(ctx context.Context, p Paths) (*domain.Table, error) {
	start := clock.Now()

	var (
		flights  []domain.Flight
		airlines []domain.Airline
		airports []domain.Airport
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		flights, err = readFlights(gctx, p.Flights)
		return err
	})
	g.Go(func() error {
		var err error
		airlines, err = readAirlines(p.Airlines)
		return err
	})
	g.Go(func() error {
		var err error
		airports, err = readAirports(p.Airports)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ref := domain.NewResolver(airlines, airports)
	table := domain.NewTable(flights, ref, clock.Now())
	elapsed := clock.Since(start)

	cov := table.Coverage()
	l.metrics.DatasetRows.WithLabelValues("flights").Set(float64(len(flights)))
	l.metrics.DatasetRows.WithLabelValues("airlines").Set(float64(len(airlines)))
	l.metrics.DatasetRows.WithLabelValues("airports").Set(float64(len(airports)))
	l.metrics.DatasetLoadDuration.Set(elapsed.Seconds())
	l.metrics.UnresolvedCodes.WithLabelValues("airline").Set(float64(cov.UnresolvedAirlines))
	l.metrics.UnresolvedCodes.WithLabelValues("airport").Set(float64(cov.UnresolvedAirports))
	l.metrics.UnresolvedCodes.WithLabelValues("coords").Set(float64(cov.UnmappableAirports))

	l.logger.Info("dataset loaded",
		"flights", cov.Flights,
		"cancelled", cov.Cancelled,
		"airlines", cov.Airlines,
		"airports", cov.Airports,
		"mappable_airports", cov.Mappable,
		"unresolved_airlines", cov.UnresolvedAirlines,
		"unresolved_airports", cov.UnresolvedAirports,
		"duration", elapsed,
	)
	if cov.UnresolvedAirports > 0 {
		l.logger.Warn("flights reference airports missing from the airport table",
			"codes", cov.UnresolvedAirports,
			"flights_without_route", cov.FlightsWithoutRoute,
		)
	}

	return table, nil
}
