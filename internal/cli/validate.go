package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/flight-delay-dashboard/internal/analytics"
	"github.com/couchcryptid/flight-delay-dashboard/internal/charts"
	"github.com/couchcryptid/flight-delay-dashboard/internal/domain"
)

// maxPhaseErrors caps the errors listed per phase; the rest are counted.
const maxPhaseErrors = 20

// phase tracks pass/fail for one validation phase.
type phase struct {
	name    string
	errors  []string
	dropped int
	notes   []string
}

func (p *phase) errorf(format string, args ...any) {
	if len(p.errors) >= maxPhaseErrors {
		p.dropped++
		return
	}
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) notef(format string, args ...any) {
	p.notes = append(p.notes, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the dataset and check it end to end",
		Long: `Load the dataset the way the dashboard does and run four phases of
checks: schema, reference coverage, enrichment and aggregates. Exits with
status 1 if any phase fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, titleStyle.Render("=== Flight Dataset Validation ==="))
			fmt.Fprintln(w)

			schema := &phase{name: "Phase 1: Schema"}
			table, err := a.loadTable(cmd.Context())
			if err != nil {
				schema.errorf("%v", err)
				if !report(w, []*phase{schema}) {
					return errValidationFailed
				}
				return nil
			}
			checkSchema(schema, table)

			phases := []*phase{
				schema,
				checkCoverage(table),
				checkEnrichment(table),
				checkAggregates(table, a.cfg.DefaultHour),
			}
			if !report(w, phases) {
				return errValidationFailed
			}
			return nil
		},
	}
}

// report prints the phase summary and details and returns whether every
// phase passed.
func report(w io.Writer, phases []*phase) bool {
	allPassed := true
	for _, p := range phases {
		status := passStyle.Render("PASS")
		if !p.passed() {
			status = failStyle.Render(fmt.Sprintf("FAIL (%d errors)", len(p.errors)+p.dropped))
			allPassed = false
		}
		fmt.Fprintf(w, "  %-40s %s\n", p.name, status)
	}

	for _, p := range phases {
		if p.passed() && len(p.notes) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Fprintf(w, "  [%d] %s\n", i+1, e)
		}
		if p.dropped > 0 {
			fmt.Fprintf(w, "  ... and %d more\n", p.dropped)
		}
		for _, n := range p.notes {
			fmt.Fprintf(w, "  note: %s\n", dimStyle.Render(n))
		}
	}

	if allPassed {
		fmt.Fprintln(w, "\nAll validations passed.")
	} else {
		fmt.Fprintln(w, "\nValidation FAILED.")
	}
	return allPassed
}

// checkSchema covers what the loader cannot reject on its own: a file that
// parses but holds nothing to chart.
func checkSchema(p *phase, t *domain.Table) {
	if len(t.Flights) == 0 {
		p.errorf("flights file has no data rows")
	}
	if len(t.Ref.Airlines()) == 0 {
		p.errorf("airlines file has no data rows")
	}
	if t.Ref.AirportCount() == 0 {
		p.errorf("airports file has no data rows")
	}
}

func checkCoverage(t *domain.Table) *phase {
	p := &phase{name: "Phase 2: Reference Coverage"}
	cov := t.Coverage()

	var airlines, airports []string
	seen := make(map[string]struct{})
	for i := range t.Flights {
		f := &t.Flights[i]
		if !f.AirlineName.Present() {
			if _, ok := seen["airline|"+f.Airline]; !ok {
				seen["airline|"+f.Airline] = struct{}{}
				airlines = append(airlines, f.Airline)
			}
		}
		for _, code := range [2]string{f.Origin, f.Destination} {
			if _, ok := t.Ref.City(code); ok {
				continue
			}
			if _, ok := seen["airport|"+code]; !ok {
				seen["airport|"+code] = struct{}{}
				airports = append(airports, code)
			}
		}
	}
	slices.Sort(airlines)
	slices.Sort(airports)

	// Every airline must resolve: the market share and delay charts group by
	// airline name and would silently drop the flights otherwise.
	for _, code := range airlines {
		p.errorf("airline code %q is missing from the airlines file", code)
	}

	// Unknown airports only cost a route label, so they are reported as notes.
	if len(airports) > 0 {
		shown := airports
		if len(shown) > 10 {
			shown = shown[:10]
		}
		p.notef("%d airport codes missing from the airports file (%d flights without a route), e.g. %v",
			len(airports), cov.FlightsWithoutRoute, shown)
	}
	if cov.UnmappableAirports > 0 {
		p.notef("%d airport codes have no coordinates and are left off the maps", cov.UnmappableAirports)
	}
	return p
}

func checkEnrichment(t *domain.Table) *phase {
	p := &phase{name: "Phase 3: Enrichment"}

	for i := range t.Flights {
		f := &t.Flights[i]
		row := i + 2

		if day, ok := f.DayName.Get(); !ok || day != domain.DayNames[f.DayOfWeek-1] {
			p.errorf("row %d: day %d labelled %q", row, f.DayOfWeek, f.DayName.OrElse(""))
		}
		if month, ok := f.MonthName.Get(); !ok || month != domain.MonthNames[f.Month-1] {
			p.errorf("row %d: month %d labelled %q", row, f.Month, f.MonthName.OrElse(""))
		}

		wantHour := (f.ScheduledDeparture / 100) % 24
		if hour, ok := f.ScheduledHour.Get(); !ok || hour != wantHour {
			p.errorf("row %d: departure %d has hour %d, want %d", row, f.ScheduledDeparture, f.ScheduledHour.OrElse(-1), wantHour)
		}

		delay, hasDelay := f.DepartureDelay.Get()
		label, hasLabel := f.OnTime.Get()
		switch {
		case hasDelay != hasLabel:
			p.errorf("row %d: on-time label present=%t but delay present=%t", row, hasLabel, hasDelay)
		case hasDelay && label != domain.OnTimeLabel(delay):
			p.errorf("row %d: delay %.0f labelled %q", row, delay, label)
		}

		bothCities := f.OriginCity.Present() && f.DestCity.Present()
		if bothCities != f.Route.Present() {
			p.errorf("row %d: route present=%t but both cities present=%t", row, f.Route.Present(), bothCities)
		}
		if f.Cancelled && hasDelay {
			p.notef("row %d: cancelled flight carries a departure delay", row)
		}
	}

	if len(p.notes) > maxPhaseErrors {
		n := len(p.notes)
		p.notes = append(p.notes[:maxPhaseErrors:maxPhaseErrors], fmt.Sprintf("... and %d more", n-maxPhaseErrors))
	}
	return p
}

func checkAggregates(t *domain.Table, hour int) *phase {
	p := &phase{name: "Phase 4: Aggregates"}

	total := len(t.Flights)
	var named, operated, cancelled, labelled int
	for i := range t.Flights {
		f := &t.Flights[i]
		if f.AirlineName.Present() {
			named++
		}
		if f.Cancelled {
			cancelled++
			continue
		}
		operated++
		if f.OnTime.Present() {
			labelled++
		}
	}

	if got := sum(analytics.CancelledVsCompleted(t)); got != float64(total) {
		p.errorf("cancelled + completed = %.0f, want %d flights", got, total)
	}
	if got := sum(analytics.MarketShare(t, "")); got != float64(named) {
		p.errorf("market share covers %.0f flights, want %d with a known airline", got, named)
	}
	if got := sum(analytics.CancellationReasons(t)); got > float64(cancelled) {
		p.errorf("cancellation reasons cover %.0f flights, more than the %d cancelled", got, cancelled)
	}

	var onTime float64
	for h := range 24 {
		onTime += sum(analytics.OnTimeRatio(t, h))
	}
	if onTime != float64(labelled) {
		p.errorf("on-time ratio over all hours covers %.0f flights, want %d", onTime, labelled)
	}

	if frames := analytics.HourlyCancellations(t).Frames; len(frames) != 24 {
		p.errorf("hourly cancellations has %d frames, want 24", len(frames))
	}

	grid := analytics.DelayHeatmap(t)
	for _, c := range grid.Cells {
		if !slices.Contains(grid.X, c.X) || !slices.Contains(grid.Y, c.Y) {
			p.errorf("delay heatmap cell (%s, %s) is outside the axes", c.X, c.Y)
		}
	}

	for _, def := range charts.Catalog() {
		spec := def.Build(t, charts.Filter{Hour: hour})
		if spec.ID != def.ID {
			p.errorf("chart %s built as %q", def.ID, spec.ID)
		}
		if spec.Empty() && operated > 0 && def.Filter != charts.FilterHour {
			p.notef("chart %s has no data", def.ID)
		}
	}
	return p
}

func sum(points []analytics.Point) float64 {
	var s float64
	for _, pt := range points {
		s += pt.Value
	}
	return s
}
