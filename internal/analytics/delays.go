package analytics

import (
	"iter"

	"github.com/couchcryptid/flight-delay-dashboard/internal/domain"
)

// Delay range kept by the spread chart, in minutes.
const (
	SpreadMinDelay = -10
	SpreadMaxDelay = 180
)

// DelayDistribution summarizes departure delays per airline for operated
// flights in the given hour.
func DelayDistribution(t *domain.Table, hour int) []Box {
	return BoxBy(Rows(t, Operated, AtHour(hour)), AirlineNameKey, DelayValue)
}

// DelayByHour returns one series per airline holding the mean delay of
// operated flights for each scheduled hour. Airlines are sorted by name and
// hours run 0 to 23.
func DelayByHour(t *domain.Table) []Series {
	return DelayHeatmap(t).SeriesByY()
}

// DelaySpread samples delays within [SpreadMinDelay, SpreadMaxDelay] for
// flights in the given hour, tagged by airline name.
func DelaySpread(t *domain.Table, hour int) []Observation {
	rows := Rows(t, AtHour(hour), DelayBetween(SpreadMinDelay, SpreadMaxDelay))
	return SampleValues(rows, AirlineNameKey, DelayValue, SpreadSampleSize)
}

// DelayHeatmap averages the delay of operated flights per (hour, airline).
func DelayHeatmap(t *domain.Table) Grid {
	return MeanGrid(Rows(t, Operated), HourKey, AirlineNameKey, DelayValue).Sorted(Numeric, Lexical)
}

// DelayByDistance averages the delay of operated flights in the given hour
// per distance bin.
func DelayByDistance(t *domain.Table, hour int) []Point {
	return BucketedMean(Rows(t, Operated, AtHour(hour)), DelayValue)
}

// DelayByAirline averages the delay of operated flights per airline, worst
// first.
func DelayByAirline(t *domain.Table) []Point {
	return SortDesc(MeanBy(Rows(t, Operated), AirlineNameKey, DelayValue))
}

// DelayCauses averages the minutes attributed to each delay cause per
// airline. Only flights reporting all five causes contribute. The result has
// one series per cause in source column order, each over airlines sorted by
// name.
func DelayCauses(t *domain.Table) []Series {
	g := newGridTally()
	for f := range Rows(t, hasCauses) {
		name, ok := f.AirlineName.Get()
		if !ok {
			continue
		}
		for _, c := range domain.DelayCauses {
			v, _ := f.Causes.Minutes(c).Get()
			g.add(name, string(c), v)
		}
	}
	causes := make([]string, len(domain.DelayCauses))
	for i, c := range domain.DelayCauses {
		causes[i] = string(c)
	}
	grid := g.grid(func(c *cellSum) float64 { return c.sum / float64(c.n) })
	return grid.Sorted(Lexical, InOrder(causes)).SeriesByY()
}

func hasCauses(f *domain.EnrichedFlight) bool { return f.Causes.Complete() }

// OnTimeRatio counts operated flights in the given hour as on time or
// delayed. Flights without a recorded delay are not counted.
func OnTimeRatio(t *domain.Table, hour int) []Point {
	return Complete(CountBy(Rows(t, Operated, AtHour(hour)), OnTimeKey, nil), domain.OnTimeLabels)
}

// SummarizeDelays summarizes every recorded departure delay in rows.
func SummarizeDelays(rows iter.Seq[*domain.EnrichedFlight]) Box {
	var values []float64
	for f := range rows {
		if d, ok := f.DepartureDelay.Get(); ok {
			values = append(values, d)
		}
	}
	return Summarize("all", values)
}
