package analytics

import (
	"iter"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/couchcryptid/flight-delay-dashboard/internal/domain"
)

// Summarize returns the five-number summary of values. Quartiles use the
// empirical quantile, so every reported statistic is an observed value.
func Summarize(group string, values []float64) Box {
	if len(values) == 0 {
		return Box{Group: group}
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return Box{
		Group:  group,
		Count:  len(sorted),
		Min:    sorted[0],
		Q1:     stat.Quantile(0.25, stat.Empirical, sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Q3:     stat.Quantile(0.75, stat.Empirical, sorted, nil),
		Max:    sorted[len(sorted)-1],
		Mean:   stat.Mean(sorted, nil),
	}
}

// BoxBy summarizes value per category in first-seen order. Categories with no
// values are left out.
func BoxBy(rows iter.Seq[*domain.EnrichedFlight], key Key, value Value) []Box {
	var order []string
	groups := make(map[string][]float64)
	for f := range rows {
		k, ok := key(f)
		if !ok {
			continue
		}
		v, ok := value(f)
		if !ok {
			continue
		}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], v)
	}

	out := make([]Box, 0, len(order))
	for _, k := range order {
		out = append(out, Summarize(k, groups[k]))
	}
	return out
}
