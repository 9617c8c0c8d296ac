// Package analytics computes the aggregate behind every dashboard chart.
//
// Each chart function reads the enriched table, applies at most one filter
// (an airline code or an hour) and returns a plain result: category points,
// series, grids, geo samples, box summaries or frames. Functions never mutate
// the table, never share state between calls and never fail on empty input;
// an empty selection produces an empty result.
//
// # Category domains
//
// Counts report every category observed in the rows that pass the chart's
// filter, with an explicit zero when none of those rows match the counted
// predicate. Fixed enumerations (days, months, hours, cancellation reasons,
// status labels) are always complete and in canonical order. Means and rates
// leave out groups that have no rows or no values.
//
// # Sampling
//
// Samples use a reservoir over a PCG generator seeded with [SampleSeed] and
// created per call, so the same table always yields the same sample and
// concurrent callers never share a generator.
package analytics
