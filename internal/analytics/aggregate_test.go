package analytics

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/flight-delay-dashboard/internal/domain"
)

func TestRows(t *testing.T) {
	table := newTable(
		flight("AA", "LAX", "JFK", departs(555)),
		flight("BB", "JFK", "LAX", departs(1230), cancelled("B")),
		flight("AA", "SFO", "LAX", departs(1215)),
	)

	t.Run("no predicates yields everything", func(t *testing.T) {
		assert.Len(t, slices.Collect(Rows(table)), 3)
	})

	t.Run("predicates are combined", func(t *testing.T) {
		got := slices.Collect(Rows(table, ForAirline("AA"), AtHour(12)))
		require.Len(t, got, 1)
		assert.Equal(t, "SFO", got[0].Origin)
	})

	t.Run("empty airline matches all", func(t *testing.T) {
		assert.Len(t, slices.Collect(Rows(table, ForAirline(""))), 3)
	})

	t.Run("unknown airline matches none", func(t *testing.T) {
		assert.Empty(t, slices.Collect(Rows(table, ForAirline("ZZ"))))
	})

	t.Run("nil table", func(t *testing.T) {
		assert.Empty(t, slices.Collect(Rows(nil)))
	})

	t.Run("early break", func(t *testing.T) {
		n := 0
		for range Rows(table) {
			n++
			break
		}
		assert.Equal(t, 1, n)
	})
}

func TestCountBy_ZeroCountPolicy(t *testing.T) {
	table := newTable(
		flight("AA", "LAX", "JFK", cancelled("A")),
		flight("AA", "LAX", "JFK"),
		flight("BB", "JFK", "LAX"),
		flight("AA", "SFO", "JFK"),
		flight("BB", "SFO", "LAX"),
	)

	got := CountBy(Rows(table), AirlineNameKey, Cancelled)
	assert.Equal(t, []Point{{Label: "American", Value: 1}, {Label: "Bravo", Value: 0}}, got)
}

func TestCountBy_SkipsAbsentKeys(t *testing.T) {
	table := newTable(
		flight("AA", "LAX", "JFK"),
		flight("ZZ", "LAX", "JFK"),
		flight("AA", "10397", "JFK"),
	)

	assert.Equal(t, []Point{{Label: "American", Value: 2}}, CountBy(Rows(table), AirlineNameKey, nil))
	assert.Equal(t, []Point{{Label: "Los Angeles → New York", Value: 2}}, CountBy(Rows(table), RouteKey, nil))
}

func TestCountLabels(t *testing.T) {
	got := CountLabels(slices.Values([]string{"b", "a", "", "b"}))
	assert.Equal(t, []Point{{Label: "b", Value: 2}, {Label: "a", Value: 1}}, got)
}

func TestRateBy(t *testing.T) {
	table := newTable(
		flight("AA", "LAX", "JFK", cancelled("A")),
		flight("AA", "LAX", "JFK"),
		flight("AA", "LAX", "JFK"),
		flight("AA", "LAX", "JFK"),
		flight("BB", "JFK", "LAX", cancelled("B")),
		flight("CC", "JFK", "LAX"),
	)

	got := RateBy(Rows(table), AirlineNameKey, Cancelled)
	assert.Equal(t, []Point{
		{Label: "American", Value: 25},
		{Label: "Bravo", Value: 100},
		{Label: "Charlie", Value: 0},
	}, got)
	for _, p := range got {
		assert.GreaterOrEqual(t, p.Value, 0.0)
		assert.LessOrEqual(t, p.Value, 100.0)
	}

	assert.Empty(t, RateBy(Rows(table, ForAirline("ZZ")), AirlineNameKey, Cancelled))
}

func TestMeanBy(t *testing.T) {
	table := newTable(
		flight("AA", "LAX", "JFK", delay(10)),
		flight("AA", "LAX", "JFK", delay(-4)),
		flight("AA", "LAX", "JFK"),
		flight("BB", "JFK", "LAX"),
	)

	got := MeanBy(Rows(table), AirlineNameKey, DelayValue)
	assert.Equal(t, []Point{{Label: "American", Value: 3}}, got, "groups without values are left out")
}

func TestTopN(t *testing.T) {
	points := []Point{
		{Label: "a", Value: 1},
		{Label: "b", Value: 3},
		{Label: "c", Value: 3},
		{Label: "d", Value: 2},
		{Label: "e", Value: 3},
	}

	assert.Equal(t, []string{"b", "c", "e"}, labels(TopN(points, 3)))
	assert.Equal(t, []string{"b", "c", "e", "d", "a"}, labels(TopN(points, 10)))
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, labels(points), "input is not modified")
	assert.Empty(t, TopN(nil, 5))
}

func TestSortAsc(t *testing.T) {
	points := []Point{{Label: "a", Value: 2}, {Label: "b", Value: 0}, {Label: "c", Value: 2}}
	assert.Equal(t, []string{"b", "a", "c"}, labels(SortAsc(points)))
}

func TestComplete(t *testing.T) {
	points := []Point{{Label: "Wed", Value: 4}, {Label: "Mon", Value: 2}, {Label: "Funday", Value: 9}}

	got := Complete(points, domain.DayNames)
	assert.Equal(t, domain.DayNames, labels(got))
	assert.Equal(t, []float64{2, 0, 4, 0, 0, 0, 0}, values(got))
}

func TestReorder(t *testing.T) {
	points := []Point{{Label: "Wed", Value: 4}, {Label: "Mon", Value: 2}}
	assert.Equal(t, []Point{{Label: "Mon", Value: 2}, {Label: "Wed", Value: 4}}, Reorder(points, domain.DayNames))
}

func TestMeanGrid(t *testing.T) {
	table := newTable(
		flight("BB", "LAX", "JFK", departs(1300), delay(10)),
		flight("AA", "LAX", "JFK", departs(900), delay(4)),
		flight("AA", "LAX", "JFK", departs(900), delay(8)),
		flight("AA", "LAX", "JFK", departs(1300)),
	)

	g := MeanGrid(Rows(table), HourKey, AirlineNameKey, DelayValue).Sorted(Numeric, Lexical)
	assert.Equal(t, []string{"9", "13"}, g.X)
	assert.Equal(t, []string{"American", "Bravo"}, g.Y)
	assert.Equal(t, []Cell{
		{X: "9", Y: "American", Value: 6},
		{X: "13", Y: "Bravo", Value: 10},
	}, g.Cells)

	series := g.SeriesByY()
	require.Len(t, series, 2)
	assert.Equal(t, Series{Name: "American", Points: []Point{{Label: "9", Value: 6}}}, series[0])
	assert.Equal(t, Series{Name: "Bravo", Points: []Point{{Label: "13", Value: 10}}}, series[1])
}

func TestRateGrid(t *testing.T) {
	table := newTable(
		flight("AA", "LAX", "JFK", onDay(3), cancelled("A")),
		flight("AA", "LAX", "JFK", onDay(3)),
		flight("AA", "LAX", "JFK", onDay(1)),
	)

	g := RateGrid(Rows(table), DayKey, AirlineNameKey, Cancelled).Sorted(InOrder(domain.DayNames), Lexical)
	assert.Equal(t, []string{"Mon", "Wed"}, g.X)
	assert.Equal(t, []Cell{
		{X: "Mon", Y: "American", Value: 0},
		{X: "Wed", Y: "American", Value: 50},
	}, g.Cells)
}

func TestComparators(t *testing.T) {
	nums := []string{"10", "x", "2", "1"}
	slices.SortFunc(nums, Numeric)
	assert.Equal(t, []string{"1", "2", "10", "x"}, nums)

	days := []string{"Sun", "Other", "Mon", "Wed"}
	slices.SortStableFunc(days, InOrder(domain.DayNames))
	assert.Equal(t, []string{"Mon", "Wed", "Sun", "Other"}, days)

	assert.Negative(t, Lexical("a", "b"))
}
