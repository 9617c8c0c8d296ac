package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/flight-delay-dashboard/internal/domain"
)

func delayTable() *domain.Table {
	return newTable(
		flight("AA", "LAX", "JFK", departs(1205), delay(10), distance(2475)),
		flight("AA", "LAX", "JFK", departs(1230), delay(-5), distance(2475)),
		flight("AA", "LAX", "SFO", departs(1259), delay(0), distance(337)),
		flight("BB", "JFK", "LAX", departs(1200), delay(200), distance(2475)),
		flight("BB", "JFK", "LAX", departs(1215), cancelled("B")),
		flight("BB", "JFK", "LAX", departs(555), delay(30), distance(2475)),
		flight("CC", "SFO", "LAX", departs(1300), delay(-2), distance(337)),
		flight("ZZ", "SFO", "LAX", departs(1210), delay(15), distance(337)),
	)
}

func TestDelayDistribution(t *testing.T) {
	got := DelayDistribution(delayTable(), 12)
	require.Len(t, got, 2)

	assert.Equal(t, Box{Group: "American", Count: 3, Min: -5, Q1: -5, Median: 0, Q3: 10, Max: 10, Mean: 5.0 / 3}, got[0])
	assert.Equal(t, "Bravo", got[1].Group)
	assert.Equal(t, 1, got[1].Count, "the cancelled flight is excluded")

	assert.Empty(t, DelayDistribution(delayTable(), 3))
}

func TestDelayHeatmap(t *testing.T) {
	g := DelayHeatmap(delayTable())
	assert.Equal(t, []string{"5", "12", "13"}, g.X)
	assert.Equal(t, []string{"American", "Bravo", "Charlie"}, g.Y)

	cells := make(map[[2]string]float64)
	for _, c := range g.Cells {
		cells[[2]string{c.X, c.Y}] = c.Value
	}
	assert.InDelta(t, 5.0/3, cells[[2]string{"12", "American"}], 1e-9)
	assert.InDelta(t, 200.0, cells[[2]string{"12", "Bravo"}], 1e-9)
	assert.InDelta(t, 30.0, cells[[2]string{"5", "Bravo"}], 1e-9)
	assert.InDelta(t, -2.0, cells[[2]string{"13", "Charlie"}], 1e-9)
	assert.Len(t, cells, 4)
}

func TestDelayByHour(t *testing.T) {
	got := DelayByHour(delayTable())
	require.Len(t, got, 3)
	assert.Equal(t, "American", got[0].Name)
	assert.Equal(t, []string{"12"}, labels(got[0].Points))
	assert.Equal(t, "Bravo", got[1].Name)
	assert.Equal(t, []string{"5", "12"}, labels(got[1].Points), "hours run in numeric order")
}

func TestDelaySpread(t *testing.T) {
	got := DelaySpread(delayTable(), 12)
	assert.Equal(t, []Observation{
		{Group: "American", Value: 10},
		{Group: "American", Value: -5},
		{Group: "American", Value: 0},
	}, got, "delays above 180 and unnamed airlines are left out")

	assert.Equal(t, got, DelaySpread(delayTable(), 12))
}

func TestDelayByDistance(t *testing.T) {
	got := DelayByDistance(delayTable(), 12)
	assert.Equal(t, []string{"<500", "2000-2499"}, labels(got))
	assert.InDelta(t, 7.5, got[0].Value, 1e-9)
	assert.InDelta(t, 205.0/3, got[1].Value, 1e-9)
}

func TestDelayByAirline(t *testing.T) {
	got := DelayByAirline(delayTable())
	assert.Equal(t, []string{"Bravo", "American", "Charlie"}, labels(got))
	assert.InDelta(t, 115.0, got[0].Value, 1e-9)
}

func TestDelayCauses(t *testing.T) {
	table := newTable(
		flight("BB", "LAX", "JFK", causes(1, 0, 10, 20, 0)),
		flight("AA", "LAX", "JFK", causes(2, 0, 4, 0, 6)),
		flight("AA", "LAX", "JFK", causes(4, 2, 0, 0, 0)),
		flight("AA", "LAX", "JFK", delay(90)),
		flight("ZZ", "LAX", "JFK", causes(100, 100, 100, 100, 100)),
	)

	got := DelayCauses(table)
	require.Len(t, got, len(domain.DelayCauses))
	for i, s := range got {
		assert.Equal(t, string(domain.DelayCauses[i]), s.Name)
		assert.Equal(t, []string{"American", "Bravo"}, labels(s.Points))
	}
	assert.Equal(t, []float64{3, 1}, values(got[0].Points))
	assert.Equal(t, []float64{1, 0}, values(got[1].Points))
	assert.Equal(t, []float64{2, 10}, values(got[2].Points))
	assert.Equal(t, []float64{0, 20}, values(got[3].Points))
	assert.Equal(t, []float64{3, 0}, values(got[4].Points))
}

func TestOnTimeRatio(t *testing.T) {
	got := OnTimeRatio(delayTable(), 12)
	assert.Equal(t, []Point{
		{Label: domain.LabelOnTime, Value: 2},
		{Label: domain.LabelDelayed, Value: 3},
	}, got)

	empty := OnTimeRatio(delayTable(), 4)
	assert.Equal(t, []float64{0, 0}, values(empty))
}

func TestSummarizeDelays(t *testing.T) {
	got := SummarizeDelays(Rows(delayTable(), ForAirline("AA")))
	assert.Equal(t, 3, got.Count)
	assert.InDelta(t, -5.0, got.Min, 1e-9)
	assert.InDelta(t, 10.0, got.Max, 1e-9)
}
