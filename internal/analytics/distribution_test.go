package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	got := Summarize("AA", []float64{4, 1, 3, 2})
	assert.Equal(t, Box{Group: "AA", Count: 4, Min: 1, Q1: 1, Median: 2, Q3: 3, Max: 4, Mean: 2.5}, got)

	single := Summarize("BB", []float64{7})
	assert.Equal(t, Box{Group: "BB", Count: 1, Min: 7, Q1: 7, Median: 7, Q3: 7, Max: 7, Mean: 7}, single)

	assert.Equal(t, Box{Group: "CC"}, Summarize("CC", nil))
}

func TestSummarize_DoesNotModifyInput(t *testing.T) {
	in := []float64{3, 1, 2}
	Summarize("AA", in)
	assert.Equal(t, []float64{3, 1, 2}, in)
}

func TestBoxBy(t *testing.T) {
	table := newTable(
		flight("BB", "LAX", "JFK", delay(5)),
		flight("AA", "LAX", "JFK", delay(1)),
		flight("AA", "LAX", "JFK", delay(3)),
		flight("CC", "LAX", "JFK"),
	)

	got := BoxBy(Rows(table), AirlineNameKey, DelayValue)
	require.Len(t, got, 2)
	assert.Equal(t, "Bravo", got[0].Group)
	assert.Equal(t, "American", got[1].Group)
	assert.Equal(t, 2, got[1].Count)
	assert.InDelta(t, 2.0, got[1].Mean, 1e-9)
}
