package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/couchcryptid/flight-delay-dashboard/internal/analytics"
	"github.com/couchcryptid/flight-delay-dashboard/internal/charts"
)

func readBack(t *testing.T, buf *bytes.Buffer) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestWriteChart(t *testing.T) {
	spec := charts.Spec{
		ID:     "flights_by_day",
		Labels: charts.Labels{X: "Day", Y: "Flights"},
		Points: []analytics.Point{{Label: "Mon", Value: 3}, {Label: "Tue", Value: 0}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteChart(&buf, spec))

	f := readBack(t, &buf)
	assert.Equal(t, []string{"flights_by_day"}, f.GetSheetList())

	rows, err := f.GetRows("flights_by_day")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Day", "Flights"},
		{"Mon", "3"},
		{"Tue", "0"},
	}, rows)
}

func TestWriteWorkbook_OneSheetPerChart(t *testing.T) {
	specs := []charts.Spec{
		{ID: "cancellation_reasons", Labels: charts.Labels{X: "Reason", Value: "Count"}, Points: []analytics.Point{{Label: "Weather", Value: 2}}},
		{ID: "delay_heatmap", Labels: charts.Labels{X: "Hour", Y: "Airline", Value: "Avg"}, Grid: &analytics.Grid{
			Cells: []analytics.Cell{{X: "5", Y: "American", Value: 1.5}},
		}},
		{ID: "flight_map", Geo: &analytics.GeoSample{}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, specs))

	f := readBack(t, &buf)
	assert.Equal(t, []string{"cancellation_reasons", "delay_heatmap", "flight_map"}, f.GetSheetList())

	rows, err := f.GetRows("delay_heatmap")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Hour", "Airline", "Avg"}, {"5", "American", "1.5"}}, rows)

	rows, err = f.GetRows("flight_map")
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
	assert.Equal(t, "Origin", rows[0][0])

	bold, err := f.GetCellStyle("delay_heatmap", "A1")
	require.NoError(t, err)
	assert.NotZero(t, bold)
}

func TestWriteWorkbook_NoCharts(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteWorkbook(&buf, nil))
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "top_routes", SheetName("top_routes"))
	assert.Equal(t, "chart", SheetName(""))
	assert.Len(t, SheetName(strings.Repeat("x", 40)), maxSheetName)
}
