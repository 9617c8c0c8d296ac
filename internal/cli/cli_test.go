package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/couchcryptid/flight-delay-dashboard/internal/charts"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func execute(t *testing.T, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

// sampleDir writes a small synthetic dataset and returns its directory.
func sampleDir(t *testing.T) string {
	t.Helper()
	t.Setenv("CONFIG_FILE", "")
	dir := t.TempDir()
	res := execute(t, "sample", "--data-dir", dir, "--flights", "1500", "--seed", "3")
	require.Equal(t, 0, res.code, res.stderr)
	require.Contains(t, res.stdout, "Wrote 1500 flights")
	return dir
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "flightctl", cmd.Use)
	for _, name := range []string{"config", "data-dir", "flights-file", "airlines-file", "airports-file", "log-level", "log-format"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "flag %q should exist", name)
	}

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"validate", "chart", "export", "summary", "sample"}, names)
}

func TestValidate_Passes(t *testing.T) {
	dir := sampleDir(t)

	res := execute(t, "validate", "--data-dir", dir)

	require.Equal(t, 0, res.code, res.stdout+res.stderr)
	assert.Contains(t, res.stdout, "Phase 1: Schema")
	assert.Contains(t, res.stdout, "Phase 4: Aggregates")
	assert.Contains(t, res.stdout, "All validations passed.")
	assert.NotContains(t, res.stdout, "FAIL")
}

func TestValidate_UnknownAirline(t *testing.T) {
	dir := sampleDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "airlines.csv"),
		[]byte("IATA_CODE,AIRLINE\nAA,American Airlines Inc.\n"), 0o600))

	res := execute(t, "validate", "--data-dir", dir)

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "Phase 2: Reference Coverage")
	assert.Contains(t, res.stdout, `airline code "DL" is missing from the airlines file`)
	assert.Contains(t, res.stdout, "Validation FAILED.")
	assert.NotContains(t, res.stderr, "Error:", "the report is the only output")
}

func TestValidate_MissingData(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	res := execute(t, "validate", "--data-dir", filepath.Join(t.TempDir(), "absent"))

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "Phase 1: Schema")
	assert.Contains(t, res.stdout, "FAIL (1 errors)")
	assert.NotContains(t, res.stdout, "Phase 2")
}

func TestChart_Table(t *testing.T) {
	dir := sampleDir(t)

	res := execute(t, "chart", "flights_by_day", "--data-dir", dir, "--airline", "dl")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Flights by Day of Week")
	for _, day := range []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"} {
		assert.Contains(t, res.stdout, day)
	}
	assert.Contains(t, res.stdout, "(7 rows)")
}

func TestChart_JSON(t *testing.T) {
	dir := sampleDir(t)

	res := execute(t, "chart", "delay_distribution", "--data-dir", dir, "--hour", "18", "-o", "json")

	require.Equal(t, 0, res.code, res.stderr)
	var spec charts.Spec
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &spec))
	assert.Equal(t, "delay_distribution", spec.ID)
	assert.Equal(t, charts.Filter{Hour: 18}, spec.Filter)
	assert.Equal(t, "Delays at 18:00", spec.Title)
	assert.NotEmpty(t, spec.Boxes)
}

func TestChart_DefaultHourFromConfig(t *testing.T) {
	dir := sampleDir(t)
	t.Setenv("DEFAULT_HOUR", "9")

	res := execute(t, "chart", "on_time_ratio", "--data-dir", dir, "-o", "json")

	require.Equal(t, 0, res.code, res.stderr)
	var spec charts.Spec
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &spec))
	assert.Equal(t, 9, spec.Filter.Hour)
}

func TestChart_YAML(t *testing.T) {
	dir := sampleDir(t)

	res := execute(t, "chart", "cancelled_vs_completed", "--data-dir", dir, "-o", "yaml")

	require.Equal(t, 0, res.code, res.stderr)
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(res.stdout), &doc))
	assert.Equal(t, "cancelled_vs_completed", doc["id"])
	assert.Equal(t, "pie", doc["kind"])
	assert.Len(t, doc["points"], 2)
}

func TestChart_Errors(t *testing.T) {
	dir := sampleDir(t)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown chart", []string{"chart", "nope"}, "unknown chart"},
		{"bad hour", []string{"chart", "delay_spread", "--hour", "30"}, "hour must be between 0 and 23"},
		{"bad format", []string{"chart", "top_routes", "-o", "xml"}, "unknown output format"},
		{"missing id", []string{"chart"}, "accepts 1 arg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, append(tt.args, "--data-dir", dir)...)

			assert.Equal(t, 1, res.code)
			assert.Contains(t, res.stderr, tt.wantErr)
		})
	}
}

func TestExport(t *testing.T) {
	dir := sampleDir(t)
	out := filepath.Join(t.TempDir(), "dashboard.xlsx")

	res := execute(t, "export", "--data-dir", dir, "--out", out, "--airline", "UA")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Wrote 27 charts")

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Len(t, sheets, len(charts.Catalog()))
	assert.Equal(t, "airline_market_share", sheets[0])
	assert.Equal(t, "hourly_cancellations", sheets[len(sheets)-1])

	rows, err := f.GetRows("flights_by_month")
	require.NoError(t, err)
	assert.Len(t, rows, 13)
}

func TestSummary(t *testing.T) {
	dir := sampleDir(t)

	res := execute(t, "summary", "--data-dir", dir)

	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "1,500")
	assert.Contains(t, res.stdout, "Unresolved airline codes")
	assert.Contains(t, res.stdout, "Loaded at")

	res = execute(t, "summary", "--data-dir", dir, "-o", "json")
	require.Equal(t, 0, res.code, res.stderr)
	var sum map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &sum))
	assert.InDelta(t, 1500, sum["flights"], 0)
	assert.InDelta(t, 6, sum["airlines"], 0)
}

func TestSample_Deterministic(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	a, b := t.TempDir(), t.TempDir()

	require.Equal(t, 0, execute(t, "sample", "--data-dir", a, "--flights", "200").code)
	require.Equal(t, 0, execute(t, "sample", "--data-dir", b, "--flights", "200").code)

	fa, err := os.ReadFile(filepath.Join(a, "flights.csv"))
	require.NoError(t, err)
	fb, err := os.ReadFile(filepath.Join(b, "flights.csv"))
	require.NoError(t, err)
	assert.Equal(t, fa, fb)
}

func TestSample_CustomFileNames(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	dir := t.TempDir()

	res := execute(t, "sample", "--data-dir", dir, "--flights", "50", "--flights-file", "flights_2015.csv")

	require.Equal(t, 0, res.code, res.stderr)
	assert.FileExists(t, filepath.Join(dir, "flights_2015.csv"))
	assert.FileExists(t, filepath.Join(dir, "airlines.csv"))
}
