package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/couchcryptid/flight-delay-dashboard/internal/domain"
)

// SampleOptions controls the synthetic dataset written by WriteSample.
type SampleOptions struct {
	Flights int
	Seed    uint64
}

type sampleAirport struct {
	code, city string
	lat, lon   float64
	mappable   bool
}

var sampleAirlines = [][2]string{
	{"AA", "American Airlines Inc."},
	{"AS", "Alaska Airlines Inc."},
	{"B6", "JetBlue Airways"},
	{"DL", "Delta Air Lines Inc."},
	{"UA", "United Air Lines Inc."},
	{"WN", "Southwest Airlines Co."},
}

var sampleAirports = []sampleAirport{
	{"ATL", "Atlanta", 33.64044, -84.42694, true},
	{"BOS", "Boston", 42.36435, -71.00518, true},
	{"DEN", "Denver", 39.85841, -104.66700, true},
	{"DFW", "Dallas-Fort Worth", 32.89595, -97.03720, true},
	{"JFK", "New York", 40.63975, -73.77893, true},
	{"LAX", "Los Angeles", 33.94254, -118.40807, true},
	{"ORD", "Chicago", 41.97960, -87.90446, true},
	{"SEA", "Seattle", 47.44898, -122.30931, true},
	{"SFO", "San Francisco", 37.61900, -122.37484, true},
	{"ECP", "Panama City", 0, 0, false},
}

// WriteSample writes a small synthetic dataset in the source file layout:
// the same columns, unpadded HHMM times, empty cells for absent values and
// one airport without coordinates. The output depends only on opts.
func WriteSample(p Paths, opts SampleOptions) error {
	if opts.Flights <= 0 {
		return fmt.Errorf("sample needs at least one flight, got %d", opts.Flights)
	}
	for _, path := range []string{p.Flights, p.Airlines, p.Airports} {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}

	if err := writeAirlinesSample(p.Airlines); err != nil {
		return err
	}
	if err := writeAirportsSample(p.Airports); err != nil {
		return err
	}
	return writeFlightsSample(p.Flights, opts)
}

func writeAirlinesSample(path string) error {
	records := [][]string{{colIATACode, colAirlineName}}
	for _, a := range sampleAirlines {
		records = append(records, []string{a[0], a[1]})
	}
	return writeFrame(path, records)
}

func writeAirportsSample(path string) error {
	records := [][]string{{colIATACode, "AIRPORT", colCity, "STATE", "COUNTRY", colLatitude, colLongitude}}
	for _, a := range sampleAirports {
		lat, lon := "", ""
		if a.mappable {
			lat = strconv.FormatFloat(a.lat, 'f', 5, 64)
			lon = strconv.FormatFloat(a.lon, 'f', 5, 64)
		}
		records = append(records, []string{a.code, a.city + " Airport", a.city, "", "USA", lat, lon})
	}
	return writeFrame(path, records)
}

// writeFrame writes a reference table through gota so the sample goes through
// the same dataframe layer that reads it back.
func writeFrame(path string, records [][]string) error {
	df := dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nil),
	)
	if df.Err != nil {
		return fmt.Errorf("build %s: %w", path, df.Err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := df.WriteCSV(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func writeFlightsSample(path string, opts SampleOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	buf := bufio.NewWriter(f)
	w := csv.NewWriter(buf)

	header := append([]string{"YEAR", "DAY"}, FlightColumns...)
	if err := w.Write(header); err != nil {
		return err
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed))
	row := make([]string, len(header))
	for i := 0; i < opts.Flights; i++ {
		fillSampleRow(rng, row, i)
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// fillSampleRow fills row in the column order of writeFlightsSample's header.
func fillSampleRow(rng *rand.Rand, row []string, i int) {
	for j := range row {
		row[j] = ""
	}

	airline := sampleAirlines[rng.IntN(len(sampleAirlines))][0]
	origin := sampleAirports[rng.IntN(len(sampleAirports))]
	dest := sampleAirports[rng.IntN(len(sampleAirports))]
	for dest.code == origin.code {
		dest = sampleAirports[rng.IntN(len(sampleAirports))]
	}
	hour := 5 + rng.IntN(19)
	minute := 5 * rng.IntN(12)
	cancelled := rng.IntN(50) == 0

	row[0] = "2015"
	row[1] = strconv.Itoa(1 + rng.IntN(28))
	row[2] = airline
	row[3] = fmt.Sprintf("N%03d%c%c", rng.IntN(1000), 'A'+rune(rng.IntN(26)), 'A'+rune(rng.IntN(26)))
	if i%97 == 0 {
		row[3] = ""
	}
	row[4] = origin.code
	row[5] = dest.code
	row[6] = strconv.Itoa(hour*100 + minute)
	row[8] = strconv.Itoa(sampleDistance(rng, origin, dest))
	row[9] = strconv.Itoa(1 + rng.IntN(7))
	row[10] = strconv.Itoa(1 + rng.IntN(12))

	if cancelled {
		row[11] = "1"
		row[12] = domain.CancellationReasonCodes[rng.IntN(len(domain.CancellationReasonCodes))]
		return
	}
	row[11] = "0"

	// Delays drift later through the day, with a long right tail.
	delay := math.Round(rng.NormFloat64()*12 + float64(hour-12)*0.8)
	if rng.IntN(6) == 0 {
		delay += math.Round(rng.ExpFloat64() * 45)
	}
	delay = max(delay, -20)
	row[7] = strconv.Itoa(int(delay))

	if delay >= 15 {
		// Split the delay across the five causes; security is rare.
		minutes := int(delay)
		shares := [5]int{}
		for m := 0; m < minutes; m++ {
			shares[rng.IntN(5)]++
		}
		if shares[1] > 0 && rng.IntN(10) != 0 {
			shares[0] += shares[1]
			shares[1] = 0
		}
		for j, s := range shares {
			row[13+j] = strconv.Itoa(s)
		}
	}
}

// sampleDistance is the great-circle distance in miles, or a random
// regional distance when either airport has no position.
func sampleDistance(rng *rand.Rand, a, b sampleAirport) int {
	if !a.mappable || !b.mappable {
		return 150 + rng.IntN(850)
	}
	const earthRadiusMiles = 3958.8
	toRad := math.Pi / 180
	lat1, lat2 := a.lat*toRad, b.lat*toRad
	dLat := lat2 - lat1
	dLon := (b.lon - a.lon) * toRad
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return int(math.Round(2 * earthRadiusMiles * math.Asin(math.Sqrt(h))))
}
