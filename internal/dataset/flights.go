package dataset

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/couchcryptid/flight-delay-dashboard/internal/domain"
)

// ctxCheckInterval is how many rows are parsed between cancellation checks.
const ctxCheckInterval = 1 << 16

// readFlights streams flights.csv into typed records. The file is large, so
// rows are decoded one at a time with a reused record buffer.
func readFlights(ctx context.Context, path string) ([]domain.Flight, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open flights: %w", err)
	}
	defer f.Close()

	return parseFlights(ctx, path, f)
}

func parseFlights(ctx context.Context, file string, r io.Reader) ([]domain.Flight, error) {
	reader := csv.NewReader(bufio.NewReaderSize(r, 1<<20))
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, malformed(file, 0, "", "", errors.New("empty file"))
		}
		return nil, malformed(file, 1, "", "", err)
	}
	header = normalizeHeader(header)
	if err := checkColumns(file, header, FlightColumns); err != nil {
		return nil, err
	}

	colIdx := make(map[string]int, len(header))
	for i, h := range header {
		colIdx[h] = i
	}
	codes := make(map[string]string)

	var flights []domain.Flight
	for n := 0; ; n++ {
		if n%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, malformed(file, pe.Line, "", "", pe.Err)
			}
			return nil, malformed(file, 0, "", "", err)
		}

		line, _ := reader.FieldPos(0)
		rec, err := parseFlightRow(rowReader{file: file, line: line, row: row, colIdx: colIdx, codes: codes})
		if err != nil {
			return nil, err
		}
		flights = append(flights, rec)
	}

	return flights, nil
}

// rowReader decodes typed cells from one CSV row, reporting the first failure
// with its file position.
type rowReader struct {
	file   string
	line   int
	row    []string
	colIdx map[string]int
	codes  map[string]string
	err    error
}

func (r *rowReader) get(col string) string {
	return strings.TrimSpace(r.row[r.colIdx[col]])
}

// intern returns a shared copy of s. The csv reader backs every field of a
// row with one string, and codes repeat across millions of rows.
func (r *rowReader) intern(s string) string {
	if v, ok := r.codes[s]; ok {
		return v
	}
	s = strings.Clone(s)
	r.codes[s] = s
	return s
}

func (r *rowReader) fail(col, value string, cause error) {
	if r.err == nil {
		r.err = malformed(r.file, r.line, col, value, cause)
	}
}

func (r *rowReader) str(col string) domain.Optional[string] {
	s := r.get(col)
	if isMissing(s) {
		return domain.None[string]()
	}
	return domain.Some(r.intern(s))
}

func (r *rowReader) requiredStr(col string) string {
	s := r.get(col)
	if isMissing(s) {
		r.fail(col, s, errors.New("required value is empty"))
		return ""
	}
	return r.intern(s)
}

func (r *rowReader) float(col string) domain.Optional[float64] {
	s := r.get(col)
	if isMissing(s) {
		return domain.None[float64]()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		r.fail(col, s, errors.New("not a number"))
		return domain.None[float64]()
	}
	return domain.Some(v)
}

// intIn parses a required integer column and checks it against [lo, hi].
// Integral floats such as "5.0" are accepted.
func (r *rowReader) intIn(col string, lo, hi int) int {
	s := r.get(col)
	v, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != math.Trunc(f) {
			r.fail(col, s, errors.New("not an integer"))
			return 0
		}
		v = int(f)
	}
	if v < lo || v > hi {
		r.fail(col, s, fmt.Errorf("out of range [%d, %d]", lo, hi))
		return 0
	}
	return v
}

func parseFlightRow(r rowReader) (domain.Flight, error) {
	f := domain.Flight{
		Airline:            r.requiredStr(colAirline),
		TailNumber:         r.str(colTailNumber),
		Origin:             r.requiredStr(colOrigin),
		Destination:        r.requiredStr(colDestination),
		ScheduledDeparture: r.intIn(colScheduledDeparture, 0, 2400),
		DepartureDelay:     r.float(colDepartureDelay),
		Distance:           r.float(colDistance),
		DayOfWeek:          r.intIn(colDayOfWeek, 1, 7),
		Month:              r.intIn(colMonth, 1, 12),
		Cancelled:          r.intIn(colCancelled, 0, 1) == 1,
		CancellationReason: r.str(colCancellationReason),
		Causes: domain.CauseDelays{
			AirSystem:    r.float(colAirSystemDelay),
			Security:     r.float(colSecurityDelay),
			Airline:      r.float(colAirlineDelay),
			LateAircraft: r.float(colLateAircraftDelay),
			Weather:      r.float(colWeatherDelay),
		},
	}
	if r.err != nil {
		return domain.Flight{}, r.err
	}
	return f, nil
}

// normalizeHeader trims whitespace and a UTF-8 byte order mark. The slice is
// copied because the csv reader reuses its record buffer.
func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		out[i] = strings.TrimSpace(h)
	}
	return out
}
