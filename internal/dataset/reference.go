package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/couchcryptid/flight-delay-dashboard/internal/domain"
)

// readFrame loads a small reference CSV as an all-string dataframe and checks
// its header. Missing cells come back as NA elements. A header-only file
// passes with ok false, since gota cannot hold a frame without rows.
func readFrame(path string, required []string) (df dataframe.DataFrame, ok bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, false, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return dataframe.DataFrame{}, false, malformed(path, 0, "", "", err)
	}
	if len(records) == 0 {
		return dataframe.DataFrame{}, false, malformed(path, 0, "", "", errors.New("empty file"))
	}
	if err := checkColumns(path, records[0], required); err != nil {
		return dataframe.DataFrame{}, false, err
	}
	if len(records) == 1 {
		return dataframe.DataFrame{}, false, nil
	}

	df = dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(missingValues),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, false, malformed(path, 0, "", "", df.Err)
	}
	return df, true, nil
}

func readAirlines(path string) ([]domain.Airline, error) {
	df, ok, err := readFrame(path, AirlineColumns)
	if err != nil || !ok {
		return nil, err
	}

	codes := df.Col(colIATACode)
	names := df.Col(colAirlineName)

	airlines := make([]domain.Airline, 0, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		code, ok := cell(codes, i)
		if !ok {
			return nil, malformed(path, i+2, colIATACode, "", errors.New("required value is empty"))
		}
		name, _ := cell(names, i)
		airlines = append(airlines, domain.Airline{Code: code, Name: name})
	}
	return airlines, nil
}

func readAirports(path string) ([]domain.Airport, error) {
	df, ok, err := readFrame(path, AirportColumns)
	if err != nil || !ok {
		return nil, err
	}

	codes := df.Col(colIATACode)
	cities := df.Col(colCity)
	lats := df.Col(colLatitude)
	lons := df.Col(colLongitude)

	airports := make([]domain.Airport, 0, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		line := i + 2
		code, ok := cell(codes, i)
		if !ok {
			return nil, malformed(path, line, colIATACode, "", errors.New("required value is empty"))
		}
		lat, err := floatCell(lats, i)
		if err != nil {
			return nil, malformed(path, line, colLatitude, lats.Elem(i).String(), err)
		}
		lon, err := floatCell(lons, i)
		if err != nil {
			return nil, malformed(path, line, colLongitude, lons.Elem(i).String(), err)
		}
		airports = append(airports, domain.Airport{
			Code:      code,
			City:      domain.FromLookup(cell(cities, i)),
			Latitude:  lat,
			Longitude: lon,
		})
	}
	return airports, nil
}

// cell returns the trimmed string at row i, or false when it is NA or blank.
func cell(s series.Series, i int) (string, bool) {
	e := s.Elem(i)
	if e.IsNA() {
		return "", false
	}
	v := strings.TrimSpace(e.String())
	if v == "" {
		return "", false
	}
	return v, true
}

func floatCell(s series.Series, i int) (domain.Optional[float64], error) {
	v, ok := cell(s, i)
	if !ok {
		return domain.None[float64](), nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return domain.None[float64](), errors.New("not a number")
	}
	return domain.Some(f), nil
}
