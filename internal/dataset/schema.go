package dataset

import (
	"fmt"
	"strings"
)

// Column names in flights.csv.
const (
	colAirline            = "AIRLINE"
	colTailNumber         = "TAIL_NUMBER"
	colOrigin             = "ORIGIN_AIRPORT"
	colDestination        = "DESTINATION_AIRPORT"
	colScheduledDeparture = "SCHEDULED_DEPARTURE"
	colDepartureDelay     = "DEPARTURE_DELAY"
	colDistance           = "DISTANCE"
	colDayOfWeek          = "DAY_OF_WEEK"
	colMonth              = "MONTH"
	colCancelled          = "CANCELLED"
	colCancellationReason = "CANCELLATION_REASON"
	colAirSystemDelay     = "AIR_SYSTEM_DELAY"
	colSecurityDelay      = "SECURITY_DELAY"
	colAirlineDelay       = "AIRLINE_DELAY"
	colLateAircraftDelay  = "LATE_AIRCRAFT_DELAY"
	colWeatherDelay       = "WEATHER_DELAY"
)

// Column names in the reference files.
const (
	colIATACode    = "IATA_CODE"
	colAirlineName = "AIRLINE"
	colCity        = "CITY"
	colLatitude    = "LATITUDE"
	colLongitude   = "LONGITUDE"
)

// FlightColumns are the columns flights.csv must provide.
var FlightColumns = []string{
	colAirline, colTailNumber, colOrigin, colDestination,
	colScheduledDeparture, colDepartureDelay, colDistance,
	colDayOfWeek, colMonth, colCancelled, colCancellationReason,
	colAirSystemDelay, colSecurityDelay, colAirlineDelay,
	colLateAircraftDelay, colWeatherDelay,
}

// AirlineColumns are the columns airlines.csv must provide.
var AirlineColumns = []string{colIATACode, colAirlineName}

// AirportColumns are the columns airports.csv must provide.
var AirportColumns = []string{colIATACode, colCity, colLatitude, colLongitude}

// missingValues are the cell spellings treated as absent.
var missingValues = []string{"", "NA", "NaN"}

// checkColumns returns ErrMissingColumn naming every required column the
// header lacks.
func checkColumns(file string, header, required []string) error {
	have := make(map[string]struct{}, len(header))
	for _, h := range header {
		have[h] = struct{}{}
	}
	var missing []string
	for _, r := range required {
		if _, ok := have[r]; !ok {
			missing = append(missing, r)
		}
	}
	if len(missing) > 0 {
		return &ParseError{File: file, Err: fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))}
	}
	return nil
}

func isMissing(s string) bool {
	for _, m := range missingValues {
		if s == m {
			return true
		}
	}
	return false
}
