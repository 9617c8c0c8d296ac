package domain

import "time"

// Flight is one row of flights.csv after schema validation. Source fields are
// never modified once loaded.
type Flight struct {
	Airline            string
	TailNumber         Optional[string]
	Origin             string
	Destination        string
	ScheduledDeparture int // HHMM, not zero-padded
	DepartureDelay     Optional[float64]
	Distance           Optional[float64]
	DayOfWeek          int // 1 = Monday
	Month              int // 1 = January
	Cancelled          bool
	CancellationReason Optional[string]
	Causes             CauseDelays
}

// CauseDelays holds the per-cause delay minutes reported for late arrivals.
type CauseDelays struct {
	AirSystem    Optional[float64]
	Security     Optional[float64]
	Airline      Optional[float64]
	LateAircraft Optional[float64]
	Weather      Optional[float64]
}

// DelayCause names one of the five cause columns.
type DelayCause string

const (
	CauseAirSystem    DelayCause = "AIR_SYSTEM_DELAY"
	CauseSecurity     DelayCause = "SECURITY_DELAY"
	CauseAirline      DelayCause = "AIRLINE_DELAY"
	CauseLateAircraft DelayCause = "LATE_AIRCRAFT_DELAY"
	CauseWeather      DelayCause = "WEATHER_DELAY"
)

// DelayCauses lists the cause columns in source order.
var DelayCauses = []DelayCause{
	CauseAirSystem,
	CauseSecurity,
	CauseAirline,
	CauseLateAircraft,
	CauseWeather,
}

// Minutes returns the delay attributed to the given cause.
func (c CauseDelays) Minutes(cause DelayCause) Optional[float64] {
	switch cause {
	case CauseAirSystem:
		return c.AirSystem
	case CauseSecurity:
		return c.Security
	case CauseAirline:
		return c.Airline
	case CauseLateAircraft:
		return c.LateAircraft
	case CauseWeather:
		return c.Weather
	default:
		return None[float64]()
	}
}

// Complete reports whether all five cause columns are present.
func (c CauseDelays) Complete() bool {
	for _, cause := range DelayCauses {
		if !c.Minutes(cause).Present() {
			return false
		}
	}
	return true
}

// Airline is one row of airlines.csv.
type Airline struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Airport is one row of airports.csv. Latitude and longitude are absent when
// the source leaves them empty.
type Airport struct {
	Code      string
	City      Optional[string]
	Latitude  Optional[float64]
	Longitude Optional[float64]
}

// Coord is a mappable airport position.
type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Table is the enriched, read-only dataset shared by every aggregation.
type Table struct {
	Flights  []EnrichedFlight
	Ref      *Resolver
	LoadedAt time.Time
}

// NewTable enriches flights against ref. The input slice is not retained.
func NewTable(flights []Flight, ref *Resolver, loadedAt time.Time) *Table {
	return &Table{
		Flights:  Enrich(flights, ref),
		Ref:      ref,
		LoadedAt: loadedAt,
	}
}

// Cancellation reason codes and their display labels, in code order.
var (
	CancellationReasonCodes  = []string{"A", "B", "C", "D"}
	cancellationReasonLabels = map[string]string{
		"A": "Airline",
		"B": "Weather",
		"C": "NAS",
		"D": "Security",
	}
)

// CancellationReasonLabel returns the display label for a reason code.
func CancellationReasonLabel(code string) (string, bool) {
	label, ok := cancellationReasonLabels[code]
	return label, ok
}
