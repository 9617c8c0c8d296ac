package domain

import "strconv"

// RouteSeparator joins origin and destination cities in a route label.
const RouteSeparator = " → "

// On-time labels derived from the departure delay.
const (
	LabelOnTime  = "On Time"
	LabelDelayed = "Delayed"
)

// DayNames maps DAY_OF_WEEK 1..7 to labels, in canonical order.
var DayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// MonthNames maps MONTH 1..12 to labels, in canonical order.
var MonthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// OnTimeLabels lists the on-time labels in display order.
var OnTimeLabels = []string{LabelOnTime, LabelDelayed}

// EnrichedFlight is a Flight plus the fields derived from it and the reference
// tables. Derived fields are only ever produced by Enrich.
type EnrichedFlight struct {
	Flight

	AirlineName   Optional[string]
	OriginCity    Optional[string]
	DestCity      Optional[string]
	Route         Optional[string]
	DayName       Optional[string]
	MonthName     Optional[string]
	ScheduledHour Optional[int]
	OnTime        Optional[string]
}

// Enrich derives the computed fields for every flight. It is deterministic:
// the same flights and resolver always produce identical output.
func Enrich(flights []Flight, ref *Resolver) []EnrichedFlight {
	out := make([]EnrichedFlight, len(flights))
	// Route labels repeat heavily; share one string per city pair.
	routes := make(map[[2]string]string)

	for i := range flights {
		f := flights[i]
		e := EnrichedFlight{
			Flight:        f,
			AirlineName:   FromLookup(ref.AirlineName(f.Airline)),
			OriginCity:    FromLookup(ref.City(f.Origin)),
			DestCity:      FromLookup(ref.City(f.Destination)),
			DayName:       FromLookup(DayName(f.DayOfWeek)),
			MonthName:     FromLookup(MonthName(f.Month)),
			ScheduledHour: FromLookup(ScheduledHour(f.ScheduledDeparture)),
			OnTime:        onTimeLabel(f.DepartureDelay),
		}

		origin, okOrigin := e.OriginCity.Get()
		dest, okDest := e.DestCity.Get()
		if okOrigin && okDest {
			key := [2]string{origin, dest}
			label, ok := routes[key]
			if !ok {
				label = RouteLabel(origin, dest)
				routes[key] = label
			}
			e.Route = Some(label)
		}

		out[i] = e
	}
	return out
}

// RouteLabel formats a city pair as a route.
func RouteLabel(originCity, destCity string) string {
	return originCity + RouteSeparator + destCity
}

// DayName returns the short label for DAY_OF_WEEK 1..7.
func DayName(day int) (string, bool) {
	if day < 1 || day > len(DayNames) {
		return "", false
	}
	return DayNames[day-1], true
}

// MonthName returns the short label for MONTH 1..12.
func MonthName(month int) (string, bool) {
	if month < 1 || month > len(MonthNames) {
		return "", false
	}
	return MonthNames[month-1], true
}

// ScheduledHour extracts the hour from an HHMM departure time that may have
// lost its leading zeros, e.g. 555 -> 5 and 5 -> 0.
func ScheduledHour(hhmm int) (int, bool) {
	if hhmm < 0 || hhmm > 2400 {
		return 0, false
	}
	s := strconv.Itoa(hhmm)
	for len(s) < 4 {
		s = "0" + s
	}
	hour, err := strconv.Atoi(s[:2])
	if err != nil {
		return 0, false
	}
	// 2400 is midnight at the end of the day.
	if hour == 24 {
		hour = 0
	}
	return hour, true
}

// OnTimeLabel classifies a departure delay: zero or negative is on time.
func OnTimeLabel(delay float64) string {
	if delay <= 0 {
		return LabelOnTime
	}
	return LabelDelayed
}

func onTimeLabel(delay Optional[float64]) Optional[string] {
	d, ok := delay.Get()
	if !ok {
		return None[string]()
	}
	return Some(OnTimeLabel(d))
}
