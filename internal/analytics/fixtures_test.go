package analytics

import (
	"time"

	"github.com/couchcryptid/flight-delay-dashboard/internal/domain"
)

var (
	testLoadedAt = time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC)

	laxCoord = domain.Coord{Lat: 33.94254, Lon: -118.40807}
	jfkCoord = domain.Coord{Lat: 40.63975, Lon: -73.77893}
	sfoCoord = domain.Coord{Lat: 37.619, Lon: -122.37484}
)

func testResolver() *domain.Resolver {
	return domain.NewResolver(
		[]domain.Airline{
			{Code: "AA", Name: "American"},
			{Code: "BB", Name: "Bravo"},
			{Code: "CC", Name: "Charlie"},
		},
		[]domain.Airport{
			{Code: "LAX", City: domain.Some("Los Angeles"), Latitude: domain.Some(laxCoord.Lat), Longitude: domain.Some(laxCoord.Lon)},
			{Code: "JFK", City: domain.Some("New York"), Latitude: domain.Some(jfkCoord.Lat), Longitude: domain.Some(jfkCoord.Lon)},
			{Code: "SFO", City: domain.Some("San Francisco"), Latitude: domain.Some(sfoCoord.Lat), Longitude: domain.Some(sfoCoord.Lon)},
			{Code: "ECP", City: domain.Some("Panama City")},
		},
	)
}

type flightOpt func(f *domain.Flight)

// flight builds an operated Monday January flight departing at 12:00 with no
// recorded delay.
func flight(airline, origin, dest string, opts ...flightOpt) domain.Flight {
	f := domain.Flight{
		Airline:            airline,
		Origin:             origin,
		Destination:        dest,
		ScheduledDeparture: 1200,
		DayOfWeek:          1,
		Month:              1,
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

func delay(minutes float64) flightOpt {
	return func(f *domain.Flight) { f.DepartureDelay = domain.Some(minutes) }
}

func departs(hhmm int) flightOpt {
	return func(f *domain.Flight) { f.ScheduledDeparture = hhmm }
}

func onDay(day int) flightOpt {
	return func(f *domain.Flight) { f.DayOfWeek = day }
}

func inMonth(month int) flightOpt {
	return func(f *domain.Flight) { f.Month = month }
}

func distance(miles float64) flightOpt {
	return func(f *domain.Flight) { f.Distance = domain.Some(miles) }
}

func tail(number string) flightOpt {
	return func(f *domain.Flight) { f.TailNumber = domain.Some(number) }
}

func cancelled(reason string) flightOpt {
	return func(f *domain.Flight) {
		f.Cancelled = true
		if reason != "" {
			f.CancellationReason = domain.Some(reason)
		}
	}
}

func causes(airSystem, security, airline, lateAircraft, weather float64) flightOpt {
	return func(f *domain.Flight) {
		f.Causes = domain.CauseDelays{
			AirSystem:    domain.Some(airSystem),
			Security:     domain.Some(security),
			Airline:      domain.Some(airline),
			LateAircraft: domain.Some(lateAircraft),
			Weather:      domain.Some(weather),
		}
	}
}

func newTable(flights ...domain.Flight) *domain.Table {
	return domain.NewTable(flights, testResolver(), testLoadedAt)
}

func labels(points []Point) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = p.Label
	}
	return out
}

func values(points []Point) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Value
	}
	return out
}

func asMap(points []Point) map[string]float64 {
	out := make(map[string]float64, len(points))
	for _, p := range points {
		out[p.Label] = p.Value
	}
	return out
}
