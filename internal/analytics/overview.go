package analytics

import (
	"iter"

	"github.com/couchcryptid/flight-delay-dashboard/internal/domain"
)

// Highlight tags for the market share chart.
const (
	TagSelected = "Selected"
	TagOther    = "Other"
)

// Top-N sizes used on the overview page.
const (
	TopRoutesN      = 20
	TopCitiesN      = 20
	BusiestAirportN = 10
)

// MarketShare counts flights per airline over the whole table, largest
// first. When airline is set every bar is tagged Selected or Other; an
// unknown code tags every bar Other.
func MarketShare(t *domain.Table, airline string) []Point {
	points := SortDesc(CountBy(Rows(t), AirlineNameKey, nil))
	if airline == "" {
		return points
	}
	selected, ok := ref(t).AirlineName(airline)
	for i := range points {
		points[i].Tag = TagOther
		if ok && points[i].Label == selected {
			points[i].Tag = TagSelected
		}
	}
	return points
}

// TopRoutes returns the busiest routes for the selected airline.
func TopRoutes(t *domain.Table, airline string) []Point {
	return TopN(CountBy(Rows(t, ForAirline(airline)), RouteKey, nil), TopRoutesN)
}

// FlightMap samples the selected airline's flights for the route map.
func FlightMap(t *domain.Table, airline string) GeoSample {
	return SampleGeo(Rows(t, ForAirline(airline)), ref(t))
}

// FlightsByDay counts flights per weekday, Mon through Sun.
func FlightsByDay(t *domain.Table, airline string) []Point {
	return Complete(CountBy(Rows(t, ForAirline(airline)), DayKey, nil), domain.DayNames)
}

// FlightsByMonth counts flights per month, Jan through Dec.
func FlightsByMonth(t *domain.Table, airline string) []Point {
	return Complete(CountBy(Rows(t, ForAirline(airline)), MonthKey, nil), domain.MonthNames)
}

// TopOriginCities returns the most common departure cities.
func TopOriginCities(t *domain.Table, airline string) []Point {
	return TopN(CountBy(Rows(t, ForAirline(airline)), OriginCityKey, nil), TopCitiesN)
}

// TopDestinationCities returns the most common arrival cities.
func TopDestinationCities(t *domain.Table, airline string) []Point {
	return TopN(CountBy(Rows(t, ForAirline(airline)), DestCityKey, nil), TopCitiesN)
}

// BusiestAirports counts departures plus arrivals per airport code and
// labels the top airports "City (CODE)", or just the code when the city is
// unknown.
func BusiestAirports(t *domain.Table, airline string) []Point {
	points := TopN(CountLabels(airportCodes(Rows(t, ForAirline(airline)))), BusiestAirportN)
	r := ref(t)
	for i := range points {
		code := points[i].Label
		if city, ok := r.City(code); ok {
			points[i].Label = city + " (" + code + ")"
		}
	}
	return points
}

// airportCodes yields every origin code, then every destination code.
func airportCodes(rows iter.Seq[*domain.EnrichedFlight]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for f := range rows {
			if !yield(f.Origin) {
				return
			}
		}
		for f := range rows {
			if !yield(f.Destination) {
				return
			}
		}
	}
}

func ref(t *domain.Table) *domain.Resolver {
	if t == nil || t.Ref == nil {
		return domain.NewResolver(nil, nil)
	}
	return t.Ref
}
