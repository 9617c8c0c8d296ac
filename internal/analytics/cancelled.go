package analytics

import (
	"github.com/couchcryptid/flight-delay-dashboard/internal/domain"
)

// Top-N sizes used on the cancellations page.
const (
	TopCancelledAirportsN = 10
	TopCancelledRoutesN   = 15
	TopRouteRatesN        = 15
	TopCancelledTailsN    = 10
)

// hourlyHeadroom is added to the largest count to fix the animated y range.
const hourlyHeadroom = 10

// CancellationsByAirline counts cancelled flights per airline, smallest
// first. Airlines without cancellations report zero.
func CancellationsByAirline(t *domain.Table) []Point {
	return SortAsc(CountBy(Rows(t), AirlineNameKey, Cancelled))
}

// CancelledVsCompleted splits all flights into cancelled and completed.
func CancelledVsCompleted(t *domain.Table) []Point {
	return Complete(CountBy(Rows(t), StatusKey, nil), StatusLabels)
}

// CancellationRateByDay returns the percentage of flights cancelled per
// weekday, Mon through Sun.
func CancellationRateByDay(t *domain.Table) []Point {
	return Reorder(RateBy(Rows(t), DayKey, Cancelled), domain.DayNames)
}

// CancellationHeatmap returns the cancellation percentage per
// (weekday, airline).
func CancellationHeatmap(t *domain.Table) Grid {
	return RateGrid(Rows(t), DayKey, AirlineNameKey, Cancelled).Sorted(InOrder(domain.DayNames), Lexical)
}

// CancellationReasons counts cancelled flights per reason, labelled
// Airline, Weather, NAS and Security. Unknown codes are dropped.
func CancellationReasons(t *domain.Table) []Point {
	points := Complete(CountBy(Rows(t, Cancelled), ReasonKey, nil), domain.CancellationReasonCodes)
	for i := range points {
		points[i].Label, _ = domain.CancellationReasonLabel(points[i].Label)
	}
	return points
}

// CancelledAirports returns the origin airports with the most cancellations,
// labelled "City (CODE)" or by code when the city is unknown.
func CancelledAirports(t *domain.Table) []Point {
	points := TopN(CountBy(Rows(t), OriginCodeKey, Cancelled), TopCancelledAirportsN)
	r := ref(t)
	for i := range points {
		code := points[i].Label
		if city, ok := r.City(code); ok {
			points[i].Label = city + " (" + code + ")"
		}
	}
	return points
}

// CancelledMap samples cancelled flights for the route map.
func CancelledMap(t *domain.Table) GeoSample {
	return SampleGeo(Rows(t, Cancelled), ref(t))
}

// CancelledRoutes returns the routes with the most cancellations.
func CancelledRoutes(t *domain.Table) []Point {
	return TopN(CountBy(Rows(t), RouteKey, Cancelled), TopCancelledRoutesN)
}

// RouteCancellationRates returns the routes with the highest cancellation
// percentage.
func RouteCancellationRates(t *domain.Table) []Point {
	return TopN(RateBy(Rows(t), RouteKey, Cancelled), TopRouteRatesN)
}

// CancelledTails returns the aircraft with the most cancellations.
func CancelledTails(t *domain.Table) []Point {
	return TopN(CountBy(Rows(t), TailKey, Cancelled), TopCancelledTailsN)
}

// HourlyCancellations counts cancellations per airline with one frame per
// scheduled hour 0 through 23. Every frame lists the same airlines in the
// same order, and RangeY spans zero to the largest count plus headroom.
func HourlyCancellations(t *domain.Table) Frames {
	airlines := make([]string, 0)
	for _, p := range CountBy(Rows(t), AirlineNameKey, nil) {
		airlines = append(airlines, p.Label)
	}

	counts := make(map[[2]string]float64)
	for f := range Rows(t, Cancelled) {
		name, okName := f.AirlineName.Get()
		hour, okHour := HourKey(f)
		if okName && okHour {
			counts[[2]string{hour, name}]++
		}
	}

	var peak float64
	frames := make([]Frame, len(HourLabels))
	for i, hour := range HourLabels {
		points := make([]Point, len(airlines))
		for j, name := range airlines {
			v := counts[[2]string{hour, name}]
			points[j] = Point{Label: name, Value: v}
			peak = max(peak, v)
		}
		frames[i] = Frame{Label: hour, Points: points}
	}
	return Frames{Frames: frames, RangeY: [2]float64{0, peak + hourlyHeadroom}}
}
