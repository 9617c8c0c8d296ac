package analytics

import (
	"iter"
	"strconv"

	"github.com/couchcryptid/flight-delay-dashboard/internal/domain"
)

// Predicate selects flights.
type Predicate func(f *domain.EnrichedFlight) bool

// Key extracts a category from a flight. Flights without the category are
// skipped by every aggregate.
type Key func(f *domain.EnrichedFlight) (string, bool)

// Value extracts a numeric measure from a flight.
type Value func(f *domain.EnrichedFlight) (float64, bool)

// Rows yields the flights of t that satisfy every predicate. Nil predicates
// match everything.
func Rows(t *domain.Table, preds ...Predicate) iter.Seq[*domain.EnrichedFlight] {
	return func(yield func(*domain.EnrichedFlight) bool) {
		if t == nil {
			return
		}
	next:
		for i := range t.Flights {
			f := &t.Flights[i]
			for _, p := range preds {
				if p != nil && !p(f) {
					continue next
				}
			}
			if !yield(f) {
				return
			}
		}
	}
}

// ForAirline matches flights of one airline code. An empty code matches every
// flight; an unknown code matches none.
func ForAirline(code string) Predicate {
	if code == "" {
		return nil
	}
	return func(f *domain.EnrichedFlight) bool { return f.Airline == code }
}

// AtHour matches flights scheduled to depart within the given hour.
func AtHour(hour int) Predicate {
	return func(f *domain.EnrichedFlight) bool {
		h, ok := f.ScheduledHour.Get()
		return ok && h == hour
	}
}

// Cancelled matches cancelled flights.
func Cancelled(f *domain.EnrichedFlight) bool { return f.Cancelled }

// Operated matches flights that were not cancelled.
func Operated(f *domain.EnrichedFlight) bool { return !f.Cancelled }

// DelayBetween matches flights whose departure delay lies in [lo, hi].
func DelayBetween(lo, hi float64) Predicate {
	return func(f *domain.EnrichedFlight) bool {
		d, ok := f.DepartureDelay.Get()
		return ok && d >= lo && d <= hi
	}
}

// Category keys.
var (
	AirlineNameKey Key = func(f *domain.EnrichedFlight) (string, bool) { return f.AirlineName.Get() }
	RouteKey       Key = func(f *domain.EnrichedFlight) (string, bool) { return f.Route.Get() }
	OriginCityKey  Key = func(f *domain.EnrichedFlight) (string, bool) { return f.OriginCity.Get() }
	DestCityKey    Key = func(f *domain.EnrichedFlight) (string, bool) { return f.DestCity.Get() }
	DayKey         Key = func(f *domain.EnrichedFlight) (string, bool) { return f.DayName.Get() }
	MonthKey       Key = func(f *domain.EnrichedFlight) (string, bool) { return f.MonthName.Get() }
	OnTimeKey      Key = func(f *domain.EnrichedFlight) (string, bool) { return f.OnTime.Get() }
	TailKey        Key = func(f *domain.EnrichedFlight) (string, bool) { return f.TailNumber.Get() }
	OriginCodeKey  Key = func(f *domain.EnrichedFlight) (string, bool) { return f.Origin, f.Origin != "" }
	ReasonKey      Key = func(f *domain.EnrichedFlight) (string, bool) { return f.CancellationReason.Get() }
	StatusKey      Key = func(f *domain.EnrichedFlight) (string, bool) {
		if f.Cancelled {
			return StatusCancelled, true
		}
		return StatusCompleted, true
	}
	HourKey Key = func(f *domain.EnrichedFlight) (string, bool) {
		h, ok := f.ScheduledHour.Get()
		if !ok {
			return "", false
		}
		return HourLabel(h), true
	}
)

// DelayValue is the departure delay in minutes.
var DelayValue Value = func(f *domain.EnrichedFlight) (float64, bool) { return f.DepartureDelay.Get() }

// Flight status labels.
const (
	StatusCancelled = "Cancelled"
	StatusCompleted = "Completed"
)

// StatusLabels lists the status labels in display order.
var StatusLabels = []string{StatusCancelled, StatusCompleted}

// HourLabels lists hours 0..23 as labels.
var HourLabels = func() []string {
	labels := make([]string, 24)
	for h := range labels {
		labels[h] = HourLabel(h)
	}
	return labels
}()

// HourLabel formats an hour of day as a category label.
func HourLabel(hour int) string {
	return strconv.Itoa(hour)
}
