package charts

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/flight-delay-dashboard/internal/domain"
	"github.com/couchcryptid/flight-delay-dashboard/internal/observability"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testTable() *domain.Table {
	ref := domain.NewResolver(
		[]domain.Airline{{Code: "AA", Name: "American"}, {Code: "BB", Name: "Bravo"}},
		[]domain.Airport{
			{Code: "LAX", City: domain.Some("Los Angeles"), Latitude: domain.Some(33.9), Longitude: domain.Some(-118.4)},
			{Code: "JFK", City: domain.Some("New York"), Latitude: domain.Some(40.6), Longitude: domain.Some(-73.8)},
		},
	)
	flights := []domain.Flight{
		{Airline: "AA", Origin: "LAX", Destination: "JFK", ScheduledDeparture: 1205, DepartureDelay: domain.Some(12.0), Distance: domain.Some(2475.0), DayOfWeek: 1, Month: 1},
		{Airline: "AA", Origin: "JFK", Destination: "LAX", ScheduledDeparture: 800, DepartureDelay: domain.Some(-3.0), Distance: domain.Some(2475.0), DayOfWeek: 2, Month: 1},
		{Airline: "BB", Origin: "JFK", Destination: "LAX", ScheduledDeparture: 1230, DayOfWeek: 3, Month: 2, Cancelled: true, CancellationReason: domain.Some("B")},
	}
	return domain.NewTable(flights, ref, time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC))
}

func newTestService(cacheSize int) (*Service, *observability.Metrics) {
	m := observability.NewMetricsForTesting()
	s := NewService(discardLogger(), m, cacheSize)
	s.Attach(testTable())
	return s, m
}

func TestService_Readiness(t *testing.T) {
	s := NewService(discardLogger(), observability.NewMetricsForTesting(), 8)
	require.ErrorIs(t, s.CheckReadiness(context.Background()), ErrNotReady)

	_, err := s.Get("top_routes", Filter{})
	require.ErrorIs(t, err, ErrNotReady)

	s.Attach(testTable())
	assert.NoError(t, s.CheckReadiness(context.Background()))
	assert.NotNil(t, s.Table())
}

func TestService_Get(t *testing.T) {
	s, m := newTestService(8)

	spec, err := s.Get("flights_by_day", Filter{Airline: "AA", Hour: 7})
	require.NoError(t, err)
	assert.Equal(t, "flights_by_day", spec.ID)
	assert.Equal(t, PageOverview, spec.Page)
	assert.Equal(t, KindBar, spec.Kind)
	assert.Equal(t, Filter{Airline: "AA"}, spec.Filter, "hour is ignored by airline charts")
	assert.Len(t, spec.Points, 7)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ChartRequests.WithLabelValues("flights_by_day", OutcomeOK)), 0)
}

func TestService_Errors(t *testing.T) {
	s, m := newTestService(8)

	tests := []struct {
		name    string
		id      string
		filter  Filter
		wantErr error
	}{
		{"unknown chart", "nope", Filter{}, ErrUnknownChart},
		{"negative hour", "on_time_ratio", Filter{Hour: -1}, ErrInvalidHour},
		{"hour too large", "delay_distribution", Filter{Hour: 24}, ErrInvalidHour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Get(tt.id, tt.filter)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.InDelta(t, 1, testutil.ToFloat64(m.ChartRequests.WithLabelValues("unknown", OutcomeNotFound)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ChartRequests.WithLabelValues("on_time_ratio", OutcomeBadRequest)), 0)
}

func TestService_HourIgnoredWhenUnused(t *testing.T) {
	s, _ := newTestService(8)

	spec, err := s.Get("cancellation_reasons", Filter{Hour: 99, Airline: "ZZ"})
	require.NoError(t, err)
	assert.Equal(t, Filter{}, spec.Filter)
}

func TestService_UnknownAirlineYieldsEmptyChart(t *testing.T) {
	s, _ := newTestService(8)

	spec, err := s.Get("top_routes", Filter{Airline: "ZZ"})
	require.NoError(t, err)
	assert.True(t, spec.Empty())
}

func TestService_Cache(t *testing.T) {
	s, m := newTestService(8)

	first, err := s.Get("top_routes", Filter{Airline: "AA", Hour: 3})
	require.NoError(t, err)
	second, err := s.Get("top_routes", Filter{Airline: "AA", Hour: 17})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.InDelta(t, 1, testutil.ToFloat64(m.ChartCache.WithLabelValues("miss")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ChartCache.WithLabelValues("hit")), 0, "normalized filters share an entry")

	_, err = s.Get("top_routes", Filter{Airline: "BB"})
	require.NoError(t, err)
	assert.InDelta(t, 2, testutil.ToFloat64(m.ChartCache.WithLabelValues("miss")), 0)
}

func TestService_CacheDisabled(t *testing.T) {
	s, m := newTestService(0)

	for range 3 {
		_, err := s.Get("delay_by_airline", Filter{})
		require.NoError(t, err)
	}
	assert.InDelta(t, 0, testutil.ToFloat64(m.ChartCache.WithLabelValues("hit")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.ChartCache.WithLabelValues("miss")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.ChartRequests.WithLabelValues("delay_by_airline", OutcomeOK)), 0)
}

func TestService_All(t *testing.T) {
	s, _ := newTestService(64)

	specs, err := s.All(Filter{Airline: "AA", Hour: 12})
	require.NoError(t, err)
	require.Len(t, specs, len(catalog))

	for _, spec := range specs {
		raw, err := json.Marshal(spec)
		require.NoError(t, err, spec.ID)
		assert.Contains(t, string(raw), `"id":"`+spec.ID+`"`)
	}

	_, err = s.All(Filter{Hour: 30})
	assert.ErrorIs(t, err, ErrInvalidHour)
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "top_routes|AA|0", CacheKey("top_routes", Filter{Airline: "AA"}))
	assert.Equal(t, "on_time_ratio||12", CacheKey("on_time_ratio", Filter{Hour: 12}))
}

func TestService_Summary(t *testing.T) {
	s := NewService(discardLogger(), observability.NewMetricsForTesting(), 0)
	_, err := s.Summary()
	require.ErrorIs(t, err, ErrNotReady)

	s.Attach(testTable())
	sum, err := s.Summary()
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Flights)
	assert.Equal(t, 1, sum.Cancelled)
	assert.Equal(t, 2, sum.Airlines)
	assert.Equal(t, s.Table().LoadedAt, sum.LoadedAt)
	assert.Equal(t, 2, sum.DepartureDelay.Count)
	assert.InDelta(t, -3.0, sum.DepartureDelay.Min, 1e-9)

	raw, err := json.Marshal(sum)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"flights":3`)
	assert.Contains(t, string(raw), `"loaded_at":"2026-03-02T09:30:00Z"`)
}
