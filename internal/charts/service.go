package charts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/flight-delay-dashboard/internal/domain"
	"github.com/couchcryptid/flight-delay-dashboard/internal/observability"
)

var (
	// ErrUnknownChart is returned for a chart id outside the catalog.
	ErrUnknownChart = errors.New("unknown chart")
	// ErrInvalidHour is returned when an hour filter is outside 0-23.
	ErrInvalidHour = errors.New("hour must be between 0 and 23")
	// ErrNotReady is returned before a dataset has been attached.
	ErrNotReady = errors.New("dataset not loaded")
)

// Request outcomes recorded in metrics.
const (
	OutcomeOK         = "ok"
	OutcomeNotFound   = "not_found"
	OutcomeBadRequest = "bad_request"
	OutcomeNotReady   = "not_ready"
)

// Service builds chart specs from the loaded dataset and caches them. The
// dataset is immutable, so a cached spec stays valid for the process lifetime.
type Service struct {
	table   atomic.Pointer[domain.Table]
	summary atomic.Pointer[Summary]
	defs    map[string]*Definition
	order   []Definition
	cache   *lruCache[Spec]
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewService creates a Service with an LRU of cacheSize specs. A cacheSize of
// zero disables caching.
func NewService(logger *slog.Logger, metrics *observability.Metrics, cacheSize int) *Service {
	s := &Service{
		defs:    make(map[string]*Definition, len(catalog)),
		order:   Catalog(),
		logger:  logger,
		metrics: metrics,
	}
	for i := range s.order {
		s.defs[s.order[i].ID] = &s.order[i]
	}
	if cacheSize > 0 {
		s.cache = newLRUCache[Spec](cacheSize)
	}
	return s
}

// Attach makes t the dataset served by every chart. It is called once after
// loading.
func (s *Service) Attach(t *domain.Table) {
	s.summary.Store(nil)
	s.table.Store(t)
}

// Table returns the attached dataset, or nil before Attach.
func (s *Service) Table() *domain.Table {
	return s.table.Load()
}

// CheckReadiness returns nil once a dataset is attached.
func (s *Service) CheckReadiness(_ context.Context) error {
	if s.table.Load() == nil {
		return ErrNotReady
	}
	return nil
}

// Definitions returns the chart catalog in page order.
func (s *Service) Definitions() []Definition {
	return s.order
}

// Definition looks up a chart by id.
func (s *Service) Definition(id string) (*Definition, bool) {
	d, ok := s.defs[id]
	return d, ok
}

// Get returns the spec for chart id under filter f.
func (s *Service) Get(id string, f Filter) (Spec, error) {
	def, ok := s.defs[id]
	if !ok {
		s.metrics.ChartRequests.WithLabelValues("unknown", OutcomeNotFound).Inc()
		return Spec{}, fmt.Errorf("%w: %q", ErrUnknownChart, id)
	}
	if def.Filter == FilterHour && (f.Hour < 0 || f.Hour > 23) {
		s.metrics.ChartRequests.WithLabelValues(id, OutcomeBadRequest).Inc()
		return Spec{}, fmt.Errorf("%w: %d", ErrInvalidHour, f.Hour)
	}
	t := s.table.Load()
	if t == nil {
		s.metrics.ChartRequests.WithLabelValues(id, OutcomeNotReady).Inc()
		return Spec{}, ErrNotReady
	}

	f = def.Normalize(f)
	build := func() Spec {
		start := time.Now()
		spec := def.Build(t, f)
		elapsed := time.Since(start)
		s.metrics.ChartComputeDuration.WithLabelValues(id).Observe(elapsed.Seconds())
		s.logger.Debug("chart computed", "chart", id, "airline", f.Airline, "hour", f.Hour, "duration", elapsed)
		return spec
	}

	var spec Spec
	if s.cache == nil {
		spec = build()
	} else {
		var hit bool
		spec, hit = s.cache.getOrCompute(CacheKey(id, f), build)
		if hit {
			s.metrics.ChartCache.WithLabelValues("hit").Inc()
		} else {
			s.metrics.ChartCache.WithLabelValues("miss").Inc()
		}
	}

	s.metrics.ChartRequests.WithLabelValues(id, OutcomeOK).Inc()
	return spec, nil
}

// All builds every chart in catalog order under one filter. Each chart uses
// only the part of f it reacts to.
func (s *Service) All(f Filter) ([]Spec, error) {
	specs := make([]Spec, 0, len(s.order))
	for _, d := range s.order {
		spec, err := s.Get(d.ID, f)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// CacheKey identifies a computed spec as "id|airline|hour".
func CacheKey(id string, f Filter) string {
	return id + "|" + f.Airline + "|" + strconv.Itoa(f.Hour)
}

// Airlines returns the airline reference rows in file order, for filter
// dropdowns. It is empty before Attach.
func (s *Service) Airlines() []domain.Airline {
	t := s.table.Load()
	if t == nil || t.Ref == nil {
		return []domain.Airline{}
	}
	return t.Ref.Airlines()
}
