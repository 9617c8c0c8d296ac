package charts

import (
	"time"

	"github.com/couchcryptid/flight-delay-dashboard/internal/analytics"
	"github.com/couchcryptid/flight-delay-dashboard/internal/domain"
)

// Summary describes the loaded dataset.
type Summary struct {
	domain.Coverage
	LoadedAt       time.Time     `json:"loaded_at"`
	DepartureDelay analytics.Box `json:"departure_delay"`
}

// BuildSummary walks t once for coverage and once for the delay summary.
func BuildSummary(t *domain.Table) Summary {
	return Summary{
		Coverage:       t.Coverage(),
		LoadedAt:       t.LoadedAt,
		DepartureDelay: analytics.SummarizeDelays(analytics.Rows(t, analytics.Operated)),
	}
}

// Summary returns the dataset summary, computing it on first use.
func (s *Service) Summary() (Summary, error) {
	if sum := s.summary.Load(); sum != nil {
		return *sum, nil
	}
	t := s.table.Load()
	if t == nil {
		return Summary{}, ErrNotReady
	}
	sum := BuildSummary(t)
	s.summary.Store(&sum)
	return sum, nil
}
