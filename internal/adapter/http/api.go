package http

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/couchcryptid/flight-delay-dashboard/internal/charts"
	"github.com/couchcryptid/flight-delay-dashboard/internal/export"
)

func (s *Server) handleAirlines(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.charts.Airlines())
}

func (s *Server) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.charts.Definitions())
}

func (s *Server) handleSummary(w http.ResponseWriter, _ *http.Request) {
	sum, err := s.charts.Summary()
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	spec, ok := s.chartFor(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, spec)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	spec, ok := s.chartFor(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteChart(&buf, spec); err != nil {
		s.logger.Error("export chart failed", "chart", spec.ID, "error", err)
		writeError(w, http.StatusInternalServerError, errors.New("export failed"))
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", spec.ID+".xlsx"))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes()) //nolint:errcheck // client may have gone away
}

// chartFor resolves the chart named in the URL under the request's filter,
// writing the error response itself when it fails.
func (s *Server) chartFor(w http.ResponseWriter, r *http.Request) (charts.Spec, bool) {
	id := chi.URLParam(r, "id")

	f, err := s.parseFilter(r, id)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return charts.Spec{}, false
	}

	spec, err := s.charts.Get(id, f)
	switch {
	case err == nil:
		return spec, true
	case errors.Is(err, charts.ErrUnknownChart):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, charts.ErrInvalidHour):
		writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, charts.ErrNotReady):
		writeError(w, http.StatusServiceUnavailable, err)
	default:
		s.logger.Error("chart failed", "chart", id, "error", err)
		writeError(w, http.StatusInternalServerError, errors.New("internal error"))
	}
	return charts.Spec{}, false
}

// parseFilter reads ?airline= and ?hour=. A malformed hour is only an error
// for charts that use it; other charts ignore the parameter.
func (s *Server) parseFilter(r *http.Request, id string) (charts.Filter, error) {
	q := r.URL.Query()
	f := charts.Filter{
		Airline: strings.ToUpper(strings.TrimSpace(q.Get("airline"))),
		Hour:    s.defaultHour,
	}

	raw := strings.TrimSpace(q.Get("hour"))
	if raw == "" {
		return f, nil
	}
	hour, err := strconv.Atoi(raw)
	if err != nil {
		if def, ok := s.charts.Definition(id); ok && def.Filter == charts.FilterHour {
			return f, fmt.Errorf("%w: %q", charts.ErrInvalidHour, raw)
		}
		return f, nil
	}
	f.Hour = hour
	return f, nil
}
