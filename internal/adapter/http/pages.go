package http

import (
	"bytes"
	"embed"
	"net/http"

	"github.com/couchcryptid/flight-delay-dashboard/internal/charts"
	"github.com/couchcryptid/flight-delay-dashboard/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

type pageSpec struct {
	Path  string
	Page  charts.Page
	Title string
}

var pageSpecs = []pageSpec{
	{Path: "/", Page: charts.PageOverview, Title: "Overview"},
	{Path: "/delays", Page: charts.PageDelays, Title: "Delay Analysis"},
	{Path: "/cancelled", Page: charts.PageCancelled, Title: "Cancelled Flights"},
}

type pageData struct {
	Current     pageSpec
	Nav         []pageSpec
	Charts      []charts.Definition
	Filter      charts.FilterKind
	Airlines    []domain.Airline
	DefaultHour int
	Hours       []int
}

func (s *Server) handlePage(p pageSpec) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		data := pageData{
			Current:     p,
			Nav:         pageSpecs,
			Filter:      charts.FilterNone,
			DefaultHour: s.defaultHour,
		}
		for _, d := range s.charts.Definitions() {
			if d.Page != p.Page {
				continue
			}
			data.Charts = append(data.Charts, d)
			if d.Filter != charts.FilterNone {
				data.Filter = d.Filter
			}
		}
		switch data.Filter {
		case charts.FilterAirline:
			data.Airlines = s.charts.Airlines()
		case charts.FilterHour:
			for h := 0; h < 24; h++ {
				data.Hours = append(data.Hours, h)
			}
		}

		var buf bytes.Buffer
		if err := s.pages.ExecuteTemplate(&buf, "layout.html", data); err != nil {
			s.logger.Error("render page failed", "page", p.Page, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes()) //nolint:errcheck // client may have gone away
	}
}
