package charts

import "github.com/couchcryptid/flight-delay-dashboard/internal/analytics"

// Page groups charts onto one dashboard page.
type Page string

const (
	PageOverview  Page = "overview"
	PageDelays    Page = "delays"
	PageCancelled Page = "cancelled"
)

// Pages lists the dashboard pages in navigation order.
var Pages = []Page{PageOverview, PageDelays, PageCancelled}

// Kind is the visual form the browser renders.
type Kind string

const (
	KindBar         Kind = "bar"
	KindGroupedBar  Kind = "grouped_bar"
	KindLine        Kind = "line"
	KindPie         Kind = "pie"
	KindTreemap     Kind = "treemap"
	KindHeatmap     Kind = "heatmap"
	KindArcMap      Kind = "arc_map"
	KindBox         Kind = "box"
	KindViolin      Kind = "violin"
	KindAnimatedBar Kind = "animated_bar"
)

// FilterKind names the single input a chart reacts to.
type FilterKind string

const (
	FilterNone    FilterKind = "none"
	FilterAirline FilterKind = "airline"
	FilterHour    FilterKind = "hour"
)

// ColorBy tells the renderer which field drives marker colors.
type ColorBy string

const (
	ColorFixed  ColorBy = "fixed"
	ColorValue  ColorBy = "value"
	ColorLabel  ColorBy = "label"
	ColorTag    ColorBy = "tag"
	ColorSeries ColorBy = "series"
)

// Orientation of bar charts.
const (
	Horizontal = "h"
	Vertical   = "v"
)

// Filter is the input applied to a chart. Only the field matching the
// chart's FilterKind is used.
type Filter struct {
	Airline string `json:"airline,omitempty"`
	Hour    int    `json:"hour"`
}

// Labels are the axis and value titles shown on a chart.
type Labels struct {
	X     string `json:"x,omitempty"`
	Y     string `json:"y,omitempty"`
	Value string `json:"value,omitempty"`
}

// Spec is the JSON chart configuration consumed by the dashboard pages. The
// data fields used depend on Kind; the rest are omitted.
type Spec struct {
	ID          string     `json:"id"`
	Page        Page       `json:"page"`
	Title       string     `json:"title"`
	Kind        Kind       `json:"kind"`
	FilterKind  FilterKind `json:"filter_kind"`
	Filter      Filter     `json:"filter"`
	Orientation string     `json:"orientation,omitempty"`
	Labels      Labels     `json:"labels"`
	TickAngle   int        `json:"tick_angle,omitempty"`
	Height      int        `json:"height,omitempty"`

	ColorBy    ColorBy           `json:"color_by"`
	Color      string            `json:"color,omitempty"`
	Palette    []string          `json:"palette,omitempty"`
	ColorScale []string          `json:"color_scale,omitempty"`
	ColorMap   map[string]string `json:"color_map,omitempty"`

	Points  []analytics.Point       `json:"points,omitempty"`
	Series  []analytics.Series      `json:"series,omitempty"`
	Grid    *analytics.Grid         `json:"grid,omitempty"`
	Geo     *analytics.GeoSample    `json:"geo,omitempty"`
	Boxes   []analytics.Box         `json:"boxes,omitempty"`
	Samples []analytics.Observation `json:"samples,omitempty"`
	Frames  *analytics.Frames       `json:"frames,omitempty"`
}

// Empty reports whether the chart has no data to draw.
func (s Spec) Empty() bool {
	switch {
	case len(s.Points) > 0, len(s.Series) > 0, len(s.Boxes) > 0, len(s.Samples) > 0:
		return false
	case s.Grid != nil && len(s.Grid.Cells) > 0:
		return false
	case s.Geo != nil && len(s.Geo.Arcs) > 0:
		return false
	case s.Frames != nil:
		for _, f := range s.Frames.Frames {
			if len(f.Points) > 0 {
				return false
			}
		}
	}
	return true
}
