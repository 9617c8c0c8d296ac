package analytics

import "github.com/couchcryptid/flight-delay-dashboard/internal/domain"

// Point is one category and its aggregate value. Tag optionally assigns the
// point to a highlight group.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Tag   string  `json:"tag,omitempty"`
}

// Series is a named sequence of points sharing one x axis.
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// Cell is one populated (x, y) group of a grid.
type Cell struct {
	X     string  `json:"x"`
	Y     string  `json:"y"`
	Value float64 `json:"value"`
}

// Grid is a two-key aggregate. X and Y list the axis categories in display
// order; Cells holds only the groups that have a value.
type Grid struct {
	X     []string `json:"x"`
	Y     []string `json:"y"`
	Cells []Cell   `json:"cells"`
}

// Arc is one sampled flight drawn between its airports.
type Arc struct {
	Origin      string       `json:"origin"`
	Destination string       `json:"destination"`
	From        domain.Coord `json:"from"`
	To          domain.Coord `json:"to"`
}

// Label renders the arc as "ORIGIN → DEST" using airport codes.
func (a Arc) Label() string {
	return a.Origin + domain.RouteSeparator + a.Destination
}

// Marker is an airport drawn on a map.
type Marker struct {
	Code  string       `json:"code"`
	Coord domain.Coord `json:"coord"`
}

// GeoSample is a map-ready sample of flights plus the airports they touch.
type GeoSample struct {
	Arcs    []Arc    `json:"arcs"`
	Markers []Marker `json:"markers"`
}

// Box is a five-number summary of one group's values.
type Box struct {
	Group  string  `json:"group"`
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
}

// Observation is a single sampled value tagged with its group.
type Observation struct {
	Group string  `json:"group"`
	Value float64 `json:"value"`
}

// Frame is one animation step of a category chart.
type Frame struct {
	Label  string  `json:"label"`
	Points []Point `json:"points"`
}

// Frames is an animated chart with a y range fixed across all frames.
type Frames struct {
	Frames []Frame    `json:"frames"`
	RangeY [2]float64 `json:"range_y"`
}
