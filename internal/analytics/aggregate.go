package analytics

import (
	"cmp"
	"iter"
	"slices"
	"strconv"

	"github.com/couchcryptid/flight-delay-dashboard/internal/domain"
)

// tally accumulates a sum and a row count per category, remembering the order
// in which categories were first seen.
type tally struct {
	keys  []string
	index map[string]int
	sum   []float64
	n     []int
}

func newTally() *tally {
	return &tally{index: make(map[string]int)}
}

// slot returns the position of k, registering it on first sight.
func (t *tally) slot(k string) int {
	if i, ok := t.index[k]; ok {
		return i
	}
	i := len(t.keys)
	t.index[k] = i
	t.keys = append(t.keys, k)
	t.sum = append(t.sum, 0)
	t.n = append(t.n, 0)
	return i
}

func (t *tally) add(k string, v float64) {
	i := t.slot(k)
	t.sum[i] += v
	t.n[i]++
}

func (t *tally) points(value func(i int) float64) []Point {
	out := make([]Point, 0, len(t.keys))
	for i, k := range t.keys {
		out = append(out, Point{Label: k, Value: value(i)})
	}
	return out
}

// CountBy counts rows per category. Every category seen in rows is reported;
// only rows satisfying match are counted, so a category whose rows never match
// reports zero. A nil match counts every row.
func CountBy(rows iter.Seq[*domain.EnrichedFlight], key Key, match Predicate) []Point {
	t := newTally()
	for f := range rows {
		k, ok := key(f)
		if !ok {
			continue
		}
		i := t.slot(k)
		if match == nil || match(f) {
			t.sum[i]++
		}
	}
	return t.points(func(i int) float64 { return t.sum[i] })
}

// CountLabels counts occurrences of each label in first-seen order. Empty
// labels are skipped.
func CountLabels(labels iter.Seq[string]) []Point {
	t := newTally()
	for l := range labels {
		if l == "" {
			continue
		}
		t.add(l, 1)
	}
	return t.points(func(i int) float64 { return t.sum[i] })
}

// RateBy returns 100 * matching rows / rows per category. Only categories
// with rows appear, so every rate lies in [0, 100].
func RateBy(rows iter.Seq[*domain.EnrichedFlight], key Key, indicator Predicate) []Point {
	t := newTally()
	for f := range rows {
		k, ok := key(f)
		if !ok {
			continue
		}
		t.add(k, indicatorValue(indicator, f))
	}
	return t.points(func(i int) float64 { return 100 * t.sum[i] / float64(t.n[i]) })
}

// MeanBy averages value per category, ignoring rows where the value is
// absent. Categories with no values are left out.
func MeanBy(rows iter.Seq[*domain.EnrichedFlight], key Key, value Value) []Point {
	t := newTally()
	for f := range rows {
		k, ok := key(f)
		if !ok {
			continue
		}
		v, ok := value(f)
		if !ok {
			continue
		}
		t.add(k, v)
	}
	return t.points(func(i int) float64 { return t.sum[i] / float64(t.n[i]) })
}

func indicatorValue(p Predicate, f *domain.EnrichedFlight) float64 {
	if p(f) {
		return 1
	}
	return 0
}

// Complete lays points out over a fixed domain in its canonical order. Labels
// missing from points report zero; points outside the domain are dropped.
func Complete(points []Point, labels []string) []Point {
	byLabel := make(map[string]float64, len(points))
	for _, p := range points {
		byLabel[p.Label] = p.Value
	}
	out := make([]Point, len(labels))
	for i, l := range labels {
		out[i] = Point{Label: l, Value: byLabel[l]}
	}
	return out
}

// Reorder keeps only the points whose label is in labels, in that order.
// Unlike Complete it never invents zeros, which suits means and rates.
func Reorder(points []Point, labels []string) []Point {
	byLabel := make(map[string]Point, len(points))
	for _, p := range points {
		byLabel[p.Label] = p
	}
	out := make([]Point, 0, len(points))
	for _, l := range labels {
		if p, ok := byLabel[l]; ok {
			out = append(out, p)
		}
	}
	return out
}

// SortDesc orders points by value, largest first. Ties keep their input order.
func SortDesc(points []Point) []Point {
	out := slices.Clone(points)
	slices.SortStableFunc(out, func(a, b Point) int { return cmp.Compare(b.Value, a.Value) })
	return out
}

// SortAsc orders points by value, smallest first. Ties keep their input order.
func SortAsc(points []Point) []Point {
	out := slices.Clone(points)
	slices.SortStableFunc(out, func(a, b Point) int { return cmp.Compare(a.Value, b.Value) })
	return out
}

// TopN returns the n largest points. Ties keep first-seen order.
func TopN(points []Point, n int) []Point {
	out := SortDesc(points)
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// gridTally accumulates sums and counts per (x, y) pair.
type gridTally struct {
	xs, ys *tally
	cells  map[[2]string]*cellSum
	order  [][2]string
}

type cellSum struct {
	sum float64
	n   int
}

func newGridTally() *gridTally {
	return &gridTally{xs: newTally(), ys: newTally(), cells: make(map[[2]string]*cellSum)}
}

func (g *gridTally) add(x, y string, v float64) {
	key := [2]string{x, y}
	c, ok := g.cells[key]
	if !ok {
		g.xs.slot(x)
		g.ys.slot(y)
		c = &cellSum{}
		g.cells[key] = c
		g.order = append(g.order, key)
	}
	c.sum += v
	c.n++
}

func (g *gridTally) grid(value func(c *cellSum) float64) Grid {
	out := Grid{
		X:     slices.Clone(g.xs.keys),
		Y:     slices.Clone(g.ys.keys),
		Cells: make([]Cell, 0, len(g.order)),
	}
	for _, key := range g.order {
		out.Cells = append(out.Cells, Cell{X: key[0], Y: key[1], Value: value(g.cells[key])})
	}
	return out
}

// RateGrid returns 100 * matching rows / rows per (x, y) group. Groups without
// rows are absent.
func RateGrid(rows iter.Seq[*domain.EnrichedFlight], x, y Key, indicator Predicate) Grid {
	g := newGridTally()
	for f := range rows {
		xk, okX := x(f)
		yk, okY := y(f)
		if !okX || !okY {
			continue
		}
		g.add(xk, yk, indicatorValue(indicator, f))
	}
	return g.grid(func(c *cellSum) float64 { return 100 * c.sum / float64(c.n) })
}

// MeanGrid averages value per (x, y) group, ignoring absent values.
func MeanGrid(rows iter.Seq[*domain.EnrichedFlight], x, y Key, value Value) Grid {
	g := newGridTally()
	for f := range rows {
		xk, okX := x(f)
		yk, okY := y(f)
		if !okX || !okY {
			continue
		}
		v, ok := value(f)
		if !ok {
			continue
		}
		g.add(xk, yk, v)
	}
	return g.grid(func(c *cellSum) float64 { return c.sum / float64(c.n) })
}

// Sorted returns a copy of g with both axes and the cells ordered by the
// given comparators. Cells are ordered by y, then x.
func (g Grid) Sorted(xCmp, yCmp func(a, b string) int) Grid {
	out := Grid{X: slices.Clone(g.X), Y: slices.Clone(g.Y), Cells: slices.Clone(g.Cells)}
	slices.SortStableFunc(out.X, xCmp)
	slices.SortStableFunc(out.Y, yCmp)
	slices.SortStableFunc(out.Cells, func(a, b Cell) int {
		if c := yCmp(a.Y, b.Y); c != 0 {
			return c
		}
		return xCmp(a.X, b.X)
	})
	return out
}

// SeriesByY splits a grid into one series per y category, each running along
// the x axis.
func (g Grid) SeriesByY() []Series {
	byY := make(map[string][]Point, len(g.Y))
	for _, c := range g.Cells {
		byY[c.Y] = append(byY[c.Y], Point{Label: c.X, Value: c.Value})
	}
	out := make([]Series, 0, len(g.Y))
	for _, y := range g.Y {
		if pts, ok := byY[y]; ok {
			out = append(out, Series{Name: y, Points: pts})
		}
	}
	return out
}

// Lexical compares labels as strings.
func Lexical(a, b string) int { return cmp.Compare(a, b) }

// Numeric compares labels holding integers. Non-numeric labels sort last.
func Numeric(a, b string) int {
	ai, errA := strconv.Atoi(a)
	bi, errB := strconv.Atoi(b)
	switch {
	case errA != nil && errB != nil:
		return cmp.Compare(a, b)
	case errA != nil:
		return 1
	case errB != nil:
		return -1
	}
	return cmp.Compare(ai, bi)
}

// InOrder compares labels by their position in a canonical list. Labels not
// in the list sort last.
func InOrder(labels []string) func(a, b string) int {
	pos := make(map[string]int, len(labels))
	for i, l := range labels {
		pos[l] = i
	}
	rank := func(s string) int {
		if i, ok := pos[s]; ok {
			return i
		}
		return len(labels)
	}
	return func(a, b string) int { return cmp.Compare(rank(a), rank(b)) }
}
