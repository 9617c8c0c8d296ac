package analytics

import (
	"iter"
	"math/rand/v2"
	"slices"

	"github.com/couchcryptid/flight-delay-dashboard/internal/domain"
)

// SampleSeed seeds every sampling generator.
const SampleSeed = 42

// Sample sizes.
const (
	GeoSampleSize    = 300
	SpreadSampleSize = 1000
)

// reservoir keeps a uniform sample of at most k items from a stream of
// unknown length.
type reservoir[T any] struct {
	rng   *rand.Rand
	k     int
	seen  int
	items []sampled[T]
}

type sampled[T any] struct {
	pos  int
	item T
}

func newReservoir[T any](k int, seed uint64) *reservoir[T] {
	return &reservoir[T]{
		rng:   rand.New(rand.NewPCG(seed, seed)),
		k:     k,
		items: make([]sampled[T], 0, k),
	}
}

func (r *reservoir[T]) offer(item T) {
	switch {
	case len(r.items) < r.k:
		r.items = append(r.items, sampled[T]{pos: r.seen, item: item})
	default:
		if j := r.rng.IntN(r.seen + 1); j < r.k {
			r.items[j] = sampled[T]{pos: r.seen, item: item}
		}
	}
	r.seen++
}

// values returns the sample in stream order.
func (r *reservoir[T]) values() []T {
	slices.SortFunc(r.items, func(a, b sampled[T]) int { return a.pos - b.pos })
	out := make([]T, len(r.items))
	for i, s := range r.items {
		out[i] = s.item
	}
	return out
}

// SampleGeo draws up to GeoSampleSize flights whose origin and destination
// both have coordinates, and lists the airports they touch in first-use order.
// Flights with an unmappable endpoint are never drawn.
func SampleGeo(rows iter.Seq[*domain.EnrichedFlight], ref *domain.Resolver) GeoSample {
	res := newReservoir[Arc](GeoSampleSize, SampleSeed)
	for f := range rows {
		from, ok := ref.Coords(f.Origin)
		if !ok {
			continue
		}
		to, ok := ref.Coords(f.Destination)
		if !ok {
			continue
		}
		res.offer(Arc{Origin: f.Origin, Destination: f.Destination, From: from, To: to})
	}

	arcs := res.values()
	markers := make([]Marker, 0)
	used := make(map[string]struct{})
	for _, a := range arcs {
		for _, m := range [2]Marker{{Code: a.Origin, Coord: a.From}, {Code: a.Destination, Coord: a.To}} {
			if _, ok := used[m.Code]; ok {
				continue
			}
			used[m.Code] = struct{}{}
			markers = append(markers, m)
		}
	}
	return GeoSample{Arcs: arcs, Markers: markers}
}

// SampleValues draws up to k (group, value) observations.
func SampleValues(rows iter.Seq[*domain.EnrichedFlight], group Key, value Value, k int) []Observation {
	res := newReservoir[Observation](k, SampleSeed)
	for f := range rows {
		g, ok := group(f)
		if !ok {
			continue
		}
		v, ok := value(f)
		if !ok {
			continue
		}
		res.offer(Observation{Group: g, Value: v})
	}
	return res.values()
}
