package analytics

import (
	"iter"

	"github.com/couchcryptid/flight-delay-dashboard/internal/domain"
)

// DistanceEdges are the bin edges for flight distance in miles. Bins are
// left-closed: [0, 500), [500, 1000) and so on up to [2500, 3000).
var DistanceEdges = []float64{0, 500, 1000, 1500, 2000, 2500, 3000}

// DistanceLabels name the bins between consecutive DistanceEdges.
var DistanceLabels = []string{"<500", "500-999", "1000-1499", "1500-1999", "2000-2499", "2500+"}

// DistanceBucket returns the bin label for d. Distances below the first edge
// or at or above the last edge have no bin.
func DistanceBucket(d float64) (string, bool) {
	if d < DistanceEdges[0] || d >= DistanceEdges[len(DistanceEdges)-1] {
		return "", false
	}
	for i := 1; i < len(DistanceEdges); i++ {
		if d < DistanceEdges[i] {
			return DistanceLabels[i-1], true
		}
	}
	return "", false
}

// DistanceBucketKey groups flights by distance bin.
var DistanceBucketKey Key = func(f *domain.EnrichedFlight) (string, bool) {
	d, ok := f.Distance.Get()
	if !ok {
		return "", false
	}
	return DistanceBucket(d)
}

// BucketedMean averages value per distance bin in bin order. Empty bins are
// left out.
func BucketedMean(rows iter.Seq[*domain.EnrichedFlight], value Value) []Point {
	return Reorder(MeanBy(rows, DistanceBucketKey, value), DistanceLabels)
}
