package route2gpx

import (
	"sort"

	"github.com/paulmach/orb"
)

// AccumulatedRoute Collects flattened feature coordinates across all
// processed tiles, keyed by feature ID.
//
// Adjacent tiles re-deliver the same vertices of a shared feature at their
// boundary, so merging checks every candidate pair against the consecutive
// pairs already stored for that feature and appends only the genuinely new
// ones. That is exact-adjacency deduplication, not set membership: the same
// values may still occur at non-adjacent positions, which matches how the
// tile data behaves in practice.
type AccumulatedRoute struct {
	coords map[int64][]float64
}

// NewAccumulatedRoute returns empty route accumulator
func NewAccumulatedRoute() *AccumulatedRoute {
	return &AccumulatedRoute{
		coords: make(map[int64][]float64),
	}
}

// Merge folds a flattened coordinate sequence for the given feature into the
// route.
//
// First sighting of an ID stores the sequence verbatim. Subsequent batches
// are scanned pair by pair: a pair already present as a consecutive window
// (seq[i], seq[i+1]) anywhere in the stored sequence is skipped, any other
// pair is appended. The window scan is O(n) per candidate, O(n²) per feature
// over the whole run, which is fine for the per-feature vertex counts this
// deals with (thousands at most). This operation cannot fail.
func (route *AccumulatedRoute) Merge(id int64, coords []float64) {
	existing, ok := route.coords[id]
	if !ok {
		route.coords[id] = append([]float64(nil), coords...)
		return
	}
	for i := 0; i+1 < len(coords); i += 2 {
		x, y := coords[i], coords[i+1]
		if hasAdjacentPair(existing, x, y) {
			continue
		}
		existing = append(existing, x, y)
	}
	route.coords[id] = existing
}

// hasAdjacentPair reports whether (x, y) occurs as a sliding window of two
// consecutive elements in seq
func hasAdjacentPair(seq []float64, x, y float64) bool {
	for i := 0; i+1 < len(seq); i++ {
		if seq[i] == x && seq[i+1] == y {
			return true
		}
	}
	return false
}

// FeatureIDs returns every accumulated feature ID in ascending order, which
// makes output iteration deterministic
func (route *AccumulatedRoute) FeatureIDs() []int64 {
	ids := make([]int64, 0, len(route.coords))
	for id := range route.coords {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Coords returns the stored flattened sequence for the given feature ID
func (route *AccumulatedRoute) Coords(id int64) []float64 {
	return route.coords[id]
}

// Len returns number of accumulated features
func (route *AccumulatedRoute) Len() int {
	return len(route.coords)
}

// Points returns every stored coordinate pair in deterministic order:
// features sorted by ID, pairs in stored sequence order
func (route *AccumulatedRoute) Points() []orb.Point {
	pts := []orb.Point{}
	for _, id := range route.FeatureIDs() {
		coords := route.coords[id]
		for i := 0; i+1 < len(coords); i += 2 {
			pts = append(pts, orb.Point{coords[i], coords[i+1]})
		}
	}
	return pts
}
