package route2gpx

import (
	"testing"
)

func coordsEqual(got, correct []float64) bool {
	if len(got) != len(correct) {
		return false
	}
	for i := range correct {
		if got[i] != correct[i] {
			return false
		}
	}
	return true
}

func TestMergeFirstSighting(t *testing.T) {
	route := NewAccumulatedRoute()
	route.Merge(7, []float64{1, 2, 3, 4})
	correct := []float64{1, 2, 3, 4}
	if !coordsEqual(route.Coords(7), correct) {
		t.Errorf("First sighting must store %v verbatim, but got %v", correct, route.Coords(7))
	}
}

func TestMergeSkipsAdjacentDuplicates(t *testing.T) {
	route := NewAccumulatedRoute()
	route.Merge(7, []float64{1, 2, 3, 4})
	route.Merge(7, []float64{3, 4, 5, 6})
	correct := []float64{1, 2, 3, 4, 5, 6}
	if !coordsEqual(route.Coords(7), correct) {
		t.Errorf("Merged sequence must be %v, but got %v", correct, route.Coords(7))
	}
}

func TestMergeIdempotent(t *testing.T) {
	route := NewAccumulatedRoute()
	route.Merge(7, []float64{1, 2, 3, 4, 5, 6})
	route.Merge(7, []float64{1, 2, 3, 4, 5, 6})
	route.Merge(7, []float64{3, 4})
	correct := []float64{1, 2, 3, 4, 5, 6}
	if !coordsEqual(route.Coords(7), correct) {
		t.Errorf("Repeated identical input must leave %v unchanged, but got %v", correct, route.Coords(7))
	}
}

func TestMergeChecksAdjacencyNotMembership(t *testing.T) {
	// (2, 3) occurs in [1,2,3,4] as a window straddling two pairs, so the
	// candidate pair (2, 3) must be skipped even though it never was a
	// stored pair itself. That is the documented sliding-window semantic.
	route := NewAccumulatedRoute()
	route.Merge(1, []float64{1, 2, 3, 4})
	route.Merge(1, []float64{2, 3})
	correct := []float64{1, 2, 3, 4}
	if !coordsEqual(route.Coords(1), correct) {
		t.Errorf("Window match must skip the pair, expected %v, but got %v", correct, route.Coords(1))
	}
}

func TestMergeSeparateFeatures(t *testing.T) {
	route := NewAccumulatedRoute()
	route.Merge(9, []float64{1, 2})
	route.Merge(4, []float64{1, 2})
	if route.Len() != 2 {
		t.Errorf("Route must hold 2 features, but got %d", route.Len())
	}
	ids := route.FeatureIDs()
	if len(ids) != 2 || ids[0] != 4 || ids[1] != 9 {
		t.Errorf("Feature IDs must be [4 9], but got %v", ids)
	}
}

func TestPointsDeterministicOrder(t *testing.T) {
	route := NewAccumulatedRoute()
	route.Merge(5, []float64{50, 51})
	route.Merge(2, []float64{20, 21, 22, 23})
	pts := route.Points()
	if len(pts) != 3 {
		t.Errorf("Route must flatten to 3 points, but got %d", len(pts))
		return
	}
	if pts[0].X() != 20 || pts[1].X() != 22 || pts[2].X() != 50 {
		t.Errorf("Points must follow ascending feature ID order, but got %v", pts)
	}
}
