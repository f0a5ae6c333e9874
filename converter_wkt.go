package route2gpx

import (
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// RouteToWKT returns WKT representation of the accumulated route: one
// LINESTRING per feature ID in ascending order, newline separated
func RouteToWKT(route *AccumulatedRoute) string {
	lines := []string{}
	for _, id := range route.FeatureIDs() {
		coords := route.Coords(id)
		line := make(orb.LineString, 0, len(coords)/2)
		for i := 0; i+1 < len(coords); i += 2 {
			line = append(line, orb.Point{coords[i], coords[i+1]})
		}
		lines = append(lines, wkt.MarshalString(line))
	}
	return strings.Join(lines, "\n")
}
