package route2gpx

import (
	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
)

// RouteToGeoJSON returns GeoJSON representation of the accumulated route:
// a FeatureCollection with one LineString feature per feature ID, in
// ascending ID order
func RouteToGeoJSON(route *AccumulatedRoute) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, id := range route.FeatureIDs() {
		coords := route.Coords(id)
		pts2d := make([][]float64, 0, len(coords)/2)
		for i := 0; i+1 < len(coords); i += 2 {
			pts2d = append(pts2d, []float64{coords[i], coords[i+1]})
		}
		feature := geojson.NewLineStringFeature(pts2d)
		feature.ID = id
		fc.AddFeature(feature)
	}
	b, err := fc.MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "Can not convert route to geojson format")
	}
	return b, nil
}
