package route2gpx

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// TileData Decoded content of a single vector tile as emitted by
// tippecanoe-decode: a feature collection per source layer.
type TileData struct {
	Type       string            `json:"type"`
	Properties TileProperties    `json:"properties"`
	Features   []LayerCollection `json:"features"`
}

// TileProperties Tile address echoed back by the decoder
type TileProperties struct {
	Zoom       int64 `json:"zoom"`
	X          int64 `json:"x"`
	Y          int64 `json:"y"`
	Compressed bool  `json:"compressed,omitempty"`
}

// LayerCollection All features of one source layer within a tile
type LayerCollection struct {
	Type       string               `json:"type"`
	Properties CollectionProperties `json:"properties"`
	Features   []LayerFeature       `json:"features"`
}

// CollectionProperties Layer metadata of a feature collection
type CollectionProperties struct {
	Layer   string `json:"layer"`
	Version int64  `json:"version"`
	Extent  int64  `json:"extent"`
}

// LayerFeature Single decoded vector feature.
// ID is stable across tiles for the same real-world feature, which is what
// makes cross-tile merging possible.
type LayerFeature struct {
	Type       string                 `json:"type"`
	ID         int64                  `json:"id"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   FeatureGeometry        `json:"geometry"`
}

// FeatureGeometry Geometry of a decoded feature. Nesting depth of
// Coordinates depends on Type (Point, LineString, Polygon, MultiPoint,
// MultiLineString, MultiPolygon).
type FeatureGeometry struct {
	Type        string     `json:"type"`
	Coordinates CoordValue `json:"coordinates"`
}

// LayerFeatures returns features of the layer with the given name (exact
// string match). Most tiles do not intersect the target layer, so an empty
// result is the common case, not an error.
func (tile *TileData) LayerFeatures(layerName string) []LayerFeature {
	features := []LayerFeature{}
	for i := range tile.Features {
		if tile.Features[i].Properties.Layer != layerName {
			continue
		}
		features = append(features, tile.Features[i].Features...)
	}
	return features
}

// CoordValue One node of a GeoJSON-like coordinates value: either a single
// number or a list of nested values. A single recursive type covers all four
// nesting depths the geometry types produce, so no caller ever branches on
// depth.
type CoordValue struct {
	scalar   float64
	isScalar bool
	items    []CoordValue
}

// Scalar wraps a bare number
func Scalar(v float64) CoordValue {
	return CoordValue{scalar: v, isScalar: true}
}

// Sequence wraps a list of nested values
func Sequence(items ...CoordValue) CoordValue {
	return CoordValue{items: items}
}

// UnmarshalJSON distinguishes the two shapes by the leading token: an array
// recurses, anything else must be a number
func (cv *CoordValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return errors.New("Empty coordinates value")
	}
	if trimmed[0] == '[' {
		items := []CoordValue{}
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return errors.Wrap(err, "Can't parse nested coordinates")
		}
		*cv = CoordValue{items: items}
		return nil
	}
	var v float64
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return errors.Wrap(err, "Can't parse coordinate number")
	}
	*cv = CoordValue{scalar: v, isScalar: true}
	return nil
}

// MarshalJSON restores the original nested shape
func (cv CoordValue) MarshalJSON() ([]byte, error) {
	if cv.isScalar {
		return json.Marshal(cv.scalar)
	}
	if cv.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(cv.items)
}

// Flatten returns depth-first left-to-right flattening of the value.
// Coordinates always come in (x, y) pairs, so the result of flattening any
// well-formed geometry has even length.
func (cv CoordValue) Flatten() []float64 {
	if cv.isScalar {
		return []float64{cv.scalar}
	}
	flat := []float64{}
	for i := range cv.items {
		flat = append(flat, cv.items[i].Flatten()...)
	}
	return flat
}
