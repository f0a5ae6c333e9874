package route2gpx

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRouteToWKT(t *testing.T) {
	route := NewAccumulatedRoute()
	route.Merge(1, []float64{10, 10, 15, 10})
	wktStr := RouteToWKT(route)
	correct := "LINESTRING(10 10,15 10)"
	if wktStr != correct {
		t.Errorf("WKT must be '%s', but got '%s'", correct, wktStr)
	}
}

func TestRouteToWKTMultipleFeatures(t *testing.T) {
	route := NewAccumulatedRoute()
	route.Merge(8, []float64{1, 1, 2, 2})
	route.Merge(3, []float64{5, 5, 6, 6})
	lines := strings.Split(RouteToWKT(route), "\n")
	if len(lines) != 2 {
		t.Errorf("WKT dump must hold 2 lines, but got %d", len(lines))
		return
	}
	if !strings.HasPrefix(lines[0], "LINESTRING(5 5") {
		t.Errorf("First line must belong to feature 3, but got '%s'", lines[0])
	}
}

func TestRouteToGeoJSON(t *testing.T) {
	route := NewAccumulatedRoute()
	route.Merge(7, []float64{10.0, 20.0, 10.1, 20.1})
	b, err := RouteToGeoJSON(route)
	if err != nil {
		t.Error(err)
		return
	}
	parsed := struct {
		Type     string `json:"type"`
		Features []struct {
			ID       int64 `json:"id"`
			Geometry struct {
				Type        string      `json:"type"`
				Coordinates [][]float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}{}
	if err := json.Unmarshal(b, &parsed); err != nil {
		t.Error(err)
		return
	}
	if parsed.Type != "FeatureCollection" {
		t.Errorf("Type must be FeatureCollection, but got '%s'", parsed.Type)
	}
	if len(parsed.Features) != 1 {
		t.Errorf("Collection must hold 1 feature, but got %d", len(parsed.Features))
		return
	}
	if parsed.Features[0].ID != 7 {
		t.Errorf("Feature ID must be 7, but got %d", parsed.Features[0].ID)
	}
	if parsed.Features[0].Geometry.Type != "LineString" {
		t.Errorf("Geometry type must be LineString, but got '%s'", parsed.Features[0].Geometry.Type)
	}
	if len(parsed.Features[0].Geometry.Coordinates) != 2 {
		t.Errorf("LineString must hold 2 positions, but got %d", len(parsed.Features[0].Geometry.Coordinates))
	}
}
