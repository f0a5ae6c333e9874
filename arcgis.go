package route2gpx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// FeatureServiceResponse JSON document returned by an ArcGIS feature service
// query endpoint
type FeatureServiceResponse struct {
	ObjectIDFieldName string           `json:"objectIdFieldName"`
	SpatialReference  SpatialReference `json:"spatialReference"`
	Fields            []ServiceField   `json:"fields"`
	Features          []ServiceFeature `json:"features"`
}

// SpatialReference Projected coordinate system of the returned geometry
type SpatialReference struct {
	WKID       int `json:"wkid"`
	LatestWKID int `json:"latestWkid"`
}

// ServiceField Attribute field descriptor
type ServiceField struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Alias string `json:"alias"`
}

// ServiceFeature One feature carrying attributes and polyline geometry
type ServiceFeature struct {
	Attributes map[string]interface{} `json:"attributes"`
	Geometry   ServiceGeometry        `json:"geometry"`
}

// ServiceGeometry Polyline paths in the service's projected coordinate
// system (Web Mercator for the services this deals with)
type ServiceGeometry struct {
	Paths [][][]float64 `json:"paths"`
}

// Course returns value of the course discriminator attribute, or empty
// string when absent
func (feature *ServiceFeature) Course() string {
	course, _ := feature.Attributes["course"].(string)
	return course
}

// FetchCourseSegments downloads the feature service document and returns the
// path segments of every feature whose course attribute equals the given
// value. The segments come back unordered and disconnected; AssembleRoute
// stitches them.
func FetchCourseSegments(ctx context.Context, client *http.Client, serviceURL, course string) ([][]orb.Point, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, serviceURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "Can't build feature service request")
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "Can't fetch feature service data")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("Feature service returned status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "Can't read feature service response")
	}

	doc := FeatureServiceResponse{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, errors.Wrap(err, "Can't parse feature service response")
	}

	segments := [][]orb.Point{}
	for i := range doc.Features {
		if doc.Features[i].Course() != course {
			continue
		}
		for _, path := range doc.Features[i].Geometry.Paths {
			segment := make([]orb.Point, 0, len(path))
			for _, pt := range path {
				if len(pt) < 2 {
					continue
				}
				segment = append(segment, orb.Point{pt[0], pt[1]})
			}
			segments = append(segments, segment)
		}
	}
	return segments, nil
}

// SegmentInstruction Selects one fetched segment and the direction its
// points are appended in. The feature service delivers the course as
// unordered disconnected polylines, so the stitching order has to be
// specified by hand.
type SegmentInstruction struct {
	Index    int
	Reversed bool
}

// ParseInstructions parses a comma-separated stitching order like "0,3r,2":
// each entry is a segment index, a trailing 'r' reverses that segment
func ParseInstructions(s string) ([]SegmentInstruction, error) {
	instructions := []SegmentInstruction{}
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		reversed := false
		if strings.HasSuffix(entry, "r") {
			reversed = true
			entry = strings.TrimSuffix(entry, "r")
		}
		index, err := strconv.Atoi(entry)
		if err != nil {
			return nil, errors.Wrapf(err, "Bad segment instruction '%s'", entry)
		}
		instructions = append(instructions, SegmentInstruction{Index: index, Reversed: reversed})
	}
	return instructions, nil
}

// AssembleRoute stitches segments into one ordered point sequence following
// the instruction list.
//
// An out-of-range index is logged and skipped, the run continues. Each point
// is passed through projection (Web Mercator to WGS84 in production; nil
// means identity). A projected point outside the WGS84 domain aborts the
// remainder of that segment with a warning and the run continues with the
// next instruction.
func AssembleRoute(segments [][]orb.Point, instructions []SegmentInstruction, projection orb.Projection) []orb.Point {
	assembled := []orb.Point{}
	for _, instruction := range instructions {
		if instruction.Index < 0 || instruction.Index >= len(segments) {
			fmt.Printf("Warning. Invalid segment index %d (have %d segments), skipping\n", instruction.Index, len(segments))
			continue
		}
		segment := segments[instruction.Index]
		for i := range segment {
			pt := segment[i]
			if instruction.Reversed {
				pt = segment[len(segment)-1-i]
			}
			if projection != nil {
				pt = projection(pt)
				if !validLonLat(pt) {
					fmt.Printf("Warning. Point %v of segment %d is outside the WGS84 domain, aborting segment\n", pt, instruction.Index)
					break
				}
			}
			assembled = append(assembled, pt)
		}
	}
	return assembled
}

// validLonLat reports whether pt is a finite longitude/latitude pair
func validLonLat(pt orb.Point) bool {
	if math.IsNaN(pt.X()) || math.IsNaN(pt.Y()) || math.IsInf(pt.X(), 0) || math.IsInf(pt.Y(), 0) {
		return false
	}
	return pt.X() >= -180 && pt.X() <= 180 && pt.Y() >= -90 && pt.Y() <= 90
}
