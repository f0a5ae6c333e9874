package route2gpx

import (
	"os"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/tkrajina/gpxgo/gpx"
)

const gpxCreator = "route2gpx"

// WriteTrackGPX writes the accumulated route as a GPX 1.1 document with one
// track holding a single segment. Waypoints follow feature-ID order, then
// stored sequence order. The output file is overwritten unconditionally.
func WriteTrackGPX(route *AccumulatedRoute, fileName string) error {
	segment := gpx.GPXTrackSegment{}
	for _, pt := range route.Points() {
		segment.Points = append(segment.Points, gpx.GPXPoint{
			Point: gpx.Point{Longitude: pt.X(), Latitude: pt.Y()},
		})
	}
	doc := &gpx.GPX{
		Version: "1.1",
		Creator: gpxCreator,
		Tracks: []gpx.GPXTrack{
			{Segments: []gpx.GPXTrackSegment{segment}},
		},
	}
	return writeGPXFile(doc, fileName)
}

// WriteRouteGPX writes ordered points as a single named GPX 1.1 route.
// The output file is overwritten unconditionally.
func WriteRouteGPX(name string, points []orb.Point, fileName string) error {
	rte := gpx.GPXRoute{Name: name}
	for _, pt := range points {
		rte.Points = append(rte.Points, gpx.GPXPoint{
			Point: gpx.Point{Longitude: pt.X(), Latitude: pt.Y()},
		})
	}
	doc := &gpx.GPX{
		Version: "1.1",
		Creator: gpxCreator,
		Routes:  []gpx.GPXRoute{rte},
	}
	return writeGPXFile(doc, fileName)
}

func writeGPXFile(doc *gpx.GPX, fileName string) error {
	data, err := doc.ToXml(gpx.ToXmlParams{Version: "1.1", Indent: true})
	if err != nil {
		return errors.Wrap(err, "Can't serialize GPX document")
	}
	if err := os.WriteFile(fileName, data, 0644); err != nil {
		return errors.Wrapf(err, "Can't write GPX file '%s'", fileName)
	}
	return nil
}
