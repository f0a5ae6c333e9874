package route2gpx

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	earthRadius = 6370.986884258304
	pi180       = math.Pi / 180.0
)

// degreesToRadians deg = r * pi / 180
func degreesToRadians(d float64) float64 {
	return d * pi180
}

// greatCircleDistance returns distance between two WGS84 points (kilometers)
func greatCircleDistance(p, q orb.Point) float64 {
	lat1 := degreesToRadians(p.Y())
	lon1 := degreesToRadians(p.X())
	lat2 := degreesToRadians(q.Y())
	lon2 := degreesToRadians(q.X())
	diffLat := lat2 - lat1
	diffLon := lon2 - lon1
	a := math.Pow(math.Sin(diffLat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(diffLon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return c * earthRadius
}

// TrackLengthKm returns great-circle length of the given point sequence
// (kilometers). Reported after a run for operator visibility only.
func TrackLengthKm(points []orb.Point) float64 {
	totalLength := 0.0
	if len(points) < 2 {
		return totalLength
	}
	for i := 1; i < len(points); i++ {
		totalLength += greatCircleDistance(points[i-1], points[i])
	}
	return totalLength
}
