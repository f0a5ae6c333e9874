package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/geocentric/route2gpx"
	"github.com/paulmach/orb/project"
)

var (
	serviceURL = flag.String("url", "", "ArcGIS feature service query URL (f=json, returning geometry.paths in Web Mercator)")
	course     = flag.String("course", "marathon", "Value of the 'course' attribute to keep")
	order      = flag.String("order", "", "Hand-ordered stitching instructions, e.g. '0,3r,2' ('r' reverses a segment)")
	routeName  = flag.String("name", "Marathon Route", "Name of the produced GPX route")
	out        = flag.String("out", "route.gpx", "Filename of the produced GPX route")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	if *serviceURL == "" {
		log.Fatal("-url is required")
	}
	if *order == "" {
		log.Fatal("-order is required: the feature service returns unordered segments")
	}
	instructions, err := route2gpx.ParseInstructions(*order)
	if err != nil {
		log.Fatal(err)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	segments, err := route2gpx.FetchCourseSegments(context.Background(), client, *serviceURL, *course)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Fetched %d segments for course '%s'\n", len(segments), *course)

	points := route2gpx.AssembleRoute(segments, instructions, project.Mercator.ToWGS84)
	if len(points) == 0 {
		log.Fatal("No points assembled: check -order against the fetched segments")
	}

	if err := route2gpx.WriteRouteGPX(*routeName, points, *out); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Wrote %d points (%.2f km) to %s\n", len(points), route2gpx.TrackLengthKm(points), *out)
	fmt.Println("Done!")
}
