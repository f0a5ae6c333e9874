package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/geocentric/route2gpx"
	"github.com/paulmach/orb/maptile"
	"github.com/pkg/errors"
)

var (
	// Tile bounds were obtained visually from scrolling the map and watching
	// the network requests. See
	// https://www.maptiler.com/google-maps-coordinates-tile-bounds-projection/
	// for the tile coordinate scheme.
	topLeft     = flag.String("topleft", "12531,9365", "Top-left tile of the grid as 'x,y'")
	bottomRight = flag.String("bottomright", "12540,9376", "Bottom-right tile of the grid as 'x,y' (inclusive)")
	zoom        = flag.Int("zoom", 15, "Zoom level of the tile grid")
	layerName   = flag.String("layer", "mcm-2018-marathon-v1-31s1ih", "Name of the source layer holding the route")
	out         = flag.String("out", "output.gpx", "Filename of the produced GPX track")
	delayMs     = flag.Int("delay", 100, "Rate-limiting delay after each tile (milliseconds)")
	strict      = flag.Bool("strict", false, "Abort the run on a tile decode failure instead of skipping the tile")
	decoderCmd  = flag.String("decoder", route2gpx.DefaultDecoderCommand, "External vector tile decoder command")
	geomFormat  = flag.String("geomf", "", "Also dump merged route geometry next to the GPX. Expected values: wkt / geojson")
	quiet       = flag.Bool("quiet", false, "Suppress progress output")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	token, err := route2gpx.LoadAccessToken()
	if err != nil {
		log.Fatal(err)
	}

	tl, err := parseTile(*topLeft, *zoom)
	if err != nil {
		log.Fatal(errors.Wrap(err, "Bad -topleft"))
	}
	br, err := parseTile(*bottomRight, *zoom)
	if err != nil {
		log.Fatal(errors.Wrap(err, "Bad -bottomright"))
	}
	grid, err := route2gpx.NewTileGrid(tl, br)
	if err != nil {
		log.Fatal(err)
	}

	extractor := route2gpx.NewExtractor(
		grid,
		route2gpx.NewMapboxFetcher(token),
		route2gpx.NewTippecanoeDecoder(*decoderCmd),
		route2gpx.WithTargetLayer(*layerName),
		route2gpx.WithDelay(time.Duration(*delayMs)*time.Millisecond),
		route2gpx.WithStrictDecode(*strict),
		route2gpx.WithVerbose(!*quiet),
	)

	route, err := extractor.Run(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	if err := route2gpx.WriteTrackGPX(route, *out); err != nil {
		log.Fatal(err)
	}

	switch strings.ToLower(*geomFormat) {
	case "":
	case "geojson":
		b, err := route2gpx.RouteToGeoJSON(route)
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(geomFileName(*out, ".geojson"), b, 0644); err != nil {
			log.Fatal(errors.Wrap(err, "Can't write GeoJSON dump"))
		}
	case "wkt":
		if err := os.WriteFile(geomFileName(*out, ".wkt"), []byte(route2gpx.RouteToWKT(route)), 0644); err != nil {
			log.Fatal(errors.Wrap(err, "Can't write WKT dump"))
		}
	default:
		log.Fatalf("Unknown -geomf value '%s'. Expected values: wkt / geojson", *geomFormat)
	}

	fmt.Printf("Wrote %d features (%.2f km) to %s\n", route.Len(), route2gpx.TrackLengthKm(route.Points()), *out)
	fmt.Println("Done!")
}

// parseTile parses 'x,y' into a tile at the given zoom
func parseTile(s string, zoom int) (maptile.Tile, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return maptile.Tile{}, errors.Errorf("Expected 'x,y', but got '%s'", s)
	}
	x, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 32)
	if err != nil {
		return maptile.Tile{}, errors.Wrapf(err, "Bad tile X '%s'", parts[0])
	}
	y, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 32)
	if err != nil {
		return maptile.Tile{}, errors.Wrapf(err, "Bad tile Y '%s'", parts[1])
	}
	return maptile.New(uint32(x), uint32(y), maptile.Zoom(zoom)), nil
}

// geomFileName swaps the extension of the GPX output path
func geomFileName(gpxName, ext string) string {
	base := strings.TrimSuffix(gpxName, ".gpx")
	return base + ext
}
