package route2gpx

import (
	"context"
	"fmt"
	"time"

	"github.com/paulmach/orb/maptile"
	"github.com/pkg/errors"
)

// Extractor Drives the tile pipeline: walk the grid, fetch each tile, decode
// it, keep the target layer's features and merge their coordinates into one
// accumulated route. Strictly sequential, so the accumulator needs no
// locking; throughput is bounded by tile count times fetch, decode and the
// rate-limit delay.
type Extractor struct {
	grid        *TileGrid
	fetcher     TileFetcher
	decoder     TileDecoder
	targetLayer string
	delay       time.Duration
	notifyEvery int
	strict      bool
	verbose     bool
}

// NewExtractor returns extractor over the given grid and collaborators
func NewExtractor(grid *TileGrid, fetcher TileFetcher, decoder TileDecoder, options ...func(*Extractor)) *Extractor {
	extractor := &Extractor{
		grid:        grid,
		fetcher:     fetcher,
		decoder:     decoder,
		delay:       100 * time.Millisecond,
		notifyEvery: 10,
	}
	for _, option := range options {
		option(extractor)
	}
	return extractor
}

// WithTargetLayer sets the layer name features are filtered by (exact match)
func WithTargetLayer(layerName string) func(*Extractor) {
	return func(extractor *Extractor) {
		extractor.targetLayer = layerName
	}
}

// WithDelay sets the per-tile rate-limiting delay
func WithDelay(delay time.Duration) func(*Extractor) {
	return func(extractor *Extractor) {
		extractor.delay = delay
	}
}

// WithNotifyEveryPercent sets the progress reporting step in percent
func WithNotifyEveryPercent(percent int) func(*Extractor) {
	return func(extractor *Extractor) {
		extractor.notifyEvery = percent
	}
}

// WithStrictDecode makes a decode failure abort the whole run instead of
// skipping the offending tile
func WithStrictDecode(strict bool) func(*Extractor) {
	return func(extractor *Extractor) {
		extractor.strict = strict
	}
}

// WithVerbose enables progress output
func WithVerbose(verbose bool) func(*Extractor) {
	return func(extractor *Extractor) {
		extractor.verbose = verbose
	}
}

// Run walks the whole grid once and returns the accumulated route.
//
// A fetch failure aborts the run. A decode failure only skips that tile
// (with a warning), keeping the progress accumulated so far, unless strict
// mode was requested. There is no mid-run persistence: an aborted run loses
// everything.
func (extractor *Extractor) Run(ctx context.Context) (*AccumulatedRoute, error) {
	route := NewAccumulatedRoute()
	total := extractor.grid.Count()
	divisor := progressDivisor(total, extractor.notifyEvery)
	processed := 0

	st := time.Now()
	err := extractor.grid.ForEach(func(tile maptile.Tile) error {
		raw, err := extractor.fetcher.Fetch(ctx, tile)
		if err != nil {
			return errors.Wrap(err, "Can't fetch tile")
		}
		data, err := extractor.decoder.Decode(ctx, tile, raw)
		if err != nil {
			if extractor.strict {
				return errors.Wrap(err, "Can't decode tile")
			}
			fmt.Printf("Warning. Skipping tile %d/%d/%d: %s\n", tile.Z, tile.X, tile.Y, err.Error())
		} else {
			features := data.LayerFeatures(extractor.targetLayer)
			if len(features) > 0 && extractor.verbose {
				fmt.Printf("Route data found for tile %d, %d\n", tile.X, tile.Y)
			}
			for i := range features {
				route.Merge(features[i].ID, features[i].Geometry.Coordinates.Flatten())
			}
		}

		processed++
		if extractor.verbose && processed%divisor == 0 {
			fmt.Printf("Processed %d%% of the tiles\n", 100*processed/total)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(extractor.delay):
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if extractor.verbose {
		fmt.Printf("Done grid walk of %d tiles in %v\n", total, time.Since(st))
	}
	return route, nil
}

// progressDivisor returns the tile interval between progress notifications.
// Grids smaller than the percentage step still notify on every tile instead
// of dividing by zero.
func progressDivisor(total, notifyEveryPercent int) int {
	if notifyEveryPercent <= 0 || notifyEveryPercent > 100 {
		notifyEveryPercent = 10
	}
	divisor := total * notifyEveryPercent / 100
	if divisor < 1 {
		divisor = 1
	}
	return divisor
}
