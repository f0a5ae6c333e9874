package route2gpx

import (
	"github.com/paulmach/orb/maptile"
	"github.com/pkg/errors"
)

// TileGrid Rectangular region of slippy-map tiles at a single zoom level.
// Both bounds are inclusive: the bottom-right tile itself is part of the grid.
type TileGrid struct {
	topLeft     maptile.Tile
	bottomRight maptile.Tile
}

// NewTileGrid returns grid spanned by the given corner tiles
func NewTileGrid(topLeft, bottomRight maptile.Tile) (*TileGrid, error) {
	if topLeft.Z != bottomRight.Z {
		return nil, errors.Errorf("Corner tiles must share zoom level, but got %d and %d", topLeft.Z, bottomRight.Z)
	}
	if bottomRight.X < topLeft.X {
		return nil, errors.Errorf("Bottom-right X = %d is left of top-left X = %d", bottomRight.X, topLeft.X)
	}
	if bottomRight.Y < topLeft.Y {
		return nil, errors.Errorf("Bottom-right Y = %d is above top-left Y = %d", bottomRight.Y, topLeft.Y)
	}
	return &TileGrid{
		topLeft:     topLeft,
		bottomRight: bottomRight,
	}, nil
}

// Zoom returns zoom level shared by every tile of the grid
func (grid *TileGrid) Zoom() maptile.Zoom {
	return grid.topLeft.Z
}

// Count returns total number of tiles in the grid
func (grid *TileGrid) Count() int {
	width := int(grid.bottomRight.X-grid.topLeft.X) + 1
	height := int(grid.bottomRight.Y-grid.topLeft.Y) + 1
	return width * height
}

// ForEach Calls fn for every tile of the grid exactly once.
// Order is column-major: X is the outer loop, Y the inner one, both ascending.
// Iteration stops at the first error returned by fn and that error is passed
// back to the caller.
func (grid *TileGrid) ForEach(fn func(tile maptile.Tile) error) error {
	for x := grid.topLeft.X; x <= grid.bottomRight.X; x++ {
		for y := grid.topLeft.Y; y <= grid.bottomRight.Y; y++ {
			err := fn(maptile.New(x, y, grid.topLeft.Z))
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// Tiles returns every tile of the grid in ForEach order
func (grid *TileGrid) Tiles() maptile.Tiles {
	tiles := make(maptile.Tiles, 0, grid.Count())
	grid.ForEach(func(tile maptile.Tile) error {
		tiles = append(tiles, tile)
		return nil
	})
	return tiles
}
