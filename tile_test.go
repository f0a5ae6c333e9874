package route2gpx

import (
	"testing"

	"github.com/paulmach/orb/maptile"
	"github.com/pkg/errors"
)

var errTestStop = errors.New("stop")

func TestTileGridEnumeration(t *testing.T) {
	grid, err := NewTileGrid(maptile.New(0, 0, 1), maptile.New(1, 1, 1))
	if err != nil {
		t.Error(err)
		return
	}
	if grid.Count() != 4 {
		t.Errorf("Grid must hold 4 tiles, but got %d", grid.Count())
	}
	correctOrder := maptile.Tiles{
		maptile.New(0, 0, 1),
		maptile.New(0, 1, 1),
		maptile.New(1, 0, 1),
		maptile.New(1, 1, 1),
	}
	tiles := grid.Tiles()
	if len(tiles) != len(correctOrder) {
		t.Errorf("Grid must enumerate %d tiles, but got %d", len(correctOrder), len(tiles))
		return
	}
	for i := range correctOrder {
		if tiles[i] != correctOrder[i] {
			t.Errorf("Tile at position %d must be %v, but got %v", i, correctOrder[i], tiles[i])
		}
	}
}

func TestTileGridSingleTile(t *testing.T) {
	grid, err := NewTileGrid(maptile.New(5, 7, 10), maptile.New(5, 7, 10))
	if err != nil {
		t.Error(err)
		return
	}
	if grid.Count() != 1 {
		t.Errorf("Degenerate grid must hold 1 tile, but got %d", grid.Count())
	}
}

func TestTileGridValidation(t *testing.T) {
	if _, err := NewTileGrid(maptile.New(0, 0, 1), maptile.New(1, 1, 2)); err == nil {
		t.Errorf("Mismatched zooms must be rejected")
	}
	if _, err := NewTileGrid(maptile.New(2, 0, 1), maptile.New(1, 1, 1)); err == nil {
		t.Errorf("Inverted X bounds must be rejected")
	}
	if _, err := NewTileGrid(maptile.New(0, 2, 3), maptile.New(1, 1, 3)); err == nil {
		t.Errorf("Inverted Y bounds must be rejected")
	}
}

func TestTileGridForEachStopsOnError(t *testing.T) {
	grid, err := NewTileGrid(maptile.New(0, 0, 1), maptile.New(1, 1, 1))
	if err != nil {
		t.Error(err)
		return
	}
	visited := 0
	err = grid.ForEach(func(tile maptile.Tile) error {
		visited++
		if visited == 2 {
			return errTestStop
		}
		return nil
	})
	if err != errTestStop {
		t.Errorf("ForEach must return the callback error, but got %v", err)
	}
	if visited != 2 {
		t.Errorf("ForEach must stop after 2 tiles, but visited %d", visited)
	}
}
