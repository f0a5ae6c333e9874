package route2gpx

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"strconv"

	"github.com/paulmach/orb/maptile"
	"github.com/pkg/errors"
)

// DefaultDecoderCommand tippecanoe-decode ships with tippecanoe
// (e.g. `brew install tippecanoe`)
const DefaultDecoderCommand = "tippecanoe-decode"

// TileDecoder Converts a raw vector tile payload into structured layer data.
// The pipeline only depends on this interface, so tests can plug in an
// in-memory decoder and never spawn a process.
type TileDecoder interface {
	Decode(ctx context.Context, tile maptile.Tile, raw []byte) (*TileData, error)
}

// TippecanoeDecoder Shells out to the tippecanoe-decode utility. The raw
// payload is staged in a temporary file which is removed whether or not the
// command succeeds.
type TippecanoeDecoder struct {
	Command string
}

// NewTippecanoeDecoder returns decoder invoking the given command, or the
// default one when command is empty
func NewTippecanoeDecoder(command string) *TippecanoeDecoder {
	if command == "" {
		command = DefaultDecoderCommand
	}
	return &TippecanoeDecoder{Command: command}
}

// Decode runs the external decoder for one tile and parses its stdout.
// Argument order for tippecanoe-decode is file, z, y, x.
func (decoder *TippecanoeDecoder) Decode(ctx context.Context, tile maptile.Tile, raw []byte) (*TileData, error) {
	tmp, err := os.CreateTemp("", "tile-*.pbf")
	if err != nil {
		return nil, errors.Wrap(err, "Can't create temporary tile file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return nil, errors.Wrap(err, "Can't write temporary tile file")
	}
	if err := tmp.Close(); err != nil {
		return nil, errors.Wrap(err, "Can't close temporary tile file")
	}

	cmd := exec.CommandContext(ctx, decoder.Command,
		tmp.Name(),
		strconv.Itoa(int(tile.Z)),
		strconv.Itoa(int(tile.Y)),
		strconv.Itoa(int(tile.X)),
	)
	out, err := cmd.Output()
	if err != nil {
		return nil, errors.Wrapf(err, "Can't run %s for tile %d/%d/%d", decoder.Command, tile.Z, tile.X, tile.Y)
	}

	data := &TileData{}
	if err := json.Unmarshal(out, data); err != nil {
		return nil, errors.Wrapf(err, "Can't parse decoder output for tile %d/%d/%d", tile.Z, tile.X, tile.Y)
	}
	return data, nil
}
