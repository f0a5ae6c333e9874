package route2gpx

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/paulmach/orb/maptile"
	"github.com/pkg/errors"
)

// DefaultTileURLTemplate Mapbox v4 endpoint bundling the base layers with
// the uploaded marathon tilesets. {z}, {x}, {y} and {token} are substituted
// per request.
const DefaultTileURLTemplate = "https://api.mapbox.com/v4/" +
	"mapbox.mapbox-terrain-v2,mapbox.mapbox-streets-v7," +
	"geocentric.24kvp202,geocentric.0rz5vmpj,geocentric.1tryr4je" +
	"/{z}/{y}/{x}.vector.pbf?sku=101U7kfJrad7a&access_token={token}"

// TileFetcher Obtains the raw vector tile payload for a single tile
type TileFetcher interface {
	Fetch(ctx context.Context, tile maptile.Tile) ([]byte, error)
}

// MapboxFetcher Downloads tiles over HTTP from a templated URL.
// No retry is performed: any transport failure or non-200 status is returned
// to the caller, which treats it as fatal for the run.
type MapboxFetcher struct {
	client      *http.Client
	urlTemplate string
	accessToken string
}

// NewMapboxFetcher returns fetcher for the given access token
func NewMapboxFetcher(accessToken string, options ...func(*MapboxFetcher)) *MapboxFetcher {
	fetcher := &MapboxFetcher{
		client:      &http.Client{Timeout: 30 * time.Second},
		urlTemplate: DefaultTileURLTemplate,
		accessToken: accessToken,
	}
	for _, option := range options {
		option(fetcher)
	}
	return fetcher
}

// WithTileURLTemplate overrides the default tile URL template
func WithTileURLTemplate(urlTemplate string) func(*MapboxFetcher) {
	return func(fetcher *MapboxFetcher) {
		fetcher.urlTemplate = urlTemplate
	}
}

// WithHTTPClient overrides the default HTTP client
func WithHTTPClient(client *http.Client) func(*MapboxFetcher) {
	return func(fetcher *MapboxFetcher) {
		fetcher.client = client
	}
}

// URL returns request URL for the given tile
func (fetcher *MapboxFetcher) URL(tile maptile.Tile) string {
	replacer := strings.NewReplacer(
		"{z}", strconv.Itoa(int(tile.Z)),
		"{x}", strconv.Itoa(int(tile.X)),
		"{y}", strconv.Itoa(int(tile.Y)),
		"{token}", fetcher.accessToken,
	)
	return replacer.Replace(fetcher.urlTemplate)
}

// Fetch downloads the raw protobuf payload for the given tile
func (fetcher *MapboxFetcher) Fetch(ctx context.Context, tile maptile.Tile) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetcher.URL(tile), nil)
	if err != nil {
		return nil, errors.Wrap(err, "Can't build tile request")
	}
	resp, err := fetcher.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't fetch tile %d/%d/%d", tile.Z, tile.X, tile.Y)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("Tile %d/%d/%d returned status %d", tile.Z, tile.X, tile.Y, resp.StatusCode)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't read tile %d/%d/%d body", tile.Z, tile.X, tile.Y)
	}
	return raw, nil
}
