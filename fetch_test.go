package route2gpx

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/paulmach/orb/maptile"
)

func TestMapboxFetcherURL(t *testing.T) {
	fetcher := NewMapboxFetcher("secret",
		WithTileURLTemplate("https://tiles.example.com/{z}/{y}/{x}.pbf?access_token={token}"))
	correct := "https://tiles.example.com/15/9365/12531.pbf?access_token=secret"
	if got := fetcher.URL(maptile.New(12531, 9365, 15)); got != correct {
		t.Errorf("Tile URL must be '%s', but got '%s'", correct, got)
	}
}

func TestMapboxFetcherDefaultTemplate(t *testing.T) {
	fetcher := NewMapboxFetcher("secret")
	url := fetcher.URL(maptile.New(12531, 9365, 15))
	correctSuffix := "/15/9365/12531.vector.pbf?sku=101U7kfJrad7a&access_token=secret"
	if !strings.HasSuffix(url, correctSuffix) {
		t.Errorf("Default URL must end with '%s', but got '%s'", correctSuffix, url)
	}
}

func TestMapboxFetcherFetch(t *testing.T) {
	payload := []byte{0x1a, 0x2b, 0x3c}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/1/0/0.pbf" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write(payload)
	}))
	defer server.Close()

	fetcher := NewMapboxFetcher("",
		WithTileURLTemplate(server.URL+"/{z}/{y}/{x}.pbf"),
		WithHTTPClient(server.Client()))
	raw, err := fetcher.Fetch(context.Background(), maptile.New(0, 0, 1))
	if err != nil {
		t.Error(err)
		return
	}
	if !bytes.Equal(raw, payload) {
		t.Errorf("Payload must be %v, but got %v", payload, raw)
	}

	if _, err := fetcher.Fetch(context.Background(), maptile.New(1, 1, 1)); err == nil {
		t.Errorf("Non-200 status must be an error")
	}
}
