package quakefeed

import (
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var feedFixture []byte

func init() {
	fixture, err := os.ReadFile("testdata/all_day.geojson")
	if err != nil {
		log.Fatalf("Error opening `testdata/all_day.geojson`: %v", err)
	}
	feedFixture = fixture
}

func TestParseFeed(t *testing.T) {
	collection, err := ParseFeed(feedFixture)
	require.NoError(t, err)
	assert.Equal(t, "USGS All Earthquakes, Past Day", collection.Title())
	assert.Len(t, collection.Features, 5)
}

func TestParseFeed_Malformed(t *testing.T) {
	if _, err := ParseFeed([]byte("{not json")); err == nil {
		t.Error("expected error for malformed feed")
	}
}

func TestSummaries(t *testing.T) {
	collection, err := ParseFeed(feedFixture)
	require.NoError(t, err)
	// Events missing a magnitude or place are skipped.
	assert.Equal(t, []string{
		"42 km E of Chenega, Alaska - Mag 2.5",
		"South Sandwich Islands region - Mag 4.25",
	}, collection.Summaries())
}

func TestSummaries_Empty(t *testing.T) {
	collection := &FeatureCollection{}
	assert.Empty(t, collection.Summaries())
	assert.Equal(t, "(untitled feed)", collection.Title())
}

func TestFetchFeed(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet {
				hits += 1
			}
			w.Write(feedFixture)
		}))
	defer server.Close()

	collection, err := FetchFeed(server.URL, "all_day.geojson")
	require.NoError(t, err)
	assert.Len(t, collection.Summaries(), 2)

	// A second fetch of the same URL is served from the cache.
	again, err := FetchFeed(server.URL, "all_day.geojson")
	require.NoError(t, err)
	assert.Equal(t, collection, again)
	assert.Equal(t, 1, hits)
}

func TestFetchFeed_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
	defer server.Close()

	if _, err := FetchFeed(server.URL, "no_such.geojson"); err == nil {
		t.Error("expected error for 404 feed")
	}
}

func TestFetchHTTP_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
	defer server.Close()

	if _, err := FetchHTTP(server.URL, "all_day.geojson"); err == nil {
		t.Error("expected error on non-200 status")
	}
}
