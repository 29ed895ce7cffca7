package quakefeed

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	lru "github.com/hashicorp/golang-lru"
)

// DefaultFeedBase is the USGS real-time summary feed directory.
const DefaultFeedBase = "https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary"

// DefaultFeed is the all-magnitudes past-day feed.
const DefaultFeed = "all_day.geojson"

const FEED_LRU_SZ = 16

// HTTPClient is used for all feed requests. Callers may adjust its timeout
// before fetching.
var HTTPClient = &http.Client{Timeout: 45 * time.Second}

var feedCache *lru.ARCCache

func init() {
	feedCache, _ = lru.NewARC(FEED_LRU_SZ)
}

// WriteCounter counts the number of bytes written to it, and every 10
// seconds, it prints a message reporting progress on a slow download.
type WriteCounter struct {
	Total    uint64
	Last     time.Time
	Reported bool
	Path     string
	Size     uint64
}

func (wc *WriteCounter) Write(p []byte) (int, error) {
	n := len(p)
	wc.Total += uint64(n)
	if time.Now().Sub(wc.Last).Seconds() > 10 {
		wc.Reported = true
		wc.Last = time.Now()
		log.Print(fmt.Sprintf("Downloading %s... %s / %s completed.",
			wc.Path, humanize.Bytes(wc.Total), humanize.Bytes(wc.Size)))
	}
	return n, nil
}

// FetchHTTP
// Fetch a resource from a remote HTTP server.
func FetchHTTP(uri string, rsrc string) (io.ReadCloser, error) {
	req, reqErr := http.NewRequest("GET", uri+"/"+rsrc, nil)
	if reqErr != nil {
		return nil, reqErr
	}
	resp, remoteErr := HTTPClient.Do(req)
	if remoteErr != nil {
		return nil, remoteErr
	}
	if resp.StatusCode != 200 {
		resp.Body.Close()
		return nil, errors.New(fmt.Sprintf("HTTP status code %d",
			resp.StatusCode))
	}
	return resp.Body, nil
}

// SizeHTTP
// Get the size of a resource from a remote HTTP server.
func SizeHTTP(uri string, rsrc string) (uint, error) {
	req, reqErr := http.NewRequest("HEAD", uri+"/"+rsrc, nil)
	if reqErr != nil {
		return 0, reqErr
	}
	resp, remoteErr := HTTPClient.Do(req)
	if remoteErr != nil {
		return 0, remoteErr
	} else if resp.StatusCode != 200 {
		resp.Body.Close()
		return 0, errors.New(fmt.Sprintf("HTTP status code %d",
			resp.StatusCode))
	} else {
		resp.Body.Close()
		size, _ := strconv.Atoi(resp.Header.Get("Content-Length"))
		return uint(size), nil
	}
}

// FetchFeed
// Fetches and parses the GeoJSON feed `rsrc` under `uri`, reporting download
// progress for slow transfers. Parsed feeds are cached per URL, so repeated
// runs against the same feed do not rehit the server.
func FetchFeed(uri string, rsrc string) (*FeatureCollection, error) {
	feedURL := uri + "/" + rsrc
	if cached, ok := feedCache.Get(feedURL); ok {
		return cached.(*FeatureCollection), nil
	}
	// Size is best effort, only used for progress reporting.
	rsrcSize, _ := SizeHTTP(uri, rsrc)
	body, fetchErr := FetchHTTP(uri, rsrc)
	if fetchErr != nil {
		return nil, errors.New(
			fmt.Sprintf("cannot retrieve `%s` from `%s`: %s",
				rsrc, uri, fetchErr))
	}
	defer body.Close()
	counter := &WriteCounter{
		Last: time.Now(),
		Path: feedURL,
		Size: uint64(rsrcSize),
	}
	data, ioErr := io.ReadAll(io.TeeReader(body, counter))
	if ioErr != nil {
		return nil, errors.New(
			fmt.Sprintf("error downloading '%s': %s", feedURL, ioErr))
	}
	collection, parseErr := ParseFeed(data)
	if parseErr != nil {
		return nil, parseErr
	}
	feedCache.Add(feedURL, collection)
	return collection, nil
}
