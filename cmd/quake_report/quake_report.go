package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/Netflix/go-env"

	"github.com/DumpsterDom/cse212-ClassWork/quakefeed"
)

// Config is read from the environment; flags override.
type Config struct {
	FeedBase string        `env:"QUAKE_FEED_BASE,default=https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary"`
	Feed     string        `env:"QUAKE_FEED,default=all_day.geojson"`
	Timeout  time.Duration `env:"QUAKE_HTTP_TIMEOUT,default=45s"`
}

func main() {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatal(err)
	}
	feedBase := flag.String("base", config.FeedBase,
		"base URL of the summary feed directory")
	feed := flag.String("feed", config.Feed,
		"feed to fetch [all_hour.geojson, all_day.geojson, "+
			"significant_week.geojson, ...]")
	flag.Parse()

	quakefeed.HTTPClient.Timeout = config.Timeout

	collection, err := quakefeed.FetchFeed(*feedBase, *feed)
	if err != nil {
		log.Fatal(err)
	}

	summaries := collection.Summaries()
	for _, line := range summaries {
		fmt.Println(line)
	}
	log.Printf("%s: %d events, %d with place and magnitude",
		collection.Title(), len(collection.Features), len(summaries))
}
