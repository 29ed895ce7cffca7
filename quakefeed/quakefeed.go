// Package quakefeed fetches USGS earthquake GeoJSON summary feeds and
// renders them as human-readable event lines.
package quakefeed

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// FeatureCollection is the top level of a GeoJSON summary feed.
type FeatureCollection struct {
	Type     *string   `json:"type,omitempty"`
	Metadata *Metadata `json:"metadata,omitempty"`
	Features []Feature `json:"features"`
}

// Metadata describes the feed itself.
type Metadata struct {
	Generated *int64  `json:"generated,omitempty"`
	Title     *string `json:"title,omitempty"`
	Count     *int    `json:"count,omitempty"`
}

// Feature is a single earthquake event. Fields the feed may omit are
// pointers so that missing values are distinguishable from zero values.
type Feature struct {
	Id         *string            `json:"id,omitempty"`
	Properties *FeatureProperties `json:"properties,omitempty"`
}

type FeatureProperties struct {
	Mag   *float64 `json:"mag,omitempty"`
	Place *string  `json:"place,omitempty"`
	Time  *int64   `json:"time,omitempty"`
}

// ParseFeed unmarshals raw GeoJSON feed bytes into a FeatureCollection.
func ParseFeed(data []byte) (*FeatureCollection, error) {
	var collection FeatureCollection
	if err := json.Unmarshal(data, &collection); err != nil {
		return nil, errors.New(
			fmt.Sprintf("error unmarshalling feed: %s", err))
	}
	return &collection, nil
}

// Summaries returns one "<place> - Mag <mag>" line per event, skipping
// events that are missing either field.
func (fc *FeatureCollection) Summaries() []string {
	summaries := make([]string, 0, len(fc.Features))
	for idx := range fc.Features {
		props := fc.Features[idx].Properties
		if props == nil || props.Place == nil || props.Mag == nil {
			continue
		}
		summaries = append(summaries, fmt.Sprintf("%s - Mag %s",
			*props.Place,
			strconv.FormatFloat(*props.Mag, 'f', -1, 64)))
	}
	return summaries
}

// Title returns the feed's own title, or a placeholder when the metadata is
// absent.
func (fc *FeatureCollection) Title() string {
	if fc.Metadata == nil || fc.Metadata.Title == nil {
		return "(untitled feed)"
	}
	return *fc.Metadata.Title
}
