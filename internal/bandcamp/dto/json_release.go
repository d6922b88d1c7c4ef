package dto

import (
	"encoding/json"
	"time"

	"github.com/handiism/bandcamp-meta/internal/model"
)

// BandcampTime is a custom time type that handles Bandcamp's date format.
type BandcampTime struct {
	time.Time
}

// UnmarshalJSON parses Bandcamp's date format: "01 Jan 2023 00:00:00 GMT"
func (bt *BandcampTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	if s == "" {
		bt.Time = time.Time{}
		return nil
	}

	// Try multiple formats
	formats := []string{
		"02 Jan 2006 15:04:05 MST",  // "01 Jan 2023 00:00:00 GMT"
		"2 Jan 2006 15:04:05 MST",   // "1 Jan 2023 00:00:00 GMT"
		time.RFC3339,                // Standard format
		"2006-01-02T15:04:05Z07:00", // ISO format
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			bt.Time = t
			return nil
		}
	}

	// An unrecognized date should not sink the whole release record.
	bt.Time = time.Time{}
	return nil
}

// StringList accepts a JSON value that is either a single string or a
// list of strings. Bandcamp publishes the cover image both ways.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (s *StringList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*s = StringList{one}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}

	*s = many
	return nil
}

// First returns the first value, or "" when the list is empty.
func (s StringList) First() string {
	if len(s) > 0 {
		return s[0]
	}

	return ""
}

// Name wraps the common {"name": "..."} JSON-LD shape used for artists,
// publishers and record labels.
type Name struct {
	Name string `json:"name"`
}

// AlbumRelease is one entry of the albumRelease list, describing a
// published format of the release.
type AlbumRelease struct {
	Name               string `json:"name"`
	MusicReleaseFormat string `json:"musicReleaseFormat"`
	RecordLabel        *Name  `json:"recordLabel"`
}

// InAlbum is the parent album reference found on track pages.
type InAlbum struct {
	Name         string         `json:"name"`
	AlbumRelease []AlbumRelease `json:"albumRelease"`
}

// Release mirrors the JSON-LD metadata embedded in a Bandcamp release
// page. Album pages carry a track list; track pages carry the track
// fields at the top level and no track list at all.
type Release struct {
	ID            string         `json:"@id"`
	Name          string         `json:"name"`
	ByArtist      *Name          `json:"byArtist"`
	Publisher     *Name          `json:"publisher"`
	DatePublished *BandcampTime  `json:"datePublished"`
	Image         StringList     `json:"image"`
	AlbumRelease  []AlbumRelease `json:"albumRelease"`
	InAlbum       *InAlbum       `json:"inAlbum"`
	Track         *TrackList     `json:"track"`

	// Track-page (singleton) fields.
	Duration    string       `json:"duration"`
	RecordingOf *RecordingOf `json:"recordingOf"`
}

// ToRaw converts the page metadata to a model.RawRelease.
//
// The record label is taken from the first album release, looked up via
// the parent album on track pages; the publisher is carried alongside
// as the fallback. A page without a track list is a singleton and keeps
// its track fields at the release level.
func (r *Release) ToRaw() model.RawRelease {
	raw := model.RawRelease{
		URL:       r.ID,
		Album:     r.Name,
		Image:     r.Image.First(),
		Singleton: r.Track == nil,
	}

	if r.ByArtist != nil {
		raw.AlbumArtist = r.ByArtist.Name
	}
	if r.Publisher != nil {
		raw.Publisher = r.Publisher.Name
	}
	if r.DatePublished != nil && !r.DatePublished.IsZero() {
		raw.Date = r.DatePublished.Format("2006-01-02")
	}

	releases := r.AlbumRelease
	if r.InAlbum != nil {
		releases = r.InAlbum.AlbumRelease
	}
	if len(releases) > 0 && releases[0].RecordLabel != nil {
		raw.RecordLabel = releases[0].RecordLabel.Name
	}

	if r.Track == nil {
		raw.ID = r.ID
		raw.Duration = r.Duration
		if r.RecordingOf != nil && r.RecordingOf.Lyrics != nil {
			raw.Lyrics = r.RecordingOf.Lyrics.Text
		}

		return raw
	}

	raw.Tracks = make([]model.RawTrack, 0, len(r.Track.ItemListElement))
	for _, item := range r.Track.ItemListElement {
		raw.Tracks = append(raw.Tracks, item.ToRawTrack())
	}

	return raw
}
