package model

import (
	"regexp"
	"strings"
)

// RawRelease is the release-level input assembled from a page's embedded
// metadata, before any normalization has happened.
//
// The field layout mirrors the JSON-LD shape Bandcamp embeds in release
// pages: the label can live on the nested album release or on the
// publisher, track entries wrap their payload in an item list, and a
// single-track release carries the track fields at the release level
// with no track list at all.
type RawRelease struct {
	// URL is the release page URL (the JSON-LD @id).
	URL string

	// Album is the release title exactly as published.
	Album string

	// AlbumArtist is the release-level artist credit.
	AlbumArtist string

	// RecordLabel is the label name from the nested album release.
	// Empty when the metadata has none.
	RecordLabel string

	// Publisher is the publisher name, the fallback label source.
	Publisher string

	// Image is the cover art URL.
	Image string

	// Date is the publication date in YYYY-MM-DD form, or empty when
	// the page date could not be parsed.
	Date string

	// Singleton reports that the metadata has no track list at all,
	// which is how single-track releases are published.
	Singleton bool

	// ID, Duration and Lyrics are the release-level track fields of a
	// singleton release; empty on multi-track releases.
	ID       string
	Duration string
	Lyrics   string

	// Tracks is the track list in page order. Empty for singleton
	// releases and for releases whose track data is gone (sold out or
	// delisted).
	Tracks []RawTrack
}

// ReleaseInfo is the normalized output record for one release.
//
// Example:
//
//	info := manager.Normalize(raw)
//	for _, t := range info.Tracks {
//	    fmt.Printf("%02d %s - %s\n", t.Index, t.Artist, t.Title)
//	}
type ReleaseInfo struct {
	// URL is the release page URL.
	URL string `json:"url,omitempty"`

	// Album is the cleaned release title.
	Album string `json:"album"`

	// AlbumArtist is the release-level artist credit.
	AlbumArtist string `json:"albumartist,omitempty"`

	// Label is the resolved record label, if any.
	Label string `json:"label,omitempty"`

	// Catalognum is the release-level catalog number, if one was found
	// in the album title or shared by every track title.
	Catalognum string `json:"catalognum,omitempty"`

	// Date is the publication date in YYYY-MM-DD form, if known.
	Date string `json:"date,omitempty"`

	// CoverURL is the cover art URL.
	CoverURL string `json:"cover_url,omitempty"`

	// Singleton reports a single-track release.
	Singleton bool `json:"singleton,omitempty"`

	// Tracks holds one normalized record per track, in page order.
	Tracks []TrackInfo `json:"tracks"`
}

// PlaylistName returns a sanitized file name for the release playlist,
// without extension.
func (r *ReleaseInfo) PlaylistName() string {
	return sanitizeFileName(r.Album)
}

// TotalLength returns the summed track lengths in seconds. Tracks with
// unknown lengths contribute nothing.
func (r *ReleaseInfo) TotalLength() int {
	total := 0
	for i := range r.Tracks {
		total += r.Tracks[i].Length
	}

	return total
}

// sanitizeFileName removes or replaces characters that are invalid in
// file/folder names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars) are replaced with underscore
//   - Trailing dots are removed (Windows limitation)
//   - Multiple whitespace is collapsed to single space
//   - Trailing whitespace is removed
func sanitizeFileName(name string) string {
	// Replace invalid path/file characters
	invalidChars := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	name = invalidChars.ReplaceAllString(name, "_")

	// Remove trailing dots
	name = regexp.MustCompile(`\.+$`).ReplaceAllString(name, "")

	// Replace multiple whitespace with single space
	name = regexp.MustCompile(`\s+`).ReplaceAllString(name, " ")

	// Remove trailing whitespace
	name = strings.TrimRight(name, " ")

	return name
}
