package model

import (
	"fmt"
	"strings"
)

// RawTrack is the per-track input as published in the page metadata.
type RawTrack struct {
	// ID is the track identifier (the JSON-LD @id). Required.
	ID string

	// Name is the track name exactly as published.
	Name string

	// Artist is the per-track byArtist credit. Often empty, in which
	// case the artist has to be deduced from the name.
	Artist string

	// Position is the 1-based track position; 0 when the metadata has
	// none (singleton releases).
	Position int

	// Duration is the raw duration string, e.g. "P00H03M50S".
	Duration string

	// Lyrics is the raw lyrics text, if published.
	Lyrics string

	// AlbumArtist is an optional caller-supplied override that forces
	// the artist of every track, used for compilation releases.
	AlbumArtist string
}

// TrackInfo is the normalized output record for one track.
type TrackInfo struct {
	// Index is the 1-based track position; 0 for singleton tracks.
	Index int `json:"index,omitempty"`

	// MediumIndex is the position on its medium; matches Index when a
	// position is known.
	MediumIndex int `json:"medium_index,omitempty"`

	// Medium is the disc number, currently always 1.
	Medium int `json:"medium"`

	// TrackID is the track identifier from the page metadata.
	TrackID string `json:"track_id"`

	// Artist is the resolved artist credit, featuring annotation
	// included when it is not already part of the title.
	Artist string `json:"artist"`

	// Artists lists the individual artists, featured artist included.
	Artists []string `json:"artists,omitempty"`

	// Title is the cleaned track title.
	Title string `json:"title"`

	// Length is the track length in seconds; 0 when unknown.
	Length int `json:"length,omitempty"`

	// TrackAlt is the vinyl/cassette side label, e.g. "A1", when the
	// title carried one.
	TrackAlt string `json:"track_alt,omitempty"`

	// Lyrics is the lyrics text with carriage returns removed.
	Lyrics string `json:"lyrics,omitempty"`

	// Catalognum is a track-level catalog number, if one was found in
	// the title.
	Catalognum string `json:"catalognum,omitempty"`

	// DigiOnly reports that the title carried a digital-only or bonus
	// marker.
	DigiOnly bool `json:"digi_only,omitempty"`

	// OriginalName is the track name before normalization, kept for
	// reporting.
	OriginalName string `json:"original_name,omitempty"`
}

// Display returns the human-readable "Artist - Title" form, or just the
// title when no artist was resolved.
func (t *TrackInfo) Display() string {
	if t.Artist == "" {
		return t.Title
	}

	return t.Artist + " - " + t.Title
}

// FileName returns a sanitized "NN. Artist - Title.mp3" file name for
// this track. Tracks without a position (singletons) omit the number
// prefix.
func (t *TrackInfo) FileName() string {
	name := t.Display()
	if t.Index > 0 {
		name = fmt.Sprintf("%02d. %s", t.Index, name)
	}

	name = sanitizeFileName(name)

	// Leave room for the extension on absurdly long titles
	// (Windows MAX_PATH).
	if len(name) > 250 {
		name = strings.TrimRight(name[:250], " ")
	}

	return name + ".mp3"
}
