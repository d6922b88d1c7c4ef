package dto

import "github.com/handiism/bandcamp-meta/internal/model"

// TrackList is the JSON-LD ItemList holding the release tracks.
type TrackList struct {
	NumberOfItems   int        `json:"numberOfItems"`
	ItemListElement []ListItem `json:"itemListElement"`
}

// ListItem is one entry of the track list: the position plus the track
// payload.
type ListItem struct {
	Position int        `json:"position"`
	Item     *TrackItem `json:"item"`
}

// TrackItem is the per-track JSON-LD payload.
type TrackItem struct {
	ID          string       `json:"@id"`
	Name        string       `json:"name"`
	ByArtist    *Name        `json:"byArtist"`
	Duration    string       `json:"duration"`
	RecordingOf *RecordingOf `json:"recordingOf"`
}

// RecordingOf carries the lyrics of a track, when published.
type RecordingOf struct {
	Lyrics *Lyrics `json:"lyrics"`
}

// Lyrics is the lyrics text wrapper.
type Lyrics struct {
	Text string `json:"text"`
}

// ToRawTrack flattens the list entry and its payload into a
// model.RawTrack.
func (li *ListItem) ToRawTrack() model.RawTrack {
	raw := model.RawTrack{Position: li.Position}
	if li.Item == nil {
		return raw
	}

	raw.ID = li.Item.ID
	raw.Name = li.Item.Name
	raw.Duration = li.Item.Duration
	if li.Item.ByArtist != nil {
		raw.Artist = li.Item.ByArtist.Name
	}
	if li.Item.RecordingOf != nil && li.Item.RecordingOf.Lyrics != nil {
		raw.Lyrics = li.Item.RecordingOf.Lyrics.Text
	}

	return raw
}
