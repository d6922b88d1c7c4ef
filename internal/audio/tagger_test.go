package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2"

	"github.com/handiism/bandcamp-meta/internal/model"
)

func TestTagger_ApplyRelease(t *testing.T) {
	dir := t.TempDir()
	// Out-of-order names prove the lexical pairing.
	writeEmptyMP3(t, dir, "b-side.mp3")
	writeEmptyMP3(t, dir, "a-side.mp3")

	release := &model.ReleaseInfo{
		Album:       "Test Album",
		AlbumArtist: "Test Artist",
		Catalognum:  "LBL001",
		Date:        "2023-05-01",
		Tracks: []model.TrackInfo{
			{Index: 1, Medium: 1, Artist: "Test Artist", Title: "First", Lyrics: "la la"},
			{Index: 2, Medium: 1, Artist: "Test Artist", Title: "Second"},
		},
	}

	tagger := NewTagger(false)
	if err := tagger.ApplyRelease(dir, release, nil); err != nil {
		t.Fatalf("ApplyRelease() error: %v", err)
	}

	tag, err := id3v2.Open(filepath.Join(dir, "a-side.mp3"), id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("reading tags back: %v", err)
	}
	defer tag.Close()

	if got := tag.Title(); got != "First" {
		t.Errorf("Title = %q, want %q", got, "First")
	}
	if got := tag.Artist(); got != "Test Artist" {
		t.Errorf("Artist = %q, want %q", got, "Test Artist")
	}
	if got := tag.Album(); got != "Test Album" {
		t.Errorf("Album = %q, want %q", got, "Test Album")
	}
	if got := tag.GetTextFrame("TPE2").Text; got != "Test Artist" {
		t.Errorf("TPE2 = %q, want %q", got, "Test Artist")
	}
	if got := tag.GetTextFrame("TRCK").Text; got != "1/2" {
		t.Errorf("TRCK = %q, want %q", got, "1/2")
	}
	if got := tag.GetTextFrame("TPOS").Text; got != "1" {
		t.Errorf("TPOS = %q, want %q", got, "1")
	}
	if got := tag.GetTextFrame("TYER").Text; got != "2023" {
		t.Errorf("TYER = %q, want %q", got, "2023")
	}
	if got := tag.GetTextFrame("TDRC").Text; got != "2023-05-01" {
		t.Errorf("TDRC = %q, want %q", got, "2023-05-01")
	}

	lyricsFrames := tag.GetFrames(tag.CommonID("Unsynchronised lyrics/text transcription"))
	if len(lyricsFrames) != 1 {
		t.Fatalf("USLT frames = %d, want 1", len(lyricsFrames))
	}
	if uslt, ok := lyricsFrames[0].(id3v2.UnsynchronisedLyricsFrame); !ok || uslt.Lyrics != "la la" {
		t.Errorf("USLT = %+v, want lyrics %q", lyricsFrames[0], "la la")
	}

	txxxFrames := tag.GetFrames(tag.CommonID("User defined text information frame"))
	if len(txxxFrames) != 1 {
		t.Fatalf("TXXX frames = %d, want 1", len(txxxFrames))
	}
	if udt, ok := txxxFrames[0].(id3v2.UserDefinedTextFrame); !ok ||
		udt.Description != "CATALOGNUMBER" || udt.Value != "LBL001" {
		t.Errorf("TXXX = %+v, want CATALOGNUMBER=LBL001", txxxFrames[0])
	}
}

func TestTagger_ApplyReleaseCountMismatch(t *testing.T) {
	dir := t.TempDir()
	writeEmptyMP3(t, dir, "only.mp3")

	release := &model.ReleaseInfo{
		Album: "Test Album",
		Tracks: []model.TrackInfo{
			{Index: 1, Title: "First"},
			{Index: 2, Title: "Second"},
		},
	}

	err := NewTagger(false).ApplyRelease(dir, release, nil)
	if !errors.Is(err, ErrTrackCountMismatch) {
		t.Errorf("ApplyRelease() error = %v, want ErrTrackCountMismatch", err)
	}
}

func TestTagger_ApplyReleaseRename(t *testing.T) {
	dir := t.TempDir()
	writeEmptyMP3(t, dir, "untitled.mp3")

	release := &model.ReleaseInfo{
		Album: "Test Album",
		Tracks: []model.TrackInfo{
			{Index: 1, Artist: "Test Artist", Title: "First"},
		},
	}

	if err := NewTagger(true).ApplyRelease(dir, release, nil); err != nil {
		t.Fatalf("ApplyRelease() error: %v", err)
	}

	renamed := filepath.Join(dir, "01. Test Artist - First.mp3")
	if _, err := os.Stat(renamed); err != nil {
		t.Errorf("renamed file missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "untitled.mp3")); !os.IsNotExist(err) {
		t.Errorf("original file still present")
	}
}

func writeEmptyMP3(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}
