package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bogem/id3v2"

	ioutils "github.com/handiism/bandcamp-meta/internal/io"
	"github.com/handiism/bandcamp-meta/internal/model"
)

// ErrTrackCountMismatch is returned when a directory's MP3 files cannot
// be paired one-to-one with a release's tracks.
var ErrTrackCountMismatch = errors.New("MP3 file count does not match track count")

// Tagger writes normalized release records into MP3 files.
//
// Tagger uses the id3v2 library to modify MP3 file metadata including:
//   - Artist, Album Artist, Album, Title
//   - Track Number, Part of Set, Year, Recording Time
//   - Lyrics (unsynchronized)
//   - Catalog number (TXXX CATALOGNUMBER)
//   - Cover Art (attached picture)
//
// Example:
//
//	tagger := NewTagger(true)
//
//	err := tagger.ApplyRelease("/music/Artist - Album", info, coverBytes)
//	if err != nil {
//	    log.Printf("Failed to tag release: %v", err)
//	}
type Tagger struct {
	rename bool
}

// NewTagger creates a new Tagger.
//
// When rename is true, every tagged file is also renamed to its
// canonical "NN. Artist - Title.mp3" name.
func NewTagger(rename bool) *Tagger {
	return &Tagger{rename: rename}
}

// ApplyRelease writes one release's records into the MP3 files of dir.
//
// Files are paired with tracks in lexical filename order, so the
// directory must hold exactly one file per track; ErrTrackCountMismatch
// reports any difference before a single file is touched.
//
// Parameters:
//   - dir: Directory holding the release's MP3 files
//   - release: The normalized release record
//   - cover: JPEG image bytes for cover art (nil to skip artwork)
//
// Example:
//
//	tagger := NewTagger(false)
//	err := tagger.ApplyRelease("/music/Artist - Album", info, jpegBytes)
func (t *Tagger) ApplyRelease(dir string, release *model.ReleaseInfo, cover []byte) error {
	files, err := ioutils.ListMP3s(dir)
	if err != nil {
		return err
	}
	if len(files) != len(release.Tracks) {
		return fmt.Errorf("%w: %d tracks, %d files in %s",
			ErrTrackCountMismatch, len(release.Tracks), len(files), dir)
	}

	for i, path := range files {
		track := &release.Tracks[i]
		if err := t.applyTrack(path, track, release, i+1, len(files), cover); err != nil {
			return fmt.Errorf("tagging %s: %w", filepath.Base(path), err)
		}

		if t.rename {
			if err := t.renameTrack(dir, path, track); err != nil {
				return err
			}
		}
	}

	return nil
}

// applyTrack writes one track's frames. position is the 1-based file
// position, used as the track number when the record has none.
func (t *Tagger) applyTrack(path string, track *model.TrackInfo, release *model.ReleaseInfo, position, total int, cover []byte) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return err
	}
	defer tag.Close()

	// Title (TIT2), Artist (TPE1), Album (TALB)
	tag.SetTitle(track.Title)
	tag.SetArtist(track.Artist)
	tag.SetAlbum(release.Album)

	// Album Artist (TPE2)
	if release.AlbumArtist != "" {
		tag.AddTextFrame("TPE2", id3v2.EncodingUTF8, release.AlbumArtist)
	}

	// Track Number (TRCK)
	number := track.Index
	if number == 0 {
		number = position
	}
	tag.AddTextFrame("TRCK", id3v2.EncodingUTF8, fmt.Sprintf("%d/%d", number, total))

	// Part of Set (TPOS)
	if track.Medium > 0 {
		tag.AddTextFrame("TPOS", id3v2.EncodingUTF8, fmt.Sprintf("%d", track.Medium))
	}

	// Year (TYER) for ID3v2.3 readers, Recording Time (TDRC) for v2.4
	if len(release.Date) >= 4 {
		tag.AddTextFrame("TYER", id3v2.EncodingUTF8, release.Date[:4])
		tag.AddTextFrame("TDRC", id3v2.EncodingUTF8, release.Date)
	}

	// Lyrics (USLT)
	if track.Lyrics != "" {
		tag.AddUnsynchronisedLyricsFrame(id3v2.UnsynchronisedLyricsFrame{
			Encoding:          id3v2.EncodingUTF8,
			Language:          "eng",
			ContentDescriptor: "",
			Lyrics:            track.Lyrics,
		})
	}

	// Catalog number, in the TXXX frame taggers conventionally read
	if release.Catalognum != "" {
		tag.AddUserDefinedTextFrame(id3v2.UserDefinedTextFrame{
			Encoding:    id3v2.EncodingUTF8,
			Description: "CATALOGNUMBER",
			Value:       release.Catalognum,
		})
	}

	if len(cover) > 0 {
		t.applyCover(tag, cover)
	}

	return tag.Save()
}

// renameTrack moves a tagged file to its canonical name. An existing
// file is never overwritten: colliding with an unprocessed file of the
// same release would lose it.
func (t *Tagger) renameTrack(dir, path string, track *model.TrackInfo) error {
	newPath := filepath.Join(dir, track.FileName())
	if newPath == path {
		return nil
	}

	if _, err := os.Stat(newPath); err == nil {
		return fmt.Errorf("renaming %s: %s already exists",
			filepath.Base(path), filepath.Base(newPath))
	}

	return os.Rename(path, newPath)
}

// applyCover embeds cover art as an attached picture frame.
func (t *Tagger) applyCover(tag *id3v2.Tag, cover []byte) {
	// Remove any existing cover pictures
	tag.DeleteFrames(tag.CommonID("Attached picture"))

	// Add new artwork as front cover (APIC frame)
	pic := id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/jpeg",
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     cover,
	}
	tag.AddAttachedPicture(pic)
}
