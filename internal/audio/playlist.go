package audio

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	ioutils "github.com/handiism/bandcamp-meta/internal/io"
	"github.com/handiism/bandcamp-meta/internal/model"
)

// PlaylistCreator generates playlist files in various formats.
//
// PlaylistCreator takes a normalized release and generates a playlist
// containing all its tracks. The output is a string that can be written
// to a file.
//
// Track entries reference each track's canonical file name, so the
// playlist pairs with Tagger renaming.
//
// Example:
//
//	// Create M3U playlist with extended info
//	creator := NewPlaylistCreator(model.PlaylistFormatM3U, true)
//	content := creator.CreatePlaylist(release)
//
//	// Result:
//	// #EXTM3U
//	// #EXTINF:180,Artist - Song Title
//	// 01. Artist - Song Title.mp3
type PlaylistCreator struct {
	format   model.PlaylistFormat
	extended bool // For M3U: include EXTINF lines with duration/title
}

// NewPlaylistCreator creates a new PlaylistCreator.
//
// Parameters:
//   - format: The playlist format to generate
//   - extended: For M3U format, whether to include #EXTINF lines
//     (ignored for other formats)
func NewPlaylistCreator(format model.PlaylistFormat, extended bool) *PlaylistCreator {
	return &PlaylistCreator{
		format:   format,
		extended: extended,
	}
}

// CreatePlaylist generates playlist content for a release.
//
// Returns the playlist as a string, ready to be written to a file.
// Track paths in the playlist are relative (just the filename),
// assuming the playlist file is in the same directory as the tracks.
func (p *PlaylistCreator) CreatePlaylist(release *model.ReleaseInfo) string {
	switch p.format {
	case model.PlaylistFormatPLS:
		return p.createPLS(release)
	case model.PlaylistFormatWPL:
		return p.createWPL(release)
	case model.PlaylistFormatZPL:
		return p.createZPL(release)
	default:
		return p.createM3U(release)
	}
}

// WritePlaylist renders a release playlist and writes it into dir,
// named after the release with the format's extension.
//
// Example:
//
//	err := audio.WritePlaylist(ctx, model.PlaylistFormatM3U, "/music/Album", release)
//	// Writes /music/Album/<Album>.m3u
func WritePlaylist(ctx context.Context, format model.PlaylistFormat, dir string, release *model.ReleaseInfo) error {
	creator := NewPlaylistCreator(format, true)
	content := creator.CreatePlaylist(release)

	name := release.PlaylistName() + format.Extension()

	return ioutils.WriteFile(ctx, filepath.Join(dir, name), []byte(content))
}

// createM3U generates an M3U playlist.
//
// Standard M3U format:
//
//	filename1.mp3
//	filename2.mp3
//
// Extended M3U format (when extended=true):
//
//	#EXTM3U
//	#EXTINF:180,Artist - Title
//	filename1.mp3
func (p *PlaylistCreator) createM3U(release *model.ReleaseInfo) string {
	var sb strings.Builder

	if p.extended {
		sb.WriteString("#EXTM3U\n")
	}

	for i := range release.Tracks {
		track := &release.Tracks[i]
		if p.extended {
			sb.WriteString(fmt.Sprintf("#EXTINF:%d,%s\n", track.Length, track.Display()))
		}
		sb.WriteString(track.FileName() + "\n")
	}

	return sb.String()
}

// createPLS generates a PLS playlist.
//
// PLS format is an INI-style text file:
//
//	[playlist]
//	File1=filename1.mp3
//	Title1=Artist - Title
//	Length1=180
//	NumberOfEntries=2
//	Version=2
func (p *PlaylistCreator) createPLS(release *model.ReleaseInfo) string {
	var sb strings.Builder

	sb.WriteString("[playlist]\n")

	for i := range release.Tracks {
		track := &release.Tracks[i]
		idx := i + 1
		sb.WriteString(fmt.Sprintf("File%d=%s\n", idx, track.FileName()))
		sb.WriteString(fmt.Sprintf("Title%d=%s\n", idx, track.Display()))
		sb.WriteString(fmt.Sprintf("Length%d=%d\n", idx, track.Length))
	}

	sb.WriteString(fmt.Sprintf("NumberOfEntries=%d\n", len(release.Tracks)))
	sb.WriteString("Version=2\n")

	return sb.String()
}

// createWPL generates a Windows Media Player playlist.
//
// WPL is an XML-based SMIL format used by Windows Media Player.
func (p *PlaylistCreator) createWPL(release *model.ReleaseInfo) string {
	var sb strings.Builder

	sb.WriteString("<?wpl version=\"1.0\"?>\n")
	sb.WriteString("<smil>\n")
	sb.WriteString("  <head>\n")
	sb.WriteString(fmt.Sprintf("    <title>%s</title>\n", escapeXML(release.Album)))
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString("    <seq>\n")

	for i := range release.Tracks {
		sb.WriteString(fmt.Sprintf("      <media src=\"%s\"/>\n", escapeXML(release.Tracks[i].FileName())))
	}

	sb.WriteString("    </seq>\n")
	sb.WriteString("  </body>\n")
	sb.WriteString("</smil>\n")

	return sb.String()
}

// createZPL generates a Zune/Groove Music playlist.
//
// ZPL is similar to WPL but includes additional metadata attributes
// like album title, artist, and track duration.
func (p *PlaylistCreator) createZPL(release *model.ReleaseInfo) string {
	var sb strings.Builder

	sb.WriteString("<?zpl version=\"2.0\"?>\n")
	sb.WriteString("<smil>\n")
	sb.WriteString("  <head>\n")
	sb.WriteString(fmt.Sprintf("    <title>%s</title>\n", escapeXML(release.Album)))
	sb.WriteString("    <meta name=\"Generator\" content=\"bandcamp-meta\"/>\n")
	sb.WriteString(fmt.Sprintf("    <meta name=\"ItemCount\" content=\"%d\"/>\n", len(release.Tracks)))
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString("    <seq>\n")

	for i := range release.Tracks {
		track := &release.Tracks[i]
		sb.WriteString(fmt.Sprintf("      <media src=\"%s\" albumTitle=\"%s\" albumArtist=\"%s\" trackTitle=\"%s\" trackArtist=\"%s\" duration=\"%d\"/>\n",
			escapeXML(track.FileName()),
			escapeXML(release.Album),
			escapeXML(release.AlbumArtist),
			escapeXML(track.Title),
			escapeXML(track.Artist),
			track.Length*1000))
	}

	sb.WriteString("    </seq>\n")
	sb.WriteString("  </body>\n")
	sb.WriteString("</smil>\n")

	return sb.String()
}

// escapeXML escapes special XML characters in a string.
//
// Replaces: & < > " '
// With:     &amp; &lt; &gt; &quot; &apos;
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
