package audio

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/handiism/bandcamp-meta/internal/model"
)

func TestPlaylistCreator_M3U(t *testing.T) {
	release := createTestRelease()
	creator := NewPlaylistCreator(model.PlaylistFormatM3U, false)

	content := creator.CreatePlaylist(release)

	// Check basic format
	if !strings.Contains(content, "01. Test Artist - track1.mp3") {
		t.Error("M3U should contain track filename")
	}
	if strings.Contains(content, "#EXTM3U") {
		t.Error("plain M3U should not contain #EXTM3U")
	}
}

func TestPlaylistCreator_M3UExtended(t *testing.T) {
	release := createTestRelease()
	creator := NewPlaylistCreator(model.PlaylistFormatM3U, true)

	content := creator.CreatePlaylist(release)

	if !strings.HasPrefix(content, "#EXTM3U") {
		t.Error("Extended M3U should start with #EXTM3U")
	}
	if !strings.Contains(content, "#EXTINF:180,Test Artist - track1") {
		t.Error("Extended M3U should contain #EXTINF with display name")
	}
}

func TestPlaylistCreator_PLS(t *testing.T) {
	release := createTestRelease()
	creator := NewPlaylistCreator(model.PlaylistFormatPLS, false)

	content := creator.CreatePlaylist(release)

	if !strings.HasPrefix(content, "[playlist]") {
		t.Error("PLS should start with [playlist]")
	}
	if !strings.Contains(content, "File1=") {
		t.Error("PLS should contain File1=")
	}
	if !strings.Contains(content, "Title2=Test Artist - track2") {
		t.Error("PLS should contain the display name")
	}
	if !strings.Contains(content, "NumberOfEntries=2") {
		t.Error("PLS should contain NumberOfEntries")
	}
}

func TestPlaylistCreator_WPL(t *testing.T) {
	release := createTestRelease()
	creator := NewPlaylistCreator(model.PlaylistFormatWPL, false)

	content := creator.CreatePlaylist(release)

	if !strings.Contains(content, "<?wpl") {
		t.Error("WPL should contain XML declaration")
	}
	if !strings.Contains(content, "<smil>") {
		t.Error("WPL should contain smil element")
	}
	if !strings.Contains(content, "<media src=") {
		t.Error("WPL should contain media elements")
	}
}

func TestPlaylistCreator_ZPL(t *testing.T) {
	release := createTestRelease()
	creator := NewPlaylistCreator(model.PlaylistFormatZPL, false)

	content := creator.CreatePlaylist(release)

	if !strings.Contains(content, "<?zpl") {
		t.Error("ZPL should contain XML declaration")
	}
	if !strings.Contains(content, `albumTitle="Test Album"`) {
		t.Error("ZPL should contain albumTitle attribute")
	}
	if !strings.Contains(content, `duration="180000"`) {
		t.Error("ZPL should contain duration in milliseconds")
	}
}

func TestPlaylistCreator_XMLEscape(t *testing.T) {
	release := &model.ReleaseInfo{
		Album:       "Album <Special>",
		AlbumArtist: "Artist & Co",
		Tracks: []model.TrackInfo{
			{Index: 1, Artist: "Artist & Co", Title: `Track & "Quote"`, Length: 180},
		},
	}

	creator := NewPlaylistCreator(model.PlaylistFormatWPL, false)
	content := creator.CreatePlaylist(release)

	if strings.Contains(content, "&") && !strings.Contains(content, "&amp;") {
		t.Error("WPL should escape & as &amp;")
	}
	if strings.Contains(content, "<Special>") {
		t.Error("WPL should escape < and >")
	}
}

func TestWritePlaylist(t *testing.T) {
	release := createTestRelease()
	dir := t.TempDir()

	err := WritePlaylist(context.Background(), model.PlaylistFormatPLS, dir, release)
	if err != nil {
		t.Fatalf("WritePlaylist() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "Test Album.pls"))
	if err != nil {
		t.Fatalf("reading playlist: %v", err)
	}
	if !strings.HasPrefix(string(data), "[playlist]") {
		t.Errorf("playlist content = %q, want [playlist] prefix", string(data))
	}
}

func createTestRelease() *model.ReleaseInfo {
	return &model.ReleaseInfo{
		Album:       "Test Album",
		AlbumArtist: "Test Artist",
		Tracks: []model.TrackInfo{
			{Index: 1, Artist: "Test Artist", Title: "track1", Length: 180},
			{Index: 2, Artist: "Test Artist", Title: "track2", Length: 200},
		},
	}
}
