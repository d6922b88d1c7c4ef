package names

import (
	"reflect"
	"testing"

	"github.com/handiism/bandcamp-meta/internal/model"
)

func TestFindCommonTrackDelimiter(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  string
	}{
		{
			name:  "no separator defaults to hyphen",
			names: []string{"Track One", "Track Two"},
			want:  "-",
		},
		{
			name:  "single title with a pipe",
			names: []string{"Artist | Track"},
			want:  "|",
		},
		{
			name:  "single title without a separator",
			names: []string{"Track"},
			want:  "-",
		},
		{
			name:  "pipe majority wins",
			names: []string{"A | One", "B | Two", "C - Three"},
			want:  "|",
		},
		{
			name:  "minority candidate loses to hyphen",
			names: []string{"A | One", "B Two", "C Three"},
			want:  "-",
		},
		{
			name:  "tie goes to hyphen",
			names: []string{"A | One", "B – Two", "C Three", "D Four"},
			want:  "-",
		},
		{
			name:  "en dash majority",
			names: []string{"A – One", "B – Two"},
			want:  "–",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := findCommonTrackDelimiter(tt.names); got != tt.want {
				t.Errorf("findCommonTrackDelimiter(%q) = %q, want %q", tt.names, got, tt.want)
			}
		})
	}
}

func TestNormalizeDelimiter(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  []string
	}{
		{
			name:  "pipe rewritten to dash",
			names: []string{"A | One", "B | Two"},
			want:  []string{"A - One", "B - Two"},
		},
		{
			name:  "tab is always a delimiter",
			names: []string{"A\tOne"},
			want:  []string{"A - One"},
		},
		{
			name:  "minority pipe is kept",
			names: []string{"A | One", "B Two", "C Three"},
			want:  []string{"A | One", "B Two", "C Three"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeDelimiter(tt.names); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("normalizeDelimiter(%q) = %q, want %q", tt.names, got, tt.want)
			}
		})
	}
}

func TestRemoveNumberPrefix(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  []string
	}{
		{
			name:  "majority strips prefixes",
			names: []string{"01. One", "02. Two", "Three"},
			want:  []string{"One", "Two", "Three"},
		},
		{
			name:  "half is not a majority",
			names: []string{"01. One", "Two"},
			want:  []string{"01. One", "Two"},
		},
		{
			name:  "prefix after separator",
			names: []string{"Artist - 01. One", "Artist - 02. Two"},
			want:  []string{"Artist - One", "Artist - Two"},
		},
		{
			name:  "year is not a prefix",
			names: []string{"2020 Vision", "2021 Hindsight"},
			want:  []string{"2020 Vision", "2021 Hindsight"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := removeNumberPrefix(tt.names); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("removeNumberPrefix(%q) = %q, want %q", tt.names, got, tt.want)
			}
		})
	}
}

func TestSplitQuotedTitles(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  []string
	}{
		{
			name:  "all quoted",
			names: []string{`Artist "One"`, `Other "Two"`},
			want:  []string{"Artist - One", "Other - Two"},
		},
		{
			name:  "one unquoted blocks the rewrite",
			names: []string{`Artist "One"`, "Other Two"},
			want:  []string{`Artist "One"`, "Other Two"},
		},
		{
			name:  "single title is left alone",
			names: []string{`Artist "One"`},
			want:  []string{`Artist "One"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitQuotedTitles(tt.names); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitQuotedTitles(%q) = %q, want %q", tt.names, got, tt.want)
			}
		})
	}
}

func TestEjectCommonCatalognum(t *testing.T) {
	tests := []struct {
		name      string
		names     []string
		wantNum   string
		wantNames []string
	}{
		{
			name:      "common last token",
			names:     []string{"One GHI102", "Two GHI102"},
			wantNum:   "GHI102",
			wantNames: []string{"One", "Two"},
		},
		{
			name:      "common first token",
			names:     []string{"LBL001 - One", "LBL001 - Two"},
			wantNum:   "LBL001",
			wantNames: []string{"One", "Two"},
		},
		{
			name:      "token not shared by all",
			names:     []string{"LBL001 One", "Two"},
			wantNum:   "",
			wantNames: []string{"LBL001 One", "Two"},
		},
		{
			name:      "common word is not a catalog number",
			names:     []string{"Intro Live", "Outro Live"},
			wantNum:   "",
			wantNames: []string{"Intro Live", "Outro Live"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			num, names := ejectCommonCatalognum(tt.names)
			if num != tt.wantNum {
				t.Errorf("catalognum = %q, want %q", num, tt.wantNum)
			}
			if !reflect.DeepEqual(names, tt.wantNames) {
				t.Errorf("names = %q, want %q", names, tt.wantNames)
			}
		})
	}
}

func TestEjectAlbumName(t *testing.T) {
	tests := []struct {
		name      string
		names     []string
		wantAlbum string
		wantNames []string
	}{
		{
			name:      "single distinct album",
			names:     []string{"One [Cool EP]", "Two [Cool EP]"},
			wantAlbum: "Cool EP",
			wantNames: []string{"One", "Two"},
		},
		{
			name:      "partial match still counts",
			names:     []string{"One [Cool EP]", "Two"},
			wantAlbum: "Cool EP",
			wantNames: []string{"One", "Two"},
		},
		{
			name:      "two distinct albums block the ejection",
			names:     []string{"One [Cool EP]", "Two [Other LP]"},
			wantAlbum: "",
			wantNames: []string{"One [Cool EP]", "Two [Other LP]"},
		},
		{
			name:      "no bracketed album",
			names:     []string{"One", "Two"},
			wantAlbum: "",
			wantNames: []string{"One", "Two"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			album, names := ejectAlbumName(tt.names)
			if album != tt.wantAlbum {
				t.Errorf("album = %q, want %q", album, tt.wantAlbum)
			}
			if !reflect.DeepEqual(names, tt.wantNames) {
				t.Errorf("names = %q, want %q", names, tt.wantNames)
			}
		})
	}
}

func TestEnsureArtistFirst(t *testing.T) {
	tests := []struct {
		name        string
		albumArtist string
		names       []string
		want        []string
	}{
		{
			name:        "identical right side matching the album artist",
			albumArtist: "Artist",
			names:       []string{"One - Artist", "Two - Artist"},
			want:        []string{"Artist - One", "Artist - Two"},
		},
		{
			name:        "remix annotations on the left",
			albumArtist: "Various",
			names:       []string{"One (Club Mix) - A", "Two (Dub Mix) - B"},
			want:        []string{"A - One (Club Mix)", "B - Two (Dub Mix)"},
		},
		{
			name:        "already artist first",
			albumArtist: "Artist",
			names:       []string{"Artist - One", "Artist - Two"},
			want:        []string{"Artist - One", "Artist - Two"},
		},
		{
			name:        "title without a separator blocks the swap",
			albumArtist: "Artist",
			names:       []string{"One - Artist", "Two"},
			want:        []string{"One - Artist", "Two"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(model.RawRelease{AlbumArtist: tt.albumArtist})
			if got := r.ensureArtistFirst(tt.names); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ensureArtistFirst(%q) = %q, want %q", tt.names, got, tt.want)
			}
		})
	}
}

func TestNewResolver(t *testing.T) {
	t.Run("label falls back to the publisher", func(t *testing.T) {
		r := NewResolver(model.RawRelease{Publisher: "Some Label"})
		if r.Label != "Some Label" {
			t.Errorf("Label = %q, want %q", r.Label, "Some Label")
		}
	})

	t.Run("record label wins over the publisher", func(t *testing.T) {
		r := NewResolver(model.RawRelease{RecordLabel: "Real", Publisher: "Page"})
		if r.Label != "Real" {
			t.Errorf("Label = %q, want %q", r.Label, "Real")
		}
	})

	t.Run("album catalog number is stripped", func(t *testing.T) {
		r := NewResolver(model.RawRelease{Album: "My Album [ZEN205]"})
		if r.Album != "My Album" {
			t.Errorf("Album = %q, want %q", r.Album, "My Album")
		}
		if got := r.Catalognum(); got != "ZEN205" {
			t.Errorf("Catalognum() = %q, want %q", got, "ZEN205")
		}
	})

	t.Run("catalog number equal to the album artist is rejected", func(t *testing.T) {
		r := NewResolver(model.RawRelease{
			Album:       "ABC123 - Something",
			AlbumArtist: "ABC123",
		})
		if got := r.Catalognum(); got != "" {
			t.Errorf("Catalognum() = %q, want %q", got, "")
		}
	})

	t.Run("singleton synthesizes one track", func(t *testing.T) {
		r := NewResolver(model.RawRelease{
			ID:          "https://artist.bandcamp.com/track/my-song",
			Album:       "My Song",
			AlbumArtist: "Artist",
			Singleton:   true,
			Duration:    "PT0H03M23S",
			Lyrics:      "la la",
		})

		tracks := r.JSONTracks()
		if len(tracks) != 1 {
			t.Fatalf("len(JSONTracks()) = %d, want 1", len(tracks))
		}
		if tracks[0].ID != "https://artist.bandcamp.com/track/my-song" {
			t.Errorf("ID = %q, want the release id", tracks[0].ID)
		}
		if tracks[0].Name != "My Song" {
			t.Errorf("Name = %q, want %q", tracks[0].Name, "My Song")
		}
		if tracks[0].Artist != "Artist" {
			t.Errorf("Artist = %q, want %q", tracks[0].Artist, "Artist")
		}
	})
}

func TestResolve(t *testing.T) {
	t.Run("full multi track pipeline", func(t *testing.T) {
		r := NewResolver(model.RawRelease{
			Album:       "Some Album",
			AlbumArtist: "Artist",
			RecordLabel: "Label",
			Tracks: []model.RawTrack{
				{ID: "https://x/t1", Name: "01. Artist - Track One [Label EP]", Position: 1},
				{ID: "https://x/t2", Name: "02. Artist - Track Two [Label EP]", Position: 2},
			},
		})
		r.Resolve()

		want := []string{"Artist - Track One", "Artist - Track Two"}
		if got := r.Titles(); !reflect.DeepEqual(got, want) {
			t.Errorf("Titles() = %q, want %q", got, want)
		}
		if r.AlbumInTitles != "Label EP" {
			t.Errorf("AlbumInTitles = %q, want %q", r.AlbumInTitles, "Label EP")
		}
	})

	t.Run("singleton takes the album title", func(t *testing.T) {
		r := NewResolver(model.RawRelease{
			ID:          "https://artist.bandcamp.com/track/my-song",
			Album:       "ABC123 My Song",
			AlbumArtist: "Artist",
			Singleton:   true,
		})
		r.Resolve()

		if got := r.Catalognum(); got != "ABC123" {
			t.Errorf("Catalognum() = %q, want %q", got, "ABC123")
		}
		want := []string{"My Song"}
		if got := r.Titles(); !reflect.DeepEqual(got, want) {
			t.Errorf("Titles() = %q, want %q", got, want)
		}
	})

	t.Run("release without track data is a no-op", func(t *testing.T) {
		r := NewResolver(model.RawRelease{Album: "Sold Out"})
		r.Resolve()

		if got := r.Titles(); len(got) != 0 {
			t.Errorf("Titles() = %q, want none", got)
		}
	})

	t.Run("common catalog number is ejected", func(t *testing.T) {
		r := NewResolver(model.RawRelease{
			Album:       "Compilation",
			AlbumArtist: "Various",
			Tracks: []model.RawTrack{
				{ID: "https://x/t1", Name: "A - One GHI102", Position: 1},
				{ID: "https://x/t2", Name: "B - Two GHI102", Position: 2},
			},
		})
		r.Resolve()

		if got := r.Catalognum(); got != "GHI102" {
			t.Errorf("Catalognum() = %q, want %q", got, "GHI102")
		}
		want := []string{"A - One", "B - Two"}
		if got := r.Titles(); !reflect.DeepEqual(got, want) {
			t.Errorf("Titles() = %q, want %q", got, want)
		}
	})

	t.Run("label is removed from titles", func(t *testing.T) {
		r := NewResolver(model.RawRelease{
			Album:       "Album",
			AlbumArtist: "Artist",
			RecordLabel: "Cool Records",
			Tracks: []model.RawTrack{
				{ID: "https://x/t1", Name: "Artist - One [Cool Records]", Position: 1},
				{ID: "https://x/t2", Name: "Artist - Two [Cool Records]", Position: 2},
			},
		})
		r.Resolve()

		want := []string{"Artist - One", "Artist - Two"}
		if got := r.Titles(); !reflect.DeepEqual(got, want) {
			t.Errorf("Titles() = %q, want %q", got, want)
		}
	})
}
