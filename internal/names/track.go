package names

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/handiism/bandcamp-meta/internal/artists"
	"github.com/handiism/bandcamp-meta/internal/catalognum"
	"github.com/handiism/bandcamp-meta/internal/model"
)

// ErrMissingTrackID reports a track entry without an identifier in the
// release metadata.
var ErrMissingTrackID = errors.New("missing track id")

// digiWords are the keywords that mark a track as digital-only.
const digiWords = `([ -]?(bandcamp|digi(tal)?|exclusive|bonus|bns|unreleased))+(\W(track|only|tune))*`

var (
	// digiOnlyPat matches a digital-only marker and its surrounding
	// punctuation: a "Bonus 1." prefix, a bracketed or asterisked
	// "[Bonus]", a "Bonus -" infix or a bare " Bonus" tail.
	digiOnlyPat = regexp.MustCompile(
		`(?i)(\s|[^\]\[()\w])*` +
			`((^` + digiWords + `[.:\d\s]+\s)` +
			`|[\[(]` + digiWords + `[\])]\W*` +
			`|[*]` + digiWords + `[*]?` +
			`|` + digiWords + ` -` +
			`|( ` + digiWords + `$))` +
			`\s*`)

	// delimNotInsideParens matches the " - " separating artist from
	// title, skipping dashes that sit inside a parenthesized or
	// bracketed suffix and the ones following "Live" or "Sample Pack".
	delimNotInsideParens = regexp2.MustCompile(
		`(?<!-)(?<!^live)(?<!sample pack) - (?!-|[^(\[]+\w[\])])`,
		regexp2.IgnoreCase)

	// trackAltPat matches a vinyl side label like "A1." or "B2/" at the
	// start of the name or right after the separator, together with the
	// punctuation that delimits it.
	trackAltPat = regexp2.MustCompile(
		`(?:^|(?<=- ))((?:[A-J]{1,3}[12]?\.?\d)|(?:[AB]+(?! \()(?=\W{2}\b)))[/.:)_\s-]+`,
		regexp2.Multiline)

	// artistDelimPrefix matches leftover joiners at the start of an
	// artist credit after a duplicate has been cut out.
	artistDelimPrefix = regexp.MustCompile(`^(and|x|\W+)+\b`)

	numberPat = regexp.MustCompile(`\d+`)
)

// Track is one release track decomposed into its name parts.
//
// MakeTrack parses the resolved track name in a fixed order: digi-only
// markers, general cleanup, vinyl side label, catalog number, leading
// index, remix annotation, featuring artist. Each step removes what it
// matched from the working name, so the steps that follow never see it.
// The artist and title are then deduced from what remains.
//
// Example:
//
//	track, err := names.MakeTrack(raw, "A1. Artist - Title (Some Remix)")
//	if err != nil {
//	    ...
//	}
//	fmt.Println(track.TrackAlt) // "A1"
//	fmt.Println(track.Artist)   // "Artist"
//	fmt.Println(track.Title)    // "Title (Some Remix)"
type Track struct {
	raw model.RawTrack

	// TrackID is the track page URL.
	TrackID string

	// Index is the 1-based position of the track on the release, zero
	// for a singleton.
	Index int

	// MediumIndex is the position of the track on its medium, set when
	// the track has an index.
	MediumIndex int

	// JSONArtist is the artist named by the page metadata, cleaned of
	// digi-only markers and featuring credits.
	JSONArtist string

	// Name is the working name once every recognized part has been
	// removed from it.
	Name string

	// Ft is the full featuring credit, brackets included, e.g.
	// "(feat. Other)". FtArtist is just the artist name within it.
	Ft       string
	FtArtist string

	// Catalognum is a track-level catalog number found bracketed in
	// the name.
	Catalognum string

	// Remix is the remix annotation, nil when the name carries none.
	Remix *Remix

	// DigiOnly reports that the name or the artist carried a
	// digital-only marker.
	DigiOnly bool

	// TrackAlt is the vinyl side label, e.g. "A1", without
	// punctuation.
	TrackAlt string

	// AlbumArtist overrides artist deduction entirely when set.
	AlbumArtist string

	// TitleWithoutRemix is the bare title, Title the bare title with
	// the remix annotation appended, unless already contained.
	TitleWithoutRemix string
	Title             string

	// Artist is the deduced artist credit.
	Artist string

	// Duration is the track length in seconds, zero when the metadata
	// carries none.
	Duration int

	// Lyrics is the track lyrics text without carriage returns.
	Lyrics string

	nameSplit []string
}

// MakeTrack decomposes one resolved track name. The raw entry supplies
// the page-level fields, name the release-normalized title. It fails
// only when the entry has no track id.
func MakeTrack(raw model.RawTrack, name string) (*Track, error) {
	if raw.ID == "" {
		return nil, fmt.Errorf("track %q: %w", name, ErrMissingTrackID)
	}

	t := &Track{
		raw:         raw,
		TrackID:     raw.ID,
		Index:       raw.Position,
		JSONArtist:  raw.Artist,
		AlbumArtist: raw.AlbumArtist,
		Duration:    parseDuration(raw.Duration),
		Lyrics:      strings.ReplaceAll(raw.Lyrics, "\r", ""),
	}

	t.parseName(name)
	t.splitName()
	t.resolveTitle()
	t.Artist = t.deduceArtist()

	return t, nil
}

// parseName peels the recognized parts off the name one by one, in an
// order where every removal can rely on the previous ones.
func (t *Track) parseName(name string) {
	artist := t.JSONArtist

	artist, artistDigi := cleanDigiName(artist)
	name, nameDigi := cleanDigiName(name)
	t.DigiOnly = nameDigi || artistDigi

	if artist != "" {
		artist = artists.CleanName(artist)
	}
	name = strings.TrimSpace(artists.CleanName(name))

	if m := search(trackAltPat, name); m != nil {
		t.TrackAlt = strings.ToUpper(strings.ReplaceAll(groupAt(m, 1), ".", ""))
		name = strings.ReplaceAll(name, m.String(), "")
	}

	if m := catalognum.FindDelimited(name); m != nil {
		t.Catalognum = m.Code
		name = strings.TrimSpace(strings.ReplaceAll(name, m.Full, ""))
	}

	if t.Index > 0 {
		pat := regexp.MustCompile(`^0?` + strconv.Itoa(t.Index) + `\W\W+`)
		name = pat.ReplaceAllString(name, "")
		t.MediumIndex = t.Index
	}

	if r := RemixFromName(name); r != nil {
		t.Remix = r
		if r.Start {
			name = strings.TrimSpace(strings.TrimPrefix(name, r.Full))
		} else if r.End {
			name = strings.TrimSpace(strings.TrimSuffix(name, r.Full))
		}
	}

	ftArtist, ft, name := splitFt(name)
	if ftArtist == "" {
		ftArtist, ft, artist = splitFt(artist)
	}

	t.Ft = ft
	t.FtArtist = ftArtist
	t.Name = name
	t.JSONArtist = artist
}

// cleanDigiName strips digital-only markers from the name and reports
// whether any were found.
func cleanDigiName(name string) (string, bool) {
	clean := digiOnlyPat.ReplaceAllString(name, "")
	return clean, clean != name
}

// splitFt cuts the featuring credit out of the value. It returns the
// featured artist, the full credit and the remaining value.
func splitFt(value string) (ftArtist, ft, rest string) {
	m := artists.FtPat.FindStringSubmatch(value)
	if m == nil {
		return "", "", value
	}

	ftArtist = m[artists.FtPat.SubexpIndex("ft_artist")]
	ft = m[artists.FtPat.SubexpIndex("ft")]

	return ftArtist, ft, strings.ReplaceAll(value, m[0], "")
}

// splitName cuts the working name into artist parts and the title.
// When the name starts with the page artist the remainder is the whole
// title; when it contains no separator at all the page artist is
// prepended as the artist part.
func (t *Track) splitName() {
	name := t.Name

	artistStart := t.JSONArtist + " - "
	if t.JSONArtist != "" && len(name) >= len(artistStart) &&
		strings.EqualFold(name[:len(artistStart)], artistStart) {
		t.nameSplit = []string{name[len(artistStart):]}
		return
	}

	split := splitPat(delimNotInsideParens, strings.TrimSpace(name))
	if t.JSONArtist != "" && !strings.Contains(name, " - ") {
		t.nameSplit = append([]string{strings.TrimSpace(t.JSONArtist)}, split...)
		return
	}

	t.nameSplit = split
}

// resolveTitle sets the title fields from the name split. The remix
// annotation is appended back unless the title still contains it.
func (t *Track) resolveTitle() {
	t.TitleWithoutRemix = t.nameSplit[len(t.nameSplit)-1]

	t.Title = t.TitleWithoutRemix
	if t.Remix != nil && !strings.Contains(t.TitleWithoutRemix, t.Remix.Text) {
		t.Title = t.TitleWithoutRemix + " " + t.Remix.Text
	}
}

// deduceArtist derives the artist credit from the name split.
func (t *Track) deduceArtist() string {
	if t.AlbumArtist != "" {
		return t.AlbumArtist
	}

	if t.TitleWithoutRemix == "" {
		return ""
	}

	if t.JSONArtist != "" && len(t.nameSplit) == 1 {
		return t.JSONArtist
	}

	artist := strings.Join(t.nameSplit[:len(t.nameSplit)-1], " - ")
	initial := artist

	artist = sub(remixPat, strings.Trim(artist, ", "), "")
	if artist != "" && t.Remix != nil && t.Remix.Artist() != "" {
		artist = cleanDuplicateArtists(artist, strings.ToLower(t.Remix.Text))
	}

	// A singleton name without a separator may have ended up with the
	// whole name as the title and nothing left for the artist.
	if artist == "" && t.Index == 0 {
		artist = initial
	}

	parts := strings.Split(strings.Trim(artist, ", "), ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}

	return strings.Join(parts, ", ")
}

// cleanDuplicateArtists drops artists already credited by the remix
// annotation from the artist field.
func cleanDuplicateArtists(artist, remixText string) string {
	for _, subartist := range artists.Split(artist, true) {
		if !strings.Contains(remixText, strings.ToLower(subartist)) {
			continue
		}

		pat := regexp.MustCompile(`(?i)(and|x|\W+)*\b` + regexp.QuoteMeta(subartist))
		artist = pat.ReplaceAllString(artist, "")
		artist = artistDelimPrefix.ReplaceAllString(artist, "")
	}

	return artist
}

// parseDuration converts an ISO-8601 style duration, e.g. "P01H02M03S",
// to seconds. Anything but three numbers yields zero.
func parseDuration(duration string) int {
	nums := numberPat.FindAllString(duration, -1)
	if len(nums) != 3 {
		return 0
	}

	h, _ := strconv.Atoi(nums[0])
	m, _ := strconv.Atoi(nums[1])
	s, _ := strconv.Atoi(nums[2])

	return h*3600 + m*60 + s
}

// Artists returns the artist credit split on list delimiters.
func (t *Track) Artists() []string {
	return artists.Split(t.Artist, false)
}

// LeadArtist returns the first artist of the credit, with collaboration
// delimiters forced apart.
func (t *Track) LeadArtist() string {
	if split := artists.Split(t.Artist, true); len(split) > 0 {
		return split[0]
	}

	return t.Artist
}

// Info assembles the final per-track record. The featuring credit is
// appended to the artist unless the featured artist is already named by
// the artist or the title.
func (t *Track) Info() model.TrackInfo {
	all := t.Artists()
	if t.FtArtist != "" {
		all = append(all, t.FtArtist)
	}
	all = artists.SplitAll(all, true)

	artist := t.Artist
	if t.FtArtist != "" && !strings.Contains(t.Artist+t.Title, t.FtArtist) {
		artist = t.Artist + " " + t.Ft
	}

	return model.TrackInfo{
		Index:        t.Index,
		MediumIndex:  t.MediumIndex,
		Medium:       1,
		TrackID:      t.TrackID,
		Artist:       artist,
		Artists:      all,
		Title:        t.Title,
		Length:       t.Duration,
		TrackAlt:     t.TrackAlt,
		Lyrics:       t.Lyrics,
		Catalognum:   t.Catalognum,
		DigiOnly:     t.DigiOnly,
		OriginalName: t.raw.Name,
	}
}
