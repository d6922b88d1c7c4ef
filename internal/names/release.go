package names

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/handiism/bandcamp-meta/internal/artists"
	"github.com/handiism/bandcamp-meta/internal/catalognum"
	"github.com/handiism/bandcamp-meta/internal/model"
)

var (
	// Title [Some Album EP]
	albumInTitlePat = regexp.MustCompile(`(?i)[- ]*\[([^\]]+ [EL]P)\]+`)

	// Artist "Title"
	titleInQuotesPat = regexp.MustCompile(`^(.+[^ -])[ -]+"([^"]+)"$`)

	// A pipe, dash or unicode dash acting as the artist/title separator.
	separatorPat = regexp2.MustCompile(`(?<=\s)[|–—-](?=\s)`, 0)

	// A leading "01.", "1 -" style track number.
	numberPrefixPat = regexp2.MustCompile(`(?:^|(?<=- ))\d{1,2}\W+(?=\D)`, 0)
)

// Resolver derives release-level facts from raw metadata and rewrites
// the release's track titles into one consistent shape.
//
// Construct it with NewResolver, then call Resolve once to run the
// title pipeline; every stage of the pipeline votes across the whole
// release and degrades to a no-op when the titles disagree.
//
// Example:
//
//	r := names.NewResolver(raw)
//	r.Resolve()
//	for i, title := range r.Titles() {
//	    track, err := names.MakeTrack(r.JSONTracks()[i], title)
//	    ...
//	}
type Resolver struct {
	meta model.RawRelease

	// Label is the record label, resolved from the nested album
	// release with the publisher as fallback. Empty when neither is
	// named.
	Label string

	// OriginalAlbum is the release title as published.
	OriginalAlbum string

	// Album is the release title with an embedded catalog number
	// removed.
	Album string

	// Singleton reports a release without a track list.
	Singleton bool

	// AlbumInTitles is the album name ejected from the track titles,
	// set when every title carried the same bracketed "... EP/LP"
	// suffix.
	AlbumInTitles string

	jsonTracks         []model.RawTrack
	originalTitles     []string
	catalognumInAlbum  *catalognum.Match
	catalognumInTitles string
	titles             []string
	removeLabelPat     *regexp.Regexp
}

// NewResolver builds a Resolver from raw release metadata. Release
// facts are derived up front; call Resolve to populate the working
// titles.
func NewResolver(meta model.RawRelease) *Resolver {
	r := &Resolver{
		meta:          meta,
		OriginalAlbum: meta.Album,
		Singleton:     meta.Singleton,
	}

	r.Label = meta.RecordLabel
	if r.Label == "" {
		r.Label = meta.Publisher
	}

	if r.Label != "" {
		r.removeLabelPat = regexp.MustCompile(
			`(?i)([:-]+ |\[)` + regexp.QuoteMeta(r.Label) + `(\]|$)`)
	}

	r.jsonTracks = meta.Tracks
	if meta.Singleton {
		// A singleton page stores the track fields at the release
		// level.
		r.jsonTracks = []model.RawTrack{{
			ID:       meta.ID,
			Name:     meta.Album,
			Artist:   meta.AlbumArtist,
			Duration: meta.Duration,
			Lyrics:   meta.Lyrics,
		}}
	}

	r.originalTitles = make([]string, len(r.jsonTracks))
	for i, t := range r.jsonTracks {
		r.originalTitles[i] = t.Name
	}

	r.Album = meta.Album
	if m := catalognum.FindInAlbum(meta.Album); m != nil {
		r.catalognumInAlbum = m
		r.Album = strings.ReplaceAll(meta.Album, m.Full, "")
	}

	return r
}

// JSONTracks returns the per-track metadata, one synthetic entry for a
// singleton release.
func (r *Resolver) JSONTracks() []model.RawTrack {
	return r.jsonTracks
}

// OriginalTitles returns the track names as published, in track order.
func (r *Resolver) OriginalTitles() []string {
	return r.originalTitles
}

// Titles returns the resolved titles. Empty until Resolve has run, and
// empty afterwards when the release carried no track data.
func (r *Resolver) Titles() []string {
	return r.titles
}

// Catalognum returns the release-level catalog number. A number found
// in the album title takes precedence over one shared by all track
// titles, and a candidate equal to the album artist is rejected as a
// false positive.
func (r *Resolver) Catalognum() string {
	var inAlbum string
	if r.catalognumInAlbum != nil {
		inAlbum = r.catalognumInAlbum.Code
	}

	for _, cat := range []string{inAlbum, r.catalognumInTitles} {
		if cat != "" && cat != r.meta.AlbumArtist {
			return cat
		}
	}

	return ""
}

// Resolve populates the working titles. Stages that vote across the
// whole release run before any per-track decomposition can start,
// because the per-track split depends on the normalized delimiter and
// the stripped affixes.
func (r *Resolver) Resolve() {
	if len(r.originalTitles) == 0 {
		return
	}

	titles := splitQuotedTitles(r.originalTitles)
	if r.Singleton {
		titles = []string{r.Album}
	} else {
		titles = r.removeAlbumCatalognum(titles)
		r.catalognumInTitles, titles = ejectCommonCatalognum(titles)
		titles = removeNumberPrefix(titles)
	}

	titles = normalizeDelimiter(titles)
	titles = r.removeLabel(titles)
	r.AlbumInTitles, titles = ejectAlbumName(titles)
	r.titles = r.ensureArtistFirst(titles)
}

// splitQuotedTitles rewrites `Artist "Title"` forms to `Artist - Title`,
// but only when every title on the release uses that form.
func splitQuotedTitles(names []string) []string {
	if len(names) < 2 {
		return names
	}

	matches := make([][]string, len(names))
	for i, n := range names {
		m := titleInQuotesPat.FindStringSubmatch(n)
		if m == nil {
			return names
		}
		matches[i] = m
	}

	out := make([]string, len(names))
	for i, m := range matches {
		out[i] = m[1] + " - " + m[2]
	}

	return out
}

// removeAlbumCatalognum strips the album title's catalog number from
// every track title, where it shows up bracket-delimited.
func (r *Resolver) removeAlbumCatalognum(names []string) []string {
	if r.catalognumInAlbum == nil {
		return names
	}

	pat := regexp.MustCompile(
		`(?i)[(\[]` + regexp.QuoteMeta(r.catalognumInAlbum.Code) + `[)\]]`)

	out := make([]string, len(names))
	for i, n := range names {
		out[i] = pat.ReplaceAllString(n, "")
	}

	return out
}

// ejectCommonCatalognum returns a catalog number found in every track
// title.
//
//  1. Split each track name into words
//  2. Find the set of words common to all tracks
//  3. Check the first and the last word of the first title
//     - if one is a catalog number, return it and remove the word from
//       every track name
func ejectCommonCatalognum(names []string) (string, []string) {
	tokens := make([][]string, len(names))
	for i, n := range names {
		tokens[i] = strings.Fields(n)
	}

	counts := make(map[string]int)
	for _, words := range tokens {
		seen := make(map[string]bool, len(words))
		for _, w := range words {
			if !seen[w] {
				seen[w] = true
				counts[w]++
			}
		}
	}

	first := tokens[0]
	if len(first) == 0 {
		return "", names
	}

	var found string
	for _, word := range []string{first[0], first[len(first)-1]} {
		if counts[word] != len(names) {
			continue
		}

		m := catalognum.FindAnywhere(word)
		if m == nil {
			continue
		}

		found = m.Code
		out := make([]string, len(names))
		for i, n := range names {
			out[i] = strings.Trim(strings.ReplaceAll(n, word, ""), "|- ")
		}
		names = out
	}

	return found, names
}

// removeNumberPrefix strips each title's leading track number, but only
// when more than half of the titles carry one.
func removeNumberPrefix(names []string) []string {
	matches := make([]string, len(names))
	count := 0
	for i, n := range names {
		if m := search(numberPrefixPat, n); m != nil {
			matches[i] = m.String()
			count++
		}
	}

	if count*2 <= len(names) {
		return names
	}

	out := make([]string, len(names))
	for i, n := range names {
		if matches[i] == "" {
			out[i] = n
			continue
		}
		out[i] = strings.ReplaceAll(n, matches[i], "")
	}

	return out
}

// findCommonTrackDelimiter returns the character that separates artist
// from title on this release.
//
// In some (rare) releases the parts are delimited by a pipe character
// or a unicode dash instead of the plain hyphen. The candidate that
// occurs most often wins when there is a single title or its count
// clears half the track count; otherwise the hyphen is assumed.
func findCommonTrackDelimiter(names []string) string {
	counts := make(map[string]int)
	var order []string

	for _, n := range names {
		for m := search(separatorPat, n); m != nil; m, _ = separatorPat.FindNextMatch(m) {
			d := m.String()
			if counts[d] == 0 {
				order = append(order, d)
			}
			counts[d]++
		}
	}

	if len(order) == 0 {
		return "-"
	}

	best := order[0]
	for _, d := range order[1:] {
		if counts[d] > counts[best] {
			best = d
		}
	}

	if len(names) == 1 || counts[best]*2 > len(names) {
		return best
	}

	return "-"
}

// normalizeDelimiter rewrites every title to use " - " between artist
// and title. Tab characters are always treated as delimiters.
func normalizeDelimiter(names []string) []string {
	delim := findCommonTrackDelimiter(names)
	pat := regexp.MustCompile(`\s+[` + regexp.QuoteMeta(delim) + `]\s+|\t`)

	out := make([]string, len(names))
	for i, n := range names {
		out[i] = pat.ReplaceAllString(n, " - ")
	}

	return out
}

// removeLabel drops a trailing or bracketed label name from each
// title. A release without a label name leaves the titles alone.
func (r *Resolver) removeLabel(names []string) []string {
	if r.removeLabelPat == nil {
		return names
	}

	out := make([]string, len(names))
	for i, n := range names {
		out[i] = strings.TrimSpace(r.removeLabelPat.ReplaceAllString(n, " "))
	}

	return out
}

// ejectAlbumName pulls a bracketed "[Some Name EP]" suffix out of the
// titles when all of them agree on a single value.
func ejectAlbumName(names []string) (string, []string) {
	fulls := make([]string, len(names))
	distinct := make(map[string]bool)
	var album string

	for i, n := range names {
		m := albumInTitlePat.FindStringSubmatch(n)
		if m == nil {
			continue
		}
		fulls[i] = m[0]
		name := strings.ReplaceAll(m[1], `"`, "")
		if !distinct[name] {
			distinct[name] = true
			album = name
		}
	}

	if len(distinct) != 1 {
		return "", names
	}

	out := make([]string, len(names))
	for i, n := range names {
		if fulls[i] == "" {
			out[i] = n
			continue
		}
		out[i] = strings.ReplaceAll(n, fulls[i], "")
	}

	return album, out
}

// ensureArtistFirst swaps titles that came in "title - artist" order.
// The swap fires only when every title splits into two parts and either
// the identical right-hand sides overlap the album artist or remix
// annotations sit on the left-hand sides.
func (r *Resolver) ensureArtistFirst(names []string) []string {
	splits := make([][2]string, len(names))
	for i, n := range names {
		parts := strings.SplitN(n, " - ", 2)
		if len(parts) < 2 {
			return names
		}
		splits[i] = [2]string{parts[0], parts[1]}
	}

	rights := make(map[string]bool)
	for _, s := range splits {
		rights[s[1]] = true
	}

	swap := false
	if len(rights) == 1 {
		right := splits[0][1]
		swap = overlap(
			artists.Split(right, false),
			artists.Split(r.meta.AlbumArtist, false))
	}

	if !swap {
		remixes := 0
		for _, s := range splits {
			if matched(remixPat, s[0]) {
				remixes++
			}
		}
		swap = remixes > 1
	}

	if !swap {
		return names
	}

	out := make([]string, len(names))
	for i, s := range splits {
		out[i] = s[1] + " - " + s[0]
	}

	return out
}

// overlap reports whether the two artist lists share a member.
func overlap(a, b []string) bool {
	set := make(map[string]bool, len(a))
	for _, v := range a {
		set[v] = true
	}

	for _, v := range b {
		if set[v] {
			return true
		}
	}

	return false
}
