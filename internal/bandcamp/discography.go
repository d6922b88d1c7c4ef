package bandcamp

import (
	"errors"
	"regexp"
	"strings"
)

// ErrNoReleaseFound is returned when no release URLs can be found on a
// page, either because the artist has nothing published or because the
// page is not a Bandcamp music listing at all.
var ErrNoReleaseFound = errors.New("no release found on page")

var (
	// Release links appear as attribute values or JSON-encoded strings,
	// so they end in a quote either way.
	releaseLinkPat = regexp.MustCompile(`(?P<url>/(album|track)/.+?)("|&quot;)`)

	albumHrefPat = regexp.MustCompile(`href="(?P<url>/album/.+?)"`)
	trackHrefPat = regexp.MustCompile(`href="(?P<url>/track/.+?)"`)
)

// Discography extracts release URLs from a Bandcamp artist's music page
// so every release can be fetched and normalized in turn.
//
// Two page shapes exist. A normal music page lists /album/ and /track/
// links for each release. An artist with a single release has their
// /music page redirect straight to that release's own page, which is
// recognized by its "discography" div.
type Discography struct{}

// NewDiscography creates a new Discography service.
func NewDiscography() *Discography {
	return &Discography{}
}

// GetReleaseURLs extracts the release URLs from a music page.
//
// The returned URLs are site-relative paths like /album/my-album or
// /track/my-track, deduplicated and in page order, so batch runs
// process releases in the order the artist lists them. The caller joins
// them with the artist's base URL.
//
// Returns ErrNoReleaseFound when the page has no release links.
func (d *Discography) GetReleaseURLs(musicPageHTML string) ([]string, error) {
	if d.isReleasePage(musicPageHTML) {
		releaseURL, err := d.redirectedReleaseURL(musicPageHTML)
		if err != nil {
			return nil, err
		}
		return []string{releaseURL}, nil
	}

	urls := collectURLs(releaseLinkPat, musicPageHTML)
	if len(urls) == 0 {
		return nil, ErrNoReleaseFound
	}

	return urls, nil
}

// isReleasePage checks whether the page is a release page rather than a
// music listing. The "discography" div only appears on release pages,
// which is where Bandcamp redirects the /music URL of single-release
// artists.
func (d *Discography) isReleasePage(html string) bool {
	return strings.Contains(html, `div id="discography"`)
}

// redirectedReleaseURL recovers the canonical release URL from a release
// page reached via the /music redirect.
//
// Album pages are tried first. A release page links its own /track/
// children, so track links only count when no album link exists, which
// is the standalone-track case.
func (d *Discography) redirectedReleaseURL(html string) (string, error) {
	albums := collectURLs(albumHrefPat, html)
	switch len(albums) {
	case 0:
		// Standalone track release.
	case 1:
		return albums[0], nil
	default:
		return "", errors.New("found multiple release URLs, expected exactly one")
	}

	if tracks := collectURLs(trackHrefPat, html); len(tracks) == 1 {
		return tracks[0], nil
	}

	return "", ErrNoReleaseFound
}

// collectURLs returns the unique values of the pattern's first group in
// document order.
func collectURLs(pat *regexp.Regexp, html string) []string {
	matches := pat.FindAllStringSubmatch(html, -1)

	seen := make(map[string]struct{}, len(matches))
	urls := make([]string, 0, len(matches))
	for _, match := range matches {
		if len(match) < 2 {
			continue
		}
		if _, ok := seen[match[1]]; ok {
			continue
		}
		seen[match[1]] = struct{}{}
		urls = append(urls, match[1])
	}

	return urls
}
