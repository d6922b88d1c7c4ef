package bandcamp

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/handiism/bandcamp-meta/internal/bandcamp/dto"
	"github.com/handiism/bandcamp-meta/internal/model"
)

// ErrNoReleaseData is returned when a page carries no release metadata.
//
// This typically occurs when:
//   - The URL is not a Bandcamp album or track page
//   - The release was taken down and the page is a stub
//   - The HTML structure has changed unexpectedly
var ErrNoReleaseData = errors.New("no release data found in page")

// Parser extracts release metadata from Bandcamp HTML pages.
//
// Bandcamp embeds the release metadata as a JSON-LD block within the
// HTML page. The Parser extracts that block, deserializes it and
// flattens it into a RawRelease ready for normalization.
//
// Example usage:
//
//	parser := NewParser()
//
//	resp, _ := http.Get("https://artist.bandcamp.com/album/name")
//	html, _ := io.ReadAll(resp.Body)
//
//	raw, err := parser.ParseReleasePage(string(html))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Release: %s by %s\n", raw.Album, raw.AlbumArtist)
//	for _, track := range raw.Tracks {
//	    fmt.Printf("  %d. %s\n", track.Position, track.Name)
//	}
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseReleasePage extracts release metadata from a Bandcamp album or
// track page HTML.
//
// This method performs the following steps:
//  1. Extracts the JSON-LD script block from the HTML
//  2. Deserializes it into the page's release and track data
//  3. Flattens the nested JSON-LD shapes into a RawRelease
//  4. Supplements missing lyrics from the page's lyrics elements
//
// The HTML should be the full page source from a Bandcamp URL like:
//   - https://artist.bandcamp.com/album/album-name
//   - https://artist.bandcamp.com/track/track-name
//
// Returns an error wrapping ErrNoReleaseData if the page carries no
// JSON-LD block, or a JSON error if the block cannot be parsed.
func (p *Parser) ParseReleasePage(htmlContent string) (model.RawRelease, error) {
	releaseData, err := extractReleaseData(htmlContent)
	if err != nil {
		return model.RawRelease{}, fmt.Errorf("could not retrieve release data: %w", err)
	}

	raw, err := p.ParseReleaseJSON([]byte(releaseData))
	if err != nil {
		return model.RawRelease{}, err
	}

	// The JSON-LD block does not always carry lyrics even when the
	// page displays them.
	p.extractLyrics(htmlContent, &raw)

	return raw, nil
}

// ParseReleaseJSON parses a bare JSON-LD payload, as extracted from a
// release page or saved to disk by an earlier run.
func (p *Parser) ParseReleaseJSON(data []byte) (model.RawRelease, error) {
	var release dto.Release
	if err := json.Unmarshal(data, &release); err != nil {
		return model.RawRelease{}, fmt.Errorf("failed to parse release JSON: %w", err)
	}

	return release.ToRaw(), nil
}

// extractReleaseData extracts the JSON-LD string from HTML.
//
// Bandcamp embeds release metadata in the HTML like this:
//
//	<script type="application/ld+json">{...JSON...}</script>
//
// This function finds that script block and returns its content.
func extractReleaseData(htmlContent string) (string, error) {
	const startString = `<script type="application/ld+json">`
	const stopString = `</script>`

	startIndex := strings.Index(htmlContent, startString)
	if startIndex == -1 {
		return "", ErrNoReleaseData
	}

	remaining := htmlContent[startIndex+len(startString):]

	endIndex := strings.Index(remaining, stopString)
	if endIndex == -1 {
		return "", ErrNoReleaseData
	}

	return strings.TrimSpace(remaining[:endIndex]), nil
}

// extractLyrics fills missing track lyrics from the HTML.
//
// Bandcamp displays lyrics in elements with IDs like "lyrics_row_1",
// "lyrics_row_2", etc. This method finds these elements and extracts
// the text content, stripping HTML tags. Lyrics already present in the
// metadata are left alone.
func (p *Parser) extractLyrics(htmlContent string, raw *model.RawRelease) {
	for i := range raw.Tracks {
		track := &raw.Tracks[i]
		if track.Lyrics != "" {
			continue
		}

		lyricsID := fmt.Sprintf(`id="lyrics_row_%d"`, track.Position)
		startIdx := strings.Index(htmlContent, lyricsID)
		if startIdx == -1 {
			continue
		}

		// Find the lyrics content within the element
		remaining := htmlContent[startIdx:]

		contentStart := strings.Index(remaining, ">")
		if contentStart == -1 {
			continue
		}

		contentEnd := strings.Index(remaining[contentStart:], "</div>")
		if contentEnd == -1 {
			continue
		}

		lyricsHTML := remaining[contentStart+1 : contentStart+contentEnd]
		// Strip HTML tags and clean up
		tagRegex := regexp.MustCompile(`<[^>]*>`)
		lyrics := tagRegex.ReplaceAllString(lyricsHTML, "")
		track.Lyrics = strings.TrimSpace(html.UnescapeString(lyrics))
	}
}
