// Package http provides an HTTP client configured for Bandcamp requests.
//
// The Client in this package handles:
//   - User-Agent headers for Bandcamp compatibility
//   - Page fetches as strings (release and discography HTML)
//   - Small binary downloads (cover art)
//   - Timeout handling
//
// # Basic Usage
//
//	client := http.NewClient()
//
//	// Fetch HTML page
//	html, err := client.GetString(ctx, "https://artist.bandcamp.com/album/name")
//
//	// Fetch cover art bytes
//	img, err := client.DownloadBytes(ctx, artworkURL)
//
// The user agent and timeout are configurable through NewClientWith, which
// the settings file and command-line flags feed into.
package http
