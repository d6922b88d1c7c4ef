// Package bandcamp provides functionality to parse Bandcamp HTML pages
// and extract release/track metadata.
//
// The package handles two main use cases:
//
//  1. Parsing release pages to extract the metadata to normalize
//  2. Parsing artist discography pages to discover all releases
//
// # Release Page Parsing
//
// Use the Parser to extract the raw metadata from a Bandcamp album or
// track page:
//
//	parser := bandcamp.NewParser()
//	raw, err := parser.ParseReleasePage(htmlContent)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Release: %s by %s\n", raw.Album, raw.AlbumArtist)
//
// # Discography Extraction
//
// Use Discography to find all release URLs from an artist's music page:
//
//	disco := bandcamp.NewDiscography()
//	urls, err := disco.GetReleaseURLs(musicPageHTML)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, url := range urls {
//	    fmt.Println(url) // e.g., "/album/my-album"
//	}
//
// # Bandcamp Data Format
//
// Bandcamp embeds release metadata as a JSON-LD block in the HTML page.
// This package extracts and parses that block, handling Bandcamp's
// non-standard date format and the shape differences between album
// pages and single-track pages.
package bandcamp
