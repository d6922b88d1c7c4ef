// Package normalize provides the orchestration logic for turning
// Bandcamp releases into normalized metadata records.
//
// # Manager
//
// The Manager coordinates the entire process:
//
//  1. Expand artist page URLs into discography release URLs
//  2. Fetch release pages (or read saved pages and JSON-LD payloads)
//  3. Parse the embedded metadata into raw records
//  4. Run the title pipeline and per-track decomposition
//  5. Assemble one ReleaseInfo per input
//
// # Basic Usage
//
//	manager := normalize.NewManager(client, cfg, func(event normalize.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	infos, err := manager.ProcessAll(ctx, []string{
//	    "https://artist.bandcamp.com/album/name",
//	    "saved-page.html",
//	})
//
// Normalize itself performs no I/O, so callers holding raw metadata can
// use it directly:
//
//	info, err := manager.Normalize(raw)
//
// # Concurrency
//
// ProcessAll works through its inputs concurrently, bounded by
// Config.MaxConcurrent. Results keep input order. Within one release
// the per-track decomposition runs sequentially; the release resolver
// needs every title anyway, and releases rarely exceed a few dozen
// tracks.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// # Retry Logic
//
// Failed fetches are retried with a doubling cooldown, configurable via
// Config.Retries and Config.RetryCooldown.
package normalize
