// Package config provides configuration management for bandcamp-meta.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Validation and conversion to a normalize.Config
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// 4 concurrent releases, 3 retries, 1s cooldown
//	// Covers fit within 1000x1000
//	// M3U playlists
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.MaxConcurrentReleases = 8
//	err := settings.Save("/path/to/config.json")
//
// # Configuration Options
//
// Settings includes options for:
//   - Concurrent release limits
//   - Retry behavior for page fetches
//   - Cover art sizing
//   - Playlist format
//   - User agent string
package config
