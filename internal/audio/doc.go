// Package audio applies normalized release records to audio files:
// ID3 tag writing and playlist generation.
//
// # ID3 Tagging
//
// Use the Tagger to write a release's records into the MP3 files of a
// directory:
//
//	tagger := audio.NewTagger(rename)
//	err := tagger.ApplyRelease(dir, release, coverBytes)
//
// The tagger writes:
//   - Artist, Album Artist
//   - Album Title, Track Title
//   - Track Number, Part of Set, Year, Recording Time
//   - Lyrics
//   - Catalog number (TXXX CATALOGNUMBER)
//   - Cover Art (embedded in MP3)
//
// Files pair with tracks in lexical filename order; a count mismatch
// aborts before any file is touched.
//
// # Playlist Generation
//
// Generate playlists in various formats:
//
//	creator := audio.NewPlaylistCreator(model.PlaylistFormatM3U, true) // extended M3U
//	content := creator.CreatePlaylist(release)
//
// or write one straight into the release directory:
//
//	err := audio.WritePlaylist(ctx, model.PlaylistFormatM3U, dir, release)
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
//   - WPL (Windows Media Player)
//   - ZPL (Zune Media Player)
package audio
