// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - File writing and directory creation
//   - Listing the MP3 files a release occupies on disk
//   - Filename sanitization for cross-platform compatibility
//   - Cover art preparation for ID3 embedding
//
// # File Operations
//
//	// Write data to file
//	err := ioutils.WriteFile(ctx, "/path/to/file.txt", []byte("content"))
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/path/to/new/directory")
//
//	// Collect a release's MP3 files in track order
//	files, err := ioutils.ListMP3s("/music/Artist - Album")
//
// # Filename Sanitization
//
// Use SanitizeFileName to remove invalid characters from filenames:
//
//	safe := ioutils.SanitizeFileName("Song: Part 1/2") // Returns "Song_ Part 1_2"
//
// # Cover Art
//
// The ImageService fits artwork into a bounding square and re-encodes it
// as JPEG:
//
//	svc := ioutils.NewImageService()
//	cover, _ := svc.PrepareCover(ctx, imageData, 1000)
package ioutils
