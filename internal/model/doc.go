// Package model defines the data structures passed between the
// ingestion, normalization and application layers.
//
// # Raw records
//
// RawRelease and RawTrack hold page metadata exactly as published,
// flattened out of its JSON-LD nesting but otherwise untouched. They
// are the input to the normalization pipeline:
//
//	raw := dto.ToRaw()
//	info, err := manager.Normalize(raw)
//
// # Normalized records
//
// ReleaseInfo and TrackInfo are the pipeline's output: consistent
// artist/title splits, extracted catalog numbers, remix and featuring
// credits, digi-only flags and side labels. They marshal to JSON for
// export and drive tagging, renaming and playlist generation:
//
//	fmt.Println(track.Display())  // "Artist - Title"
//	fmt.Println(track.FileName()) // "01. Artist - Title.mp3"
package model
