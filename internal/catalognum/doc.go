// Package catalognum finds label catalog numbers in album and track
// titles.
//
// A catalog number is a label-assigned release identifier such as
// "ABC123", "FW-008" or "ZEN 12". Titles carry them in a handful of
// places, and each finder targets one of them:
//
//	catalognum.FindInAlbum("ABC123 My Song")     // leading, with separator
//	catalognum.FindDelimited("Intro [ZEN205]")   // bracketed inside a title
//	catalognum.FindAnywhere("FW008")             // a standalone token
//
// Every finder returns nil when nothing matches; a non-nil Match carries
// both the bare code and the full matched span so callers can excise it
// from the searched string.
package catalognum
