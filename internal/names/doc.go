// Package names turns free-form release and track names into
// structured records.
//
// Bandcamp pages carry human-authored names with no fixed grammar:
// "01. Artist - Title (Remix) [LABEL001]" and "Artist | Title" may sit
// on the same release. The package normalizes them in two levels.
//
// # Release resolution
//
// Resolver looks at all names of one release together. Its stages vote
// across the release before anything is rewritten: a numeric prefix is
// stripped only when more than half of the names carry one, a
// non-standard delimiter becomes " - " only when it wins the majority,
// a bracketed album name is ejected only when every name agrees on it.
// When the names disagree, a stage does nothing, favoring an unchanged
// name over a wrong guess.
//
// # Track decomposition
//
// MakeTrack takes one resolved name apart: digi-only markers, vinyl
// side labels, catalog numbers, remix annotations and featuring
// credits are matched, recorded and removed in a fixed order, and the
// artist and title are deduced from what remains. Remix annotations
// are handled by Remix, which also decides whether the remixer counts
// as an artist.
//
// The package performs no I/O. Feed it the metadata scraped by package
// bandcamp and pass the resulting records to the tagging layer.
package names
