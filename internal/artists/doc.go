// Package artists provides helpers for working with artist credit
// strings.
//
// A credit is the free-form artist text attached to a release or track,
// which may name several artists at once:
//
//	artists.Split("A, B & C", false)     // ["A", "B", "C"]
//	artists.Split("Alpha x Beta", true)  // ["Alpha", "Beta"]
//	artists.Split("Alpha x Beta", false) // ["Alpha x Beta"]
//
// List delimiters (comma, semicolon, slash, ampersand, "and") always
// split. Collaboration delimiters ("x", "+") are ambiguous, since they
// can be part of a name, and split only when force is set.
//
// CleanName normalizes whitespace and strips storefront promo markers,
// and FtPat locates "feat." style annotations.
package artists
