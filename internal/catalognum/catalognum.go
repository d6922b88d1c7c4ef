package catalognum

import "github.com/dlclark/regexp2"

// code is the core catalog-number shape: two or more uppercase letters,
// an optional single separator, two to six digits and an optional dotted
// suffix. The leading lookahead rejects release-format tokens such as
// "EP2" or "VOL 1" that would otherwise pass.
const code = `(?!(?:EP|LP|CD|VA|VOL)[ .-]?\d)[A-Z][A-Z]+[ .-]?\d{2,6}(?:\.\d)?`

var (
	anywherePat  = regexp2.MustCompile(`\b(?<num>`+code+`)\b`, 0)
	delimitedPat = regexp2.MustCompile(`[\[(](?<num>`+code+`)[\])]`, 0)
	inAlbumPat   = regexp2.MustCompile(
		`\ ?[\[(](?<a>`+code+`)[\])]|^(?<b>`+code+`)\b[-: ]+|[-|: ]+(?<c>`+code+`)$`, 0)
)

// Match holds one catalog number found in a string.
type Match struct {
	// Code is the catalog number itself, e.g. "ABC123".
	Code string

	// Full is the complete matched span including surrounding
	// delimiters, suitable for removal from the searched string.
	Full string
}

// FindAnywhere searches a token for a word-bounded catalog number.
// It is meant for single whitespace-split tokens, where the surrounding
// context has already been established by the caller.
func FindAnywhere(token string) *Match {
	return find(anywherePat, token, "num")
}

// FindDelimited searches a title for a catalog number wrapped in
// brackets or parentheses, e.g. "Intro [ZEN205]".
func FindDelimited(name string) *Match {
	return find(delimitedPat, name, "num")
}

// FindInAlbum searches an album title for an embedded catalog number.
// Three placements are recognized, in order of preference: a bracketed
// span anywhere, a leading code followed by separators, and a trailing
// code preceded by separators. Full covers the separators so that
// removing it leaves a clean album title.
func FindInAlbum(album string) *Match {
	return find(inAlbumPat, album, "a", "b", "c")
}

// find runs the pattern and returns the first named group that
// participated in the match.
func find(re *regexp2.Regexp, s string, groups ...string) *Match {
	m, err := re.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	for _, name := range groups {
		if g := m.GroupByName(name); g != nil && len(g.Captures) > 0 {
			return &Match{Code: g.String(), Full: m.String()}
		}
	}

	return nil
}
