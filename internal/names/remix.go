package names

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// remixPat matches one remix/edit/version annotation in a track name.
//
// The annotation opens with a bracket, a parenthesis (only the final
// parenthetical of the name, so nested groups are left alone) or a
// standalone " - " that is not followed by another delimiter pair. A
// closing bracket is required exactly when the matching opener was used.
// The start and end groups record whether the annotation touches the
// edges of the name.
var remixPat = regexp2.MustCompile(`
	(?<start>^)?
	\ *\(?
	(?<text>
	  (?:
	      (?<b>\[)
	    | (?<p>\((?!.*\())
	    | (?<!-)-\ (?!.*([(\[]|\ -\ ))
	  )
	  (?<remixer>['"]?\b\w.*?|)\ *
	  (?<type>(re)?mix|rmx|edit|bootleg|(?<=\w\ )version|remastered)\b
	  [^\])]*
	  (?(b)\])
	  (?(p)\))
	)
	(?<end>$)?`,
	regexp2.IgnoreCase|regexp2.IgnorePatternWhitespace)

// Remix describes one remix/edit/version annotation found in a track
// name.
type Remix struct {
	// Full is the exact matched span, leading space included.
	Full string

	// Remixer is the captured artist name; may be empty.
	Remixer string

	// Text is the annotation including its delimiters, e.g.
	// "(Radio Edit)".
	Text string

	// Type is the lowercased annotation keyword: mix, rmx, edit,
	// bootleg, version or remastered.
	Type string

	// Start and End report that the annotation was anchored to the
	// beginning or the end of the name.
	Start bool
	End   bool
}

// RemixFromName extracts the first remix annotation from a track name.
// Names without one yield nil.
func RemixFromName(name string) *Remix {
	m := search(remixPat, name)
	if m == nil {
		return nil
	}

	return &Remix{
		Full:    m.String(),
		Remixer: groupText(m, "remixer"),
		Text:    groupText(m, "text"),
		Type:    strings.ToLower(groupText(m, "type")),
		Start:   groupMatched(m, "start"),
		End:     groupMatched(m, "end"),
	}
}

// Valid reports whether the annotation is a meaningful remix credit.
// "Original Mix" annotations and remasters only restate the base title.
func (r *Remix) Valid() bool {
	return !strings.EqualFold(r.Remixer, "original") && r.Type != "remastered"
}

// Artist returns the credited remixer, or "" when the annotation names
// none: invalid annotations, "Extended" pseudo-remixers and version
// annotations carry no artist.
func (r *Remix) Artist() string {
	if r.Valid() && !strings.EqualFold(r.Remixer, "extended") && r.Type != "version" {
		return r.Remixer
	}

	return ""
}
