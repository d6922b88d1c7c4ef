package artists

import (
	"regexp"
	"strings"
)

var (
	// listDelim separates artists that are plainly listed: commas,
	// semicolons, spaced slashes, ampersands and the word "and".
	listDelim = regexp.MustCompile(`\s*(?:,|;|\s/\s|\s&\s|\sand\s)\s*`)

	// collabDelim separates collaborating artists. These characters
	// also appear inside artist names, so they split only on request.
	collabDelim = regexp.MustCompile(`\s+(?:x|X|×|\+)\s+`)

	whitespaceRun = regexp.MustCompile(`\s+`)
	wrappingQuote = regexp.MustCompile(`^["“](.+)["”]$`)
	promoTail     = regexp.MustCompile(`(?i)\s*[\[(]?\s*(?:free (?:download|dl)|out now|name your price)\s*[)\]]?$`)
)

// FtPat matches a featuring-artist annotation such as "feat. Singer",
// "(ft. MC Example)" or "w/ Friend". The named group "ft" captures the
// full annotation and "ft_artist" the featured artist. The overall
// match additionally covers any preceding spaces so that removing it
// leaves no gap.
var FtPat = regexp.MustCompile(
	`(?i) *(?P<ft>[\[(]?(?:\b(?:ft|feat|featuring)[. ]+|w/ *)(?P<ft_artist>[^]\[()]+?) *[)\]]?) *$`)

// Split breaks an artist credit into individual names.
//
// List delimiters always split. When force is set, collaboration
// delimiters ("A x B", "A + B") split as well; otherwise such credits
// are kept whole. Results are trimmed, empty entries are dropped and
// duplicates are removed while preserving order.
func Split(credit string, force bool) []string {
	parts := listDelim.Split(strings.TrimSpace(credit), -1)

	if force {
		var split []string
		for _, part := range parts {
			split = append(split, collabDelim.Split(part, -1)...)
		}
		parts = split
	}

	return dedupe(parts)
}

// SplitAll splits every credit and merges the results in order,
// dropping duplicates.
func SplitAll(credits []string, force bool) []string {
	var merged []string
	for _, credit := range credits {
		merged = append(merged, Split(credit, force)...)
	}

	return dedupe(merged)
}

// CleanName normalizes a release or track name: whitespace runs are
// collapsed, surrounding whitespace is trimmed, trailing promo markers
// like "(free download)" are removed and a fully quoted name loses its
// quotes.
func CleanName(name string) string {
	name = whitespaceRun.ReplaceAllString(name, " ")
	name = strings.TrimSpace(name)
	name = promoTail.ReplaceAllString(name, "")

	if m := wrappingQuote.FindStringSubmatch(name); m != nil {
		name = m[1]
	}

	return name
}

// dedupe trims entries, drops empties and removes duplicates while
// preserving first-seen order.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))

	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}
