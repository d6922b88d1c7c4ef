package names

import "github.com/dlclark/regexp2"

// Small wrappers around regexp2, which returns errors the standard
// library does not and reports match indices in runes, not bytes.

// search returns the first match of the pattern in s, or nil.
func search(re *regexp2.Regexp, s string) *regexp2.Match {
	m, err := re.FindStringMatch(s)
	if err != nil {
		return nil
	}

	return m
}

// matched reports whether the pattern matches anywhere in s.
func matched(re *regexp2.Regexp, s string) bool {
	ok, err := re.MatchString(s)
	return err == nil && ok
}

// sub replaces every match of the pattern in s with repl.
func sub(re *regexp2.Regexp, s, repl string) string {
	out, err := re.Replace(s, repl, -1, -1)
	if err != nil {
		return s
	}

	return out
}

// splitPat splits s around every match of the pattern. Indices reported
// by regexp2 count runes.
func splitPat(re *regexp2.Regexp, s string) []string {
	runes := []rune(s)
	var parts []string

	last := 0
	for m := search(re, s); m != nil; m, _ = re.FindNextMatch(m) {
		parts = append(parts, string(runes[last:m.Index]))
		last = m.Index + m.Length
	}

	return append(parts, string(runes[last:]))
}

// groupText returns the text of a named group, or "" when the group did
// not participate in the match.
func groupText(m *regexp2.Match, name string) string {
	if g := m.GroupByName(name); g != nil && len(g.Captures) > 0 {
		return g.String()
	}

	return ""
}

// groupMatched reports whether a named group participated in the match.
func groupMatched(m *regexp2.Match, name string) bool {
	g := m.GroupByName(name)
	return g != nil && len(g.Captures) > 0
}

// groupAt returns the text of a numbered group, or "" when it did not
// participate.
func groupAt(m *regexp2.Match, i int) string {
	groups := m.Groups()
	if i < len(groups) && len(groups[i].Captures) > 0 {
		return groups[i].String()
	}

	return ""
}
