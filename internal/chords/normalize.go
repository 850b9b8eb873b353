package chords

import "strings"

// Solfège root names mapped to canonical letters. Ordered longest-first so
// "Sol" is never shadowed by a shorter partial match.
var solfegeRoots = []struct {
	name string
	root string
}{
	{"sol", "G"},
	{"do", "C"},
	{"re", "D"},
	{"mi", "E"},
	{"fa", "F"},
	{"la", "A"},
	{"si", "B"},
}

// rootCandidates returns the possible canonical spellings of a trimmed chord
// string, each with the root letter normalized to uppercase at position 0 and
// the remainder untouched.
//
// The English reading comes first: "Fadd9" must stay F-add9 even though "Fa"
// is a solfège prefix. The solfège reading (Do→C … Si→B) and the German H→B
// reading are offered as fallbacks; the parser tries candidates in order and
// keeps the first one that parses.
func rootCandidates(trimmed string) []string {
	var candidates []string

	first := trimmed[0]
	switch {
	case first >= 'A' && first <= 'G':
		candidates = append(candidates, trimmed)
	case first >= 'a' && first <= 'g':
		candidates = append(candidates, string(first-'a'+'A')+trimmed[1:])
	case first == 'H' || first == 'h':
		candidates = append(candidates, "B"+trimmed[1:])
	}

	lower := strings.ToLower(trimmed)
	for _, s := range solfegeRoots {
		if strings.HasPrefix(lower, s.name) {
			candidates = append(candidates, s.root+trimmed[len(s.name):])
			break
		}
	}

	return candidates
}
