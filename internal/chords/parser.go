package chords

import "strings"

// Validation failure messages. These strings are part of the API contract:
// the song editor surfaces them verbatim as inline warnings.
const (
	errEmptyChord       = "Empty chord notation"
	errUnknownRoot      = "Invalid chord format: unrecognized root note"
	errDoubleAccidental = "double sharp/flat not supported"
	errTrailingChars    = "Invalid chord format: unrecognized trailing characters"
	errInvalidBassNote  = "Invalid bass note in slash chord"
)

// Token tables for the chord body grammar. Every table is ordered
// longest-first: the parser always prefers the longest token that matches at
// the cursor, so "maj7" is never split into minor + "aj7".
var (
	suspensionTokens = []string{"sus4", "sus2"}
	qualityTokens    = []string{"maj", "min", "dim", "aug", "m"}
	extensionNumbers = []string{"13", "11", "9", "7", "6", "5"}
	addNumbers       = []string{"13", "11", "9"}
	alterationNums   = []string{"13", "11", "9", "5"}
)

// Engine parses chord notation. It holds no mutable state; a single instance
// is safe for concurrent use from any number of goroutines.
type Engine struct{}

// NewEngine creates a new chord notation engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Parse decomposes a chord symbol into its components. It never returns an
// error: malformed input yields a ParseResult with IsValid=false and a
// populated Errors list.
func (e *Engine) Parse(raw string) ParseResult {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return invalidResult(raw, "", errEmptyChord)
	}

	candidates := rootCandidates(trimmed)
	if len(candidates) == 0 {
		return invalidResult(raw, trimmed, errUnknownRoot)
	}

	first := parseNormalized(raw, candidates[0])
	if first.IsValid {
		return first
	}
	for _, candidate := range candidates[1:] {
		if result := parseNormalized(raw, candidate); result.IsValid {
			return result
		}
	}
	return first
}

// parseNormalized runs the grammar over a candidate with a canonical root
// letter at position 0.
func parseNormalized(original, normalized string) ParseResult {
	components := &ChordComponents{Root: normalized[:1]}
	rest := normalized[1:]

	// Accidental. A second consecutive sharp/flat rejects the whole chord
	// rather than leaving garbage for the later stages.
	if len(rest) > 0 && (rest[0] == '#' || rest[0] == 'b') {
		if len(rest) > 1 && (rest[1] == '#' || rest[1] == 'b') {
			return invalidResult(original, normalized, errDoubleAccidental)
		}
		components.Accidental = rest[:1]
		rest = rest[1:]
	}

	// Slash chord: everything after "/" must be a bare root with an optional
	// accidental, not a nested chord.
	body := rest
	if idx := strings.IndexByte(rest, '/'); idx >= 0 {
		bass, ok := parseBassNote(rest[idx+1:])
		if !ok {
			return invalidResult(original, normalized, errInvalidBassNote)
		}
		components.BassNote = bass
		body = rest[:idx]
	}

	if !parseBody(body, components) {
		return invalidResult(original, normalized, errTrailingChars)
	}

	return ParseResult{
		Original:   original,
		Normalized: normalized,
		IsValid:    true,
		Components: components,
		Quality:    classifyQuality(components),
		Errors:     []string{},
	}
}

// parseBody consumes quality, extension, suspension and alteration tokens
// from the chord body. Returns false if anything is left unconsumed.
func parseBody(body string, components *ChordComponents) bool {
	lower := strings.ToLower(body)
	i := 0

	// Suspension may replace the quality entirely (Gsus4).
	if tok := matchToken(lower, i, suspensionTokens); tok != "" {
		components.Suspension = body[i : i+len(tok)]
		i += len(tok)
	}

	// Quality. "maj" wins over "m" by token ordering; a bare "m" is minor
	// only because "maj" was already tried.
	if components.Suspension == "" {
		if tok := matchToken(lower, i, qualityTokens); tok != "" {
			components.Quality = body[i : i+len(tok)]
			i += len(tok)
		}
	}

	// Extension: addN forms, bare numbers, or a combined "maj7"-style token
	// when a number directly follows an explicit maj quality.
	if strings.HasPrefix(lower[i:], "add") {
		if num := matchToken(lower, i+3, addNumbers); num != "" {
			components.Extension = body[i : i+3+len(num)]
			i += 3 + len(num)
		}
	} else if num := matchToken(lower, i, extensionNumbers); num != "" {
		if strings.EqualFold(components.Quality, "maj") {
			components.Extension = components.Quality + body[i:i+len(num)]
		} else {
			components.Extension = body[i : i+len(num)]
		}
		i += len(num)
	}

	// Suspension after an extension (C7sus4).
	if components.Suspension == "" {
		if tok := matchToken(lower, i, suspensionTokens); tok != "" {
			components.Suspension = body[i : i+len(tok)]
			i += len(tok)
		}
	}

	// Altered tones: one or more (#|b)(5|9|11|13) groups, stored verbatim.
	start := i
	for i < len(body) && (body[i] == '#' || body[i] == 'b') {
		num := matchToken(lower, i+1, alterationNums)
		if num == "" {
			break
		}
		i += 1 + len(num)
	}
	if i > start {
		components.Modification = body[start:i]
	}

	return i == len(body)
}

// matchToken returns the first (longest) token matching at position i, or "".
// The haystack is pre-lowercased; tokens match case-insensitively.
func matchToken(lower string, i int, tokens []string) string {
	for _, tok := range tokens {
		if strings.HasPrefix(lower[i:], tok) {
			return tok
		}
	}
	return ""
}

// parseBassNote validates the root(+accidental) shape of a slash-chord bass
// and returns it with the letter uppercased.
func parseBassNote(s string) (string, bool) {
	if len(s) == 0 || len(s) > 2 {
		return "", false
	}
	letter := s[0]
	if letter >= 'a' && letter <= 'g' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'G' {
		return "", false
	}
	if len(s) == 2 {
		if s[1] != '#' && s[1] != 'b' {
			return "", false
		}
		return string(letter) + s[1:], true
	}
	return string(letter), true
}
