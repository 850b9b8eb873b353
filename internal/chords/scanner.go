package chords

import "sort"

// ChordOccurrence pairs a bracketed chord text found in ChordPro content
// with its parse result. Position is the byte offset of the opening bracket.
type ChordOccurrence struct {
	Text     string      `json:"text"`
	Position int         `json:"position"`
	Result   ParseResult `json:"result"`
}

// ContentAnalysis aggregates per-chord results over a whole document.
type ContentAnalysis struct {
	TotalChords   int               `json:"total_chords"`
	ValidCount    int               `json:"valid_count"`
	InvalidCount  int               `json:"invalid_count"`
	InvalidChords []string          `json:"invalid_chords"`
	UniqueRoots   []string          `json:"unique_roots"`
	Qualities     []string          `json:"qualities"`
	Chords        []ChordOccurrence `json:"chords"`
}

// ExtractChordOccurrences scans ChordPro content left to right for
// [chord] tokens and parses each one, preserving document order and
// duplicates. Position-aware callers (the transposition feature) use this
// form. Unbalanced brackets are skipped, never fatal.
func (e *Engine) ExtractChordOccurrences(content string) []ChordOccurrence {
	var occurrences []ChordOccurrence

	// Single forward pass; brackets are ASCII so byte indexing is safe even
	// with multibyte lyric text around them.
	i := 0
	for i < len(content) {
		if content[i] != '[' {
			i++
			continue
		}
		j := i + 1
		for j < len(content) && content[j] != ']' && content[j] != '[' {
			j++
		}
		if j >= len(content) {
			break // unclosed bracket at end of document
		}
		if content[j] == '[' {
			i = j // malformed pair, restart at the inner bracket
			continue
		}
		text := content[i+1 : j]
		occurrences = append(occurrences, ChordOccurrence{
			Text:     text,
			Position: i,
			Result:   e.Parse(text),
		})
		i = j + 1
	}

	return occurrences
}

// ExtractChords returns the distinct chords of a document in first-seen
// order, deduplicated by exact text.
func (e *Engine) ExtractChords(content string) []ChordOccurrence {
	var distinct []ChordOccurrence
	seen := make(map[string]bool)

	for _, occ := range e.ExtractChordOccurrences(content) {
		if seen[occ.Text] {
			continue
		}
		seen[occ.Text] = true
		distinct = append(distinct, occ)
	}

	return distinct
}

// ValidateChordProContent extracts every distinct chord from content and
// reports aggregate validity statistics. One bad chord never aborts the
// scan; it is counted and listed among the invalid texts.
func (e *Engine) ValidateChordProContent(content string) *ContentAnalysis {
	chords := e.ExtractChords(content)

	analysis := &ContentAnalysis{
		TotalChords:   len(chords),
		InvalidChords: []string{},
		Chords:        chords,
	}

	roots := make(map[string]bool)
	qualities := make(map[string]bool)
	for _, occ := range chords {
		if !occ.Result.IsValid {
			analysis.InvalidCount++
			analysis.InvalidChords = append(analysis.InvalidChords, occ.Text)
			continue
		}
		analysis.ValidCount++
		roots[occ.Result.Components.Root] = true
		qualities[occ.Result.Quality] = true
	}

	analysis.UniqueRoots = sortedKeys(roots)
	analysis.Qualities = sortedKeys(qualities)
	return analysis
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
