package chords

// Coarse chord quality labels produced by the classifier.
const (
	QualityMajor      = "major"
	QualityMinor      = "minor"
	QualityDiminished = "diminished"
	QualityAugmented  = "augmented"
	QualitySuspended  = "suspended"
)

// ChordComponents is the structural breakdown of a parsed chord symbol.
// Field names are part of the API contract; the song-validation and
// transposition endpoints destructure them directly.
type ChordComponents struct {
	Root         string `json:"root"`
	Accidental   string `json:"accidental,omitempty"`
	Quality      string `json:"quality,omitempty"`
	Extension    string `json:"extension,omitempty"`
	Suspension   string `json:"suspension,omitempty"`
	Modification string `json:"modification,omitempty"`
	BassNote     string `json:"bass_note,omitempty"`
}

// ToMap returns the components as a plain map for legacy callers.
func (c *ChordComponents) ToMap() map[string]any {
	return map[string]any{
		"root":         c.Root,
		"accidental":   c.Accidental,
		"quality":      c.Quality,
		"extension":    c.Extension,
		"suspension":   c.Suspension,
		"modification": c.Modification,
		"bass_note":    c.BassNote,
	}
}

// ParseResult is the outcome of parsing a single chord symbol. A failed
// parse is a normal result with IsValid=false, never an error.
type ParseResult struct {
	Original   string           `json:"original"`
	Normalized string           `json:"normalized"`
	IsValid    bool             `json:"is_valid"`
	Components *ChordComponents `json:"components"`
	Quality    string           `json:"quality,omitempty"`
	Errors     []string         `json:"errors"`
}

// ToMap returns the result as a plain map, with nested components as a
// nested map, for callers that do not want typed objects.
func (r *ParseResult) ToMap() map[string]any {
	m := map[string]any{
		"original":   r.Original,
		"normalized": r.Normalized,
		"is_valid":   r.IsValid,
		"quality":    r.Quality,
		"errors":     r.Errors,
	}
	if r.Components != nil {
		m["components"] = r.Components.ToMap()
	} else {
		m["components"] = nil
	}
	return m
}

func invalidResult(original, normalized, msg string) ParseResult {
	return ParseResult{
		Original:   original,
		Normalized: normalized,
		IsValid:    false,
		Errors:     []string{msg},
	}
}
