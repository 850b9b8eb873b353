package chords

import (
	"testing"
)

func TestParseComponents(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name         string
		input        string
		root         string
		accidental   string
		quality      string
		extension    string
		suspension   string
		modification string
		bassNote     string
		coarse       string
	}{
		{name: "bare major", input: "C", root: "C", coarse: QualityMajor},
		{name: "minor", input: "Am", root: "A", quality: "m", coarse: QualityMinor},
		{name: "explicit major", input: "Cmaj", root: "C", quality: "maj", coarse: QualityMajor},
		{name: "min token", input: "Cmin", root: "C", quality: "min", coarse: QualityMinor},
		{name: "diminished", input: "Bdim", root: "B", quality: "dim", coarse: QualityDiminished},
		{name: "diminished seventh", input: "Cdim7", root: "C", quality: "dim", extension: "7", coarse: QualityDiminished},
		{name: "augmented", input: "Gaug", root: "G", quality: "aug", coarse: QualityAugmented},
		{name: "dominant seventh", input: "G7", root: "G", extension: "7", coarse: QualityMajor},
		{name: "major seventh keeps maj with extension", input: "Cmaj7", root: "C", quality: "maj", extension: "maj7", coarse: QualityMajor},
		{name: "major ninth", input: "Cmaj9", root: "C", quality: "maj", extension: "maj9", coarse: QualityMajor},
		{name: "minor seventh", input: "Am7", root: "A", quality: "m", extension: "7", coarse: QualityMinor},
		{name: "minor ninth", input: "Em9", root: "E", quality: "m", extension: "9", coarse: QualityMinor},
		{name: "thirteenth", input: "C13", root: "C", extension: "13", coarse: QualityMajor},
		{name: "power chord", input: "C5", root: "C", extension: "5", coarse: QualityMajor},
		{name: "sixth", input: "A6", root: "A", extension: "6", coarse: QualityMajor},
		{name: "add nine", input: "Cadd9", root: "C", extension: "add9", coarse: QualityMajor},
		{name: "add eleven", input: "Gadd11", root: "G", extension: "add11", coarse: QualityMajor},
		{name: "minor add nine", input: "Amadd9", root: "A", quality: "m", extension: "add9", coarse: QualityMinor},
		{name: "F add nine survives solfege prefix", input: "Fadd9", root: "F", extension: "add9", coarse: QualityMajor},
		{name: "F augmented survives solfege prefix", input: "Faug", root: "F", quality: "aug", coarse: QualityAugmented},
		{name: "sus two", input: "Dsus2", root: "D", suspension: "sus2", coarse: QualitySuspended},
		{name: "sus four", input: "Asus4", root: "A", suspension: "sus4", coarse: QualitySuspended},
		{name: "seventh sus four", input: "C7sus4", root: "C", extension: "7", suspension: "sus4", coarse: QualitySuspended},
		{name: "sharp root", input: "F#", root: "F", accidental: "#", coarse: QualityMajor},
		{name: "flat root minor", input: "Bbm", root: "B", accidental: "b", quality: "m", coarse: QualityMinor},
		{name: "sharp nine flat five chain", input: "C7#9b5", root: "C", extension: "7", modification: "#9b5", coarse: QualityMajor},
		{name: "maj seven sharp eleven", input: "Cmaj7#11", root: "C", quality: "maj", extension: "maj7", modification: "#11", coarse: QualityMajor},
		{name: "flat five", input: "Cm7b5", root: "C", quality: "m", extension: "7", modification: "b5", coarse: QualityMinor},
		{name: "slash chord", input: "C/E", root: "C", bassNote: "E", coarse: QualityMajor},
		{name: "minor slash chord", input: "Em/G", root: "E", quality: "m", bassNote: "G", coarse: QualityMinor},
		{name: "slash chord flat bass", input: "C/Bb", root: "C", bassNote: "Bb", coarse: QualityMajor},
		{name: "slash chord lowercase bass", input: "G/b", root: "G", bassNote: "B", coarse: QualityMajor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.Parse(tt.input)
			if !result.IsValid {
				t.Fatalf("Parse(%q) invalid, errors: %v", tt.input, result.Errors)
			}
			if len(result.Errors) != 0 {
				t.Errorf("Parse(%q) valid but errors non-empty: %v", tt.input, result.Errors)
			}
			c := result.Components
			if c == nil {
				t.Fatalf("Parse(%q) valid but components nil", tt.input)
			}
			if c.Root != tt.root {
				t.Errorf("root: expected %q, got %q", tt.root, c.Root)
			}
			if c.Accidental != tt.accidental {
				t.Errorf("accidental: expected %q, got %q", tt.accidental, c.Accidental)
			}
			if c.Quality != tt.quality {
				t.Errorf("quality token: expected %q, got %q", tt.quality, c.Quality)
			}
			if c.Extension != tt.extension {
				t.Errorf("extension: expected %q, got %q", tt.extension, c.Extension)
			}
			if c.Suspension != tt.suspension {
				t.Errorf("suspension: expected %q, got %q", tt.suspension, c.Suspension)
			}
			if c.Modification != tt.modification {
				t.Errorf("modification: expected %q, got %q", tt.modification, c.Modification)
			}
			if c.BassNote != tt.bassNote {
				t.Errorf("bass note: expected %q, got %q", tt.bassNote, c.BassNote)
			}
			if result.Quality != tt.coarse {
				t.Errorf("coarse quality: expected %q, got %q", tt.coarse, result.Quality)
			}
		})
	}
}

func TestParseAlternateNotations(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		input  string
		root   string
		coarse string
	}{
		{"Do", "C", QualityMajor},
		{"Re", "D", QualityMajor},
		{"Mi", "E", QualityMajor},
		{"Fa", "F", QualityMajor},
		{"Sol", "G", QualityMajor},
		{"La", "A", QualityMajor},
		{"Si", "B", QualityMajor},
		{"do", "C", QualityMajor},
		{"SOL", "G", QualityMajor},
		{"Solm", "G", QualityMinor},
		{"Dom7", "C", QualityMinor},
		{"Fam", "F", QualityMinor},
		{"H", "B", QualityMajor},
		{"h7", "B", QualityMajor},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := engine.Parse(tt.input)
			if !result.IsValid {
				t.Fatalf("Parse(%q) invalid, errors: %v", tt.input, result.Errors)
			}
			if result.Components.Root != tt.root {
				t.Errorf("root: expected %q, got %q", tt.root, result.Components.Root)
			}
			if result.Quality != tt.coarse {
				t.Errorf("coarse quality: expected %q, got %q", tt.coarse, result.Quality)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty", "", errEmptyChord},
		{"whitespace only", "   \t\n", errEmptyChord},
		{"unknown root", "X", errUnknownRoot},
		{"numeric", "123", errUnknownRoot},
		{"garbage", "not a chord", errUnknownRoot},
		{"double sharp", "C##", errDoubleAccidental},
		{"double flat", "Abb", errDoubleAccidental},
		{"mixed accidentals", "C#b", errDoubleAccidental},
		{"minor with junk", "Cmx", errTrailingChars},
		{"maj seven with junk", "Cmaj7x", errTrailingChars},
		{"bare sus", "Csus", errTrailingChars},
		{"add without number", "Cadd", errTrailingChars},
		{"unsupported alteration number", "C7#4", errTrailingChars},
		{"bass not a note", "C/X", errInvalidBassNote},
		{"bass is full chord", "C/Em7", errInvalidBassNote},
		{"empty bass", "C/", errInvalidBassNote},
		{"double slash", "C/E/G", errInvalidBassNote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.Parse(tt.input)
			if result.IsValid {
				t.Fatalf("Parse(%q) unexpectedly valid", tt.input)
			}
			if result.Components != nil {
				t.Errorf("invalid result should have nil components, got %+v", result.Components)
			}
			if result.Quality != "" {
				t.Errorf("invalid result should have empty quality, got %q", result.Quality)
			}
			if len(result.Errors) != 1 || result.Errors[0] != tt.wantErr {
				t.Errorf("expected errors [%q], got %v", tt.wantErr, result.Errors)
			}
		})
	}
}

func TestParseCaseInsensitiveQuality(t *testing.T) {
	engine := NewEngine()

	for _, input := range []string{"cmaj", "CMAJ", "CmAj", "Cmaj"} {
		result := engine.Parse(input)
		if !result.IsValid {
			t.Fatalf("Parse(%q) invalid, errors: %v", input, result.Errors)
		}
		if result.Components.Root != "C" {
			t.Errorf("Parse(%q) root: expected C, got %q", input, result.Components.Root)
		}
		if result.Quality != QualityMajor {
			t.Errorf("Parse(%q) coarse quality: expected major, got %q", input, result.Quality)
		}
	}

	// Quality tokens match case-insensitively, so a lone uppercase M reads
	// as minor.
	if got := engine.Parse("CM").Quality; got != QualityMinor {
		t.Errorf("Parse(CM) coarse quality: expected minor, got %q", got)
	}
}

func TestParseWhitespaceInsensitive(t *testing.T) {
	engine := NewEngine()

	padded := engine.Parse("  C  ")
	plain := engine.Parse("C")

	if padded.Original != "  C  " {
		t.Errorf("original should preserve raw input, got %q", padded.Original)
	}
	if padded.Normalized != plain.Normalized ||
		padded.IsValid != plain.IsValid ||
		padded.Quality != plain.Quality ||
		*padded.Components != *plain.Components {
		t.Errorf("padded and plain parses differ: %+v vs %+v", padded, plain)
	}
}

func TestParseIdempotent(t *testing.T) {
	engine := NewEngine()

	inputs := []string{"C", "Do", "Solm7", "H", "cmaj7", "Bbm7b5", "C/E", "F#sus4", "Cmaj7#11"}
	for _, input := range inputs {
		first := engine.Parse(input)
		if !first.IsValid {
			t.Fatalf("Parse(%q) invalid, errors: %v", input, first.Errors)
		}
		again := engine.Parse(first.Normalized)
		if !again.IsValid {
			t.Fatalf("reparse of %q invalid, errors: %v", first.Normalized, again.Errors)
		}
		if *again.Components != *first.Components {
			t.Errorf("reparse of %q changed components: %+v vs %+v", input, again.Components, first.Components)
		}
		if again.Quality != first.Quality {
			t.Errorf("reparse of %q changed quality: %q vs %q", input, again.Quality, first.Quality)
		}
	}
}
