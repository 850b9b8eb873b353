package chords

// enharmonicTable maps each black-key spelling to every common spelling of
// its pitch class. Naturals have no alternates; B/Cb and E/Fb are not
// offered.
var enharmonicTable = map[string][]string{
	"C#": {"C#", "Db"},
	"Db": {"C#", "Db"},
	"D#": {"D#", "Eb"},
	"Eb": {"D#", "Eb"},
	"F#": {"F#", "Gb"},
	"Gb": {"F#", "Gb"},
	"G#": {"G#", "Ab"},
	"Ab": {"G#", "Ab"},
	"A#": {"A#", "Bb"},
	"Bb": {"A#", "Bb"},
}

// EnharmonicEquivalents returns all common spellings of the pitch class
// named by root+accidental, including the given spelling itself. A natural
// root comes back as a singleton set.
func (e *Engine) EnharmonicEquivalents(root, accidental string) []string {
	spelling := root + accidental
	if equivalents, ok := enharmonicTable[spelling]; ok {
		out := make([]string, len(equivalents))
		copy(out, equivalents)
		return out
	}
	return []string{spelling}
}
